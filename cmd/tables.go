package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/dataset"
)

var (
	tablesOutput string
	tablesFilter string
)

var tablesCmd = &cobra.Command{
	Use:   "tables [name]",
	Short: "List the sample tables or print one",
	Example: `  paibi tables
  paibi tables customers --filter centro
  paibi tables sales -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(tablesOutput); err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			if tablesOutput != formatText {
				return writeStructured(out, tablesOutput, dataset.Tables())
			}
			for _, name := range dataset.Tables() {
				t, _ := dataset.Lookup(name)
				fmt.Fprintf(out, "%-10s %3d rows  %v\n", name, t.Len(), t.Columns)
			}
			return nil
		}

		provider, err := ai.NewProvider(appCfg)
		if err != nil {
			return err
		}
		t, err := provider.TableData(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if tablesFilter != "" {
			t = t.Filter(tablesFilter)
		}
		if tablesOutput != formatText {
			return writeStructured(out, tablesOutput, t)
		}
		return writeTable(out, t)
	},
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesOutput, "output", "o", formatText, "output format: text, json or yaml")
	tablesCmd.Flags().StringVar(&tablesFilter, "filter", "", "keep rows where any cell contains this text (case-insensitive)")
	rootCmd.AddCommand(tablesCmd)
}
