package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/db"
)

var (
	askOutput string
	askExec   bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question and exit",
	Example: `  paibi ask "Show me the top 5 employees by salary"
  paibi ask --lang es -o json "Calculate total revenue statistics"
  paibi ask --exec "List the top 5 most expensive products"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(askOutput); err != nil {
			return err
		}
		provider, err := ai.NewProvider(appCfg)
		if err != nil {
			return err
		}

		lang := language()
		res, err := provider.Query(cmd.Context(), strings.Join(args, " "), lang)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if askOutput != formatText {
			return writeStructured(out, askOutput, res)
		}
		if err := writeResult(out, res, lang); err != nil {
			return err
		}
		if askExec {
			return execAgainstDB(cmd.Context(), cmd, res.SQL)
		}
		return nil
	},
}

// execAgainstDB runs the answer's SQL on the configured PostgreSQL
// server and prints what the database returns.
func execAgainstDB(ctx context.Context, cmd *cobra.Command, sql string) error {
	d, err := db.Connect(ctx, appCfg.Postgres)
	if err != nil {
		return err
	}
	defer d.Close()

	t, err := d.Execute(ctx, sql)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	t.Name = "postgres"
	return writeTable(cmd.OutOrStdout(), t)
}

func init() {
	askCmd.Flags().StringVarP(&askOutput, "output", "o", formatText, "output format: text, json or yaml")
	askCmd.Flags().BoolVar(&askExec, "exec", false, "also run the SQL against the seeded PostgreSQL database")
	rootCmd.AddCommand(askCmd)
}
