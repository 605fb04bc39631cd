package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DachengChen/paiBI/config"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage the saved prompt library",
}

var promptsListOutput string

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(promptsListOutput); err != nil {
			return err
		}
		store, err := config.NewPromptStore()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if promptsListOutput != formatText {
			return writeStructured(out, promptsListOutput, store.Prompts)
		}

		lang := string(language())
		category := ""
		for _, p := range store.Prompts {
			if p.Category != category {
				category = p.Category
				fmt.Fprintln(out, headingStyle.Render(category))
			}
			fmt.Fprintf(out, "  %-22s %s\n  %-22s %s\n", p.Name, p.Title(lang), "", p.Text)
		}
		return nil
	},
}

var (
	addCategory string
	addTitleEN  string
	addTitleES  string
)

var promptsAddCmd = &cobra.Command{
	Use:     "add <name> <prompt>",
	Short:   "Add or replace a saved prompt",
	Example: `  paibi prompts add top-regions "Show me a map of sales by region" --category Geo --title "Top regions"`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewPromptStore()
		if err != nil {
			return err
		}
		p := config.Prompt{
			Name:     args[0],
			Category: addCategory,
			TitleEN:  addTitleEN,
			TitleES:  addTitleES,
			Text:     strings.Join(args[1:], " "),
		}
		store.Add(p)
		if err := store.Save(); err != nil {
			return fmt.Errorf("save prompts: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %q\n", p.Name)
		return nil
	},
}

var promptsRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Remove a saved prompt",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewPromptStore()
		if err != nil {
			return err
		}
		if !store.Delete(args[0]) {
			return fmt.Errorf("no prompt named %q", args[0])
		}
		if err := store.Save(); err != nil {
			return fmt.Errorf("save prompts: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", args[0])
		return nil
	},
}

func init() {
	promptsListCmd.Flags().StringVarP(&promptsListOutput, "output", "o", formatText, "output format: text, json or yaml")
	promptsAddCmd.Flags().StringVar(&addCategory, "category", "Custom", "library category")
	promptsAddCmd.Flags().StringVar(&addTitleEN, "title", "", "English title")
	promptsAddCmd.Flags().StringVar(&addTitleES, "title-es", "", "Spanish title")

	promptsCmd.AddCommand(promptsListCmd, promptsAddCmd, promptsRmCmd)
	rootCmd.AddCommand(promptsCmd)
}
