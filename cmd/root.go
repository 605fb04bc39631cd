// Package cmd contains all Cobra commands for paiBI.
//
// Design decision: the root command launches the chat TUI directly.
// Subcommands cover scripted use: one-shot questions, raw tables, the
// prompt library, the HTTP API and loading the dataset into PostgreSQL.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/tui"
)

var (
	appCfg   *config.AppConfig
	langFlag string
)

var rootCmd = &cobra.Command{
	Use:   "paibi",
	Short: "Business-intelligence assistant that answers sales questions with SQL, tables and charts",
	Long: `paiBI answers natural-language questions about a sample sales dataset:
  • Chat TUI with charts, tables and a prompt library
  • English and Spanish answers
  • One-shot CLI and an HTTP API for scripts and web front ends
  • Optional loading of the dataset into PostgreSQL (via SSH tunnel)

Run 'paibi' to start the TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("lang") {
			cfg.Language = string(ai.ParseLanguage(langFlag))
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		appCfg = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		applog.Close()
	},
	// Running with no subcommand launches the TUI.
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := ai.NewProvider(appCfg)
		if err != nil {
			return err
		}
		prompts, err := config.NewPromptStore()
		if err != nil {
			return fmt.Errorf("failed to load prompts: %w", err)
		}
		return tui.Start(provider, appCfg, prompts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "answer language: en or es (default from config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func language() ai.Language {
	if appCfg == nil {
		return ai.English
	}
	return ai.ParseLanguage(appCfg.Language)
}
