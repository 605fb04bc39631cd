package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
)

// Start launches the TUI and blocks until the user quits.
func Start(provider ai.Provider, cfg *config.AppConfig, prompts *config.PromptStore) error {
	applog.Event("app", "tui start (provider=%s, lang=%s)", provider.Name(), cfg.Language)
	defer applog.Event("app", "tui stop")

	app := NewApp(provider, cfg, prompts.Prompts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
