// app.go is the top-level Bubble Tea model that orchestrates all views.
//
// Key design decisions:
//   - Three views: Chat (F1), Tables (F2) and Activity (F4); F3 opens
//     the prompt library in the chat from anywhere.
//   - Ctrl+T switches every view between English and Spanish and saves
//     the choice to the config file.
//   - Tab cycles views and ? toggles help, except while a view is
//     taking text input.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/config"
)

const appVersion = "0.1.0"

// Tab indices.
const (
	TabChat = iota
	TabTables
	TabActivity
)

// App is the root Bubble Tea model.
type App struct {
	provider ai.Provider
	cfg      *config.AppConfig
	lang     ai.Language
	save     func(*config.AppConfig) error

	views     []View
	activeTab int

	width     int
	height    int
	showHelp  bool
	statusMsg string
}

// NewApp creates the application with all views.
func NewApp(provider ai.Provider, cfg *config.AppConfig, prompts []config.Prompt) *App {
	lang := ai.ParseLanguage(cfg.Language)
	return &App{
		provider: provider,
		cfg:      cfg,
		lang:     lang,
		save:     config.SaveAppConfig,
		views: []View{
			NewChatView(provider, prompts, lang),
			NewTablesView(provider, lang),
			NewLogView(),
		},
		activeTab: TabChat,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.views[a.activeTab].Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Header(1) + Status(1) + Borders(2) = 4 lines chrome
		for _, v := range a.views {
			v.SetSize(a.width-2, a.height-4)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	// Async replies go to their owner even when it is not on screen.
	case QueryResultMsg, spinnerMsg:
		return a.forward(TabChat, msg)
	case TableDataMsg:
		return a.forward(TabTables, msg)
	case LogLinesMsg, tickMsg:
		return a.forward(TabActivity, msg)
	}

	return a.forward(a.activeTab, msg)
}

func (a *App) forward(tab int, msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.views[tab].Update(msg)
	a.views[tab] = updated
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+t":
		return a, a.toggleLanguage()
	case "f1":
		return a.switchTab(TabChat)
	case "f2":
		return a.switchTab(TabTables)
	case "f4":
		return a.switchTab(TabActivity)
	case "f3":
		if a.activeTab != TabChat {
			a.showHelp = false
			a.activeTab = TabChat
		}
		return a.forward(TabChat, msg)
	}

	if a.views[a.activeTab].WantsTextInput() {
		return a.forward(a.activeTab, msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "tab":
		return a.switchTab((a.activeTab + 1) % len(a.views))
	case "shift+tab":
		return a.switchTab((a.activeTab + len(a.views) - 1) % len(a.views))
	case "esc":
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
	}
	return a.forward(a.activeTab, msg)
}

func (a *App) switchTab(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(a.views) {
		return a, nil
	}
	a.showHelp = false
	a.activeTab = idx
	return a, a.views[idx].Init()
}

// toggleLanguage flips the answer language and persists it.
func (a *App) toggleLanguage() tea.Cmd {
	a.lang = a.lang.Other()
	for _, v := range a.views {
		v.SetLanguage(a.lang)
	}
	a.cfg.Language = string(a.lang)
	cfg, save := *a.cfg, a.save
	return func() tea.Msg {
		if err := save(&cfg); err != nil {
			return StatusMsg("could not save language: " + err.Error())
		}
		return StatusMsg("language: " + strings.ToUpper(cfg.Language))
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	var inner string
	if a.showHelp {
		inner = a.renderHelp()
	} else {
		inner = a.views[a.activeTab].View()
	}

	frame := StyleBorder.
		Width(a.width - 2).
		Height(max(a.height-4, 0)).
		Render(inner)

	return a.renderHeader() + "\n" + frame + "\n" + a.renderStatusBar()
}

// renderHeader draws the logo, the view tabs and the provider/language.
func (a *App) renderHeader() string {
	left := StyleBold.Render("📊 paiBI") + StyleDimmed.Render(" v"+appVersion) + "  "

	keys := []string{"F1", "F2", "F4"}
	for i, v := range a.views {
		label := keys[i] + " " + v.Name()
		if i == a.activeTab {
			left += StyleTabActive.Render(label)
		} else {
			left += StyleTabInactive.Render(label)
		}
	}

	right := StyleSuccess.Render(fmt.Sprintf("⚡ %s · %s", a.provider.Name(), strings.ToUpper(string(a.lang))))
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (a *App) renderStatusBar() string {
	if a.statusMsg != "" {
		return StyleStatusBar.Width(a.width).Render(a.statusMsg)
	}
	items := append(a.views[a.activeTab].ShortHelp(),
		KeyBinding{Key: "Ctrl+T", Desc: "EN/ES"},
		KeyBinding{Key: "Ctrl+C", Desc: "quit"},
	)
	parts := make([]string, 0, len(items))
	for _, h := range items {
		parts = append(parts, StyleHelpKey.Render(h.Key)+" "+StyleHelpDesc.Render(h.Desc))
	}
	return StyleStatusBar.Width(a.width).Render(strings.Join(parts, "  │  "))
}

func (a *App) renderHelp() string {
	help := []string{
		StyleTitle.Render("⌨ paiBI Keyboard Shortcuts"),
		"",
		StyleHelpKey.Render("F1 / F2 / F4") + "     Chat / Tables / Activity",
		StyleHelpKey.Render("Tab / Shift+Tab") + "  Cycle views",
		StyleHelpKey.Render("F3") + "               Prompt library",
		StyleHelpKey.Render("Ctrl+T") + "           Switch English / Spanish",
		StyleHelpKey.Render("?") + "                Toggle this help",
		StyleHelpKey.Render("Ctrl+C") + "           Quit",
		"",
		StyleTitle.Render("Chat"),
		"",
		StyleHelpKey.Render("Enter") + "            Ask",
		StyleHelpKey.Render("Esc") + "              Cancel a pending answer",
		StyleHelpKey.Render("Ctrl+L") + "           Clear the conversation",
		StyleHelpKey.Render("PgUp/PgDn") + "        Scroll",
		"",
		StyleTitle.Render("Tables"),
		"",
		StyleHelpKey.Render("↑/↓ j/k") + "          Select table",
		StyleHelpKey.Render("/") + "                Filter rows",
		StyleHelpKey.Render("←/→ h/l") + "          Horizontal scroll",
		"",
		StyleDimmed.Render("Press ? to close"),
	}

	return lipgloss.NewStyle().
		Width(a.width-4).
		Height(max(a.height-6, 0)).
		Padding(1, 2).
		Render(strings.Join(help, "\n"))
}
