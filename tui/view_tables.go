// view_tables.go browses the raw sample tables.
//
// The sidebar lists every table; the selected one is fetched through the
// provider and shown with formatted headers and money columns. "/"
// starts a case-insensitive filter over all cells.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/dataset"
)

const sidebarWidth = 18

// TablesView shows one raw table at a time.
type TablesView struct {
	provider ai.Provider
	lang     ai.Language
	names    []string
	cursor   int

	table   dataset.Table
	loading bool
	err     error

	filter    string
	filtering bool

	viewport *Viewport
	width    int
	height   int
}

func NewTablesView(provider ai.Provider, lang ai.Language) *TablesView {
	return &TablesView{
		provider: provider,
		lang:     lang,
		names:    dataset.Tables(),
		viewport: NewViewport(60, 20),
	}
}

func (v *TablesView) Name() string { return "Tables" }

func (v *TablesView) WantsTextInput() bool { return v.filtering }

func (v *TablesView) SetLanguage(lang ai.Language) {
	v.lang = lang
	v.render()
}

func (v *TablesView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.SetSize(width-sidebarWidth-3, height-2)
}

func (v *TablesView) ShortHelp() []KeyBinding {
	if v.filtering {
		return []KeyBinding{
			{Key: "Enter", Desc: "apply"},
			{Key: "Esc", Desc: "clear filter"},
		}
	}
	return []KeyBinding{
		{Key: "↑/↓", Desc: "table"},
		{Key: "/", Desc: "filter"},
		{Key: "←/→", Desc: "scroll"},
		{Key: "PgUp/PgDn", Desc: "page"},
	}
}

func (v *TablesView) Init() tea.Cmd {
	if v.table.Name == v.names[v.cursor] {
		return nil
	}
	return v.load()
}

func (v *TablesView) load() tea.Cmd {
	v.loading = true
	v.err = nil
	name, provider := v.names[v.cursor], v.provider
	return func() tea.Msg {
		t, err := provider.TableData(context.Background(), name)
		return TableDataMsg{Name: name, Table: t, Err: err}
	}
}

func (v *TablesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.filtering {
			return v.handleFilterKey(msg)
		}
		return v.handleKey(msg)

	case TableDataMsg:
		if msg.Name != v.names[v.cursor] {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		v.table = msg.Table
		v.render()
		v.viewport.Home()
		return v, nil
	}
	return v, nil
}

func (v *TablesView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			return v, v.load()
		}
	case "down", "j":
		if v.cursor < len(v.names)-1 {
			v.cursor++
			return v, v.load()
		}
	case "/":
		v.filtering = true
	case "left", "h":
		v.viewport.ScrollLeft(4)
	case "right", "l":
		v.viewport.ScrollRight(4)
	case "pgup":
		v.viewport.PageUp()
	case "pgdown":
		v.viewport.PageDown()
	case "home":
		v.viewport.Home()
	case "end":
		v.viewport.End()
	}
	return v, nil
}

func (v *TablesView) handleFilterKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.filtering = false
	case "esc":
		v.filtering = false
		v.filter = ""
	case "backspace":
		if r := []rune(v.filter); len(r) > 0 {
			v.filter = string(r[:len(r)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			v.filter += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			v.filter += " "
		}
	}
	v.render()
	v.viewport.Home()
	return v, nil
}

// visible returns the table with the filter applied.
func (v *TablesView) visible() dataset.Table {
	return v.table.Filter(v.filter)
}

func (v *TablesView) render() {
	if len(v.table.Columns) == 0 {
		v.viewport.SetContentLines(nil)
		return
	}
	t := v.visible()
	v.viewport.SetContent(renderTable(t.Columns, t.Rows, v.lang))
}

func (v *TablesView) renderSidebar() string {
	lines := []string{StyleTitle.Render("🗂  " + tablesTitle(v.lang)), ""}
	for i, name := range v.names {
		t, _ := dataset.Lookup(name)
		label := fmt.Sprintf("%-10s %3d", name, t.Len())
		if i == v.cursor {
			lines = append(lines, StyleListItemActive.Render("▸ "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (v *TablesView) statusLine() string {
	name := v.names[v.cursor]
	switch {
	case v.loading:
		return StyleDimmed.Render(name + " · loading...")
	case v.err != nil:
		return StyleError.Render(name + ": " + v.err.Error())
	}

	line := fmt.Sprintf("%s · %d/%d rows", StyleBold.Render(name), v.visible().Len(), v.table.Len())
	switch {
	case v.filtering:
		line += "  " + StylePrompt.Render("/") + v.filter + "█"
	case v.filter != "":
		line += "  " + StyleDimmed.Render("filter: "+v.filter)
	}
	return line
}

func tablesTitle(lang ai.Language) string {
	if lang == ai.Spanish {
		return "Tablas"
	}
	return "Tables"
}

func (v *TablesView) View() string {
	right := lipgloss.JoinVertical(lipgloss.Left, v.statusLine(), "", v.viewport.Render())
	return lipgloss.JoinHorizontal(lipgloss.Top, v.renderSidebar(), " │ ", right)
}
