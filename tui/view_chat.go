// view_chat.go is the assistant chat.
//
// Questions go to the provider asynchronously; a spinner runs until the
// answer arrives. Esc abandons a pending question. F3 opens the prompt
// library and Enter on an entry asks it.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/config"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type chatRole int

const (
	roleUser chatRole = iota
	roleAssistant
	roleError
)

type chatEntry struct {
	role   chatRole
	text   string
	result *ai.QueryResult
	lang   ai.Language
}

// ChatView is the conversation with the assistant.
type ChatView struct {
	provider ai.Provider
	prompts  []config.Prompt
	lang     ai.Language
	viewport *Viewport
	input    string
	entries  []chatEntry

	loading bool
	seq     int
	frame   int
	cancel  context.CancelFunc

	showLibrary bool
	libCursor   int

	width  int
	height int
}

// NewChatView creates the chat. prompts feeds the F3 library.
func NewChatView(provider ai.Provider, prompts []config.Prompt, lang ai.Language) *ChatView {
	return &ChatView{
		provider: provider,
		prompts:  prompts,
		lang:     lang,
		viewport: NewViewport(80, 20),
	}
}

func (v *ChatView) Name() string { return "Chat" }

func (v *ChatView) WantsTextInput() bool { return true }

func (v *ChatView) SetLanguage(lang ai.Language) {
	v.lang = lang
	v.refresh(false)
}

func (v *ChatView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.SetSize(width-2, height-3)
	v.refresh(true)
}

func (v *ChatView) ShortHelp() []KeyBinding {
	if v.showLibrary {
		return []KeyBinding{
			{Key: "↑/↓", Desc: "choose"},
			{Key: "Enter", Desc: "ask"},
			{Key: "Esc", Desc: "close"},
		}
	}
	return []KeyBinding{
		{Key: "Enter", Desc: "send"},
		{Key: "F3", Desc: "prompts"},
		{Key: "Ctrl+T", Desc: "EN/ES"},
		{Key: "Ctrl+L", Desc: "clear"},
		{Key: "PgUp/PgDn", Desc: "scroll"},
	}
}

func (v *ChatView) Init() tea.Cmd {
	v.refresh(true)
	return nil
}

func (v *ChatView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.showLibrary {
			return v.handleLibraryKey(msg)
		}
		return v.handleKey(msg)

	case spinnerMsg:
		if !v.loading || msg.seq != v.seq {
			return v, nil
		}
		v.frame = (v.frame + 1) % len(spinnerFrames)
		v.refresh(true)
		return v, v.spin()

	case QueryResultMsg:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.loading = false
		v.cancel = nil
		if msg.Err != nil {
			v.entries = append(v.entries, chatEntry{role: roleError, text: ai.ErrorReply(msg.Lang) + " (" + msg.Err.Error() + ")"})
		} else {
			v.entries = append(v.entries, chatEntry{role: roleAssistant, result: msg.Result, lang: msg.Lang})
		}
		v.refresh(true)
		return v, nil
	}
	return v, nil
}

func (v *ChatView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v, v.ask(v.input)
	case "f3":
		if len(v.prompts) > 0 {
			v.showLibrary = true
			v.libCursor = 0
		}
	case "esc":
		v.abandon()
	case "ctrl+l":
		v.abandon()
		v.entries = nil
		v.viewport.Home()
		v.refresh(true)
	case "ctrl+k", "up":
		v.viewport.ScrollUp(1)
	case "ctrl+j", "down":
		v.viewport.ScrollDown(1)
	case "pgup":
		v.viewport.PageUp()
	case "pgdown":
		v.viewport.PageDown()
	case "backspace":
		if r := []rune(v.input); len(r) > 0 {
			v.input = string(r[:len(r)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			v.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			v.input += " "
		}
	}
	return v, nil
}

func (v *ChatView) handleLibraryKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.libCursor > 0 {
			v.libCursor--
		}
	case "down", "j":
		if v.libCursor < len(v.prompts)-1 {
			v.libCursor++
		}
	case "enter":
		v.showLibrary = false
		return v, v.ask(v.prompts[v.libCursor].Text)
	case "esc", "f3":
		v.showLibrary = false
	}
	return v, nil
}

// ask sends a question. A question asked while another is pending
// replaces it.
func (v *ChatView) ask(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	v.abandon()

	v.entries = append(v.entries, chatEntry{role: roleUser, text: text})
	v.input = ""
	v.loading = true
	v.seq++
	v.frame = 0
	v.refresh(true)

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	seq, lang, provider := v.seq, v.lang, v.provider
	query := func() tea.Msg {
		res, err := provider.Query(ctx, text, lang)
		return QueryResultMsg{Seq: seq, Lang: lang, Result: res, Err: err}
	}
	return tea.Batch(query, v.spin())
}

// abandon cancels a pending question; its reply will be ignored.
func (v *ChatView) abandon() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	if v.loading {
		v.loading = false
		v.seq++
	}
}

func (v *ChatView) spin() tea.Cmd {
	seq := v.seq
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerMsg{seq: seq} })
}

// refresh re-renders the transcript, optionally scrolling to the end.
func (v *ChatView) refresh(follow bool) {
	v.viewport.SetContentLines(v.renderChat())
	if follow {
		v.viewport.End()
	}
}

func (v *ChatView) renderChat() []string {
	lines := []string{
		StyleTitle.Render("💬 paiBI") + " " + StyleDimmed.Render("("+v.provider.Name()+")"),
		"",
	}
	for _, l := range strings.Split(stripMarkdown(ai.Intro(v.lang)), "\n") {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "")

	for _, e := range v.entries {
		switch e.role {
		case roleUser:
			lines = append(lines, StyleUser.Render("You: ")+e.text, "")
		case roleError:
			lines = append(lines, StyleError.Render("paiBI: ")+e.text, "")
		case roleAssistant:
			lines = append(lines, StyleAssistant.Render("paiBI:"))
			lines = append(lines, indent(v.renderAnswer(e))...)
			lines = append(lines, "")
		}
	}

	if v.loading {
		lines = append(lines, StyleDimmed.Render("  "+spinnerFrames[v.frame]+" "+thinking(v.lang)))
	}
	return lines
}

func (v *ChatView) renderAnswer(e chatEntry) []string {
	r := e.result
	var lines []string
	lines = append(lines, strings.Split(stripMarkdown(ai.Reply(r, e.lang)), "\n")...)
	if r.SQL != "" {
		lines = append(lines, "")
		for _, l := range strings.Split(r.SQL, "\n") {
			lines = append(lines, StyleSQL.Render(l))
		}
	}
	if r.Analysis != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(stripMarkdown(r.Analysis), "\n")...)
	}
	if len(r.Columns) > 0 {
		lines = append(lines, "")
		lines = append(lines, strings.Split(renderTable(r.Columns, r.Rows, e.lang), "\n")...)
	}
	if chart := renderChart(r.Chart, v.width-4, e.lang); chart != nil {
		lines = append(lines, "")
		lines = append(lines, chart...)
	}
	if x := r.External; x != nil {
		src := "🔌 " + x.Source + ": " + x.Content
		if x.URL != "" {
			src += " " + x.URL
		}
		lines = append(lines, "", StyleSource.Render(src))
	}
	return lines
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "  " + l
	}
	return out
}

func thinking(lang ai.Language) string {
	if lang == ai.Spanish {
		return "Pensando..."
	}
	return "Thinking..."
}

func (v *ChatView) renderLibrary() string {
	lines := []string{StyleTitle.Render(libraryTitle(v.lang)), ""}
	category := ""
	for i, p := range v.prompts {
		if p.Category != category {
			category = p.Category
			lines = append(lines, StyleDimmed.Render(category))
		}
		item := "  " + p.Title(string(v.lang))
		if i == v.libCursor {
			item = StyleListItemActive.Render("▸ " + p.Title(string(v.lang)))
		}
		lines = append(lines, item)
	}
	if v.libCursor < len(v.prompts) {
		lines = append(lines, "", StyleDimmed.Render(v.prompts[v.libCursor].Text))
	}
	return StyleBorder.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func libraryTitle(lang ai.Language) string {
	if lang == ai.Spanish {
		return "📚 Biblioteca de Prompts"
	}
	return "📚 Prompt Library"
}

func (v *ChatView) View() string {
	prompt := StylePrompt.Render("Ask> ") + v.input + "█"
	if v.loading {
		prompt = StylePrompt.Render("Ask> ") + StyleDimmed.Render(thinking(v.lang)+" (Esc to cancel)")
	}
	if v.showLibrary {
		return lipgloss.JoinVertical(lipgloss.Left, prompt, "", v.renderLibrary())
	}
	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", v.viewport.Render())
}
