// view_log.go tails the application log.
//
// The log is JSON lines written by applog; each entry is condensed to
// time, level, message and its most useful fields. Refreshes
// periodically using tea.Tick. The user can pause/resume following.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/applog"
)

const (
	logRefreshInterval = 2 * time.Second
	logTailLines       = 300
)

// logFields are shown after the message, in this order, when present.
var logFields = []string{"topic", "order", "rows", "table", "known", "source", "prompt", "elapsed", "status", "uri", "error"}

// LogView shows the tail of ~/.paibi/logs/app.log.
type LogView struct {
	path     string
	viewport *Viewport
	paused   bool
	ticking  bool
	err      error
	width    int
	height   int
}

func NewLogView() *LogView {
	path := ""
	if dir, err := applog.Dir(); err == nil {
		path = filepath.Join(dir, "app.log")
	}
	return newLogViewAt(path)
}

func newLogViewAt(path string) *LogView {
	return &LogView{path: path, viewport: NewViewport(80, 20)}
}

func (v *LogView) Name() string                 { return "Activity" }
func (v *LogView) WantsTextInput() bool         { return false }
func (v *LogView) SetLanguage(lang ai.Language) {}

func (v *LogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.SetSize(width-2, height-2)
}

func (v *LogView) ShortHelp() []KeyBinding {
	pause := "pause"
	if v.paused {
		pause = "resume"
	}
	return []KeyBinding{
		{Key: "p", Desc: pause},
		{Key: "c", Desc: "clear"},
		{Key: "↑/↓", Desc: "scroll"},
	}
}

// Init refreshes the log. The refresh tick is started once and keeps
// itself alive.
func (v *LogView) Init() tea.Cmd {
	if v.ticking {
		return v.fetch()
	}
	v.ticking = true
	return tea.Batch(v.fetch(), v.tick())
}

func (v *LogView) tick() tea.Cmd {
	return tea.Tick(logRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (v *LogView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case tickMsg:
		if !v.paused {
			return v, tea.Batch(v.fetch(), v.tick())
		}
		return v, v.tick()

	case LogLinesMsg:
		v.err = msg.Err
		if msg.Err == nil && !v.paused {
			v.viewport.SetContentLines(msg.Lines)
			v.viewport.End()
		}
		return v, nil
	}

	return v, nil
}

func (v *LogView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "p":
		v.paused = !v.paused
	case "c":
		v.viewport.SetContentLines(nil)
	case "up", "k":
		v.viewport.ScrollUp(1)
	case "down", "j":
		v.viewport.ScrollDown(1)
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

func (v *LogView) fetch() tea.Cmd {
	path := v.path
	return func() tea.Msg {
		lines, err := tailLog(path, logTailLines)
		return LogLinesMsg{Lines: lines, Err: err}
	}
}

// tailLog returns the last n entries of a JSON-lines log, formatted. A
// missing file is an empty log.
func tailLog(path string, n int) ([]string, error) {
	if path == "" {
		return nil, errors.New("no log directory")
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ring := make([]string, 0, n)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ring))
	for _, raw := range ring {
		out = append(out, formatLogLine(raw))
	}
	return out, nil
}

// formatLogLine condenses one JSON log entry; other text passes through.
func formatLogLine(raw string) string {
	if !gjson.Valid(raw) {
		return raw
	}
	e := gjson.Parse(raw)

	ts := e.Get("ts").String()
	if i := strings.LastIndexByte(ts, ' '); i >= 0 {
		ts = ts[i+1:]
	}

	level := strings.ToUpper(e.Get("level").String())
	levelStyle := StyleDimmed
	switch level {
	case "WARN":
		levelStyle = StyleWarning
	case "ERROR":
		levelStyle = StyleError
	case "INFO":
		levelStyle = StyleSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", StyleDimmed.Render(ts), levelStyle.Render(fmt.Sprintf("%-5s", level)), e.Get("msg").String())
	for _, k := range logFields {
		if f := e.Get(k); f.Exists() {
			fmt.Fprintf(&b, " %s=%s", StyleDimmed.Render(k), f.String())
		}
	}
	return b.String()
}

func (v *LogView) View() string {
	status := StyleSuccess.Render("● FOLLOWING")
	if v.paused {
		status = StyleWarning.Render("● PAUSED")
	}
	header := fmt.Sprintf("  %s  %s", StyleTitle.Render("📋 Activity Log"), status)
	if v.err != nil {
		header += "  " + StyleError.Render(v.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, v.viewport.Render())
}
