// messages.go defines Bubble Tea messages used for async communication.
//
// Assistant calls and log reads report back to the TUI through these
// message types, so the UI never blocks while waiting.
package tui

import (
	"time"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/dataset"
)

// QueryResultMsg is sent when an assistant query completes. Seq ties
// the reply to its request so replies to abandoned requests are dropped.
// Lang is the language the question was asked in.
type QueryResultMsg struct {
	Seq    int
	Lang   ai.Language
	Result *ai.QueryResult
	Err    error
}

// TableDataMsg is sent when a raw table has been fetched.
type TableDataMsg struct {
	Name  string
	Table dataset.Table
	Err   error
}

// LogLinesMsg carries the tail of the application log.
type LogLinesMsg struct {
	Lines []string
	Err   error
}

// spinnerMsg advances the "thinking" animation.
type spinnerMsg struct{ seq int }

// tickMsg triggers a periodic log refresh.
type tickMsg time.Time

// StatusMsg is a transient status message for the status bar.
type StatusMsg string
