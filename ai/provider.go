// Package ai answers natural-language business questions over the
// sample dataset.
//
// Design decisions:
//   - Provider is an interface so the TUI, the CLI and the HTTP server
//     depend on the two-operation contract, not on how answers are made.
//   - All methods accept context for cancellation (async-friendly). With
//     a live context they always succeed: unknown prompts get a fallback
//     answer and unknown tables an empty table.
//   - Language is passed on every call; nothing in this package keeps
//     per-user state.
//   - The Simulated provider classifies with keyword rules and builds
//     canned, data-backed answers. There is no model behind it.
package ai

import (
	"context"
	"strings"

	"github.com/DachengChen/paiBI/dataset"
)

// Language selects the narrative language of an answer.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ParseLanguage maps a language tag to a supported Language. Anything
// that is not Spanish is treated as English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es", "es-es", "es-mx", "spanish", "español":
		return Spanish
	default:
		return English
	}
}

// Other returns the language the UI toggle switches to.
func (l Language) Other() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

// Provider is the interface all assistant backends must implement.
type Provider interface {
	// Query answers a free-text question. It fails only when ctx ends
	// before the answer is ready; with context.Background() it always
	// returns a result and a nil error.
	Query(ctx context.Context, prompt string, lang Language) (*QueryResult, error)

	// TableData returns a raw table by name; unknown names yield an
	// empty table, not an error. Like Query, only ctx can make it fail.
	TableData(ctx context.Context, name string) (dataset.Table, error)

	// Name returns the provider name for display.
	Name() string
}
