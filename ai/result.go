package ai

import (
	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/intent"
)

// QueryResult is the answer bundle rendered by every front end.
//
// Columns are underscore_case identifiers; every row carries exactly
// those keys. Summary answers with no tabular data have empty, non-nil
// Columns and Rows.
type QueryResult struct {
	Topic       intent.Topic     `json:"topic" yaml:"topic"`
	Prompt      string           `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Columns     []string         `json:"columns" yaml:"columns"`
	Rows        []dataset.Row    `json:"rows" yaml:"rows"`
	SQL         string           `json:"sql,omitempty" yaml:"sql,omitempty"`
	Explanation string           `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Analysis    string           `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Chart       *ChartConfig     `json:"chartConfig,omitempty" yaml:"chartConfig,omitempty"`
	External    *ExternalContext `json:"externalContext,omitempty" yaml:"externalContext,omitempty"`
}

// ExternalContext names the integration an answer pretends to have used.
type ExternalContext struct {
	Source  string `json:"source" yaml:"source"`
	Content string `json:"content" yaml:"content"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Table returns the result rows as a dataset table.
func (r *QueryResult) Table() dataset.Table {
	return dataset.Table{Name: r.Topic.String(), Columns: r.Columns, Rows: r.Rows}
}
