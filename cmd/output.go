// output.go renders answers and tables for the non-interactive commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/dataset"
)

// Output formats accepted by -o.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

func checkFormat(f string) error {
	for _, ok := range outputFormats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want %s)", f, strings.Join(outputFormats, ", "))
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return checkFormat(format)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	sqlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// writeResult prints an answer as text: reply, SQL, analysis, table and
// the simulated source.
func writeResult(w io.Writer, r *ai.QueryResult, lang ai.Language) error {
	var b strings.Builder
	b.WriteString(ai.Reply(r, lang) + "\n\n")
	if r.SQL != "" {
		b.WriteString(sqlStyle.Render(r.SQL) + "\n\n")
	}
	if r.Analysis != "" {
		b.WriteString(r.Analysis + "\n\n")
	}
	if len(r.Columns) > 0 {
		b.WriteString(renderTable(r.Columns, r.Rows) + "\n")
	}
	if r.External != nil {
		line := fmt.Sprintf("%s: %s", r.External.Source, r.External.Content)
		if r.External.URL != "" {
			line += " " + r.External.URL
		}
		b.WriteString(sourceStyle.Render(line) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable prints a dataset table as text.
func writeTable(w io.Writer, t dataset.Table) error {
	if len(t.Columns) == 0 {
		_, err := fmt.Fprintf(w, "no table named %q\n", t.Name)
		return err
	}
	_, err := fmt.Fprintf(w, "%s (%d rows)\n%s\n", headingStyle.Render(t.Name), t.Len(), renderTable(t.Columns, t.Rows))
	return err
}

func renderTable(cols []string, rows []dataset.Row) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		vals := r.Values(cols)
		cells := make([]string, len(vals))
		for j, v := range vals {
			cells[j] = v.String()
		}
		data[i] = cells
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(cols...).
		Rows(data...).
		String()
}
