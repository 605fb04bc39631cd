// format.go turns dataset cells and column names into display text.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/dataset"
)

var (
	titleEN   = cases.Title(language.English)
	titleES   = cases.Title(language.Spanish)
	printerEN = message.NewPrinter(language.English)
	printerES = message.NewPrinter(language.Spanish)
)

func printer(lang ai.Language) *message.Printer {
	if lang == ai.Spanish {
		return printerES
	}
	return printerEN
}

// headerTitle turns "unit_price" into "Unit Price".
func headerTitle(col string, lang ai.Language) string {
	c := titleEN
	if lang == ai.Spanish {
		c = titleES
	}
	return c.String(strings.ReplaceAll(col, "_", " "))
}

// currencyWords mark columns whose numbers are money.
var currencyWords = []string{"price", "salary", "total", "amount", "subtotal"}

func isCurrencyColumn(col string) bool {
	col = strings.ToLower(col)
	for _, w := range currencyWords {
		if strings.Contains(col, w) {
			return true
		}
	}
	return false
}

// formatCell renders one cell; money columns get a currency sign and
// the language's digit grouping.
func formatCell(col string, v dataset.Value, lang ai.Language) string {
	if v.IsNumber() && isCurrencyColumn(col) {
		return printer(lang).Sprintf("$%.2f", v.Num)
	}
	return v.String()
}

// renderTable draws rows as a bordered table.
func renderTable(cols []string, rows []dataset.Row, lang ai.Language) string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = headerTitle(c, lang)
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = formatCell(c, r[c], lang)
		}
		data[i] = cells
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDimmed).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTableHeader
			}
			return StyleTableCell
		}).
		String()
}

// stripMarkdown drops the bold markers used in answer narratives.
func stripMarkdown(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
