// chart.go draws an answer's chart as horizontal bars.
package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/DachengChen/paiBI/ai"
)

const (
	chartLabelWidth = 24
	chartMinBar     = 10
)

// renderChart renders the first series of a chart. Pie charts show each
// slice's share; other charts scale bars to the largest value.
func renderChart(c *ai.ChartConfig, width int, lang ai.Language) []string {
	if c == nil || len(c.Data) == 0 {
		return nil
	}
	tr := c.Data[0]
	labels, values := tr.Series()
	n := min(len(labels), len(values))
	if n == 0 {
		return nil
	}

	top, sum := 0.0, 0.0
	for _, v := range values[:n] {
		top = max(top, v)
		sum += v
	}

	barWidth := max(width-chartLabelWidth-18, chartMinBar)
	lines := []string{StyleTitle.Render("📈 " + c.Layout.Title)}
	p := printer(lang)
	for i := 0; i < n; i++ {
		v := values[i]
		scale := top
		if tr.Type == "pie" {
			scale = sum
		}
		filled := 0
		if scale > 0 && v > 0 {
			filled = max(int(v/scale*float64(barWidth)+0.5), 1)
		}

		label := ansi.Truncate(labels[i], chartLabelWidth, "…")
		label += strings.Repeat(" ", chartLabelWidth-ansi.StringWidth(label))

		value := p.Sprintf("%.2f", v)
		if tr.Type == "pie" && sum > 0 {
			value = p.Sprintf("%.2f (%.0f%%)", v, v/sum*100)
		}
		lines = append(lines, label+" "+StyleBar.Render(strings.Repeat("█", filled))+" "+StyleDimmed.Render(value))
	}
	if len(c.Data) > 1 {
		lines = append(lines, StyleDimmed.Render("+ "+c.Data[1].Name))
	}
	return lines
}
