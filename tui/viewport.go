// viewport.go provides the scrollable text area shared by all views.
//
// Content lines may carry ANSI styling; widths and horizontal offsets
// are measured in terminal cells, not bytes.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Viewport is a scrollable block of styled lines.
type Viewport struct {
	width   int
	height  int
	content []string
	scrollY int // first visible line
	scrollX int // first visible cell
}

// NewViewport creates a viewport with the given dimensions.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// SetContent replaces the content with a newline-separated string.
func (v *Viewport) SetContent(content string) {
	v.SetContentLines(strings.Split(content, "\n"))
}

// SetContentLines replaces the content with pre-split lines.
func (v *Viewport) SetContentLines(lines []string) {
	v.content = lines
	v.clamp()
}

// SetSize updates viewport dimensions.
func (v *Viewport) SetSize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.clamp()
}

// Lines returns the number of content lines.
func (v *Viewport) Lines() int { return len(v.content) }

// ScrollUp moves the viewport up by n lines.
func (v *Viewport) ScrollUp(n int) {
	v.scrollY -= n
	v.clamp()
}

// ScrollDown moves the viewport down by n lines.
func (v *Viewport) ScrollDown(n int) {
	v.scrollY += n
	v.clamp()
}

// ScrollLeft moves the viewport left by n cells.
func (v *Viewport) ScrollLeft(n int) {
	v.scrollX = max(v.scrollX-n, 0)
}

// ScrollRight moves the viewport right by n cells, up to the widest line.
func (v *Viewport) ScrollRight(n int) {
	v.scrollX = min(v.scrollX+n, max(v.widest()-v.width, 0))
}

// PageUp scrolls up by one page.
func (v *Viewport) PageUp() { v.ScrollUp(v.height) }

// PageDown scrolls down by one page.
func (v *Viewport) PageDown() { v.ScrollDown(v.height) }

// Home scrolls to the top-left corner.
func (v *Viewport) Home() {
	v.scrollY, v.scrollX = 0, 0
}

// End scrolls to the bottom.
func (v *Viewport) End() {
	v.scrollY = v.maxScrollY()
}

// Render returns the visible window, padded to the viewport height and
// followed by a position line when the content overflows.
func (v *Viewport) Render() string {
	end := min(v.scrollY+v.height, len(v.content))
	visible := make([]string, 0, v.height)
	for _, line := range v.content[v.scrollY:end] {
		if v.scrollX > 0 {
			line = ansi.Cut(line, v.scrollX, v.scrollX+v.width)
		}
		visible = append(visible, ansi.Truncate(line, v.width, ""))
	}
	for len(visible) < v.height {
		visible = append(visible, "")
	}

	out := strings.Join(visible, "\n")
	if ind := v.indicator(); ind != "" {
		out += "\n" + ind
	}
	return out
}

func (v *Viewport) clamp() {
	v.scrollY = min(max(v.scrollY, 0), v.maxScrollY())
}

func (v *Viewport) maxScrollY() int {
	return max(len(v.content)-v.height, 0)
}

func (v *Viewport) widest() int {
	w := 0
	for _, l := range v.content {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

func (v *Viewport) indicator() string {
	total := len(v.content)
	if total <= v.height {
		return ""
	}
	pct := v.scrollY * 100 / v.maxScrollY()
	label := " " + strconv.Itoa(pct) + "% (" + strconv.Itoa(v.scrollY+1) + "/" + strconv.Itoa(total) + ")"
	rule := strings.Repeat("─", max(v.width-ansi.StringWidth(label), 0))
	return StyleDimmed.Render(rule + label)
}
