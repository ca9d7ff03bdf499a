package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"

	"github.com/volnita/volnita/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	columnGap     = 2
)

// table draws a header row plus a window of data rows, highlighting one.
type table struct {
	thm      *theme.Theme
	headers  []string
	weights  []int
	rows     [][]string
	start    int
	selected int // absolute row index, -1 = none
	width    int
}

// fitCell truncates s to width cells and pads it on the right.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// columnWidths splits total across the weights, giving rounding leftovers to
// the last column.
func columnWidths(total int, weights []int) []int {
	widths := make([]int, len(weights))
	if len(weights) == 0 {
		return widths
	}
	avail := total - columnGap*(len(weights)-1)
	if avail < len(weights) {
		avail = len(weights)
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	used := 0
	for i, w := range weights {
		widths[i] = avail * w / sum
		used += widths[i]
	}
	widths[len(widths)-1] += avail - used
	return widths
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fitCell(c, widths[i])
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}

func (t table) View() string {
	inner := t.width - 2
	widths := columnWidths(inner, t.weights)

	headerStyle := lipgloss.NewStyle().
		Foreground(t.thm.Accent).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.thm.BorderDim)
	rowStyle := lipgloss.NewStyle().
		Foreground(t.thm.TextFg).
		Padding(0, 1)
	selectedStyle := lipgloss.NewStyle().
		Background(t.thm.Accent).
		Foreground(t.thm.AccentFg).
		Bold(true).
		Padding(0, 1)

	lines := []string{headerStyle.Render(joinCells(t.headers, widths))}
	for i, row := range t.rows {
		line := joinCells(row, widths)
		if t.start+i == t.selected {
			lines = append(lines, selectedStyle.Render(ansi.Strip(line)))
			continue
		}
		lines = append(lines, rowStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

func emptyView(thm *theme.Theme, text string) string {
	return lipgloss.NewStyle().
		Foreground(thm.MutedFg).
		Italic(true).
		Padding(0, 1).
		Render(text)
}

func titleView(thm *theme.Theme, title, subtitle string, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(thm.MutedFg)
	line := titleStyle.Render(title)
	if subtitle != "" {
		line += "  " + subStyle.Render(subtitle)
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(width).Render(line)
}

// noticeView renders a one-off message wrapped to width.
func noticeView(thm *theme.Theme, text string, isErr bool, width int) string {
	if text == "" {
		return ""
	}
	fg := thm.SuccessFg
	if isErr {
		fg = thm.ErrorFg
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Padding(0, 1).
		Render(wrap.String(text, max(width-2, 10)))
}

func footerView(thm *theme.Theme, text string, width int) string {
	return lipgloss.NewStyle().
		Foreground(thm.MutedFg).
		Align(lipgloss.Right).
		Width(width).
		Render(text)
}
