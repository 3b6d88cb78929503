package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// DrawBar draws a bar graph of width cells on a 0 to 100 range, after a label padded to
// labelWidth cells.
func DrawBar(b Bar, labelWidth, width int) string {
	p := min(max(b.Percent, 0), 100)
	filled := (p*width + 50) / 100
	return fmt.Sprintf("%s %s%s %3d%%",
		labelStyle.Render(runewidth.FillRight(b.Label, labelWidth)),
		filledStyle.Render(strings.Repeat("█", filled)),
		emptyStyle.Render(strings.Repeat("░", width-filled)),
		p,
	)
}

// DrawBars draws one bar per line, labels aligned.
func DrawBars(bars []Bar, width int) string {
	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, runewidth.StringWidth(b.Label))
	}
	var sb strings.Builder
	for _, b := range bars {
		sb.WriteString(DrawBar(b, labelWidth, width))
		sb.WriteString("\n")
	}
	return sb.String()
}
