package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/ui/theme"
)

// ProgressBar shows done out of total as a bar followed by "done/total pct%".
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar of the given overall width.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{Label: label, Done: done, Total: total, Width: width}
}

// Percent returns the completion percentage rounded half up. An empty bar
// is 0%.
func (p ProgressBar) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	done := min(max(p.Done, 0), p.Total)
	return (done*100 + p.Total/2) / p.Total
}

func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	suffix := fmt.Sprintf("  %d/%d  %d%%", max(p.Done, 0), max(p.Total, 0), p.Percent())

	barWidth := p.Width - lipgloss.Width(label) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Percent() / 100
	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
