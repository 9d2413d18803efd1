package feedback

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/mastery"
	"github.com/abhisek/feynman/internal/ui/layout"
	"github.com/abhisek/feynman/internal/ui/theme"
)

const panelWidth = 30

func (s *FeedbackScreen) View(width, height int) string {
	report := s.deps.Session.Understanding()

	var body string
	if layout.IsCompactWidth(width) {
		editor := s.renderEditor(width - 4)
		body = lipgloss.JoinVertical(lipgloss.Left, editor, "", s.renderUnderstanding(report, width-4))
	} else {
		editor := s.renderEditor(width - panelWidth - 8)
		body = lipgloss.JoinHorizontal(lipgloss.Top, editor, "  ", s.renderUnderstanding(report, panelWidth))
	}

	lines := strings.Split(body, "\n")
	if len(lines) > height && height > 0 {
		start := s.scrollStart(height)
		lines = lines[start:min(start+height, len(lines))]
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

// scrollStart keeps the cursor row roughly in view. Each checkpoint adds a
// heading and a blank line on top of its rows.
func (s *FeedbackScreen) scrollStart(height int) int {
	line := 2
	if r, ok := s.current(); ok {
		line += s.cursor + r.cp*2
	}
	start := line - height/2
	if start < 0 {
		start = 0
	}
	return start
}

func (s *FeedbackScreen) renderEditor(w int) string {
	if w < 20 {
		w = 20
	}
	st := s.deps.Session
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Feedback Criteria"))
	b.WriteString("\n\n")

	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("No checkpoints. Press A to add one."))
		return b.String()
	}

	prevCP := -1
	for i, r := range s.rows {
		if r.cp != prevCP {
			if prevCP >= 0 {
				b.WriteString("\n")
			}
			mark := "[ ]"
			if st.Accepted.Has(r.cp) {
				mark = theme.Done.Render("[✓]")
			}
			b.WriteString(heading.Render(fmt.Sprintf("%s Checkpoint %d", mark, r.cp+1)))
			b.WriteString("\n")
			prevCP = r.cp
		}

		name := r.label()
		if r.kind == rowCriterion {
			name = fmt.Sprintf("  %d.", r.crit+1)
		}

		var line string
		switch {
		case i == s.cursor && s.editing:
			line = s.input.View() + dim.Render("  "+s.input.Counter())
		case r.value(st.Feedback) == "":
			line = label.Render(name) + " " + dim.Render("(empty)")
		default:
			line = label.Render(name) + " " + truncate(r.value(st.Feedback), w-len(name)-6)
		}

		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		if s.failed {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.notice))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(s.notice))
		}
	}
	return b.String()
}

func (s *FeedbackScreen) renderUnderstanding(r mastery.Report, w int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Understanding"))
	b.WriteString("\n\n")
	for _, cp := range r.PerCheckpoint {
		level := levelStyle(cp.Level).Render(fmt.Sprintf("%-10s", cp.Level))
		b.WriteString(fmt.Sprintf("%-4s %s %3d%%\n", fmt.Sprintf("#%d", cp.Index+1), level, cp.Score))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Overall"))
	b.WriteString("\n")
	b.WriteString(levelStyle(r.OverallLevel).Render(string(r.OverallLevel)))
	b.WriteString(fmt.Sprintf(" %d%%", r.OverallScore))

	return theme.Card.Width(w).Render(b.String())
}

func levelStyle(l mastery.Level) lipgloss.Style {
	switch l {
	case mastery.LevelMastered:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case mastery.LevelProficient:
		return lipgloss.NewStyle().Foreground(theme.Primary)
	case mastery.LevelEmerging:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
