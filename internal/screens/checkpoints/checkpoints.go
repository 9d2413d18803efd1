package checkpoints

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/screens/explanation"
	feedbackscreen "github.com/abhisek/feynman/internal/screens/feedback"
	"github.com/abhisek/feynman/internal/ui/components"
	"github.com/abhisek/feynman/internal/ui/layout"
	"github.com/abhisek/feynman/internal/ui/theme"
)

// CheckpointsScreen lists the generated checkpoints for self-assessment.
type CheckpointsScreen struct {
	deps   screens.Deps
	cursor int
}

var _ screen.Screen = (*CheckpointsScreen)(nil)
var _ screen.KeyHintProvider = (*CheckpointsScreen)(nil)
var _ screen.StatusProvider = (*CheckpointsScreen)(nil)
var _ screen.EscapeCapturer = (*CheckpointsScreen)(nil)

// New creates a CheckpointsScreen over the session's checkpoints.
func New(deps screens.Deps) *CheckpointsScreen {
	return &CheckpointsScreen{deps: deps}
}

func (s *CheckpointsScreen) Init() tea.Cmd {
	return nil
}

func (s *CheckpointsScreen) Title() string {
	return "Learning Checkpoints"
}

// CapturesEscape returns to the notes step before leaving.
func (s *CheckpointsScreen) CapturesEscape() bool {
	return true
}

func (s *CheckpointsScreen) Status() string {
	completed, total := s.deps.Session.Progress()
	return fmt.Sprintf("%d of %d completed", completed, total)
}

func (s *CheckpointsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Done"},
		{Key: "?", Description: "I don't know"},
		{Key: "F", Description: "Feedback"},
		{Key: "N", Description: "New session"},
		{Key: "Esc", Description: "Notes"},
	}
}

func (s *CheckpointsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	st := s.deps.Session
	n := len(st.Checkpoints)

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < n-1 {
			s.cursor++
		}
	case "space", " ", "x":
		if id, ok := s.selected(); ok {
			st.ToggleCompleted(id)
		}
	case "?", "d":
		id, ok := s.selected()
		if !ok || !st.DontKnow(id) {
			return s, nil
		}
		s.deps.Log().Info("explanation requested", "checkpoint", id)
		next := explanation.New(s.deps)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "f":
		st.OpenFeedback()
		next := feedbackscreen.New(s.deps)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "esc":
		st.StartNotes()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n":
		st.Reset()
		s.deps.Log().Info("session reset")
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *CheckpointsScreen) selected() (int, bool) {
	cps := s.deps.Session.Checkpoints
	if s.cursor < 0 || s.cursor >= len(cps) {
		return 0, false
	}
	return cps[s.cursor].ID, true
}

func (s *CheckpointsScreen) View(width, height int) string {
	st := s.deps.Session
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	var b strings.Builder

	completed, total := st.Progress()
	b.WriteString(components.NewProgressBar("Progress", completed, total, cw).View())
	b.WriteString("\n")
	if st.AllCompleted() {
		b.WriteString(theme.Done.Render("★ All checkpoints completed! You've mastered this topic."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your Learning Path"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Mark each checkpoint as you understand it"))
	b.WriteString("\n\n")

	for i, cp := range st.Checkpoints {
		box := "[ ]"
		titleStyle := theme.Unselected
		if cp.Completed {
			box = "[✓]"
			titleStyle = theme.Done
		}

		prefix := "  "
		if i == s.cursor {
			prefix = theme.Selected.Render("▸ ")
			if !cp.Completed {
				titleStyle = theme.Selected
			}
		}

		line := prefix + titleStyle.Render(fmt.Sprintf("%s %d. %s", box, cp.ID, cp.Title))
		if cp.ExplanationRequested {
			line += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("(explained)")
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw - 8).
			PaddingLeft(8).
			Render(cp.Description))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
