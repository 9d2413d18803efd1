package explanation

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/lessons"
	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/ui/layout"
	"github.com/abhisek/feynman/internal/ui/theme"
)

// ExplanationScreen shows a simplified explanation for the checkpoint the
// learner could not explain.
type ExplanationScreen struct {
	deps       screens.Deps
	checkpoint checkpoints.Checkpoint
	content    lessons.ExplanationContent
	found      bool
	offset     int
}

var _ screen.Screen = (*ExplanationScreen)(nil)
var _ screen.KeyHintProvider = (*ExplanationScreen)(nil)
var _ screen.EscapeCapturer = (*ExplanationScreen)(nil)

// New builds the explanation for the session's current checkpoint.
func New(deps screens.Deps) *ExplanationScreen {
	s := &ExplanationScreen{deps: deps}
	s.checkpoint, s.found = deps.Session.CurrentCheckpoint()
	if s.found {
		s.content = lessons.Generate(s.checkpoint, deps.Session.Notes)
	}
	return s
}

func (s *ExplanationScreen) Init() tea.Cmd {
	return nil
}

func (s *ExplanationScreen) Title() string {
	return "Explanation"
}

// CapturesEscape returns to the checkpoints step before leaving.
func (s *ExplanationScreen) CapturesEscape() bool {
	return true
}

func (s *ExplanationScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "I understand now"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExplanationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "enter":
		if s.deps.Session.Understood() {
			s.deps.Log().Info("checkpoint understood", "checkpoint", s.checkpoint.ID)
		}
		return s, pop
	case "esc":
		s.deps.Session.BackToCheckpoints()
		return s, pop
	}
	return s, nil
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}

func (s *ExplanationScreen) View(width, height int) string {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	if !s.found {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No checkpoint selected."))
	}

	lines := strings.Split(s.render(cw), "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines[s.offset:end], "\n"))
}

func (s *ExplanationScreen) render(cw int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.checkpoint.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(s.checkpoint.Description))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("Simplified Explanation"))
	b.WriteString("\n")
	for i, sentence := range s.content.SimplifiedExplanation {
		b.WriteString(body.Render(fmt.Sprintf("%d. %s", i+1, sentence)))
		b.WriteString("\n")
	}

	if len(s.content.KeyConcepts) > 0 {
		b.WriteString("\n")
		b.WriteString(heading.Render("Key Concepts"))
		b.WriteString("\n")
		for _, kc := range s.content.KeyConcepts {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(kc.Term))
			b.WriteString("\n")
			b.WriteString(body.Render(kc.Definition))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(heading.Render("Analogies & Examples"))
	b.WriteString("\n")
	for _, ill := range s.content.AnalogiesAndExamples {
		label := "Analogy"
		if ill.Type == lessons.TypeExample {
			label = "Example"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label))
		b.WriteString("\n")
		b.WriteString(body.Render(ill.Content))
		b.WriteString("\n")
		b.WriteString(dim.Render(ill.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}
