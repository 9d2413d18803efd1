package notes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	checkpointsscreen "github.com/abhisek/feynman/internal/screens/checkpoints"
	"github.com/abhisek/feynman/internal/session"
	"github.com/abhisek/feynman/internal/ui/components"
	"github.com/abhisek/feynman/internal/ui/layout"
	"github.com/abhisek/feynman/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var tips = []string{
	"Write in your own words",
	"Include key concepts and examples",
	"Don't worry about perfect formatting",
	"Focus on understanding, not memorization",
}

// processedMsg ends the processing phase started by submission gen.
type processedMsg struct {
	gen int
}

type spinnerTickMsg struct {
	gen int
}

// NotesScreen collects the learner's notes.
type NotesScreen struct {
	deps       screens.Deps
	input      components.TextArea
	processing bool
	gen        int
	frame      int
	errMsg     string
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)
var _ screen.EscapeCapturer = (*NotesScreen)(nil)

// New creates a NotesScreen.
func New(deps screens.Deps) *NotesScreen {
	limit := deps.Session.MaxNotesChars
	if limit <= 0 {
		limit = session.DefaultMaxNotesChars
	}
	return &NotesScreen{
		deps:  deps,
		input: components.NewTextArea("Add your notes...", limit),
	}
}

func (s *NotesScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *NotesScreen) Title() string {
	return "Notes"
}

// CapturesEscape cancels processing, or returns home after resetting the
// session.
func (s *NotesScreen) CapturesEscape() bool {
	return true
}

func (s *NotesScreen) KeyHints() []layout.KeyHint {
	if s.processing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Done"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+T", Description: "Theme"},
	}
}

func (s *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case processedMsg:
		return s.handleProcessed(msg)

	case spinnerTickMsg:
		if !s.processing || msg.gen != s.gen {
			return s, nil
		}
		s.frame++
		return s, s.spin()

	case tea.KeyMsg:
		if s.processing {
			if msg.String() == "esc" {
				s.processing = false
				s.gen++
				s.deps.Session.StartNotes()
			}
			return s, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return s.submit()
		case "esc":
			s.deps.Session.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.processing {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.errMsg != "" && strings.TrimSpace(s.input.Value()) != "" {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *NotesScreen) submit() (screen.Screen, tea.Cmd) {
	notes := s.input.Value()
	if err := s.deps.Session.BeginProcessing(notes); err != nil {
		switch {
		case errors.Is(err, session.ErrBlankNotes):
			s.errMsg = "Add some notes first."
		case errors.Is(err, session.ErrNotesTooLong):
			s.errMsg = fmt.Sprintf("Notes are limited to %d characters.", s.input.Limit)
		default:
			s.errMsg = err.Error()
		}
		return s, nil
	}

	s.errMsg = ""
	s.processing = true
	s.gen++
	s.frame = 0
	s.deps.Log().Info("notes submitted", "chars", len([]rune(notes)))

	gen := s.gen
	var done tea.Cmd = func() tea.Msg { return processedMsg{gen: gen} }
	if d := s.deps.ProcessingDelay; d > 0 {
		done = tea.Tick(d, func(time.Time) tea.Msg { return processedMsg{gen: gen} })
	}
	return s, tea.Batch(done, s.spin())
}

func (s *NotesScreen) spin() tea.Cmd {
	gen := s.gen
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{gen: gen}
	})
}

func (s *NotesScreen) handleProcessed(msg processedMsg) (screen.Screen, tea.Cmd) {
	if !s.processing || msg.gen != s.gen {
		return s, nil
	}
	s.processing = false

	st := s.deps.Session
	if err := st.SubmitNotes(s.input.Value()); err != nil {
		s.errMsg = err.Error()
		st.StartNotes()
		return s, nil
	}
	s.deps.Log().Info("checkpoints generated", "count", len(st.Checkpoints))

	next := checkpointsscreen.New(s.deps)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *NotesScreen) View(width, height int) string {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Your Notes"))
	b.WriteString("\n\n")

	if s.processing {
		spinner := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[s.frame%len(spinnerFrames)])
		msg := lipgloss.NewStyle().Foreground(theme.Text).Render(
			" Great notes! Let me break this down into learning checkpoints for you...")
		b.WriteString(theme.Card.Width(cw).Render(spinner + msg))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	inputHeight := height - 14
	if inputHeight < 3 {
		inputHeight = 3
	}
	s.input.SetSize(cw-4, inputHeight)
	b.WriteString(theme.Card.Width(cw).Render(s.input.View()))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Tips for better learning:"))
	for _, tip := range tips {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("• " + tip))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}
