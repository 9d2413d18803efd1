package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	feedbackscreen "github.com/abhisek/feynman/internal/screens/feedback"
	"github.com/abhisek/feynman/internal/screens/notes"
	"github.com/abhisek/feynman/internal/ui/components"
	"github.com/abhisek/feynman/internal/ui/layout"
)

// HomeScreen is the landing menu.
type HomeScreen struct {
	deps screens.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screens.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	items := []components.MenuItem{
		{Label: "Start learning", Hint: "Write notes and turn them into checkpoints", Action: h.startLearning},
		{Label: "Refine checkpoints", Hint: "Edit criteria and score your answers", Action: h.openFeedback},
		{Label: "Toggle theme", Hint: "Switch between light and dark", Action: func() tea.Cmd { return screen.ToggleTheme }},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startLearning() tea.Cmd {
	h.deps.Session.Reset()
	h.deps.Session.StartNotes()
	h.deps.Log().Info("session started")
	s := notes.New(h.deps)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) openFeedback() tea.Cmd {
	h.deps.Session.OpenFeedback()
	s := feedbackscreen.New(h.deps)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		renderSteps(cw, compact),
		renderMenu(h.menu, cw),
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-4", Description: "Jump"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
