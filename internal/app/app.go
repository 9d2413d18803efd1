package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/logging"
	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/screens/home"
	"github.com/abhisek/feynman/internal/screens/welcome"
	"github.com/abhisek/feynman/internal/session"
	"github.com/abhisek/feynman/internal/store"
	"github.com/abhisek/feynman/internal/ui/layout"
	"github.com/abhisek/feynman/internal/ui/theme"
)

const prefsTimeout = 2 * time.Second

// Options configures the TUI.
type Options struct {
	Session         *session.State
	Logger          *logging.Logger
	Prefs           store.PrefsRepo
	ProcessingDelay time.Duration

	// SaveModel persists the feedback model. Nil disables saving.
	SaveModel func(feedback.Model) error

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prefs  store.PrefsRepo
	logger *logging.Logger
	width  int
	height int
}

// newAppModel creates an AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Session == nil {
		opts.Session = session.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	deps := screens.Deps{
		Session:         opts.Session,
		Logger:          opts.Logger,
		ProcessingDelay: opts.ProcessingDelay,
		SaveModel:       opts.SaveModel,
	}
	homeFactory := func() screen.Screen { return home.New(deps) }

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		prefs:  opts.Prefs,
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ToggleThemeMsg:
		return m, m.toggleTheme()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, m.toggleTheme()
		case "esc":
			if capturesEscape(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func capturesEscape(s screen.Screen) bool {
	ec, ok := s.(screen.EscapeCapturer)
	return ok && ec.CapturesEscape()
}

// toggleTheme switches the palette now and persists the choice in the
// background.
func (m AppModel) toggleTheme() tea.Cmd {
	mode := theme.Toggle()
	m.logger.Debug("theme toggled", "mode", mode)
	if m.prefs == nil {
		return nil
	}
	prefs, logger := m.prefs, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), prefsTimeout)
		defer cancel()
		if err := prefs.SetTheme(ctx, string(mode)); err != nil {
			logger.Warn("persist theme failed", "mode", mode, "error", err)
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the current frame, or "" before the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(m.breadcrumb(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// breadcrumb shows the active screen's title after its parent's.
func (m AppModel) breadcrumb() string {
	titles := m.router.Titles()
	if len(titles) > 2 {
		titles = titles[len(titles)-2:]
	}
	return strings.Join(titles, " › ")
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// LoadTheme applies the stored theme, falling back to light.
func LoadTheme(ctx context.Context, prefs store.PrefsRepo) theme.Mode {
	if prefs == nil {
		theme.Apply(theme.Light)
		return theme.Light
	}
	name, err := prefs.Theme(ctx)
	if err != nil {
		name = store.ThemeLight
	}
	mode := theme.ParseMode(name)
	theme.Apply(mode)
	return mode
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	mode := LoadTheme(ctx, opts.Prefs)
	opts.Logger.Info("tui starting", "theme", mode)

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	opts.Logger.Info("tui stopped")
	return nil
}
