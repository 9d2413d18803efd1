package app

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/store"
	"github.com/abhisek/feynman/internal/ui/theme"
)

// memPrefs implements store.PrefsRepo in memory.
type memPrefs struct {
	mu   sync.Mutex
	vals map[string]string
}

func newMemPrefs() *memPrefs {
	return &memPrefs{vals: map[string]string{}}
}

func (m *memPrefs) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *memPrefs) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *memPrefs) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}

func (m *memPrefs) All(context.Context) ([]store.Preference, error) {
	return nil, nil
}

func (m *memPrefs) Theme(ctx context.Context) (string, error) {
	v, ok, _ := m.Get(ctx, store.KeyTheme)
	if !ok {
		return store.ThemeLight, nil
	}
	return v, nil
}

func (m *memPrefs) SetTheme(ctx context.Context, name string) error {
	return m.Set(ctx, store.KeyTheme, name)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// drive feeds msg and any router messages it produces back into m.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	m, cmd := update(t, m, msg)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
			m, cmd = update(t, m, out)
		default:
			return m
		}
	}
	return m
}

func TestWelcomeTransitionsToHome(t *testing.T) {
	m := newAppModel(Options{})
	assert.Equal(t, "", m.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

// stubScreen is a bare screen that does not capture escape.
type stubScreen struct{ updates int }

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub" }
func (s *stubScreen) Title() string        { return "Stub" }

func TestEscapePopsNonCapturingScreen(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	stub := &stubScreen{}
	m.router.Push(stub)

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Zero(t, stub.updates)

	// escape at the root is a no-op
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestNotesEscapeReturnsHome(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "Notes", m.router.Active().Title())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "Home", m.router.Active().Title())
}

func TestEscapeForwardedToCapturingScreen(t *testing.T) {
	opts := Options{SkipWelcome: true}
	m := newAppModel(opts)

	// home -> refine checkpoints
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "Feedback", m.router.Active().Title())

	// the feedback screen pops itself after updating the session step
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "Home", m.router.Active().Title())
}

func TestToggleThemePersists(t *testing.T) {
	t.Cleanup(func() { theme.Apply(theme.Light) })
	theme.Apply(theme.Light)
	prefs := newMemPrefs()
	m := newAppModel(Options{SkipWelcome: true, Prefs: prefs})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	assert.Equal(t, theme.Dark, theme.Current())
	require.NotNil(t, cmd)
	cmd()

	v, ok, _ := prefs.Get(context.Background(), store.KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, store.ThemeDark, v)
}

func TestToggleThemeFromMenu(t *testing.T) {
	t.Cleanup(func() { theme.Apply(theme.Light) })
	theme.Apply(theme.Dark)
	m := newAppModel(Options{SkipWelcome: true})

	for range 2 {
		m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = update(t, m, cmd())

	assert.Nil(t, cmd)
	assert.Equal(t, theme.Light, theme.Current())
}

func TestLoadTheme(t *testing.T) {
	t.Cleanup(func() { theme.Apply(theme.Light) })
	ctx := context.Background()

	assert.Equal(t, theme.Light, LoadTheme(ctx, nil))

	prefs := newMemPrefs()
	require.NoError(t, prefs.SetTheme(ctx, store.ThemeDark))
	assert.Equal(t, theme.Dark, LoadTheme(ctx, prefs))
	assert.Equal(t, theme.Dark, theme.Current())
}

func TestView(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})

	assert.Empty(t, m.render())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "bigger window")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	content := m.render()
	for _, want := range []string{"Feynman", "Home", "Start learning", "Ctrl+T"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	assert.Equal(t, "Home", m.breadcrumb())

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "Home › Notes", m.breadcrumb())

	m.router.Push(&stubScreen{})
	m.router.Push(&stubScreen{})
	assert.Equal(t, "Stub › Stub", m.breadcrumb())
}
