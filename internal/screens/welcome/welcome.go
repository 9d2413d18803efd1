package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	litAt        = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	// runesPerTick is how fast the quote is typed out.
	runesPerTick = 6
	// autoAdvance moves on to the home screen without a key press.
	autoAdvance = 6 * time.Second
)

const quote = "If you can't explain it simply, you don't understand it well enough."

const bulbArt = `    .-"""-.
   /       \
  |  (   )  |
   \  \ /  /
    |  |  |
    '-===-'
     '---'`

var glowFrames = []string{"✦", "✧"}

type tickMsg time.Time

type phase int

const (
	phaseDark phase = iota
	phaseLit
	phaseBanner
)

// WelcomeScreen lights up a bulb, types out the quote, then hands over to
// the home screen on a key press or after autoAdvance.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= autoAdvance {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) phase() phase {
	switch {
	case w.elapsed >= bannerAt:
		return phaseBanner
	case w.elapsed >= litAt:
		return phaseLit
	default:
		return phaseDark
	}
}

// typed returns the part of the quote revealed so far.
func (w *WelcomeScreen) typed() string {
	if w.phase() < phaseBanner {
		return ""
	}
	n := int((w.elapsed-bannerAt)/tickInterval+1) * runesPerTick
	r := []rune(quote)
	if n >= len(r) {
		return quote
	}
	return string(r[:n])
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string
	p := w.phase()

	bulb := lipgloss.NewStyle().Foreground(theme.TextDim).Render(bulbArt)
	if p >= phaseLit {
		bulb = w.glow(lipgloss.NewStyle().Foreground(theme.Accent).Render(bulbArt))
	}
	sections = append(sections, bulb)

	if p == phaseBanner {
		typed := w.typed()
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(typed)
		if typed != quote {
			tagline += lipgloss.NewStyle().Foreground(theme.Primary).Render("▌")
		}
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// glow decorates two rows of the lit bulb with alternating sparkles.
func (w *WelcomeScreen) glow(rendered string) string {
	g := glowFrames[w.tickCount%len(glowFrames)]
	g1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(g)
	g2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(g)

	lines := strings.Split(rendered, "\n")
	if len(lines) > 3 {
		lines[1] = g1 + "  " + lines[1] + "  " + g2
		lines[3] = g2 + "  " + lines[3] + "  " + g1
	}
	return strings.Join(lines, "\n")
}
