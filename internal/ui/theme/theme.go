package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode is a named color scheme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Palette holds the colors for one Mode.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

var palettes = map[Mode]Palette{
	Dark: {
		Primary:   lipgloss.Color("#34D399"), // Emerald
		Secondary: lipgloss.Color("#2DD4BF"), // Teal
		Accent:    lipgloss.Color("#FBBF24"), // Amber
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		Bg:        lipgloss.Color("#0F172A"), // Deep Navy
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	},
	Light: {
		Primary:   lipgloss.Color("#047857"), // Deep Emerald
		Secondary: lipgloss.Color("#0F766E"), // Deep Teal
		Accent:    lipgloss.Color("#C2410C"), // Burnt Orange
		Success:   lipgloss.Color("#15803D"), // Green
		Error:     lipgloss.Color("#BE123C"), // Rose
		Text:      lipgloss.Color("#1E293B"), // Slate 800
		TextDim:   lipgloss.Color("#64748B"), // Slate 500
		Bg:        lipgloss.Color("#FFFBEB"), // Amber 50
		BgCard:    lipgloss.Color("#FEF3C7"), // Amber 100
		Border:    lipgloss.Color("#FCD34D"), // Amber 300
	},
}

// Active colors. Apply swaps them.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Done       lipgloss.Style
	Warning    lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
)

var current = Light

func init() {
	Apply(Light)
}

// Current returns the active mode.
func Current() Mode {
	return current
}

// ParseMode maps a stored name to a Mode, defaulting to Light.
func ParseMode(s string) Mode {
	if Mode(s) == Dark {
		return Dark
	}
	return Light
}

// Toggle switches between Dark and Light and returns the new mode.
func Toggle() Mode {
	if current == Dark {
		Apply(Light)
	} else {
		Apply(Dark)
	}
	return current
}

// Apply activates mode m. Unknown modes fall back to Light.
func Apply(m Mode) {
	p, ok := palettes[m]
	if !ok {
		m, p = Light, palettes[Light]
	}
	current = m

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)
}
