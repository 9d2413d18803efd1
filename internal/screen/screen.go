package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/feynman/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeCapturer is implemented by screens that handle Esc themselves,
// e.g. to cancel an inline edit, instead of letting the app navigate back.
type EscapeCapturer interface {
	CapturesEscape() bool
}

// StatusProvider is implemented by screens that show a status string on
// the right side of the header.
type StatusProvider interface {
	Status() string
}

// ToggleThemeMsg asks the app to switch between dark and light themes.
type ToggleThemeMsg struct{}

// ToggleTheme is a command emitting ToggleThemeMsg.
func ToggleTheme() tea.Msg {
	return ToggleThemeMsg{}
}
