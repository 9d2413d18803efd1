package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for single-line field editing.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new focused text input. A limit of 0 means no limit.
func NewTextInput(label, placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label != "" {
		view = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Label+": ") + view
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Counter renders "used/limit", or just the count without a limit.
func (t TextInput) Counter() string {
	n := len([]rune(t.Model.Value()))
	if t.Model.CharLimit > 0 {
		return fmt.Sprintf("%d/%d", n, t.Model.CharLimit)
	}
	return fmt.Sprintf("%d", n)
}
