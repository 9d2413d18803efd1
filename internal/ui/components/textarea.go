package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for multi-line notes with a character
// counter.
type TextArea struct {
	Model textarea.Model
	Limit int
}

// NewTextArea creates a focused text area whose counter reports usage
// against limit. Input past the limit is kept so the caller can reject it.
func NewTextArea(placeholder string, limit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	return TextArea{Model: ta, Limit: limit}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetSize resizes the editing area.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// View renders the area and its counter.
func (t TextArea) View() string {
	color := theme.TextDim
	if t.OverLimit() {
		color = theme.Error
	}
	counter := lipgloss.NewStyle().Foreground(color).Render(t.Counter())
	return t.Model.View() + "\n" + counter
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}

// Counter renders "used/limit characters".
func (t TextArea) Counter() string {
	return fmt.Sprintf("%d/%d characters", utf8.RuneCountInString(t.Model.Value()), t.Limit)
}

// OverLimit reports whether the text is longer than the limit.
func (t TextArea) OverLimit() bool {
	return t.Limit > 0 && utf8.RuneCountInString(t.Model.Value()) > t.Limit
}
