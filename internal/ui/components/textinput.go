package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/smartlearn/smartlearn/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with SmartLearn styling, used for
// question entry in the ask flow.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewTextInput creates a focused, styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{Model: ti, MaxWidth: maxWidth}
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

// View renders the text input with a hint line.
func (t TextInput) View() string {
	return t.Model.View() + "\n" + theme.Hint.Render("enter to submit, esc to cancel")
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
