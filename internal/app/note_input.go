package app

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"notepad/internal/types"
)

const noteInputCharLimit = 500

// NoteInput is the single-line form field notes are typed into.
type NoteInput struct {
	input textinput.Model
}

func NewNoteInput(width int, placeholder string) *NoteInput {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.CharLimit = noteInputCharLimit
	n := &NoteInput{input: input}
	n.Resize(width)
	return n
}

func (n *NoteInput) Resize(width int) {
	// prompt, trailing cursor cell and one spare column
	n.input.SetWidth(max(1, width-4))
}

func (n *NoteInput) Focus() tea.Cmd {
	return n.input.Focus()
}

func (n *NoteInput) Blur() {
	n.input.Blur()
}

func (n *NoteInput) Focused() bool {
	return n.input.Focused()
}

func (n *NoteInput) SetValue(value string) {
	n.input.SetValue(value)
	n.input.CursorEnd()
}

func (n *NoteInput) Value() string {
	return n.input.Value()
}

func (n *NoteInput) Clear() {
	n.input.SetValue("")
}

// Apply performs the input side of a store effect.
func (n *NoteInput) Apply(effect types.Effect) tea.Cmd {
	if effect.ClearInput {
		n.Clear()
	}
	if effect.HasSetInput {
		n.SetValue(effect.SetInput)
	}
	if effect.FocusInput {
		return n.Focus()
	}
	return nil
}

func (n *NoteInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd
}

func (n *NoteInput) View() string {
	return n.input.View()
}
