package app

import (
	tea "charm.land/bubbletea/v2"
)

// noteInputController routes keys while the note field has focus. Keys it
// does not claim are forwarded to the text input.
type noteInputController struct {
	input             *NoteInput
	keyMatchesCommand func(tea.KeyMsg, string, string) bool
	onSubmit          func(text string) tea.Cmd
	onBlur            func() tea.Cmd
	onClear           func() tea.Cmd
}

func (c noteInputController) Update(msg tea.Msg) (bool, tea.Cmd) {
	if c.input == nil {
		return false, nil
	}
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return true, c.input.Update(msg)
	}
	if c.matchesCommand(keyMsg, KeyCommandInputBlur, "esc") {
		if c.onBlur != nil {
			return true, c.onBlur()
		}
		return true, nil
	}
	if c.matchesCommand(keyMsg, KeyCommandInputSubmit, "enter") {
		if c.onSubmit != nil {
			return true, c.onSubmit(c.input.Value())
		}
		return true, nil
	}
	if c.matchesCommand(keyMsg, KeyCommandInputClear, "ctrl+u") {
		if c.onClear != nil {
			return true, c.onClear()
		}
		c.input.Clear()
		return true, nil
	}
	return true, c.input.Update(msg)
}

func (c noteInputController) matchesCommand(msg tea.KeyMsg, command, fallback string) bool {
	if c.keyMatchesCommand != nil {
		return c.keyMatchesCommand(msg, command, fallback)
	}
	return msg.String() == fallback
}
