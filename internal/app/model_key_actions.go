package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"notepad/internal/logging"
)

func (m *Model) reduceKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.keyMatchesCommand(msg, KeyCommandToggleFocus, "tab") {
		return m.toggleFocus()
	}
	if m.focus == focusInput {
		_, cmd := m.noteInputController().Update(msg)
		return cmd
	}
	if handled, cmd := m.reduceListKey(msg); handled {
		return cmd
	}
	return nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focusListPane()
		return nil
	}
	return m.focusInputField()
}

func (m *Model) noteInputController() noteInputController {
	return noteInputController{
		input:             m.input,
		keyMatchesCommand: m.keyMatchesCommand,
		onSubmit:          m.submitInput,
		onBlur: func() tea.Cmd {
			m.focusListPane()
			return nil
		},
	}
}

func (m *Model) submitInput(text string) tea.Cmd {
	cmd := m.applyEffect(m.store.SubmitText(text))
	m.reportAction()
	m.resize(m.width, m.height)
	return cmd
}

type listCommand struct {
	command  string
	fallback string
}

var listCommands = []listCommand{
	{KeyCommandQuit, "q"},
	{KeyCommandFocusInput, "i"},
	{KeyCommandMoveUp, "k"},
	{KeyCommandMoveDown, "j"},
	{KeyCommandEditNote, "e"},
	{KeyCommandDisableNote, "d"},
	{KeyCommandCopyNote, "y"},
	{KeyCommandTogglePreview, "p"},
	{KeyCommandToggleActivity, "l"},
}

// listCommandFor resolves msg to a list command. Explicit overrides win over
// another command's default key.
func (m *Model) listCommandFor(msg tea.KeyMsg) string {
	for _, c := range listCommands {
		if m.keyMatchesOverriddenCommand(msg, c.command, c.fallback) {
			return c.command
		}
	}
	for _, c := range listCommands {
		if m.keyMatchesCommand(msg, c.command, c.fallback) {
			return c.command
		}
	}
	switch msg.String() {
	case "up":
		return KeyCommandMoveUp
	case "down":
		return KeyCommandMoveDown
	}
	return ""
}

func (m *Model) reduceListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.listCommandFor(msg) {
	case KeyCommandQuit:
		m.quitting = true
		return true, tea.Quit
	case KeyCommandFocusInput:
		return true, m.focusInputField()
	case KeyCommandMoveUp:
		m.moveSelection(-1)
		return true, nil
	case KeyCommandMoveDown:
		m.moveSelection(1)
		return true, nil
	case KeyCommandEditNote:
		return true, m.editSelected()
	case KeyCommandDisableNote:
		return true, m.disableSelected()
	case KeyCommandCopyNote:
		m.copySelected()
		return true, nil
	case KeyCommandTogglePreview:
		m.togglePreview()
		return true, nil
	case KeyCommandToggleActivity:
		m.showActivity = !m.showActivity
		return true, nil
	}
	return false, nil
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
}

func (m *Model) editSelected() tea.Cmd {
	if !m.store.Valid(m.selected) {
		return nil
	}
	if m.store.IsDisabled(m.selected) {
		m.showWarningToast(fmt.Sprintf("note %d is disabled", m.selected+1))
		return nil
	}
	cmd := m.applyEffect(m.store.BeginEdit(m.selected))
	m.resize(m.width, m.height)
	return cmd
}

func (m *Model) disableSelected() tea.Cmd {
	if !m.store.Valid(m.selected) {
		return nil
	}
	if m.store.IsDisabled(m.selected) {
		m.showWarningToast(fmt.Sprintf("note %d is already disabled", m.selected+1))
		return nil
	}
	cmd := m.applyEffect(m.store.Disable(m.selected))
	m.reportAction()
	m.resize(m.width, m.height)
	return cmd
}

func (m *Model) copySelected() {
	if !m.store.Valid(m.selected) {
		return
	}
	method, err := copyTextToClipboard(m.store.Note(m.selected).Text)
	if err != nil {
		m.diag.Warn("copy failed", logging.Err(err))
		m.showErrorToast("copy failed: " + err.Error())
		return
	}
	m.showInfoToast(fmt.Sprintf("copied note %d (%s)", m.selected+1, method))
}

func (m *Model) togglePreview() {
	if !m.previewEnabled {
		m.showWarningToast("markdown preview is disabled in config")
		return
	}
	m.showPreview = !m.showPreview
}
