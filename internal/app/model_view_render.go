package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"notepad/internal/types"
)

const (
	editControlLabel    = "edit"
	disableControlLabel = "disable"
)

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	if m.quitting {
		return ""
	}
	width := m.contentWidth()
	snap := m.store.Snapshot()
	sections := []string{
		m.renderHeader(snap, width),
		m.renderInputRow(snap),
		dividerStyle.Render(strings.Repeat("─", width)),
		m.renderNoteList(snap, width),
	}
	if preview := m.renderPreview(snap, width); preview != "" {
		sections = append(sections, preview)
	}
	if m.showActivity {
		sections = append(sections, m.renderActivity(width))
	}
	if toast := m.toastLine(width); toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, helpStyle.Render(truncateToWidth(m.hotkeys.Render(m), width)))
	return strings.Join(sections, "\n")
}

func (m *Model) renderHeader(snap types.Snapshot, width int) string {
	title := headerStyle.Render("Notes")
	count := fmt.Sprintf("%d notes", len(snap.Notes))
	if disabled := snap.DisabledCount(); disabled > 0 {
		count += fmt.Sprintf(" · %d disabled", disabled)
	}
	if snap.Editing {
		count += fmt.Sprintf(" · editing %d", snap.EditIndex+1)
	}
	status := statusStyle.Render(count)
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(status))
	return title + strings.Repeat(" ", gap) + status
}

func (m *Model) renderInputRow(snap types.Snapshot) string {
	frame := inputFrameStyle
	if m.focus == focusInput {
		frame = inputFocusedStyle
	}
	field := frame.Render(m.input.View())
	button := renderSubmitButton(snap.SubmitLabel, snap.Editing)
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
}

func renderSubmitButton(label string, editing bool) string {
	if editing {
		return updateButtonStyle.Render(label)
	}
	return submitButtonStyle.Render(label)
}

func submitButtonWidth(label string) int {
	return lipgloss.Width(submitButtonStyle.Render(label)) + 1
}

func (m *Model) renderNoteList(snap types.Snapshot, width int) string {
	if len(snap.Notes) == 0 {
		return helpStyle.Render("No notes yet.")
	}
	lines := make([]string, 0, len(snap.Notes))
	for _, note := range snap.Notes {
		lines = append(lines, m.renderNoteRow(note, width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderNoteRow(note types.NoteView, width int) string {
	selected := m.focus == focusList && note.Index == m.selected
	marker := "  "
	if selected {
		marker = "› "
	}
	number := fmt.Sprintf("%d. ", note.Index+1)
	controls := renderNoteControls(note)
	textWidth := width - lipgloss.Width(marker) - lipgloss.Width(number) - lipgloss.Width(controls) - 1
	text := truncateToWidth(note.Text, max(1, textWidth))
	padding := max(1, textWidth-lipgloss.Width(text)+1)

	style := noteStyle
	switch {
	case note.Disabled:
		style = noteDisabledStyle
	case note.Editing:
		style = noteEditingStyle
	}
	row := marker + number + style.Render(text) + strings.Repeat(" ", padding) + controls
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

// renderNoteControls draws the per-row edit and disable controls. Both are
// dimmed once a note is disabled.
func renderNoteControls(note types.NoteView) string {
	if note.Disabled {
		return buttonOffStyle.Render("["+editControlLabel+"]") + " " + buttonOffStyle.Render("["+disableControlLabel+"]")
	}
	return editButtonStyle.Render("["+editControlLabel+"]") + " " + disableButtonStyle.Render("["+disableControlLabel+"]")
}

func (m *Model) renderPreview(snap types.Snapshot, width int) string {
	if !m.previewEnabled || !m.showPreview || m.selected >= len(snap.Notes) {
		return ""
	}
	innerWidth := max(1, width-previewFrameStyle.GetHorizontalFrameSize())
	body := renderMarkdown(snap.Notes[m.selected].Text, innerWidth)
	if body == "" {
		return ""
	}
	return previewFrameStyle.Render(body)
}

func (m *Model) renderActivity(width int) string {
	lines := m.activity.Tail(activityPaneLines)
	if len(lines) == 0 {
		return activityStyle.Render("no activity")
	}
	for i, line := range lines {
		lines[i] = activityStyle.Render(truncateToWidth(line, width))
	}
	return padLines(lines, width)
}
