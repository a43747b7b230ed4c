package types

import "fmt"

// Note is a single entry in the note list. Operations address notes by
// position; ID only correlates log lines and exports.
type Note struct {
	ID   string `json:"id" toml:"id"`
	Text string `json:"text" toml:"text"`
}

type ActionKind string

const (
	ActionAdded    ActionKind = "added"
	ActionEdited   ActionKind = "edited"
	ActionDisabled ActionKind = "disabled"
)

// Action describes one completed mutation of the note list.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Index  int        `json:"index"`
	NoteID string     `json:"note_id,omitempty"`
	Old    string     `json:"old,omitempty"`
	New    string     `json:"new,omitempty"`
}

// Message renders the human-readable log line for the action.
func (a Action) Message() string {
	switch a.Kind {
	case ActionAdded:
		return fmt.Sprintf("Note Added: \"%s\"", a.New)
	case ActionEdited:
		return fmt.Sprintf("Note Edited: \"%s\" -> \"%s\"", a.Old, a.New)
	case ActionDisabled:
		return fmt.Sprintf("Note Disabled: \"%s\"", a.New)
	default:
		return fmt.Sprintf("Note %s: \"%s\"", a.Kind, a.New)
	}
}

// Effect tells the presentation layer what to do with its input field after
// a store operation. The zero value means "leave the input alone".
type Effect struct {
	ClearInput  bool
	FocusInput  bool
	HasSetInput bool
	SetInput    string
}

func (e Effect) IsZero() bool {
	return !e.ClearInput && !e.FocusInput && !e.HasSetInput
}

// NoteView is one row of a Snapshot.
type NoteView struct {
	Index    int    `json:"index" toml:"index"`
	ID       string `json:"id" toml:"id"`
	Text     string `json:"text" toml:"text"`
	Disabled bool   `json:"disabled" toml:"disabled"`
	Editing  bool   `json:"editing" toml:"editing"`
}

// Snapshot is an immutable copy of the store state used for rendering.
type Snapshot struct {
	Notes       []NoteView `json:"notes" toml:"notes"`
	EditIndex   int        `json:"edit_index" toml:"edit_index"`
	Editing     bool       `json:"editing" toml:"editing"`
	SubmitLabel string     `json:"submit_label" toml:"submit_label"`
}

func (s Snapshot) DisabledCount() int {
	count := 0
	for _, note := range s.Notes {
		if note.Disabled {
			count++
		}
	}
	return count
}
