package notes

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notepad/internal/actionlog"
	"notepad/internal/types"
)

const (
	SubmitLabelAdd    = "Add Note"
	SubmitLabelUpdate = "Update Note"
)

const noEdit = -1

// Store holds the note list, the disabled set and the edit cursor. It is not
// safe for concurrent use; callers drive it from a single event loop.
type Store struct {
	notes    []types.Note
	disabled map[int]struct{}
	editing  int
	logger   actionlog.Logger
	newID    func() string
}

type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new notes.
func WithIDGenerator(next func() string) Option {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

func New(logger actionlog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = actionlog.Nop()
	}
	s := &Store{
		notes:    []types.Note{},
		disabled: map[int]struct{}{},
		editing:  noEdit,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitText adds a note, or completes the active edit. Whitespace-only
// input is ignored without logging.
func (s *Store) SubmitText(raw string) types.Effect {
	text := strings.TrimSpace(raw)
	if text == "" {
		return types.Effect{}
	}

	if s.editing != noEdit {
		index := s.editing
		if s.IsDisabled(index) {
			panic(fmt.Sprintf("notes: edit cursor %d points at a disabled note", index))
		}
		old := s.notes[index].Text
		s.notes[index].Text = text
		s.editing = noEdit
		s.logger.LogAction(types.Action{
			Kind:   types.ActionEdited,
			Index:  index,
			NoteID: s.notes[index].ID,
			Old:    old,
			New:    text,
		})
	} else {
		note := types.Note{ID: s.newID(), Text: text}
		s.notes = append(s.notes, note)
		s.logger.LogAction(types.Action{
			Kind:   types.ActionAdded,
			Index:  len(s.notes) - 1,
			NoteID: note.ID,
			New:    text,
		})
	}
	return types.Effect{ClearInput: true, FocusInput: true}
}

// BeginEdit moves the edit cursor to index. Disabled notes are rejected
// silently.
func (s *Store) BeginEdit(index int) types.Effect {
	s.mustIndex(index)
	if s.IsDisabled(index) {
		return types.Effect{}
	}
	s.editing = index
	return types.Effect{
		HasSetInput: true,
		SetInput:    s.notes[index].Text,
		FocusInput:  true,
	}
}

// Disable marks index as disabled. Every call is logged, including repeats.
func (s *Store) Disable(index int) types.Effect {
	s.mustIndex(index)
	s.disabled[index] = struct{}{}
	s.logger.LogAction(types.Action{
		Kind:   types.ActionDisabled,
		Index:  index,
		NoteID: s.notes[index].ID,
		New:    s.notes[index].Text,
	})
	if s.editing == index {
		s.editing = noEdit
		return types.Effect{ClearInput: true}
	}
	return types.Effect{}
}

func (s *Store) Len() int {
	return len(s.notes)
}

// Valid reports whether index addresses an existing note.
func (s *Store) Valid(index int) bool {
	return index >= 0 && index < len(s.notes)
}

func (s *Store) Note(index int) types.Note {
	s.mustIndex(index)
	return s.notes[index]
}

func (s *Store) IsDisabled(index int) bool {
	_, ok := s.disabled[index]
	return ok
}

func (s *Store) EditCursor() (int, bool) {
	if s.editing == noEdit {
		return 0, false
	}
	return s.editing, true
}

func (s *Store) SubmitLabel() string {
	if s.editing != noEdit {
		return SubmitLabelUpdate
	}
	return SubmitLabelAdd
}

func (s *Store) Snapshot() types.Snapshot {
	out := types.Snapshot{
		Notes:       make([]types.NoteView, 0, len(s.notes)),
		EditIndex:   -1,
		SubmitLabel: s.SubmitLabel(),
	}
	if index, ok := s.EditCursor(); ok {
		out.EditIndex = index
		out.Editing = true
	}
	for i, note := range s.notes {
		out.Notes = append(out.Notes, types.NoteView{
			Index:    i,
			ID:       note.ID,
			Text:     note.Text,
			Disabled: s.IsDisabled(i),
			Editing:  s.editing == i,
		})
	}
	return out
}

func (s *Store) mustIndex(index int) {
	if !s.Valid(index) {
		panic(fmt.Sprintf("notes: index %d out of range [0,%d)", index, len(s.notes)))
	}
}
