package notes

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"notepad/internal/testutil"
	"notepad/internal/types"
)

type opKind int

const (
	opSubmit opKind = iota
	opBlank
	opEdit
	opDisable
)

func drawState(t *rapid.T) (*Store, *testutil.ActionRecorder) {
	rec := &testutil.ActionRecorder{}
	s := New(rec, WithIDGenerator(testutil.SequentialIDs()))
	steps := rapid.IntRange(0, 30).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		applyRandomOp(t, s)
	}
	rec.Reset()
	return s, rec
}

func applyRandomOp(t *rapid.T, s *Store) {
	kind := opKind(rapid.IntRange(0, 3).Draw(t, "op"))
	if s.Len() == 0 && (kind == opEdit || kind == opDisable) {
		kind = opSubmit
	}
	switch kind {
	case opSubmit:
		s.SubmitText(rapid.StringMatching(`[ \t]{0,2}[a-z][a-z ]{0,10}[ \t]{0,2}`).Draw(t, "text"))
	case opBlank:
		s.SubmitText(rapid.StringMatching(`[ \t\r\n]{0,6}`).Draw(t, "blank"))
	case opEdit:
		s.BeginEdit(rapid.IntRange(0, s.Len()-1).Draw(t, "edit"))
	case opDisable:
		s.Disable(rapid.IntRange(0, s.Len()-1).Draw(t, "disable"))
	}
}

func snapshotEqual(a, b types.Snapshot) bool {
	if a.Editing != b.Editing || a.EditIndex != b.EditIndex || len(a.Notes) != len(b.Notes) {
		return false
	}
	for i := range a.Notes {
		if a.Notes[i] != b.Notes[i] {
			return false
		}
	}
	return true
}

func TestPropertyBlankSubmitIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, rec := drawState(t)
		before := s.Snapshot()
		blank := rapid.StringMatching(`[ \t\r\n]{0,8}`).Draw(t, "blank")

		effect := s.SubmitText(blank)

		if !effect.IsZero() {
			t.Fatalf("expected zero effect, got %#v", effect)
		}
		if !snapshotEqual(before, s.Snapshot()) {
			t.Fatalf("state changed on blank submit")
		}
		if len(rec.Actions) != 0 {
			t.Fatalf("blank submit logged %#v", rec.Actions)
		}
	})
}

func TestPropertyBeginEditOnDisabledNeverMovesCursor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, _ := drawState(t)
		if s.Len() == 0 {
			s.SubmitText("seed")
		}
		index := rapid.IntRange(0, s.Len()-1).Draw(t, "index")
		s.Disable(index)
		before, wasEditing := s.EditCursor()

		s.BeginEdit(index)

		after, isEditing := s.EditCursor()
		if before != after || wasEditing != isEditing {
			t.Fatalf("cursor moved from (%d,%v) to (%d,%v)", before, wasEditing, after, isEditing)
		}
	})
}

func TestPropertyInvariantsHoldAcrossOperations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rec := &testutil.ActionRecorder{}
		s := New(rec)
		disabled := map[int]struct{}{}
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			prevLen := s.Len()
			prevLogged := len(rec.Actions)
			kind := opKind(rapid.IntRange(0, 3).Draw(t, "op"))
			if s.Len() == 0 && (kind == opEdit || kind == opDisable) {
				kind = opSubmit
			}
			if kind == opDisable {
				index := rapid.IntRange(0, s.Len()-1).Draw(t, "disable")
				s.Disable(index)
				disabled[index] = struct{}{}
				if len(rec.Actions) != prevLogged+1 {
					t.Fatalf("disable must log exactly once")
				}
			} else {
				switch kind {
				case opSubmit:
					s.SubmitText(rapid.StringMatching(`[ ]{0,2}[a-z]{1,8}[ ]{0,2}`).Draw(t, "text"))
				case opBlank:
					s.SubmitText(rapid.StringMatching(`[ \t]{0,4}`).Draw(t, "blank"))
				case opEdit:
					s.BeginEdit(rapid.IntRange(0, s.Len()-1).Draw(t, "edit"))
				}
			}

			if s.Len() < prevLen {
				t.Fatalf("note sequence shrank from %d to %d", prevLen, s.Len())
			}
			for index := range disabled {
				if !s.Valid(index) || !s.IsDisabled(index) {
					t.Fatalf("disabled index %d lost", index)
				}
			}
			if index, ok := s.EditCursor(); ok && s.IsDisabled(index) {
				t.Fatalf("edit cursor %d points at a disabled note", index)
			}
			for i := 0; i < s.Len(); i++ {
				text := s.Note(i).Text
				if text == "" || strings.TrimSpace(text) != text {
					t.Fatalf("note %d is not trimmed/non-empty: %q", i, text)
				}
			}
		}
	})
}
