package script

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"notepad/internal/notes"
	"notepad/internal/testutil"
)

const scenario = `
# end-to-end scenario
add Buy milk
edit 0
submit Buy oat milk
disable 0
`

func TestParseScenario(t *testing.T) {
	cmds, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Command{
		{Line: 3, Verb: VerbAdd, Text: "Buy milk"},
		{Line: 4, Verb: VerbEdit, Index: 0},
		{Line: 5, Verb: VerbSubmit, Text: "Buy oat milk"},
		{Line: 6, Verb: VerbDisable, Index: 0},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("unexpected commands:\n got=%#v\nwant=%#v", cmds, want)
	}
	if cmds[1].String() != "edit 0" || cmds[0].String() != "add Buy milk" {
		t.Fatalf("unexpected String(): %q %q", cmds[1].String(), cmds[0].String())
	}
}

func TestParseSplitsOnAnyWhitespace(t *testing.T) {
	cmds, err := Parse(strings.NewReader("add\tBuy milk\nedit\t0\ndisable  \t 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Command{
		{Line: 1, Verb: VerbAdd, Text: "Buy milk"},
		{Line: 2, Verb: VerbEdit, Index: 0},
		{Line: 3, Verb: VerbDisable, Index: 0},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("unexpected commands:\n got=%#v\nwant=%#v", cmds, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  string
	}{
		{name: "unknown verb", input: "add a\nremove 0\n", want: ErrUnknownVerb, line: "line 2"},
		{name: "missing index", input: "edit\n", want: ErrMissingArgument, line: "line 1"},
		{name: "bad index", input: "\n\ndisable x\n", line: "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Fatalf("expected %q in %v", tc.line, err)
			}
		})
	}
}

func TestRunnerReplaysScenario(t *testing.T) {
	rec := &testutil.ActionRecorder{}
	store := notes.New(rec)
	cmds, err := Parse(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	runner := NewRunner(store)
	if err := runner.Run(cmds); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if store.Len() != 1 || store.Note(0).Text != "Buy oat milk" || !store.IsDisabled(0) {
		t.Fatalf("unexpected final state: %#v", store.Snapshot())
	}
	want := []string{
		`Note Added: "Buy milk"`,
		`Note Edited: "Buy milk" -> "Buy oat milk"`,
		`Note Disabled: "Buy oat milk"`,
	}
	if !reflect.DeepEqual(rec.Messages(), want) {
		t.Fatalf("unexpected log: %#v", rec.Messages())
	}
	steps := runner.Steps()
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	if steps[1].Input != "Buy milk" {
		t.Fatalf("edit should load the note into the input, got %q", steps[1].Input)
	}
	if steps[2].Input != "" {
		t.Fatalf("submit should clear the input, got %q", steps[2].Input)
	}
}

func TestRunnerDisableDuringEditClearsInput(t *testing.T) {
	store := notes.New(nil)
	runner := NewRunner(store)
	cmds := []Command{
		{Line: 1, Verb: VerbAdd, Text: "A"},
		{Line: 2, Verb: VerbEdit, Index: 0},
		{Line: 3, Verb: VerbDisable, Index: 0},
	}
	if err := runner.Run(cmds); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if runner.Input() != "" {
		t.Fatalf("expected cleared input, got %q", runner.Input())
	}
	if _, editing := store.EditCursor(); editing {
		t.Fatalf("expected edit cancelled")
	}
}

func TestRunnerRejectsOutOfRangeIndex(t *testing.T) {
	store := notes.New(nil)
	runner := NewRunner(store)
	err := runner.Run([]Command{
		{Line: 1, Verb: VerbAdd, Text: "A"},
		{Line: 2, Verb: VerbDisable, Index: 4},
		{Line: 3, Verb: VerbAdd, Text: "B"},
	})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("run should stop at the failing command, have %d notes", store.Len())
	}
}
