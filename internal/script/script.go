// Package script replays note operations from a line-oriented text script.
//
//	# comments and blank lines are ignored
//	add Buy milk
//	edit 0
//	submit Buy oat milk
//	disable 0
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"notepad/internal/notes"
	"notepad/internal/types"
)

type Verb string

const (
	VerbAdd     Verb = "add"
	VerbSubmit  Verb = "submit"
	VerbEdit    Verb = "edit"
	VerbDisable Verb = "disable"
)

var (
	ErrUnknownVerb     = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

type Command struct {
	Line  int
	Verb  Verb
	Text  string
	Index int
}

func (c Command) String() string {
	switch c.Verb {
	case VerbEdit, VerbDisable:
		return fmt.Sprintf("%s %d", c.Verb, c.Index)
	default:
		return strings.TrimSpace(string(c.Verb) + " " + c.Text)
	}
}

// Parse reads commands from r. Errors name the offending line.
func Parse(r io.Reader) ([]Command, error) {
	var out []Command
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cmd.Line = lineNo
		out = append(out, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(line string) (Command, error) {
	verb, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, rest = line[:i], strings.TrimSpace(line[i:])
	}
	switch Verb(strings.ToLower(verb)) {
	case VerbAdd:
		return Command{Verb: VerbAdd, Text: rest}, nil
	case VerbSubmit:
		return Command{Verb: VerbSubmit, Text: rest}, nil
	case VerbEdit:
		index, err := parseIndex(rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbEdit, Index: index}, nil
	case VerbDisable:
		index, err := parseIndex(rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbDisable, Index: index}, nil
	default:
		return Command{}, fmt.Errorf("%w %q", ErrUnknownVerb, verb)
	}
}

func parseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: index", ErrMissingArgument)
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", raw)
	}
	return index, nil
}

// Step records the outcome of one command.
type Step struct {
	Command Command
	Effect  types.Effect
	Input   string
}

// Runner drives a store the way the UI does, including the input field the
// effects act on.
type Runner struct {
	store *notes.Store
	input string
	steps []Step
}

func NewRunner(store *notes.Store) *Runner {
	return &Runner{store: store}
}

// Run applies cmds in order and stops at the first invalid index.
func (r *Runner) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Apply(cmd Command) error {
	var effect types.Effect
	switch cmd.Verb {
	case VerbAdd, VerbSubmit:
		r.input = cmd.Text
		effect = r.store.SubmitText(r.input)
	case VerbEdit, VerbDisable:
		if !r.store.Valid(cmd.Index) {
			return fmt.Errorf("line %d: %w: %d (have %d notes)", cmd.Line, ErrIndexOutOfRange, cmd.Index, r.store.Len())
		}
		if cmd.Verb == VerbEdit {
			effect = r.store.BeginEdit(cmd.Index)
		} else {
			effect = r.store.Disable(cmd.Index)
		}
	default:
		return fmt.Errorf("line %d: %w %q", cmd.Line, ErrUnknownVerb, cmd.Verb)
	}
	r.applyEffect(effect)
	r.steps = append(r.steps, Step{Command: cmd, Effect: effect, Input: r.input})
	return nil
}

func (r *Runner) applyEffect(effect types.Effect) {
	if effect.ClearInput {
		r.input = ""
	}
	if effect.HasSetInput {
		r.input = effect.SetInput
	}
}

// Input is the simulated input field contents.
func (r *Runner) Input() string {
	return r.input
}

func (r *Runner) Steps() []Step {
	return append([]Step(nil), r.steps...)
}
