package script

import "notepad/internal/types"

// FromActions rebuilds the commands that produce a recorded action log.
// An edit expands to the edit and submit pair the user performed.
func FromActions(actions []types.Action) []Command {
	out := make([]Command, 0, len(actions))
	for i, action := range actions {
		line := i + 1
		switch action.Kind {
		case types.ActionAdded:
			out = append(out, Command{Line: line, Verb: VerbAdd, Text: action.New})
		case types.ActionEdited:
			out = append(out,
				Command{Line: line, Verb: VerbEdit, Index: action.Index},
				Command{Line: line, Verb: VerbSubmit, Text: action.New},
			)
		case types.ActionDisabled:
			out = append(out, Command{Line: line, Verb: VerbDisable, Index: action.Index})
		}
	}
	return out
}
