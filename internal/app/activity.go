package app

import "notepad/internal/types"

const activityLimit = 50

// activityFeed keeps the most recent action messages for the log pane. It
// is registered as an action sink, standing in for console output while
// the TUI owns the terminal.
type activityFeed struct {
	lines []string
	last  *types.Action
}

func (a *activityFeed) LogAction(action types.Action) {
	a.lines = append(a.lines, action.Message())
	if len(a.lines) > activityLimit {
		a.lines = append([]string(nil), a.lines[len(a.lines)-activityLimit:]...)
	}
	copied := action
	a.last = &copied
}

// Tail returns up to n of the most recent lines, oldest first.
func (a *activityFeed) Tail(n int) []string {
	if n <= 0 || len(a.lines) == 0 {
		return nil
	}
	start := max(0, len(a.lines)-n)
	return append([]string(nil), a.lines[start:]...)
}

// takeLast returns the action recorded since the previous call, if any.
func (a *activityFeed) takeLast() (types.Action, bool) {
	if a.last == nil {
		return types.Action{}, false
	}
	action := *a.last
	a.last = nil
	return action, true
}
