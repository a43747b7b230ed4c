package testutil

import (
	"path/filepath"
	"strconv"
	"testing"

	"notepad/internal/types"
)

// ActionRecorder is an action logger that keeps every action it receives.
type ActionRecorder struct {
	Actions []types.Action
}

func (r *ActionRecorder) LogAction(action types.Action) {
	r.Actions = append(r.Actions, action)
}

func (r *ActionRecorder) Messages() []string {
	out := make([]string, 0, len(r.Actions))
	for _, action := range r.Actions {
		out = append(out, action.Message())
	}
	return out
}

func (r *ActionRecorder) Reset() {
	r.Actions = nil
}

// SequentialIDs returns an id generator producing note-1, note-2, ...
func SequentialIDs() func() string {
	next := 0
	return func() string {
		next++
		return "note-" + strconv.Itoa(next)
	}
}

// IsolatedHome points HOME and NOTEPAD_HOME at a fresh temp directory and
// returns the data dir.
func IsolatedHome(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")
	dataDir := filepath.Join(home, ".notepad")
	t.Setenv("HOME", home)
	t.Setenv("NOTEPAD_HOME", dataDir)
	return dataDir
}
