package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"notepad/internal/actionlog"
	"notepad/internal/config"
	"notepad/internal/export"
	"notepad/internal/logging"
	"notepad/internal/notes"
	"notepad/internal/script"
	"notepad/internal/types"
)

type ReplayCommand struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewReplayCommand(stdin io.Reader, stdout, stderr io.Writer) *ReplayCommand {
	return &ReplayCommand{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ReplayCommand) Run(args []string) (err error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	format := fs.String("format", export.FormatText, "output format: text|json|toml|html")
	quiet := fs.Bool("quiet", false, "do not echo actions to stderr")
	journalPath := fs.String("journal", "", "replay actions recorded in this journal")
	session := fs.String("session", "", "journal session to replay (default: latest)")
	var sinks stringList
	fs.Var(&sinks, "sink", "action sink: console|logfmt|json|journal (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := export.ResolveFormat(*format)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(sinks) > 0 {
		cfg.Actions.Sinks = sinks
	}

	var cmds []script.Command
	if strings.TrimSpace(*journalPath) != "" {
		if fs.NArg() > 0 {
			return errors.New("replay takes a script or --journal, not both")
		}
		cmds, err = loadJournalCommands(*journalPath, *session)
	} else {
		cmds, err = c.loadScript(fs.Args())
	}
	if err != nil {
		return err
	}

	diag := logging.New(c.stderr, logging.ParseLevel(cfg.LogLevel()))
	var console io.Writer = c.stderr
	if *quiet {
		console = nil
		diag = logging.Nop()
	}
	actions, closer, err := actionlog.Build(cfg, actionlog.BuildOptions{Console: console, Diag: diag})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closer.Close(); err == nil {
			err = closeErr
		}
	}()

	store := notes.New(actions)
	if err := script.NewRunner(store).Run(cmds); err != nil {
		return err
	}
	return export.Write(c.stdout, resolvedFormat, store.Snapshot())
}

func (c *ReplayCommand) loadScript(args []string) ([]script.Command, error) {
	if len(args) > 1 {
		return nil, errors.New("replay takes at most one script")
	}
	if len(args) == 0 || args[0] == "-" {
		return script.Parse(c.stdin)
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cmds, err := script.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return cmds, nil
}

// loadJournalCommands reads one session from a journal. The journal is
// closed before any sink opens, so replaying into the same file is safe.
func loadJournalCommands(path, session string) ([]script.Command, error) {
	entries, err := readJournal(path)
	if err != nil {
		return nil, err
	}
	entries, err = sessionEntries(entries, session)
	if err != nil {
		return nil, err
	}
	actions := make([]types.Action, 0, len(entries))
	for _, entry := range entries {
		actions = append(actions, entry.Action)
	}
	return script.FromActions(actions), nil
}

func readJournal(path string) ([]actionlog.JournalEntry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	journal, err := actionlog.OpenJournal(path, nil)
	if err != nil {
		return nil, err
	}
	defer journal.Close()
	return journal.Entries(context.Background())
}

// sessionEntries keeps the entries of session, or of the most recent
// session when session is empty.
func sessionEntries(entries []actionlog.JournalEntry, session string) ([]actionlog.JournalEntry, error) {
	session = strings.TrimSpace(session)
	if len(entries) == 0 {
		return nil, errors.New("journal is empty")
	}
	if session == "" {
		session = entries[len(entries)-1].Session
	}
	out := make([]actionlog.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Session == session || (len(session) < len(entry.Session) && strings.HasPrefix(entry.Session, session)) {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no journal entries for session %q", session)
	}
	return out, nil
}
