package main

import (
	"io"
	"os"

	"notepad/internal/app"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	runUI   func(app.Options) error
	version string
}

func defaultCommandWiring(stdin io.Reader, stdout, stderr io.Writer) commandWiring {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		runUI:   app.Run,
		version: buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":      NewUICommand(wiring.stderr, wiring.runUI, wiring.version),
		"replay":  NewReplayCommand(wiring.stdin, wiring.stdout, wiring.stderr),
		"journal": NewJournalCommand(wiring.stdout, wiring.stderr),
		"config":  NewConfigCommand(wiring.stdout, wiring.stderr),
		"keys":    NewKeysCommand(wiring.stdout, wiring.stderr),
	}
}
