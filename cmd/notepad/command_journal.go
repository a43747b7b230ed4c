package main

import (
	"encoding/json"
	"flag"
	"io"

	"notepad/internal/config"
)

type JournalCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewJournalCommand(stdout, stderr io.Writer) *JournalCommand {
	return &JournalCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *JournalCommand) Run(args []string) error {
	fs := flag.NewFlagSet("journal", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	session := fs.String("session", "", "only show this session (default: all)")
	asJSON := fs.Bool("json", false, "print entries as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if path, err = cfg.JournalPath(); err != nil {
			return err
		}
	}
	entries, err := readJournal(path)
	if err != nil {
		return err
	}
	if *session != "" {
		if entries, err = sessionEntries(entries, *session); err != nil {
			return err
		}
	}
	if *asJSON {
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	printJournalEntries(c.stdout, entries)
	return nil
}
