package main

import (
	"flag"
	"io"

	"notepad/internal/app"
	"notepad/internal/config"
)

type KeysCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewKeysCommand(stdout, stderr io.Writer) *KeysCommand {
	return &KeysCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *KeysCommand) Run(args []string) error {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default keybindings")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	bindings := app.DefaultKeybindings()
	if !*defaults {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := cfg.ResolveKeybindingsPath()
		if err != nil {
			return err
		}
		if bindings, err = app.LoadKeybindings(path); err != nil {
			return err
		}
	}
	return writeConfigOutput(c.stdout, resolvedFormat, bindings.Bindings())
}
