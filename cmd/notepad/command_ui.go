package main

import (
	"errors"
	"flag"
	"io"

	"notepad/internal/actionlog"
	"notepad/internal/app"
	"notepad/internal/config"
	"notepad/internal/logging"
)

type UICommand struct {
	stderr  io.Writer
	runUI   func(app.Options) error
	version string
}

func NewUICommand(stderr io.Writer, runUI func(app.Options) error, version string) *UICommand {
	return &UICommand{
		stderr:  stderr,
		runUI:   runUI,
		version: version,
	}
}

func (c *UICommand) Run(args []string) (err error) {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.runUI == nil {
		return errors.New("ui runner is not configured")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	diag, diagFile, err := logging.OpenFile(logPath, logging.ParseLevel(cfg.LogLevel()))
	if err != nil {
		return err
	}
	defer diagFile.Close()
	diag = diag.With(logging.F("version", c.version))

	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return err
	}
	bindings, err := app.LoadKeybindings(keybindingsPath)
	if err != nil {
		diag.Warn("keybindings ignored", logging.F("path", keybindingsPath), logging.Err(err))
		bindings = app.DefaultKeybindings()
	}

	// The console sink is skipped: the UI owns the terminal and shows
	// actions in its activity pane.
	actions, closer, err := actionlog.Build(cfg, actionlog.BuildOptions{Diag: diag})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closer.Close(); err == nil {
			err = closeErr
		}
	}()

	diag.Info("ui starting")
	err = c.runUI(app.Options{
		ActionLog:       actions,
		Keybindings:     bindings,
		Diag:            diag,
		Placeholder:     cfg.Placeholder(),
		MaxWidth:        cfg.MaxWidth(),
		MarkdownPreview: cfg.MarkdownPreview(),
	})
	if err != nil {
		diag.Error("ui stopped", logging.Err(err))
		return err
	}
	diag.Info("ui stopped")
	return nil
}
