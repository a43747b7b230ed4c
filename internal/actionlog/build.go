package actionlog

import (
	"errors"
	"fmt"
	"io"

	"notepad/internal/config"
	"notepad/internal/logging"
)

type BuildOptions struct {
	// Console receives the console sink. When nil the console sink is
	// skipped; the TUI shows those lines in its activity pane instead.
	Console io.Writer
	Diag    logging.Logger
	// Extra sinks are appended after the configured ones.
	Extra []Logger
}

// Build assembles the configured sinks. The returned closer releases any
// files or databases the sinks opened.
func Build(cfg config.Config, opts BuildOptions) (Logger, io.Closer, error) {
	diag := opts.Diag
	if diag == nil {
		diag = logging.Nop()
	}
	names, err := cfg.ActionSinks()
	if err != nil {
		return nil, nil, err
	}

	closers := closerList{}
	sinks := make([]Logger, 0, len(names)+len(opts.Extra))
	fail := func(err error) (Logger, io.Closer, error) {
		_ = closers.Close()
		return nil, nil, err
	}
	for _, name := range names {
		switch name {
		case config.SinkConsole:
			if opts.Console == nil {
				diag.Debug("console action sink skipped")
				continue
			}
			sinks = append(sinks, Console(opts.Console, cfg.ConsolePrefix()))
		case config.SinkLogfmt:
			sinks = append(sinks, Structured(diag))
		case config.SinkJSON:
			path, err := cfg.JSONPath()
			if err != nil {
				return fail(err)
			}
			sink, closer, err := OpenJSONLines(path)
			if err != nil {
				return fail(fmt.Errorf("open json action log: %w", err))
			}
			closers = append(closers, closer)
			sinks = append(sinks, sink)
		case config.SinkJournal:
			path, err := cfg.JournalPath()
			if err != nil {
				return fail(err)
			}
			journal, err := OpenJournal(path, diag)
			if err != nil {
				return fail(fmt.Errorf("open action journal: %w", err))
			}
			closers = append(closers, journal)
			sinks = append(sinks, journal)
			diag.Info("action journal opened", logging.F("path", path), logging.F("session", journal.Session()))
		default:
			return fail(fmt.Errorf("%w: %q", config.ErrUnknownSink, name))
		}
	}
	sinks = append(sinks, opts.Extra...)
	return Multi(sinks...), closers, nil
}

type closerList []io.Closer

func (c closerList) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
