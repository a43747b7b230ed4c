package actionlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"notepad/internal/logging"
	"notepad/internal/types"
)

type structuredLogger struct {
	log logging.Logger
}

// Structured writes each action as a logfmt line through a diagnostic logger.
func Structured(log logging.Logger) Logger {
	if log == nil {
		return Nop()
	}
	return &structuredLogger{log: log.With(logging.F("component", "actions"))}
}

func (s *structuredLogger) LogAction(action types.Action) {
	fields := []logging.Field{
		logging.F("kind", string(action.Kind)),
		logging.F("index", action.Index),
		logging.F("note_id", action.NoteID),
	}
	if action.Kind == types.ActionEdited {
		fields = append(fields, logging.F("old", action.Old))
	}
	fields = append(fields, logging.F("new", action.New))
	s.log.Info(action.Message(), fields...)
}

type jsonLinesLogger struct {
	log zerolog.Logger
}

// JSONLines writes one zerolog JSON object per action.
func JSONLines(out io.Writer) Logger {
	if out == nil {
		out = io.Discard
	}
	return &jsonLinesLogger{log: zerolog.New(out).With().Timestamp().Logger()}
}

// OpenJSONLines appends JSON action lines to path.
func OpenJSONLines(path string) (Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return JSONLines(zerolog.SyncWriter(file)), file, nil
}

func (j *jsonLinesLogger) LogAction(action types.Action) {
	event := j.log.Info().
		Str("kind", string(action.Kind)).
		Int("index", action.Index).
		Str("note_id", action.NoteID)
	if action.Kind == types.ActionEdited {
		event = event.Str("old", action.Old)
	}
	event.Str("new", action.New).Msg(action.Message())
}
