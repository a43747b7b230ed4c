package actionlog

import (
	"io"
	"strings"
	"sync"

	"notepad/internal/types"
)

// Logger receives one call per completed note mutation. Calls are
// fire-and-forget: sinks swallow their own failures.
type Logger interface {
	LogAction(action types.Action)
}

// Func adapts a plain message callback to Logger.
type Func func(message string)

func (f Func) LogAction(action types.Action) {
	if f == nil {
		return
	}
	f(action.Message())
}

type nopLogger struct{}

func (nopLogger) LogAction(types.Action) {}

func Nop() Logger {
	return nopLogger{}
}

type multiLogger struct {
	sinks []Logger
}

// Multi fans every action out to each non-nil sink in order.
func Multi(sinks ...Logger) Logger {
	out := make([]Logger, 0, len(sinks))
	for _, sink := range sinks {
		if sink == nil {
			continue
		}
		out = append(out, sink)
	}
	switch len(out) {
	case 0:
		return Nop()
	case 1:
		return out[0]
	}
	return &multiLogger{sinks: out}
}

func (m *multiLogger) LogAction(action types.Action) {
	for _, sink := range m.sinks {
		sink.LogAction(action)
	}
}

const DefaultConsolePrefix = "[LOG]: "

type consoleLogger struct {
	out    io.Writer
	prefix string
	mu     sync.Mutex
}

// Console writes prefix+message lines to out.
func Console(out io.Writer, prefix string) Logger {
	if out == nil {
		out = io.Discard
	}
	return &consoleLogger{out: out, prefix: prefix}
}

func (c *consoleLogger) LogAction(action types.Action) {
	line := c.prefix + strings.ReplaceAll(action.Message(), "\n", " ") + "\n"
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, line)
}
