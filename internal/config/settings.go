package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	SinkConsole = "console"
	SinkLogfmt  = "logfmt"
	SinkJSON    = "json"
	SinkJournal = "journal"
)

const (
	defaultLogLevel       = "info"
	defaultLogPath        = "notepad.log"
	defaultConsolePrefix  = "[LOG]: "
	defaultJSONPath       = "actions.jsonl"
	defaultJournalPath    = "journal.db"
	defaultPlaceholder    = "Enter note..."
	defaultMaxWidth       = 60
	minMaxWidth           = 20
	defaultKeybindingFile = "keybindings.json"
)

var defaultSinks = []string{SinkConsole}

var ErrUnknownSink = errors.New("unknown action sink")

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Actions ActionsConfig `toml:"actions"`
	UI      UIConfig      `toml:"ui"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type ActionsConfig struct {
	Sinks         []string `toml:"sinks"`
	ConsolePrefix *string  `toml:"console_prefix"`
	JSONPath      string   `toml:"json_path"`
	JournalPath   string   `toml:"journal_path"`
}

type UIConfig struct {
	Placeholder     string `toml:"placeholder"`
	MaxWidth        int    `toml:"max_width"`
	MarkdownPreview *bool  `toml:"markdown_preview"`
	KeybindingsPath string `toml:"keybindings_path"`
}

func Default() Config {
	prefix := defaultConsolePrefix
	preview := true
	return Config{
		Logging: LoggingConfig{
			Level: defaultLogLevel,
			Path:  defaultLogPath,
		},
		Actions: ActionsConfig{
			Sinks:         append([]string{}, defaultSinks...),
			ConsolePrefix: &prefix,
			JSONPath:      defaultJSONPath,
			JournalPath:   defaultJournalPath,
		},
		UI: UIConfig{
			Placeholder:     defaultPlaceholder,
			MaxWidth:        defaultMaxWidth,
			MarkdownPreview: &preview,
			KeybindingsPath: defaultKeybindingFile,
		},
	}
}

// Load reads config.toml from the data dir. A missing or empty file yields
// the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := cfg.ActionSinks(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) LogLevel() string {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) LogPath() (string, error) {
	path := strings.TrimSpace(c.Logging.Path)
	if path == "" {
		path = defaultLogPath
	}
	return resolveConfigPath(path)
}

// ActionSinks returns the configured sink names, normalized and
// de-duplicated. An explicit empty list disables action logging.
func (c Config) ActionSinks() ([]string, error) {
	if c.Actions.Sinks == nil {
		return append([]string{}, defaultSinks...), nil
	}
	sinks := normalizedList(c.Actions.Sinks)
	for _, sink := range sinks {
		switch sink {
		case SinkConsole, SinkLogfmt, SinkJSON, SinkJournal:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSink, sink)
		}
	}
	return sinks, nil
}

func (c Config) ConsolePrefix() string {
	if c.Actions.ConsolePrefix == nil {
		return defaultConsolePrefix
	}
	return *c.Actions.ConsolePrefix
}

func (c Config) JSONPath() (string, error) {
	path := strings.TrimSpace(c.Actions.JSONPath)
	if path == "" {
		path = defaultJSONPath
	}
	return resolveConfigPath(path)
}

func (c Config) JournalPath() (string, error) {
	path := strings.TrimSpace(c.Actions.JournalPath)
	if path == "" {
		path = defaultJournalPath
	}
	return resolveConfigPath(path)
}

func (c Config) Placeholder() string {
	placeholder := strings.TrimSpace(c.UI.Placeholder)
	if placeholder == "" {
		return defaultPlaceholder
	}
	return placeholder
}

func (c Config) MaxWidth() int {
	width := c.UI.MaxWidth
	if width <= 0 {
		return defaultMaxWidth
	}
	if width < minMaxWidth {
		return minMaxWidth
	}
	return width
}

func (c Config) MarkdownPreview() bool {
	if c.UI.MarkdownPreview == nil {
		return true
	}
	return *c.UI.MarkdownPreview
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	path := strings.TrimSpace(c.UI.KeybindingsPath)
	if path == "" {
		return KeybindingsPath()
	}
	return resolveConfigPath(path)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}

func normalizedList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.ToLower(strings.TrimSpace(raw))
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
