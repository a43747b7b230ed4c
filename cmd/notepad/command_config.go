package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	"notepad/internal/config"

	toml "github.com/pelletier/go-toml/v2"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath      string                  `json:"config_path" toml:"config_path"`
	KeybindingsPath string                  `json:"keybindings_path" toml:"keybindings_path"`
	Logging         effectiveLoggingConfig  `json:"logging" toml:"logging"`
	Actions         effectiveActionsConfig  `json:"actions" toml:"actions"`
	UI              effectiveUIConfigOutput `json:"ui" toml:"ui"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
	Path  string `json:"path" toml:"path"`
}

type effectiveActionsConfig struct {
	Sinks         []string `json:"sinks" toml:"sinks"`
	ConsolePrefix string   `json:"console_prefix" toml:"console_prefix"`
	JSONPath      string   `json:"json_path" toml:"json_path"`
	JournalPath   string   `json:"journal_path" toml:"journal_path"`
}

type effectiveUIConfigOutput struct {
	Placeholder     string `json:"placeholder" toml:"placeholder"`
	MaxWidth        int    `json:"max_width" toml:"max_width"`
	MarkdownPreview bool   `json:"markdown_preview" toml:"markdown_preview"`
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	payload, err := buildConfigOutput(*defaults)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func buildConfigOutput(defaults bool) (configOutput, error) {
	cfg := config.Default()
	if !defaults {
		loaded, err := config.Load()
		if err != nil {
			return configOutput{}, err
		}
		cfg = loaded
	}
	configPath, err := config.ConfigPath()
	if err != nil {
		return configOutput{}, err
	}
	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return configOutput{}, err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return configOutput{}, err
	}
	sinks, err := cfg.ActionSinks()
	if err != nil {
		return configOutput{}, err
	}
	jsonPath, err := cfg.JSONPath()
	if err != nil {
		return configOutput{}, err
	}
	journalPath, err := cfg.JournalPath()
	if err != nil {
		return configOutput{}, err
	}
	return configOutput{
		ConfigPath:      configPath,
		KeybindingsPath: keybindingsPath,
		Logging: effectiveLoggingConfig{
			Level: cfg.LogLevel(),
			Path:  logPath,
		},
		Actions: effectiveActionsConfig{
			Sinks:         sinks,
			ConsolePrefix: cfg.ConsolePrefix(),
			JSONPath:      jsonPath,
			JournalPath:   journalPath,
		},
		UI: effectiveUIConfigOutput{
			Placeholder:     cfg.Placeholder(),
			MaxWidth:        cfg.MaxWidth(),
			MarkdownPreview: cfg.MarkdownPreview(),
		},
	}, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
