package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv("NOTEPAD_HOME", "")
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dataDir := filepath.Join(home, ".notepad")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	sinks, err := cfg.ActionSinks()
	if err != nil {
		t.Fatalf("ActionSinks: %v", err)
	}
	if !reflect.DeepEqual(sinks, []string{SinkConsole}) {
		t.Fatalf("unexpected sinks: %#v", sinks)
	}
	if cfg.ConsolePrefix() != "[LOG]: " {
		t.Fatalf("unexpected prefix: %q", cfg.ConsolePrefix())
	}
	if cfg.Placeholder() != "Enter note..." || cfg.MaxWidth() != 60 || !cfg.MarkdownPreview() {
		t.Fatalf("unexpected ui defaults: %#v", cfg.UI)
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("LogPath: %v", err)
	}
	if want := filepath.Join(home, ".notepad", "notepad.log"); logPath != want {
		t.Fatalf("unexpected log path: got=%q want=%q", logPath, want)
	}
}

func TestLoadFromTOML(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `
[logging]
level = " DEBUG "

[actions]
sinks = ["Console", "journal", "console", " json "]
console_prefix = ""
journal_path = "/var/tmp/notes-journal.db"

[ui]
placeholder = "  "
max_width = 5
markdown_preview = false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected level: %q", cfg.LogLevel())
	}
	sinks, err := cfg.ActionSinks()
	if err != nil {
		t.Fatalf("ActionSinks: %v", err)
	}
	if !reflect.DeepEqual(sinks, []string{SinkConsole, SinkJournal, SinkJSON}) {
		t.Fatalf("unexpected sinks: %#v", sinks)
	}
	if cfg.ConsolePrefix() != "" {
		t.Fatalf("expected explicit empty prefix, got %q", cfg.ConsolePrefix())
	}
	journal, err := cfg.JournalPath()
	if err != nil {
		t.Fatalf("JournalPath: %v", err)
	}
	if journal != "/var/tmp/notes-journal.db" {
		t.Fatalf("unexpected journal path: %q", journal)
	}
	jsonPath, err := cfg.JSONPath()
	if err != nil {
		t.Fatalf("JSONPath: %v", err)
	}
	if want := filepath.Join(home, ".notepad", "actions.jsonl"); jsonPath != want {
		t.Fatalf("unexpected json path: got=%q want=%q", jsonPath, want)
	}
	if cfg.Placeholder() != "Enter note..." {
		t.Fatalf("blank placeholder should fall back, got %q", cfg.Placeholder())
	}
	if cfg.MaxWidth() != 20 {
		t.Fatalf("expected width clamp, got %d", cfg.MaxWidth())
	}
	if cfg.MarkdownPreview() {
		t.Fatalf("expected preview disabled")
	}
}

func TestLoadEmptySinkListDisablesActions(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "[actions]\nsinks = []\n")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sinks, err := cfg.ActionSinks()
	if err != nil {
		t.Fatalf("ActionSinks: %v", err)
	}
	if len(sinks) != 0 {
		t.Fatalf("expected no sinks, got %#v", sinks)
	}
}

func TestLoadRejectsUnknownSink(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "[actions]\nsinks = [\"syslog\"]\n")
	_, err := Load()
	if !errors.Is(err, ErrUnknownSink) {
		t.Fatalf("expected ErrUnknownSink, got %v", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "[logging\nlevel=")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResolveKeybindingsPath(t *testing.T) {
	home := isolate(t)

	cfg := Config{}
	path, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		t.Fatalf("ResolveKeybindingsPath default: %v", err)
	}
	if want := filepath.Join(home, ".notepad", "keybindings.json"); path != want {
		t.Fatalf("unexpected default path: got=%q want=%q", path, want)
	}

	cfg.UI.KeybindingsPath = "~/keys.json"
	path, err = cfg.ResolveKeybindingsPath()
	if err != nil {
		t.Fatalf("ResolveKeybindingsPath home: %v", err)
	}
	if want := filepath.Join(home, "keys.json"); path != want {
		t.Fatalf("unexpected home path: got=%q want=%q", path, want)
	}
}
