package app

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	KeyCommandQuit           = "ui.quit"
	KeyCommandToggleFocus    = "ui.toggleFocus"
	KeyCommandFocusInput     = "ui.focusInput"
	KeyCommandMoveUp         = "ui.moveUp"
	KeyCommandMoveDown       = "ui.moveDown"
	KeyCommandEditNote       = "ui.editNote"
	KeyCommandDisableNote    = "ui.disableNote"
	KeyCommandCopyNote       = "ui.copyNote"
	KeyCommandTogglePreview  = "ui.togglePreview"
	KeyCommandToggleActivity = "ui.toggleActivity"
	KeyCommandInputSubmit    = "ui.inputSubmit"
	KeyCommandInputClear     = "ui.inputClear"
	KeyCommandInputBlur      = "ui.inputBlur"
	KeyCommandNoteAdd        = "ui.addNote" // legacy alias; normalized to ui.focusInput
)

var defaultKeybindingByCommand = map[string]string{
	KeyCommandQuit:           "q",
	KeyCommandToggleFocus:    "tab",
	KeyCommandFocusInput:     "i",
	KeyCommandMoveUp:         "k",
	KeyCommandMoveDown:       "j",
	KeyCommandEditNote:       "e",
	KeyCommandDisableNote:    "d",
	KeyCommandCopyNote:       "y",
	KeyCommandTogglePreview:  "p",
	KeyCommandToggleActivity: "l",
	KeyCommandInputSubmit:    "enter",
	KeyCommandInputClear:     "ctrl+u",
	KeyCommandInputBlur:      "esc",
}

type Keybindings struct {
	byCommand map[string]string
	remap     map[string]string
}

type keybindingEntry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

// NewKeybindings applies overrides on top of the defaults. A rebound key is
// remapped to the default key of its command so reducers only match the
// canonical keys; keys claimed by two commands are dropped from the remap.
func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string]string, len(defaultKeybindingByCommand))
	for command, key := range defaultKeybindingByCommand {
		byCommand[command] = key
	}
	for command, key := range normalizeKeybindingOverrides(overrides) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	remap := map[string]string{}
	ambiguous := map[string]struct{}{}
	for _, command := range KnownKeybindingCommands() {
		defaultKey := defaultKeybindingByCommand[command]
		key := byCommand[command]
		if strings.TrimSpace(key) == "" || key == defaultKey {
			continue
		}
		if _, bad := ambiguous[key]; bad {
			continue
		}
		if existing, ok := remap[key]; ok && existing != defaultKey {
			delete(remap, key)
			ambiguous[key] = struct{}{}
			continue
		}
		remap[key] = defaultKey
	}
	return &Keybindings{
		byCommand: byCommand,
		remap:     remap,
	}
}

func LoadKeybindings(path string) (*Keybindings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultKeybindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeybindings(), nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return DefaultKeybindings(), nil
	}
	overrides, err := parseKeybindingOverrides(data)
	if err != nil {
		return nil, err
	}
	return NewKeybindings(overrides), nil
}

func (k *Keybindings) KeyFor(command, fallback string) string {
	command = normalizeKeybindingCommand(command)
	if command == "" {
		return fallback
	}
	if k != nil {
		if key := strings.TrimSpace(k.byCommand[command]); key != "" {
			return key
		}
	}
	if key := strings.TrimSpace(defaultKeybindingByCommand[command]); key != "" {
		return key
	}
	return fallback
}

func (k *Keybindings) Bindings() map[string]string {
	out := make(map[string]string, len(defaultKeybindingByCommand))
	for _, command := range KnownKeybindingCommands() {
		out[command] = k.KeyFor(command, defaultKeybindingByCommand[command])
	}
	return out
}

func (k *Keybindings) Remap(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}
	if k != nil {
		if canonical, ok := k.remap[key]; ok && canonical != "" {
			return canonical
		}
	}
	return key
}

func (m *Model) applyKeybindings(bindings *Keybindings) {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	m.keybindings = bindings
	m.hotkeys = NewHotkeyRenderer(ResolveHotkeys(DefaultHotkeys(), bindings), DefaultHotkeyResolver{})
}

func (m *Model) keyString(msg tea.KeyMsg) string {
	key := msg.String()
	if m == nil || m.keybindings == nil {
		return key
	}
	return m.keybindings.Remap(key)
}

func (m *Model) keyForCommand(command, fallback string) string {
	if m == nil || m.keybindings == nil {
		return fallback
	}
	return m.keybindings.KeyFor(command, fallback)
}

// keyMatchesCommand reports whether msg triggers command. A rebound command
// no longer answers to its default key.
func (m *Model) keyMatchesCommand(msg tea.KeyMsg, command, fallback string) bool {
	bound := strings.TrimSpace(m.keyForCommand(command, fallback))
	canonical := strings.TrimSpace(fallback)
	if bound != "" && strings.TrimSpace(msg.String()) == bound {
		return true
	}
	if bound != "" && bound != canonical {
		return false
	}
	return canonical != "" && strings.TrimSpace(m.keyString(msg)) == canonical
}

func (m *Model) keyMatchesOverriddenCommand(msg tea.KeyMsg, command, fallback string) bool {
	bound := strings.TrimSpace(m.keyForCommand(command, fallback))
	canonical := strings.TrimSpace(fallback)
	if bound == "" || bound == canonical {
		return false
	}
	return strings.TrimSpace(msg.String()) == bound
}

func parseKeybindingOverrides(data []byte) (map[string]string, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil
	}
	raw := map[string]string{}
	if data[0] == '[' {
		var entries []keybindingEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		for _, entry := range entries {
			raw[entry.Command] = entry.Key
		}
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := map[string]string{}
	for command, key := range raw {
		command = normalizeKeybindingCommand(command)
		if command == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[command] = key
	}
	return out, nil
}

func normalizeKeybindingCommand(command string) string {
	command = strings.TrimSpace(command)
	switch command {
	case KeyCommandNoteAdd:
		return KeyCommandFocusInput
	default:
		return command
	}
}

func normalizeKeybindingOverrides(overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return nil
	}
	normalized := make(map[string]string, len(overrides))
	for command, key := range overrides {
		command = normalizeKeybindingCommand(command)
		if command == "" {
			continue
		}
		normalized[command] = key
	}
	return normalized
}

func KnownKeybindingCommands() []string {
	keys := make([]string, 0, len(defaultKeybindingByCommand))
	for command := range defaultKeybindingByCommand {
		keys = append(keys, command)
	}
	sort.Strings(keys)
	return keys
}
