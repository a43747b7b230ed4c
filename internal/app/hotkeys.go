package app

type HotkeyContext int

const (
	HotkeyGlobal HotkeyContext = iota
	HotkeyList
	HotkeyInput
)

type Hotkey struct {
	Key      string
	Command  string
	Label    string
	Context  HotkeyContext
	Priority int
}

type HotkeyResolver interface {
	ActiveContexts(*Model) []HotkeyContext
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Key: "tab", Command: KeyCommandToggleFocus, Label: "focus", Context: HotkeyGlobal, Priority: 10},
		{Key: "ctrl+c", Label: "quit", Context: HotkeyGlobal, Priority: 91},
		{Key: "q", Command: KeyCommandQuit, Label: "quit", Context: HotkeyList, Priority: 90},
		{Key: "j/k", Label: "move", Context: HotkeyList, Priority: 20},
		{Key: "e", Command: KeyCommandEditNote, Label: "edit", Context: HotkeyList, Priority: 21},
		{Key: "d", Command: KeyCommandDisableNote, Label: "disable", Context: HotkeyList, Priority: 22},
		{Key: "y", Command: KeyCommandCopyNote, Label: "copy", Context: HotkeyList, Priority: 23},
		{Key: "i", Command: KeyCommandFocusInput, Label: "write", Context: HotkeyList, Priority: 24},
		{Key: "p", Command: KeyCommandTogglePreview, Label: "preview", Context: HotkeyList, Priority: 30},
		{Key: "l", Command: KeyCommandToggleActivity, Label: "log", Context: HotkeyList, Priority: 31},
		{Key: "enter", Command: KeyCommandInputSubmit, Label: "submit", Context: HotkeyInput, Priority: 11},
		{Key: "ctrl+u", Command: KeyCommandInputClear, Label: "clear", Context: HotkeyInput, Priority: 12},
		{Key: "esc", Command: KeyCommandInputBlur, Label: "list", Context: HotkeyInput, Priority: 13},
	}
}

// ResolveHotkeys replaces the displayed key of every command-bound hotkey
// with its effective binding.
func ResolveHotkeys(hotkeys []Hotkey, bindings *Keybindings) []Hotkey {
	out := make([]Hotkey, 0, len(hotkeys))
	for _, hotkey := range hotkeys {
		if hotkey.Command != "" && bindings != nil {
			hotkey.Key = bindings.KeyFor(hotkey.Command, hotkey.Key)
		}
		out = append(out, hotkey)
	}
	return out
}

type DefaultHotkeyResolver struct{}

func (r DefaultHotkeyResolver) ActiveContexts(m *Model) []HotkeyContext {
	contexts := []HotkeyContext{HotkeyGlobal}
	if m == nil {
		return contexts
	}
	if m.focus == focusInput {
		return append(contexts, HotkeyInput)
	}
	return append(contexts, HotkeyList)
}
