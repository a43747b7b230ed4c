package app

import (
	"strings"
	"testing"
)

func TestHotkeyRendererFollowsFocus(t *testing.T) {
	m := NewModel(Options{})
	m.focus = focusInput
	out := m.hotkeys.Render(&m)
	if !strings.Contains(out, "enter submit") || strings.Contains(out, "d disable") {
		t.Fatalf("unexpected input hotkeys: %q", out)
	}

	m.focus = focusList
	out = m.hotkeys.Render(&m)
	if !strings.Contains(out, "d disable") || strings.Contains(out, "enter submit") {
		t.Fatalf("unexpected list hotkeys: %q", out)
	}
	if !strings.HasPrefix(out, "tab focus") {
		t.Fatalf("expected global hotkeys first, got %q", out)
	}
}

func TestHotkeyRendererShowsReboundKeys(t *testing.T) {
	m := NewModel(Options{Keybindings: NewKeybindings(map[string]string{KeyCommandDisableNote: "x"})})
	m.focus = focusList
	out := m.hotkeys.Render(&m)
	if !strings.Contains(out, "x disable") {
		t.Fatalf("expected rebound key in hotkeys, got %q", out)
	}
}

func TestFilterHotkeysOrdersByPriority(t *testing.T) {
	hotkeys := []Hotkey{
		{Key: "b", Label: "second", Context: HotkeyList, Priority: 2},
		{Key: "a", Label: "first", Context: HotkeyList, Priority: 1},
		{Key: "z", Label: "hidden", Context: HotkeyInput, Priority: 0},
	}
	got := FilterHotkeys(hotkeys, []HotkeyContext{HotkeyList})
	if len(got) != 2 || got[0].Key != "a" || got[1].Key != "b" {
		t.Fatalf("unexpected filtered hotkeys: %#v", got)
	}
	if FilterHotkeys(hotkeys, nil) != nil {
		t.Fatalf("expected no hotkeys without contexts")
	}
}
