package app

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func swapClipboard(t *testing.T, writeAll, writeOSC52 func(string) error) {
	t.Helper()
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})
	clipboardWriteAll = writeAll
	clipboardWriteOSC52 = writeOSC52
}

func TestCopyTextToClipboardUsesSystemBackend(t *testing.T) {
	fallbackCalled := false
	swapClipboard(t, func(string) error { return nil }, func(string) error {
		fallbackCalled = true
		return nil
	})

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodSystem {
		t.Fatalf("expected system method, got %v", method)
	}
	if fallbackCalled {
		t.Fatalf("expected no OSC52 fallback call")
	}
}

func TestCopyTextToClipboardFallsBackToOSC52(t *testing.T) {
	swapClipboard(t, func(string) error { return errors.New("exit status 1") }, func(string) error { return nil })

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodOSC52 {
		t.Fatalf("expected OSC52 method, got %v", method)
	}
}

func TestCopyTextToClipboardReportsBothFailures(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	swapClipboard(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error { return errors.New("OSC52 unavailable for this terminal") },
	)

	_, err := copyTextToClipboard("hello")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "no GUI clipboard available") {
		t.Fatalf("expected humanized system error, got %v", err)
	}
	if !strings.Contains(err.Error(), "OSC52 unavailable") {
		t.Fatalf("expected OSC52 error, got %v", err)
	}
}

func TestWriteOSC52SequenceEncodesText(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("Buy milk"))

	var plain bytes.Buffer
	if err := writeOSC52Sequence(&plain, "Buy milk", "xterm-256color", false); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	if !strings.HasPrefix(plain.String(), "\x1b]52;") || !strings.Contains(plain.String(), encoded) {
		t.Fatalf("unexpected sequence %q", plain.String())
	}

	var tmux bytes.Buffer
	if err := writeOSC52Sequence(&tmux, "Buy milk", "screen-256color", true); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	if !strings.HasPrefix(tmux.String(), "\x1bPtmux;") {
		t.Fatalf("expected tmux passthrough, got %q", tmux.String())
	}
}

func TestShouldAttemptOSC52(t *testing.T) {
	t.Setenv("NOTEPAD_DISABLE_OSC52", "")
	t.Setenv("TERM", "xterm")
	if !shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 attempt for xterm")
	}
	t.Setenv("TERM", "dumb")
	if shouldAttemptOSC52() {
		t.Fatalf("expected no OSC52 for dumb terminal")
	}
	t.Setenv("TERM", "xterm")
	t.Setenv("NOTEPAD_DISABLE_OSC52", "yes")
	if shouldAttemptOSC52() {
		t.Fatalf("expected opt-out to disable OSC52")
	}
}
