package app

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestShowToastIgnoresBlankMessages(t *testing.T) {
	m := NewModel(Options{})
	m.showInfoToast("   ")
	if m.toastText != "" {
		t.Fatalf("expected no toast, got %q", m.toastText)
	}
}

func TestHandleTickClearsExpiredToast(t *testing.T) {
	m := NewModel(Options{})
	m.showWarningToast("note 1 is disabled")

	if cmd := m.handleTick(tickMsg(time.Now())); cmd == nil {
		t.Fatalf("expected tick to reschedule")
	}
	if m.toastText == "" {
		t.Fatalf("expected toast to survive before expiry")
	}

	m.handleTick(tickMsg(time.Now().Add(toastDuration + time.Millisecond)))
	if m.toastText != "" {
		t.Fatalf("expected toast to clear after expiry, got %q", m.toastText)
	}
	if m.toastLevel != toastLevelInfo {
		t.Fatalf("expected level reset after clear, got %v", m.toastLevel)
	}
}

func TestToastLineTruncatesAndAligns(t *testing.T) {
	m := NewModel(Options{})
	m.showErrorToast(strings.Repeat("copy failed ", 10))
	line := m.toastLine(40)
	if w := xansi.StringWidth(line); w != 40 {
		t.Fatalf("expected toast line padded to width, got %d", w)
	}
	if !strings.HasSuffix(strings.TrimRight(xansi.Strip(line), " "), "…") {
		t.Fatalf("expected truncated toast, got %q", xansi.Strip(line))
	}
	if m.toastStyle().GetBackground() != toastErrorStyle.GetBackground() {
		t.Fatalf("expected error style")
	}
}
