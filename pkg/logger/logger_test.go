package logger

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := New(level, false)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", level, err)
		}
		_ = l.Sync()
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty", false); err == nil {
		t.Error("expected error for unknown level, got nil")
	}
}
