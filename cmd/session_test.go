package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSession(t *testing.T) {
	dir := t.TempDir()

	t.Run("no session", func(t *testing.T) {
		if _, err := loadSession(dir); err == nil {
			t.Error("loadSession on empty dir succeeded, want error")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if err := saveSession(dir, "abc123"); err != nil {
			t.Fatalf("saveSession failed: %v", err)
		}
		id, err := loadSession(dir)
		if err != nil {
			t.Fatalf("loadSession failed: %v", err)
		}
		if id != "abc123" {
			t.Errorf("loadSession = %q, want %q", id, "abc123")
		}
	})

	t.Run("logout is unconditional", func(t *testing.T) {
		if err := clearSession(dir); err != nil {
			t.Fatalf("clearSession failed: %v", err)
		}
		if _, err := loadSession(dir); err == nil {
			t.Error("loadSession after clear succeeded, want error")
		}
		// Clearing an already closed session is fine.
		if err := clearSession(dir); err != nil {
			t.Errorf("second clearSession failed: %v", err)
		}
	})

	t.Run("corrupt session file", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, sessionFile), []byte("{oops"), 0o600); err != nil {
			t.Fatalf("seed corrupt session: %v", err)
		}
		if _, err := loadSession(dir); err == nil {
			t.Error("loadSession on corrupt file succeeded, want error")
		}
	})
}

func TestGlamourStyle(t *testing.T) {
	if got := glamourStyle("Light"); got != "light" {
		t.Errorf("glamourStyle(Light) = %q", got)
	}
	for _, theme := range []string{"Dark", "Blue", "Green", "Purple", "anything"} {
		if got := glamourStyle(theme); got != "dark" {
			t.Errorf("glamourStyle(%s) = %q, want dark", theme, got)
		}
	}
}
