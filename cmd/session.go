package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// The session file records which account is logged in. The tracker knows only
// two session states: logged-out (no file) and logged-in (file with an
// account id). Logout is unconditional.
const sessionFile = "session.json"

type session struct {
	AccountID string `json:"account_id"`
}

func saveSession(dir, accountID string) error {
	b, err := json.MarshalIndent(session{AccountID: accountID}, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, sessionFile), append(b, '\n'), 0o600); err != nil {
		return fmt.Errorf("could not write session: %w", err)
	}
	return nil
}

func loadSession(dir string) (accountID string, err error) {
	b, err := os.ReadFile(filepath.Join(dir, sessionFile))
	if err != nil {
		return "", fmt.Errorf("no open session, use login or register first")
	}
	var s session
	if err := json.Unmarshal(b, &s); err != nil || s.AccountID == "" {
		return "", fmt.Errorf("no open session, use login or register first")
	}
	return s.AccountID, nil
}

func clearSession(dir string) error {
	err := os.Remove(filepath.Join(dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not clear session: %w", err)
	}
	return nil
}
