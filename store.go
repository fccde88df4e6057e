package finman

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The store keeps three independent whole-file JSON documents under one data
// directory. Each document is loaded entirely at access time and rewritten
// entirely on save; there is no partial write and no cross-process locking,
// since only one session ever runs against a given directory.
const (
	// AccountsFile maps account identifiers to profiles with embedded ledgers.
	AccountsFile = "users.json"
	// SettingsFile holds the installation-wide settings.
	SettingsFile = "settings.json"
	// SnapshotFile holds a consolidated export of every account's ledger,
	// written by the fmt command. The account flow itself never reads it.
	SnapshotFile = "finance_data.json"
)

// OpenRegistry loads the accounts document from the data directory.
//
// A missing file is a first run and a corrupt file is treated the same way:
// both load as an empty registry, so the caller never sees a raw read error.
// A corrupt document is logged before being ignored.
func OpenRegistry(dir string) *Registry {
	r := NewRegistry()
	r.dir = dir
	if err := loadDocument(dir, AccountsFile, r); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: ignoring unreadable accounts file in %q: %v", dir, err)
		}
		r.accounts = make(map[string]*Account)
	}
	return r
}

func saveAccounts(dir string, r *Registry) error {
	return writeDocument(dir, AccountsFile, r)
}

// LoadSettings loads the settings document, falling back to DefaultSettings
// when the file is absent or does not parse.
func LoadSettings(dir string) Settings {
	s := DefaultSettings()
	if err := loadDocument(dir, SettingsFile, &s); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: ignoring unreadable settings file in %q: %v", dir, err)
		}
		return DefaultSettings()
	}
	return s
}

// SaveSettings rewrites the settings document. The values are persisted as
// given: constraining theme and language to the known sets is the caller's
// responsibility (ParseTheme, ParseLanguage).
func SaveSettings(dir string, s Settings) error {
	return writeDocument(dir, SettingsFile, s)
}

// SaveSnapshot exports a consolidated view of every account's ledger, keyed
// by email, into the snapshot document.
func SaveSnapshot(dir string, r *Registry) error {
	snapshot := make(map[string]*Ledger)
	for a := range r.Accounts() {
		snapshot[a.Email] = a.Ledger
	}
	return writeDocument(dir, SnapshotFile, snapshot)
}

// loadDocument reads and decodes one store document into v.
func loadDocument(dir, name string, v any) error {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not decode %s: %w", name, err)
	}
	return nil
}

// writeDocument encodes v as indented UTF-8 JSON and atomically replaces the
// named document, writing to a temporary file in the same directory and
// renaming it over the target so a crash can never leave a truncated store.
func writeDocument(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory %q: %v: %w", dir, err, ErrPersistence)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %v: %w", name, err, ErrPersistence)
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %s: %v: %w", name, err, ErrPersistence)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write %s: %v: %w", name, err, ErrPersistence)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close %s: %v: %w", name, err, ErrPersistence)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace %s: %v: %w", name, err, ErrPersistence)
	}
	return nil
}
