package footprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store layout: one directory per user under the data path, holding the
// activity document and the preferences document.
const (
	storeFile = "carbon_footprint.json"
	prefsFile = "preferences.json"
)

// StorePath returns the activity document path for a user.
func StorePath(path, user string) string {
	return filepath.Join(path, user, storeFile)
}

// PrefsPath returns the preferences document path for a user.
func PrefsPath(path, user string) string {
	return filepath.Join(path, user, prefsFile)
}

// FindLedger loads a user's ledger from the data path.
//
// A missing store is not an error: the user simply has no history yet, and an
// empty ledger is returned. An unreadable or corrupt store is reported as an
// ErrStorage so the caller can decide to fall back to an empty store.
func FindLedger(path, user string) (*Ledger, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: empty user name", ErrInvalidInput)
	}

	ledger, err := loadStoreFile(StorePath(path, user))
	if err != nil {
		return nil, err
	}
	ledger.name = user

	prefs, err := loadPrefsFile(PrefsPath(path, user))
	if err != nil {
		// Losing preferences is benign, losing records is not: fall back to
		// defaults here, but surface store corruption to the caller above.
		log.Printf("warning: %v, using default preferences", err)
		prefs = DefaultPreferences()
	}
	ledger.prefs = prefs
	return ledger, nil
}

func loadStoreFile(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open store %q: %v", ErrStorage, filename, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode store %q: %v", ErrStorage, filename, err)
	}
	return ledger, nil
}

func loadPrefsFile(filename string) (Preferences, error) {
	content, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("%w: could not read preferences %q: %v", ErrStorage, filename, err)
	}
	prefs := DefaultPreferences()
	if err := json.Unmarshal(content, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("%w: could not decode preferences %q: %v", ErrStorage, filename, err)
	}
	return prefs, nil
}

// SaveLedger rewrites the user's whole activity document atomically: the new
// document is written to a temporary file in the same directory, then renamed
// over the old one. Readers never observe a partial write.
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save a ledger with an empty user name")
	}
	return writeFileAtomic(StorePath(path, ledger.Name()), func(w io.Writer) error {
		return EncodeLedger(w, ledger)
	})
}

// SavePreferences rewrites the user's preferences document atomically.
func SavePreferences(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save preferences with an empty user name")
	}
	return writeFileAtomic(PrefsPath(path, ledger.Name()), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ledger.prefs)
	})
}

// writeFileAtomic writes a whole document through a temp file and a rename.
func writeFileAtomic(filename string, write func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create directory %q: %v", ErrStorage, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: could not create temp file in %q: %v", ErrStorage, dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: could not write %q: %v", ErrStorage, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: could not close temp file for %q: %v", ErrStorage, filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("%w: could not replace %q: %v", ErrStorage, filename, err)
	}
	return nil
}
