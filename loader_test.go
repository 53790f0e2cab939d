package footprint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindLedgerMissingStore(t *testing.T) {
	dir := t.TempDir()

	l, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatalf("FindLedger() on a fresh path error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("fresh ledger has %d records, want 0", l.Len())
	}
	if l.Name() != "alice" {
		t.Errorf("ledger name = %q, want alice", l.Name())
	}
	if got := l.Preferences(); got.DietType != "omnivore" || got.HomeType != "apartment" {
		t.Errorf("fresh ledger preferences = %+v, want defaults", got)
	}
}

func TestFindLedgerEmptyUser(t *testing.T) {
	if _, err := FindLedger(t.TempDir(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("FindLedger(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestFindLedgerCorruptStore(t *testing.T) {
	dir := t.TempDir()
	store := StorePath(dir, "alice")
	if err := os.MkdirAll(filepath.Dir(store), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := FindLedger(dir, "alice"); !errors.Is(err, ErrStorage) {
		t.Errorf("FindLedger() on a corrupt store error = %v, want ErrStorage", err)
	}
}

func TestFindLedgerCorruptPrefsFallsBack(t *testing.T) {
	dir := t.TempDir()
	prefs := PrefsPath(dir, "alice")
	if err := os.MkdirAll(filepath.Dir(prefs), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(prefs, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Damaged preferences are benign: the ledger still loads with defaults.
	l, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatalf("FindLedger() error: %v", err)
	}
	if l.Preferences().DietType != "omnivore" {
		t.Errorf("preferences = %+v, want defaults", l.Preferences())
	}
}

func TestSaveLedgerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := DefaultFactors()

	l, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatal(err)
	}
	l.Append(
		mustValidate(t, NewTransport(NewDate(2025, 6, 15), "car", 15.5, 1), f),
		mustValidate(t, NewMeal(NewDate(2025, 6, 14), Item("rice", 0.2, false, false)), f),
	)
	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}

	// The store lands at the documented path.
	if _, err := os.Stat(filepath.Join(dir, "alice", "carbon_footprint.json")); err != nil {
		t.Fatalf("store file missing: %v", err)
	}

	back, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatalf("FindLedger() after save error: %v", err)
	}
	if back.Len() != 2 {
		t.Errorf("reloaded ledger has %d records, want 2", back.Len())
	}
}

func TestSaveLedgerUnnamed(t *testing.T) {
	if err := SaveLedger(t.TempDir(), NewLedger()); err == nil {
		t.Error("SaveLedger() accepted a ledger without a user name")
	}
}

func TestSavePreferences(t *testing.T) {
	dir := t.TempDir()

	l, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Preferences().Merge(map[string]any{"diet_type": "vegetarian"}); err != nil {
		t.Fatal(err)
	}
	if err := SavePreferences(dir, l); err != nil {
		t.Fatalf("SavePreferences() error: %v", err)
	}

	back, err := FindLedger(dir, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if back.Preferences().DietType != "vegetarian" {
		t.Errorf("reloaded diet_type = %q, want vegetarian", back.Preferences().DietType)
	}
}
