package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.BudgetFile = "/tmp/my.db"
	cfg.General.DefaultDays = 90

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.BudgetFile != "/tmp/my.db" || got.General.DefaultDays != 90 {
		t.Fatalf("round trip = %+v", got.General)
	}
}

func TestDefaultBudgetPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := DefaultConfig()
	want := filepath.Join(dataDir, "hbudget", "hbudget.db")
	if got := DefaultBudgetPath(cfg); got != want {
		t.Fatalf("DefaultBudgetPath = %q, want %q", got, want)
	}

	cfg.General.BudgetFile = "/custom/path.db"
	if got := DefaultBudgetPath(cfg); got != "/custom/path.db" {
		t.Fatalf("configured path ignored: %q", got)
	}
}
