package config

import (
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Fatalf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Daemon.Addr != "127.0.0.1:8788" {
		t.Fatalf("Addr = %q, want 127.0.0.1:8788", cfg.Daemon.Addr)
	}
	if cfg.Daemon.PollIntervalSec != 30 {
		t.Fatalf("PollIntervalSec = %d, want 30", cfg.Daemon.PollIntervalSec)
	}
	if Exists() {
		t.Fatal("Exists() = true with no config on disk")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "₹"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Daemon.PollIntervalSec = 10

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
	if got.General.Currency != "₹" {
		t.Fatalf("Currency = %q, want ₹", got.General.Currency)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
	if got.Daemon.PollIntervalSec != 10 {
		t.Fatalf("PollIntervalSec = %d, want 10", got.Daemon.PollIntervalSec)
	}
}
