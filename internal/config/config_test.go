package config

import (
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Limit int `env:"COUNTDOWN_TEST_LIMIT" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 3 {
		t.Fatalf("expected default limit 3, got %d", cfg.Limit)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("COUNTDOWN_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COUNTDOWN_DIR", "")
	t.Setenv("COUNTDOWN_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if want := filepath.Join(home, DefaultFileName); cfg.Path() != want {
		t.Fatalf("expected path %q, got %q", want, cfg.Path())
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COUNTDOWN_DIR", dir)
	t.Setenv("COUNTDOWN_FILE", "events.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if want := filepath.Join(dir, "events.json"); cfg.Path() != want {
		t.Fatalf("expected path %q, got %q", want, cfg.Path())
	}
}
