package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing config file must not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	src := `
window_width = 800
per_crease_ms = 300
stagger_overlap_ms = 100
min_angle_deg = 30.0
state_path = "deck.yaml"
`
	path := filepath.Join(t.TempDir(), "cardfold.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.WindowWidth != 800 || cfg.MinAngleDeg != 30 || cfg.StatePath != "deck.yaml" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.perCrease() != 300*time.Millisecond || cfg.staggerOverlap() != 100*time.Millisecond {
		t.Errorf("Durations wrong: %v / %v", cfg.perCrease(), cfg.staggerOverlap())
	}
	// Unset keys keep their defaults.
	if cfg.WindowHeight != DefaultConfig().WindowHeight {
		t.Errorf("Unset key lost its default: %d", cfg.WindowHeight)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardfold.toml")
	if err := os.WriteFile(path, []byte("window_width = [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("Malformed config must error")
	}
}
