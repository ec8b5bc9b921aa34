package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseMirror(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMirrorConfig()) {
		t.Errorf("embedded defaults differ from DefaultMirrorConfig():\n got %+v\nwant %+v", cfg, DefaultMirrorConfig())
	}
}

func TestLoadMirrorCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("lane:\n  speed: 8\nsprites:\n  match_probability: 1\n  catalog:\n    - { id: owl, glyph: O }\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMirror(path)
	if err != nil {
		t.Fatalf("LoadMirror() failed: %v", err)
	}

	if cfg.Lane.Speed != 8 {
		t.Errorf("Speed = %v, expected 8", cfg.Lane.Speed)
	}
	if cfg.Sprites.MatchProbability != 1 {
		t.Errorf("MatchProbability = %v, expected 1", cfg.Sprites.MatchProbability)
	}
	if len(cfg.Sprites.Catalog) != 1 || cfg.Sprites.Catalog[0].ID != "owl" {
		t.Errorf("Catalog = %+v, expected only owl", cfg.Sprites.Catalog)
	}
	// Keys not in the file keep their defaults.
	if cfg.Lane.FrameWidth != 2 || cfg.Timing.BackgroundInterval != 3 {
		t.Errorf("defaults not preserved: width %v, background interval %v",
			cfg.Lane.FrameWidth, cfg.Timing.BackgroundInterval)
	}
}

func TestLoadMirrorErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lane: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"invalid yaml", bad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMirror(tc.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMirrorUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".mirrorlane", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mirror.yaml"), []byte("sprites:\n  slots: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMirror("")
	if err != nil {
		t.Fatalf("LoadMirror() failed: %v", err)
	}
	if cfg.Sprites.Slots != 4 {
		t.Errorf("Slots = %d, expected 4 from user config", cfg.Sprites.Slots)
	}
}

func TestLoadMirrorFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMirror("")
	if err != nil {
		t.Fatalf("LoadMirror() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMirrorConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}
