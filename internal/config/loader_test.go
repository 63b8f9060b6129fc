package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BricksConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultBricksConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBricksConfig())
	}
}

func TestLoadBricksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("slide:\n  step_px: 3\ngameplay:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBricks(path)
	if err != nil {
		t.Fatalf("LoadBricks() failed: %v", err)
	}

	if cfg.Slide.StepPx != 3 {
		t.Errorf("Slide.StepPx = %v, expected 3", cfg.Slide.StepPx)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Gameplay.Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	// Unset fields keep their defaults
	if cfg.Paddle.Width != 240 {
		t.Errorf("Paddle.Width = %v, expected default 240", cfg.Paddle.Width)
	}
}

func TestLoadBricksMissingCustomPath(t *testing.T) {
	cfg, err := LoadBricks(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadBricks() should fail for a missing custom path")
	}
	if cfg != DefaultBricksConfig() {
		t.Error("failed load should still return usable defaults")
	}
}

func TestLoadBricksMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ball: [this is: not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBricks(path)
	if err == nil {
		t.Fatal("LoadBricks() should fail for malformed YAML")
	}
	if cfg != DefaultBricksConfig() {
		t.Error("malformed config should fall back to defaults")
	}
}

func TestSanitize(t *testing.T) {
	cfg := DefaultBricksConfig()
	cfg.Ball.Radius = 0
	cfg.Bricks.MinWidth = -4
	cfg.Bricks.AreaRatio = 3
	cfg.Gameplay.Lives = 0
	cfg.Slide.StepPx = -1

	got := cfg.Sanitize()
	if got != DefaultBricksConfig() {
		t.Errorf("Sanitize() = %+v, expected defaults restored", got)
	}
}
