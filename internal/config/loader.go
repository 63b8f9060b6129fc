package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "bricks.yaml"

// LoadBricks loads the game configuration.
// Search order: customPath -> ~/.bricks/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default
func LoadBricks(customPath string) (BricksConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultBricksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBricksConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.Sanitize(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.Sanitize(), nil
			}
			cfg = DefaultBricksConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.Sanitize(), nil
		}
		cfg = DefaultBricksConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBricksYAML, &cfg); err != nil {
		return DefaultBricksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.Sanitize(), nil
}

// Sanitize replaces non-positive values with their defaults so that a
// hand-edited file can never produce a degenerate layout.
func (c BricksConfig) Sanitize() BricksConfig {
	d := DefaultBricksConfig()

	positive := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}

	positive(&c.Canvas.BaseWidth, d.Canvas.BaseWidth)
	positive(&c.Canvas.BaseHeight, d.Canvas.BaseHeight)
	positive(&c.Ball.Radius, d.Ball.Radius)
	positive(&c.Ball.SpawnOffset, d.Ball.SpawnOffset)
	positive(&c.Paddle.Width, d.Paddle.Width)
	positive(&c.Paddle.Height, d.Paddle.Height)
	positive(&c.Paddle.KeyStep, d.Paddle.KeyStep)
	positive(&c.Bricks.Height, d.Bricks.Height)
	positive(&c.Bricks.MinWidth, d.Bricks.MinWidth)
	positive(&c.Slide.StepPx, d.Slide.StepPx)
	positive(&c.Gameplay.TransitionMs, d.Gameplay.TransitionMs)

	if c.Bricks.Padding < 0 {
		c.Bricks.Padding = d.Bricks.Padding
	}
	if c.Bricks.OffsetTop < 0 {
		c.Bricks.OffsetTop = d.Bricks.OffsetTop
	}
	if c.Bricks.OffsetLeft < 0 {
		c.Bricks.OffsetLeft = d.Bricks.OffsetLeft
	}
	if c.Bricks.AreaRatio <= 0 || c.Bricks.AreaRatio > 1 {
		c.Bricks.AreaRatio = d.Bricks.AreaRatio
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = d.Gameplay.Lives
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", "configs", filename)
}
