package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Canvas: CanvasConfig{
			BaseWidth:  800,
			BaseHeight: 600,
		},
		Ball: BallConfig{
			Radius:      10,
			SpawnOffset: 50,
		},
		Paddle: PaddleConfig{
			Width:   240,
			Height:  15,
			KeyStep: 40,
		},
		Bricks: BrickGeometry{
			Height:     20,
			Padding:    10,
			OffsetTop:  50,
			OffsetLeft: 40,
			MinWidth:   22,
			AreaRatio:  0.55,
		},
		Slide: SlideConfig{
			StepPx: 1.5,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			TransitionMs: 1800,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
