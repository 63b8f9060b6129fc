// Package config provides YAML-based configuration loading for the brick
// breaker engine and its drivers.
package config

// BricksConfig contains all tunable geometry and timing for the game.
// Pixel sizes are expressed at the design canvas width and are multiplied by
// the display scale factor at runtime.
type BricksConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BrickGeometry  `yaml:"bricks"`
	Slide    SlideConfig    `yaml:"slide"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// CanvasConfig defines the design canvas that the scale factor is relative to.
type CanvasConfig struct {
	BaseWidth  float64 `yaml:"base_width"`
	BaseHeight float64 `yaml:"base_height"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance above the canvas bottom for new balls
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	KeyStep float64 `yaml:"key_step"` // Keyboard nudge per key press
}

// BrickGeometry defines brick layout parameters.
type BrickGeometry struct {
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	MinWidth   float64 `yaml:"min_width"`
	AreaRatio  float64 `yaml:"area_ratio"` // Fraction of the canvas height bricks may occupy
}

// SlideConfig defines the sliding window animation.
type SlideConfig struct {
	StepPx float64 `yaml:"step_px"` // Offset gained per 60 Hz frame
}

// GameplayConfig defines lives and transition timing.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	TransitionMs float64 `yaml:"transition_ms"`
}
