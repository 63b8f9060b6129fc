package core

// RuntimeConfig contains configuration passed to the engine drivers at startup.
// Drivers use this to size the play field and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers a 10x20 patch of the logical canvas.
const (
	CellPxW = 10.0
	CellPxH = 20.0
)

// Metrics describes the logical canvas the simulation runs on.
// All physical sizes in the engine are expressed in canvas pixels.
type Metrics struct {
	Width  float64 `json:"width"`  // Canvas width in pixels
	Height float64 `json:"height"` // Canvas height in pixels
	Scale  float64 `json:"scale"`  // Width relative to the design width
}

// NewMetrics builds display metrics for a canvas of the given size.
// Degenerate sizes are clamped to one pixel so the engine never divides by zero.
func NewMetrics(width, height, baseWidth float64) Metrics {
	width = max(width, 1)
	height = max(height, 1)
	if baseWidth <= 0 {
		baseWidth = width
	}
	return Metrics{
		Width:  width,
		Height: height,
		Scale:  width / baseWidth,
	}
}

// MetricsForScreen converts a terminal size into canvas metrics.
func MetricsForScreen(screenW, screenH int, baseWidth float64) Metrics {
	return NewMetrics(float64(screenW)*CellPxW, float64(screenH)*CellPxH, baseWidth)
}

// ToCell projects a canvas coordinate onto the terminal grid.
func ToCell(x, y float64) (int, int) {
	return int(x / CellPxW), int(y / CellPxH)
}
