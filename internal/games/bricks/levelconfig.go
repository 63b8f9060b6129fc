// Package bricks implements a brick breaker engine with procedurally
// generated levels and a sliding brick window for levels that are taller than
// the play area.
//
// The engine makes no drawing calls and owns no timers: a driver calls Tick
// once per frame, forwards pointer input through MovePaddle, reports display
// changes through Resize and reads Frame to draw.
package bricks

// LevelConfig holds the parameters derived from a level number.
type LevelConfig struct {
	RowCount      int     `json:"rowCount"`
	ColumnCount   int     `json:"columnCount"`
	Speed         float64 `json:"speed"` // Initial ball speed in canvas px per frame
	ScorePerBrick int     `json:"scorePerBrick"`
}

// GenerateLevelConfig derives grid size, ball speed and scoring for a level.
// Levels below 1 are treated as level 1.
func GenerateLevelConfig(level int, scale float64) LevelConfig {
	if level < 1 {
		level = 1
	}
	return LevelConfig{
		RowCount:      4 + level,
		ColumnCount:   6 + level,
		Speed:         (2.5 + float64(level)*0.8) * scale,
		ScorePerBrick: 10 * level,
	}
}

// BrickCount returns the number of bricks a level starts with.
func (c LevelConfig) BrickCount() int {
	return c.RowCount * c.ColumnCount
}
