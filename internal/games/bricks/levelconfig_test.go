package bricks

import (
	"math"
	"testing"
)

func TestGenerateLevelConfig(t *testing.T) {
	tests := []struct {
		level int
		scale float64
		want  LevelConfig
	}{
		{1, 1, LevelConfig{RowCount: 5, ColumnCount: 7, Speed: 3.3, ScorePerBrick: 10}},
		{3, 1, LevelConfig{RowCount: 7, ColumnCount: 9, Speed: 4.9, ScorePerBrick: 30}},
		{10, 1, LevelConfig{RowCount: 14, ColumnCount: 16, Speed: 10.5, ScorePerBrick: 100}},
		{1, 0.5, LevelConfig{RowCount: 5, ColumnCount: 7, Speed: 1.65, ScorePerBrick: 10}},
	}

	for _, tt := range tests {
		got := GenerateLevelConfig(tt.level, tt.scale)
		if got.RowCount != tt.want.RowCount || got.ColumnCount != tt.want.ColumnCount {
			t.Errorf("level %d: grid = %dx%d, want %dx%d", tt.level,
				got.ColumnCount, got.RowCount, tt.want.ColumnCount, tt.want.RowCount)
		}
		if math.Abs(got.Speed-tt.want.Speed) > 1e-9 {
			t.Errorf("level %d scale %v: speed = %v, want %v", tt.level, tt.scale, got.Speed, tt.want.Speed)
		}
		if got.ScorePerBrick != tt.want.ScorePerBrick {
			t.Errorf("level %d: score per brick = %d, want %d", tt.level, got.ScorePerBrick, tt.want.ScorePerBrick)
		}
	}
}

func TestGenerateLevelConfigBelowOne(t *testing.T) {
	want := GenerateLevelConfig(1, 1)
	for _, level := range []int{0, -1, -100} {
		if got := GenerateLevelConfig(level, 1); got != want {
			t.Errorf("level %d: got %+v, want level 1 config %+v", level, got, want)
		}
	}
}

func TestLevelGrowth(t *testing.T) {
	prev := GenerateLevelConfig(1, 1)
	for level := 2; level <= 20; level++ {
		cfg := GenerateLevelConfig(level, 1)
		if cfg.BrickCount() <= prev.BrickCount() {
			t.Errorf("level %d has %d bricks, not more than level %d (%d)",
				level, cfg.BrickCount(), level-1, prev.BrickCount())
		}
		if cfg.Speed <= prev.Speed {
			t.Errorf("level %d speed %v not above %v", level, cfg.Speed, prev.Speed)
		}
		prev = cfg
	}
}
