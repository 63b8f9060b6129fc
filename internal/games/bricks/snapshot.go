package bricks

import "math"

// Snapshot is a flat copy of the simulation state used to compare runs.
// Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Lives     int
	Level     int
	Remaining int

	RowStart int
	RowEnd   int
	Sliding  bool
	Offset   uint64

	BallX  uint64
	BallY  uint64
	BallDX uint64
	BallDY uint64

	PaddleX uint64

	// Flattened column-major, 1 for alive and 0 for broken
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.grid.Total())
	for c := range g.grid.Columns {
		for r := range g.grid.Rows {
			if g.grid.Bricks[c][r].Alive() {
				brickData = append(brickData, 1)
			} else {
				brickData = append(brickData, 0)
			}
		}
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.session.Score,
		Lives:     g.session.Lives,
		Level:     g.session.Level,
		Remaining: g.grid.Remaining(),

		RowStart: g.window.RowStart,
		RowEnd:   g.window.RowEnd,
		Sliding:  g.window.Sliding,
		Offset:   math.Float64bits(g.window.Offset),

		BallX:  math.Float64bits(g.ball.X),
		BallY:  math.Float64bits(g.ball.Y),
		BallDX: math.Float64bits(g.ball.DX),
		BallDY: math.Float64bits(g.ball.DY),

		PaddleX: math.Float64bits(g.paddle.X),

		BrickData: brickData,
		RNGState:  g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RowStart)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RowEnd)    //#nosec G115 -- hash computation
	if snap.Sliding {
		h = h*31 + 1
	}
	h = h*31 + snap.Offset
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallDX
	h = h*31 + snap.BallDY
	h = h*31 + snap.PaddleX

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
