package bricks

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// MaxBounceAngle is the deflection from vertical at the paddle edges.
const MaxBounceAngle = math.Pi / 3

// Ball is the single ball in play. Velocity is in canvas px per frame.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Radius float64 `json:"radius"`
}

// Speed returns the magnitude of the ball's velocity.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Paddle sits on the bottom edge of the canvas.
type Paddle struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Top returns the y of the paddle's upper edge.
func (p *Paddle) Top(canvasHeight float64) float64 {
	return canvasHeight - p.Height
}

// Center returns the x of the paddle's midpoint.
func (p *Paddle) Center() float64 {
	return p.X + p.Width/2
}

// MoveTo places the paddle's left edge at x, clamped to the canvas.
func (p *Paddle) MoveTo(x, canvasWidth float64) {
	p.X = core.ClampF(x, 0, canvasWidth-p.Width)
}

// Outcome reports what happened during one physics step.
type Outcome struct {
	Broken       *Brick // Brick destroyed this step, if any
	SlideStarted bool
	WallHit      bool
	PaddleHit    bool
	BallLost     bool
}

// Step advances the ball by one frame. Bricks are checked first, then walls,
// then paddle and floor, and finally the ball moves by its velocity.
// At most one brick breaks per step. A lost ball is reported, not handled.
func Step(ball *Ball, paddle *Paddle, grid *Grid, win *Window, m core.Metrics) Outcome {
	var out Outcome

	if b := hitBrick(ball, grid, win); b != nil {
		ball.DY = -ball.DY
		grid.Break(b.Column, b.Row)
		out.Broken = b
		out.SlideStarted = win.MaybeStartSlide(grid)
	}

	out.WallHit = bounceWalls(ball, m.Width)

	switch bouncePaddle(ball, paddle, m.Height) {
	case paddleHit:
		out.PaddleHit = true
	case paddleMissed:
		out.BallLost = true
	}

	ball.X += ball.DX
	ball.Y += ball.DY
	return out
}

// hitBrick returns the first alive visible brick whose box strictly contains
// the ball centre, scanning column by column.
func hitBrick(ball *Ball, grid *Grid, win *Window) *Brick {
	for c := range grid.Columns {
		for r := win.RowStart; r < win.RowEnd && r < grid.Rows; r++ {
			b := &grid.Bricks[c][r]
			if !b.Alive() {
				continue
			}
			if b.HitBox().ContainsStrict(ball.X, ball.Y) {
				return b
			}
		}
	}
	return nil
}

func bounceWalls(ball *Ball, width float64) bool {
	hit := false
	nx := ball.X + ball.DX
	if nx > width-ball.Radius || nx < ball.Radius {
		ball.DX = -ball.DX
		hit = true
	}
	if ball.Y+ball.DY < ball.Radius {
		ball.DY = -ball.DY
		hit = true
	}
	return hit
}

type paddleResult int

const (
	paddleNone paddleResult = iota
	paddleHit
	paddleMissed
)

func bouncePaddle(ball *Ball, paddle *Paddle, height float64) paddleResult {
	if ball.Y+ball.DY < paddle.Top(height)-ball.Radius {
		return paddleNone
	}

	if ball.X > paddle.X-ball.Radius && ball.X < paddle.X+paddle.Width+ball.Radius {
		half := paddle.Width / 2
		hitPos := 0.0
		if half > 0 {
			hitPos = core.ClampF((ball.X-paddle.Center())/half, -1, 1)
		}
		angle := hitPos * MaxBounceAngle
		speed := ball.Speed()
		ball.DX = speed * math.Sin(angle)
		ball.DY = -math.Abs(speed * math.Cos(angle))
		return paddleHit
	}

	if ball.Y > height-ball.Radius {
		return paddleMissed
	}
	return paddleNone
}
