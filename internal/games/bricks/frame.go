package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Frame is everything a render surface needs to draw one frame.
// It is a value copy; mutating it does not affect the game.
type Frame struct {
	State        string       `json:"state"`
	Session      Session      `json:"session"`
	Metrics      core.Metrics `json:"metrics"`
	Ball         Ball         `json:"ball"`
	Paddle       Paddle       `json:"paddle"`
	PaddleY      float64      `json:"paddleY"`
	Bricks       []Brick      `json:"bricks"`             // Alive bricks inside the window
	Incoming     []Brick      `json:"incoming,omitempty"` // Row sliding into view, not collidable
	Window       Window       `json:"window"`
	TransitionMs float64      `json:"transitionMs"`
}

// Frame builds the current view.
func (g *Game) Frame() Frame {
	f := Frame{
		State:        g.state,
		Session:      g.session,
		Metrics:      g.metrics,
		Ball:         g.ball,
		Paddle:       g.paddle,
		PaddleY:      g.paddle.Top(g.metrics.Height),
		Window:       *g.window,
		TransitionMs: g.TransitionLeft(),
	}

	f.Bricks = make([]Brick, 0, g.grid.Columns*g.window.Size())
	for c := range g.grid.Columns {
		for r := g.window.RowStart; r < g.window.RowEnd; r++ {
			if b := g.grid.Bricks[c][r]; b.Alive() {
				f.Bricks = append(f.Bricks, b)
			}
		}
	}

	f.Incoming = g.incomingRow()
	return f
}

// incomingRow lays out the row that is sliding in without touching the
// grid's committed hit boxes.
func (g *Game) incomingRow() []Brick {
	row, ok := g.window.Incoming()
	if !ok {
		return nil
	}

	geo := g.geometry()
	width, margin := FitBrickWidth(g.grid.Columns, g.metrics.Width, geo)
	y := g.window.IncomingY(geo)

	bricks := make([]Brick, 0, g.grid.Columns)
	for c := range g.grid.Columns {
		b := g.grid.Bricks[c][row]
		if !b.Alive() {
			continue
		}
		b.X = margin + float64(c)*(width+geo.Padding)
		b.Y = y
		b.W = width
		b.H = geo.Height
		bricks = append(bricks, b)
	}
	return bricks
}
