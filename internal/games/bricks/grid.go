package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// BrickStatus is the lifecycle state of a brick.
type BrickStatus int

const (
	BrickAlive  BrickStatus = iota // Present and collidable when visible
	BrickBroken                    // Destroyed, never comes back within a level
)

// Brick is a single cell of the grid.
// X, Y, W and H are the last laid-out hit box and only mean something while
// the brick is alive and inside the visibility window.
type Brick struct {
	Column int         `json:"column"`
	Row    int         `json:"row"`
	Status BrickStatus `json:"status"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	W      float64     `json:"w"`
	H      float64     `json:"h"`
}

// Alive reports whether the brick is still present.
func (b *Brick) Alive() bool {
	return b.Status == BrickAlive
}

// HitBox returns the brick's last committed box.
func (b *Brick) HitBox() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Geometry is the brick layout in canvas pixels at the current scale.
type Geometry struct {
	Height     float64
	Padding    float64
	OffsetTop  float64
	OffsetLeft float64
	MinWidth   float64
	AreaRatio  float64
}

// ScaledGeometry multiplies the configured design sizes by the scale factor.
func ScaledGeometry(b config.BrickGeometry, scale float64) Geometry {
	return Geometry{
		Height:     b.Height * scale,
		Padding:    b.Padding * scale,
		OffsetTop:  b.OffsetTop * scale,
		OffsetLeft: b.OffsetLeft * scale,
		MinWidth:   b.MinWidth * scale,
		AreaRatio:  b.AreaRatio,
	}
}

// Pitch is the vertical distance between two consecutive rows.
func (g Geometry) Pitch() float64 {
	return g.Height + g.Padding
}

// RowY returns the top of a row given its index inside the window.
func (g Geometry) RowY(localRow int) float64 {
	return g.OffsetTop + float64(localRow)*g.Pitch()
}

// FitBrickWidth computes the brick width and left margin for a row of
// columns bricks. The width never drops below MinWidth; when it is clamped the
// row overflows the side margins instead of shrinking further.
func FitBrickWidth(columns int, canvasWidth float64, g Geometry) (width, marginLeft float64) {
	if columns <= 0 {
		return 0, canvasWidth / 2
	}
	gaps := float64(columns-1) * g.Padding
	available := canvasWidth - 2*g.OffsetLeft
	width = (available - gaps) / float64(columns)
	if width < g.MinWidth {
		width = g.MinWidth
	}
	total := float64(columns)*width + gaps
	return width, (canvasWidth - total) / 2
}

// Grid owns the bricks of the current level, indexed [column][row].
type Grid struct {
	Columns   int
	Rows      int
	Bricks    [][]Brick
	remaining int
}

// NewGrid allocates a grid with every brick alive and positions zeroed.
func NewGrid(cfg LevelConfig) *Grid {
	cols := max(cfg.ColumnCount, 0)
	rows := max(cfg.RowCount, 0)

	g := &Grid{
		Columns:   cols,
		Rows:      rows,
		Bricks:    make([][]Brick, cols),
		remaining: cols * rows,
	}
	for c := range cols {
		g.Bricks[c] = make([]Brick, rows)
		for r := range rows {
			g.Bricks[c][r] = Brick{Column: c, Row: r, Status: BrickAlive}
		}
	}
	return g
}

// At returns the brick at (col, row), or nil when out of range.
func (g *Grid) At(col, row int) *Brick {
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return nil
	}
	return &g.Bricks[col][row]
}

// Total returns the number of cells in the grid.
func (g *Grid) Total() int {
	return g.Columns * g.Rows
}

// Remaining returns how many bricks are still alive.
func (g *Grid) Remaining() int {
	return g.remaining
}

// Break marks a brick broken. It returns false if the brick was already
// broken or does not exist, so the counter drops exactly once per brick.
func (g *Grid) Break(col, row int) bool {
	b := g.At(col, row)
	if b == nil || !b.Alive() {
		return false
	}
	b.Status = BrickBroken
	g.remaining--
	return true
}

// RowCleared reports whether every brick in the row is broken.
// Rows outside the grid count as not cleared.
func (g *Grid) RowCleared(row int) bool {
	if row < 0 || row >= g.Rows {
		return false
	}
	for c := range g.Columns {
		if g.Bricks[c][row].Alive() {
			return false
		}
	}
	return true
}

// AliveCount recounts alive bricks from scratch.
func (g *Grid) AliveCount() int {
	count := 0
	for c := range g.Columns {
		for r := range g.Rows {
			if g.Bricks[c][r].Alive() {
				count++
			}
		}
	}
	return count
}

// Layout commits hit boxes for the alive bricks inside the window.
// Rows are placed by their index within the window, so the incoming row of a
// slide (index RowEnd) is never committed here.
func (g *Grid) Layout(win *Window, canvasWidth float64, geo Geometry) {
	width, margin := FitBrickWidth(g.Columns, canvasWidth, geo)

	for c := range g.Columns {
		x := margin + float64(c)*(width+geo.Padding)
		for r := win.RowStart; r < win.RowEnd && r < g.Rows; r++ {
			b := &g.Bricks[c][r]
			if !b.Alive() {
				continue
			}
			b.X = x
			b.Y = geo.RowY(r - win.RowStart)
			b.W = width
			b.H = geo.Height
		}
	}
}
