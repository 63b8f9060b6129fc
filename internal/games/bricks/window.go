package bricks

import "math"

// frameMs is the frame length the slide step is expressed in.
const frameMs = 1000.0 / 60.0

// Window is the contiguous range of rows that are laid out and collidable.
// While Sliding, row RowEnd is drawn as it moves into view but takes no part
// in collisions until the slide commits.
type Window struct {
	RowStart int     `json:"rowStart"` // First visible row, inclusive
	RowEnd   int     `json:"rowEnd"`   // Last visible row, exclusive
	Sliding  bool    `json:"sliding"`
	Offset   float64 `json:"offset"` // Slide progress in canvas px

	rowCount int
}

// MaxRowsThatFit returns how many rows fit in the brick area of the canvas.
// The brick area is AreaRatio of the canvas height. At least one row always
// fits.
func MaxRowsThatFit(canvasHeight float64, geo Geometry) int {
	pitch := geo.Pitch()
	if pitch <= 0 {
		return 1
	}
	rows := int(math.Floor((canvasHeight*geo.AreaRatio - geo.OffsetTop) / pitch))
	return max(rows, 1)
}

// NewWindow returns a static window over the first rows of a level.
func NewWindow(rowCount, maxRows int) *Window {
	rowCount = max(rowCount, 0)
	maxRows = max(maxRows, 1)
	return &Window{
		RowStart: 0,
		RowEnd:   min(rowCount, maxRows),
		rowCount: rowCount,
	}
}

// RowCount returns the number of rows in the level the window covers.
func (w *Window) RowCount() int {
	return w.rowCount
}

// Size returns the number of visible rows.
func (w *Window) Size() int {
	return w.RowEnd - w.RowStart
}

// Contains reports whether a row is inside the collidable range.
func (w *Window) Contains(row int) bool {
	return row >= w.RowStart && row < w.RowEnd
}

// Incoming returns the row that is sliding into view, if any.
func (w *Window) Incoming() (int, bool) {
	if !w.Sliding || w.RowEnd >= w.rowCount {
		return 0, false
	}
	return w.RowEnd, true
}

// IncomingY is the top of the incoming row: one pitch above the bottom slot,
// where the row rests once the slide commits, moved down by the slide offset.
func (w *Window) IncomingY(geo Geometry) float64 {
	return geo.RowY(w.Size()-1) - geo.Pitch() + w.Offset
}

// MaybeStartSlide starts a slide when the top visible row is fully broken and
// rows remain below the window. It returns true only if a slide was started;
// calling it again while sliding does nothing.
func (w *Window) MaybeStartSlide(g *Grid) bool {
	if w.Sliding || w.RowEnd >= w.rowCount {
		return false
	}
	if !g.RowCleared(w.RowStart) {
		return false
	}
	w.Sliding = true
	w.Offset = 0
	return true
}

// Advance moves an active slide forward by stepPx per 60 Hz frame worth of
// elapsed time. When the offset reaches pitch the window moves down by
// exactly one row and returns to static. It reports whether that happened.
func (w *Window) Advance(deltaMs, stepPx, pitch float64) bool {
	if !w.Sliding {
		return false
	}
	if deltaMs < 0 || math.IsNaN(deltaMs) {
		deltaMs = 0
	}

	w.Offset += stepPx * (deltaMs / frameMs)
	if w.Offset < pitch {
		return false
	}

	w.RowStart = min(w.RowStart+1, w.rowCount)
	w.RowEnd = min(w.RowEnd+1, w.rowCount)
	w.Sliding = false
	w.Offset = 0
	return true
}

// Reclamp fits the window to a new row budget after a resize. The window stays
// anchored at RowStart and an in-progress slide keeps going; its commit clamps
// to the row count.
func (w *Window) Reclamp(maxRows, rowCount int) {
	w.rowCount = max(rowCount, 0)
	maxRows = max(maxRows, 1)

	w.RowStart = min(max(w.RowStart, 0), w.rowCount)
	w.RowEnd = min(w.rowCount, w.RowStart+maxRows)
}
