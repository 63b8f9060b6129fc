package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// Glyphs used on the terminal canvas.
const (
	glyphBrick    = '█'
	glyphIncoming = '▒'
	glyphPaddle   = '▀'
	glyphBall     = '●'
	glyphLife     = '♥'
)

// DrawFrame draws an engine frame onto the screen buffer.
// Canvas pixels map to cells through core.CellPxW and core.CellPxH.
func DrawFrame(dst *core.Screen, f bricks.Frame) {
	dst.Clear()

	for _, b := range f.Incoming {
		dst.DrawRect(b.HitBox().Cells(), glyphIncoming, core.ColorGray)
	}
	for _, b := range f.Bricks {
		dst.DrawRect(b.HitBox().Cells(), glyphBrick, core.BrickColor(b.Column, b.Row))
	}

	paddle := core.Box{X: f.Paddle.X, Y: f.PaddleY, W: f.Paddle.Width, H: f.Paddle.Height}.Cells()
	// The paddle always sits on the bottom row, whatever its pixel height.
	paddle.Y = dst.Height() - 1
	paddle.H = 1
	dst.DrawRect(paddle, glyphPaddle, core.ColorBrightWhite)

	bx, by := core.ToCell(f.Ball.X, f.Ball.Y)
	dst.SetColored(bx, by, glyphBall, core.ColorBrightWhite)

	drawHUD(dst, f.Session)

	switch f.State {
	case bricks.StatePaused:
		drawModal(dst, core.ColorBrightCyan, "Paused", "", "[P] Resume  [Esc] Menu")
	case bricks.StateLevelComplete:
		drawModal(dst, core.ColorBrightGreen,
			fmt.Sprintf("Level %d Complete!", f.Session.Level),
			fmt.Sprintf("Score: %d", f.Session.Score),
			"Get ready...")
	case bricks.StateLevelFailed:
		drawModal(dst, core.ColorBrightRed,
			fmt.Sprintf("Level %d Failed", f.Session.Level),
			fmt.Sprintf("Score: %d", f.Session.Score),
			"[R] Retry  [Esc] Menu")
	}
}

// drawHUD writes score, level and lives on the top row and rules it off
// from the playfield.
func drawHUD(dst *core.Screen, s bricks.Session) {
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	score := fmt.Sprintf(" Score: %d", s.Score)
	dst.DrawTextColored(0, 0, score, core.ColorBrightWhite)

	dst.DrawTextCentered(0, fmt.Sprintf("Level %d", s.Level), core.ColorBrightYellow)

	lives := strings.Repeat(string(glyphLife), max(s.Lives, 0)) + " "
	dst.DrawTextColored(dst.Width()-len([]rune(lives)), 0, lives, core.ColorBrightRed)
}

// drawModal draws a bordered box with up to three centered lines.
func drawModal(dst *core.Screen, c core.Color, title, body, hint string) {
	lines := []string{title}
	if body != "" {
		lines = append(lines, body)
	}
	lines = append(lines, "", hint)

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	// Narrow terminals clip the text, never the frame.
	width = core.Min(width+6, dst.Width())
	height := core.Min(len(lines)+2, dst.Height())

	box := core.NewRect(
		core.Clamp((dst.Width()-width)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-height)/2, 0, dst.Height()),
		width, height,
	)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		col := core.ColorWhite
		if i == 0 {
			col = c
		}
		text := []rune(l)
		if len(text) > width-2 {
			text = text[:max(width-2, 0)]
		}
		x := box.X + (width-len(text))/2
		dst.DrawTextColored(x, box.Y+1+i, string(text), col)
	}
}
