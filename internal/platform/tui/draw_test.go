package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := range s.Height() {
		n += strings.Count(s.Row(y), string(r))
	}
	return n
}

func startedGame(t *testing.T) *bricks.Game {
	t.Helper()
	g := bricks.New(config.DefaultBricksConfig(), &bricks.MemoryStore{}, 1)
	g.Resize(core.MetricsForScreen(80, 24, 800))
	g.StartGame(false)
	return g
}

func TestDrawFrameRunning(t *testing.T) {
	screen := core.NewScreen(80, 24)
	DrawFrame(screen, startedGame(t).Frame())

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Level 1", "♥♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	if countRune(screen, glyphBrick) == 0 {
		t.Error("no bricks drawn")
	}
	if !strings.Contains(screen.Row(23), string(glyphPaddle)) {
		t.Error("paddle should be on the bottom row")
	}
	if countRune(screen, glyphBall) != 1 {
		t.Errorf("ball drawn %d times, want 1", countRune(screen, glyphBall))
	}
	if countRune(screen, glyphIncoming) != 0 {
		t.Error("no incoming row without a slide")
	}
}

func TestDrawFrameBrickColors(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := bricks.Frame{
		Metrics: core.MetricsForScreen(80, 24, 800),
		Bricks: []bricks.Brick{
			{Column: 0, Row: 0, X: 100, Y: 60, W: 50, H: 20},
			{Column: 1, Row: 0, X: 200, Y: 60, W: 50, H: 20},
		},
	}
	DrawFrame(screen, f)

	if c := screen.GetCell(10, 3); c.Rune != glyphBrick || c.Color != core.BrickColor(0, 0) {
		t.Errorf("first brick cell = %+v", c)
	}
	if c := screen.GetCell(20, 3); c.Color != core.BrickColor(1, 0) {
		t.Errorf("second brick color = %v, want %v", c.Color, core.BrickColor(1, 0))
	}
}

func TestDrawFrameIncomingRow(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := bricks.Frame{
		Incoming: []bricks.Brick{{Column: 0, Row: 5, X: 100, Y: 140, W: 50, H: 20}},
	}
	DrawFrame(screen, f)

	if c := screen.GetCell(10, 7); c.Rune != glyphIncoming || c.Color != core.ColorGray {
		t.Errorf("incoming cell = %+v", c)
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	tests := []struct {
		state string
		want  []string
	}{
		{bricks.StatePaused, []string{"Paused", "[P] Resume"}},
		{bricks.StateLevelComplete, []string{"Level 2 Complete!", "Score: 40"}},
		{bricks.StateLevelFailed, []string{"Level 2 Failed", "Score: 40", "[R] Retry"}},
		{bricks.StateRunning, nil},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			DrawFrame(screen, bricks.Frame{
				State:   tt.state,
				Session: bricks.Session{Score: 40, Level: 2, Lives: 1},
			})

			text := screen.String()
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q", want)
				}
			}
			if tt.want == nil && strings.ContainsRune(text, '┌') {
				t.Error("running frame should have no modal")
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "abc", core.ColorBrightRed)
	screen.DrawText(0, 1, "xyz")

	out := RenderScreen(screen)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestDrawHUDRule(t *testing.T) {
	screen := core.NewScreen(40, 12)
	DrawFrame(screen, bricks.Frame{Session: bricks.Session{Level: 3, Lives: 2}})

	if got := screen.Row(1); got != strings.Repeat("─", 40) {
		t.Errorf("row 1 = %q, want a full rule", got)
	}
	// "Level 3" centered on 40 columns starts at x=16.
	if c := screen.GetCell(16, 0); c.Rune != 'L' || c.Color != core.ColorBrightYellow {
		t.Errorf("level label cell = %+v", c)
	}
}

func TestDrawModalFitsNarrowScreen(t *testing.T) {
	screen := core.NewScreen(20, 10)
	DrawFrame(screen, bricks.Frame{
		State:   bricks.StateLevelFailed,
		Session: bricks.Session{Score: 40, Level: 2},
	})

	// Title, score, blank and hint plus borders: 6 rows starting at y=2.
	top, bottom := 2, 7
	if screen.Get(0, top) != '┌' || screen.Get(19, top) != '┐' {
		t.Errorf("top border = %q", screen.Row(top))
	}
	if screen.Get(0, bottom) != '└' || screen.Get(19, bottom) != '┘' {
		t.Errorf("bottom border = %q", screen.Row(bottom))
	}

	hint := screen.Row(top + 4)
	if !strings.HasPrefix(hint, "│[R] Retry") || !strings.HasSuffix(hint, "│") {
		t.Errorf("hint row = %q, want clipped inside the frame", hint)
	}
}
