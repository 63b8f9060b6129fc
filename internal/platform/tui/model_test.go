package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

func testOptions() Options {
	return Options{
		Config: config.DefaultBricksConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     7,
		},
	}
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(m GameModel, at time.Time) TickMsg {
	return TickMsg{Gen: m.gen, At: at}
}

func TestGameModelStarts(t *testing.T) {
	m := NewGameModel(testOptions(), &bricks.MemoryStore{}, false)

	if m.Game().State() != bricks.StateRunning {
		t.Errorf("state = %q, want running", m.Game().State())
	}
	if got := m.Game().Metrics().Width; got != 800 {
		t.Errorf("canvas width = %v, want 800", got)
	}
	if m.Init() == nil {
		t.Error("Init should start the frame loop")
	}
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	m := NewGameModel(testOptions(), &bricks.MemoryStore{}, false)

	m, cmd := updateGame(t, m, TickMsg{Gen: m.gen - 1, At: time.Now()})
	if cmd != nil {
		t.Error("stale tick should end its loop")
	}
	if snap := m.Game().Snapshot(); snap.Tick != 0 {
		t.Errorf("stale tick advanced the game to tick %d", snap.Tick)
	}

	m, cmd = updateGame(t, m, tick(m, time.Now()))
	if cmd == nil {
		t.Error("current tick should schedule the next one")
	}
	if snap := m.Game().Snapshot(); snap.Tick != 1 {
		t.Errorf("tick = %d, want 1", snap.Tick)
	}
}

func TestGameModelKeys(t *testing.T) {
	m := NewGameModel(testOptions(), &bricks.MemoryStore{}, false)
	now := time.Now()
	startX := m.Game().Paddle().X

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = updateGame(t, m, tick(m, now))
	if got := m.Game().Paddle().X; got != startX+40 {
		t.Errorf("paddle x = %v, want %v", got, startX+40)
	}

	m, _ = updateGame(t, m, runeKey('p'))
	m, _ = updateGame(t, m, tick(m, now.Add(16*time.Millisecond)))
	if m.Game().State() != bricks.StatePaused {
		t.Fatalf("state = %q, want paused", m.Game().State())
	}

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := updateGame(t, m, tick(m, now.Add(32*time.Millisecond)))
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
	if cmd != nil {
		t.Error("frame loop should stop when leaving the game")
	}
}

func TestGameModelQuitSaves(t *testing.T) {
	store := &bricks.MemoryStore{}
	m := NewGameModel(testOptions(), store, false)
	saves := store.Saves

	m, cmd := updateGame(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if store.Saves != saves+1 {
		t.Error("quitting should save progress")
	}
}

func TestGameModelMouse(t *testing.T) {
	m := NewGameModel(testOptions(), &bricks.MemoryStore{}, false)

	m, _ = updateGame(t, m, tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionMotion})
	if got := m.Game().Paddle().X; got != 0 {
		t.Errorf("paddle x = %v, want 0", got)
	}

	m, _ = updateGame(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionMotion})
	p := m.Game().Paddle()
	if got := p.Center(); got != pointerX(40) {
		t.Errorf("paddle centre = %v, want %v", got, pointerX(40))
	}
}

func TestGameModelResize(t *testing.T) {
	m := NewGameModel(testOptions(), &bricks.MemoryStore{}, false)

	m, _ = updateGame(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	metrics := m.Game().Metrics()
	if metrics.Width != 400 || metrics.Height != 240 || metrics.Scale != 0.5 {
		t.Errorf("metrics = %+v, want 400x240 at 0.5", metrics)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, want 40x12", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelResume(t *testing.T) {
	store := &bricks.MemoryStore{}
	_ = store.SaveProgress(bricks.Progress{Score: 90, Level: 4})

	m := NewGameModel(testOptions(), store, true)
	if s := m.Game().Session(); s.Level != 4 || s.Score != 90 {
		t.Errorf("session = %+v, want level 4 score 90", s)
	}
}

func TestElapsedMs(t *testing.T) {
	now := time.Now()
	if got := elapsedMs(time.Time{}, now); got != 0 {
		t.Errorf("first tick delta = %v, want 0", got)
	}
	if got := elapsedMs(now, now.Add(20*time.Millisecond)); got != 20 {
		t.Errorf("delta = %v, want 20", got)
	}
	if got := elapsedMs(now, now.Add(-time.Second)); got != 0 {
		t.Errorf("backwards delta = %v, want 0", got)
	}
}
