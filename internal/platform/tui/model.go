package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// GameModel runs one game inside a Bubble Tea program.
type GameModel struct {
	game       *bricks.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gen        int64
	last       time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score was recorded for the current failure
}

// NewGameModel creates a game sized to the terminal and starts it.
// With resume set the saved level and score are restored when present.
func NewGameModel(opts Options, slot bricks.ProgressStore, resume bool) GameModel {
	game := bricks.New(opts.Config, slot, opts.seed())
	game.SetLogger(opts.logger())
	game.Resize(opts.metrics())
	game.StartGame(resume)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gen:        nextGen(),
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.game.Close()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.game.MovePaddle(pointerX(msg.X))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(m.opts.metrics())
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleTick applies buffered input and advances the game by the real time
// elapsed since the previous tick.
func (m GameModel) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	delta := elapsedMs(m.last, at)
	m.last = at

	m.applyInput()
	m.inputFrame.Clear()

	if m.backToMenu {
		m.game.Close()
		return m, nil
	}

	res := m.game.Tick(delta)
	if res.LevelFailed {
		m.recordScore()
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
}

func (m *GameModel) applyInput() {
	in := m.inputFrame
	step := m.opts.Config.Paddle.KeyStep * m.game.Metrics().Scale

	if in.Has(core.ActionLeft) {
		m.game.NudgePaddle(-step)
	}
	if in.Has(core.ActionRight) {
		m.game.NudgePaddle(step)
	}

	switch m.game.State() {
	case bricks.StateRunning:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			m.game.Pause()
		}
	case bricks.StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			m.game.Resume()
		} else if in.Has(core.ActionBack) {
			m.backToMenu = true
		}
	case bricks.StateLevelFailed:
		if in.Has(core.ActionRetry) || in.Has(core.ActionConfirm) {
			m.game.Retry()
			m.scoreSaved = false
		} else if in.Has(core.ActionBack) {
			m.backToMenu = true
		}
	}
}

// recordScore adds the final score of a failed run to the history once.
func (m *GameModel) recordScore() {
	s := m.game.Session()
	if m.scoreSaved || m.opts.Store == nil || s.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if _, err := m.opts.Store.SaveScore(m.opts.Player, s.Level, s.Score); err != nil {
		m.opts.logger().Warn("could not record score", "error", err)
	}
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Frame())
	return RenderScreen(m.screen)
}

// Game returns the underlying engine.
func (m GameModel) Game() *bricks.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
