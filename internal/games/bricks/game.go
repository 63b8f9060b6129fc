package bricks

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Game states.
const (
	StateIdle          = "idle"
	StateRunning       = "running"
	StatePaused        = "paused"
	StateLevelComplete = "level_complete"
	StateLevelFailed   = "level_failed"
)

// Session is the player-facing part of the game state.
type Session struct {
	Score   int  `json:"score"`
	Lives   int  `json:"lives"`
	Level   int  `json:"level"`
	Running bool `json:"running"`
}

// TickResult describes what a single Tick did.
type TickResult struct {
	State          string
	BrickBroken    bool
	SlideStarted   bool
	SlideCommitted bool
	BallLost       bool
	LevelCompleted bool // Entered level_complete on this tick
	LevelFailed    bool // Entered level_failed on this tick
	LevelAdvanced  bool // Transition finished and the next level was set up
}

// Game owns one play session: grid, window, ball, paddle and scoring.
// It is not safe for concurrent use; drivers call it from one goroutine.
type Game struct {
	cfg     config.BricksConfig
	metrics core.Metrics
	store   ProgressStore
	rng     *SimpleRNG
	logger  *log.Logger

	state   string
	session Session

	grid   *Grid
	window *Window
	ball   Ball
	paddle Paddle

	transitionLeft float64 // Remaining level-complete delay in ms
	tickCount      int
}

// New creates an idle game laid out for the configured base canvas.
// A nil store keeps progress in memory only.
func New(cfg config.BricksConfig, store ProgressStore, seed int64) *Game {
	if store == nil {
		store = &MemoryStore{}
	}
	g := &Game{
		cfg:     cfg,
		store:   store,
		rng:     NewSimpleRNG(seed),
		logger:  log.New(io.Discard),
		state:   StateIdle,
		session: Session{Level: 1, Lives: cfg.Gameplay.Lives},
	}
	g.metrics = core.NewMetrics(cfg.Canvas.BaseWidth, cfg.Canvas.BaseHeight, cfg.Canvas.BaseWidth)
	g.applyMetrics()
	g.grid = NewGrid(g.LevelConfig())
	g.window = NewWindow(g.grid.Rows, MaxRowsThatFit(g.metrics.Height, g.geometry()))
	g.paddle.MoveTo((g.metrics.Width-g.paddle.Width)/2, g.metrics.Width)
	return g
}

// SetLogger routes engine events to l. A nil logger silences them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// State returns the current state name.
func (g *Game) State() string { return g.state }

// Session returns a copy of the session fields.
func (g *Game) Session() Session { return g.session }

// Metrics returns the display metrics in use.
func (g *Game) Metrics() core.Metrics { return g.metrics }

// Grid returns the current level's grid.
func (g *Game) Grid() *Grid { return g.grid }

// Window returns the visibility window.
func (g *Game) Window() *Window { return g.window }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// LevelConfig derives the current level's parameters at the current scale.
func (g *Game) LevelConfig() LevelConfig {
	return GenerateLevelConfig(g.session.Level, g.metrics.Scale)
}

func (g *Game) geometry() Geometry {
	return ScaledGeometry(g.cfg.Bricks, g.metrics.Scale)
}

// applyMetrics rescales ball and paddle sizes and keeps the paddle on screen.
func (g *Game) applyMetrics() {
	s := g.metrics.Scale
	g.ball.Radius = g.cfg.Ball.Radius * s
	g.paddle.Width = g.cfg.Paddle.Width * s
	g.paddle.Height = g.cfg.Paddle.Height * s
	g.paddle.MoveTo(g.paddle.X, g.metrics.Width)
}

// StartGame begins play. With resume set and a usable save, score and level
// are restored; otherwise the game starts fresh at level 1.
func (g *Game) StartGame(resume bool) {
	g.session.Score = 0
	g.session.Level = 1

	if resume {
		if p, ok := g.store.LoadProgress(); ok {
			p = p.Normalize()
			g.session.Score = p.Score
			g.session.Level = p.Level
			g.logger.Info("resuming", "score", p.Score, "level", p.Level)
		}
	}

	g.SetupLevel()
	g.run()
}

// SetupLevel builds a fresh grid and window for the current level, resets
// lives and serves a new ball from the centre.
func (g *Game) SetupLevel() {
	cfg := g.LevelConfig()
	g.session.Lives = g.cfg.Gameplay.Lives
	g.grid = NewGrid(cfg)
	g.window = NewWindow(cfg.RowCount, MaxRowsThatFit(g.metrics.Height, g.geometry()))
	g.grid.Layout(g.window, g.metrics.Width, g.geometry())
	g.transitionLeft = 0

	g.paddle.MoveTo((g.metrics.Width-g.paddle.Width)/2, g.metrics.Width)
	g.serve(cfg.Speed)
	g.persist()

	g.logger.Info("level setup",
		"level", g.session.Level,
		"rows", cfg.RowCount,
		"columns", cfg.ColumnCount,
		"visibleRows", g.window.Size(),
	)
}

// ResetBall re-serves the ball after a lost life. Grid and window are kept.
func (g *Game) ResetBall() {
	g.serve(g.LevelConfig().Speed)
	g.persist()
}

func (g *Game) serve(speed float64) {
	g.ball.X = g.metrics.Width / 2
	g.ball.Y = g.metrics.Height - g.cfg.Ball.SpawnOffset*g.metrics.Scale
	g.ball.DX = speed * g.rng.Sign()
	g.ball.DY = -speed
}

// Retry restarts the failed level with the score kept.
func (g *Game) Retry() {
	if g.state != StateLevelFailed {
		return
	}
	g.SetupLevel()
	g.run()
}

// Pause freezes a running game.
func (g *Game) Pause() {
	if g.state != StateRunning {
		return
	}
	g.state = StatePaused
	g.session.Running = false
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.state != StatePaused {
		return
	}
	g.run()
}

// TogglePause switches between running and paused.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

func (g *Game) run() {
	g.state = StateRunning
	g.session.Running = true
}

// MovePaddle centres the paddle on pointer x.
func (g *Game) MovePaddle(x float64) {
	g.paddle.MoveTo(x-g.paddle.Width/2, g.metrics.Width)
}

// NudgePaddle moves the paddle by dx canvas px.
func (g *Game) NudgePaddle(dx float64) {
	g.paddle.MoveTo(g.paddle.X+dx, g.metrics.Width)
}

// Resize applies new display metrics. Ball and paddle positions keep their
// relative place on the canvas; the ball velocity is left alone.
func (g *Game) Resize(m core.Metrics) {
	old := g.metrics
	g.metrics = m

	if old.Width > 0 && old.Height > 0 {
		g.ball.X *= m.Width / old.Width
		g.ball.Y *= m.Height / old.Height
		g.paddle.X *= m.Width / old.Width
	}
	g.applyMetrics()

	g.window.Reclamp(MaxRowsThatFit(m.Height, g.geometry()), g.grid.Rows)
	g.grid.Layout(g.window, m.Width, g.geometry())

	g.logger.Debug("resize", "width", m.Width, "height", m.Height, "scale", m.Scale,
		"rowStart", g.window.RowStart, "rowEnd", g.window.RowEnd)
}

// Close persists progress at the end of a session. A game that was never
// started leaves the save alone.
func (g *Game) Close() {
	if g.state == StateIdle {
		return
	}
	g.persist()
}

// Tick advances the game by deltaMs of wall time. Physics runs once per call;
// the slide animation and the level-complete delay use the elapsed time.
func (g *Game) Tick(deltaMs float64) TickResult {
	if deltaMs < 0 || math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) {
		deltaMs = 0
	}

	switch g.state {
	case StateRunning:
	case StateLevelComplete:
		return g.tickTransition(deltaMs)
	default:
		return TickResult{State: g.state}
	}

	g.tickCount++
	var res TickResult
	geo := g.geometry()

	if g.window.Advance(deltaMs, g.cfg.Slide.StepPx*g.metrics.Scale, geo.Pitch()) {
		res.SlideCommitted = true
		g.logger.Debug("slide committed", "rowStart", g.window.RowStart, "rowEnd", g.window.RowEnd)
		if g.window.MaybeStartSlide(g.grid) {
			res.SlideStarted = true
		}
	}
	g.grid.Layout(g.window, g.metrics.Width, geo)

	out := Step(&g.ball, &g.paddle, g.grid, g.window, g.metrics)
	if out.SlideStarted {
		res.SlideStarted = true
	}

	if out.Broken != nil {
		res.BrickBroken = true
		g.session.Score += g.LevelConfig().ScorePerBrick
		g.persist()

		if g.grid.Remaining() == 0 {
			g.completeLevel()
			res.LevelCompleted = true
			res.State = g.state
			return res
		}
	}

	if out.BallLost {
		res.BallLost = true
		g.session.Lives--
		if g.session.Lives <= 0 {
			g.session.Lives = 0
			g.failLevel()
			res.LevelFailed = true
		} else {
			g.logger.Info("life lost", "lives", g.session.Lives, "level", g.session.Level)
			g.ResetBall()
		}
	}

	res.State = g.state
	return res
}

func (g *Game) completeLevel() {
	g.state = StateLevelComplete
	g.session.Running = false
	g.transitionLeft = g.cfg.Gameplay.TransitionMs
	g.logger.Info("level complete", "level", g.session.Level, "score", g.session.Score)
}

func (g *Game) failLevel() {
	g.state = StateLevelFailed
	g.session.Running = false
	g.persist()
	g.logger.Info("level failed", "level", g.session.Level, "score", g.session.Score)
}

func (g *Game) tickTransition(deltaMs float64) TickResult {
	g.transitionLeft -= deltaMs
	if g.transitionLeft > 0 {
		return TickResult{State: g.state}
	}

	g.session.Level++
	g.SetupLevel()
	g.run()
	return TickResult{State: g.state, LevelAdvanced: true}
}

// TransitionLeft returns the remaining level-complete delay in ms.
func (g *Game) TransitionLeft() float64 {
	return max(g.transitionLeft, 0)
}

func (g *Game) persist() {
	p := Progress{Score: g.session.Score, Level: g.session.Level}
	if err := g.store.SaveProgress(p); err != nil {
		g.logger.Warn("save progress failed", "err", err)
	}
}
