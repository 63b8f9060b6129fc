package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// StartMode decides what a session shows first.
type StartMode int

const (
	StartMenu     StartMode = iota // Main menu
	StartNew                       // Fresh game at level 1
	StartContinue                  // Resume the saved game, or start fresh
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: menu -> game or scores -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	opts     Options
	slot     Slot
	view     sessionView
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	quitting bool

	// Shared by every copy of the model so the game can still be closed
	// after the program has returned.
	active *activeGame
}

// activeGame is the game a session is playing, if any.
type activeGame struct {
	game *bricks.Game
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options, start StartMode) SessionModel {
	m := SessionModel{
		opts:   opts,
		slot:   opts.slot(),
		active: &activeGame{},
	}
	m.menu = m.newMenu()

	switch start {
	case StartNew:
		m.startGame(false)
	case StartContinue:
		m.startGame(true)
	}
	return m
}

func (m *SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.slot, m.opts.Store != nil, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

func (m *SessionModel) startGame(resume bool) tea.Cmd {
	game := NewGameModel(m.opts, m.slot, resume)
	m.game = &game
	m.active.game = game.Game()
	m.view = viewGame
	return m.game.Init()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case ChoiceContinue:
		return m, m.startGame(true)
	case ChoiceNewGame:
		return m, m.startGame(false)
	case ChoiceScores:
		scores := NewScoreboardModel(m.opts.Store, m.opts.Player, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scores = &scores
		m.view = viewScores
		return m, m.scores.Init()
	}

	m.menu = m.newMenu()
	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Both exits have already saved the game.
	if m.game.IsQuitting() {
		m.active.game = nil
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.active.game = nil
		m.game = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// Close saves the game in progress, if any. Sessions that end without the
// player quitting, such as a dropped SSH connection, are closed this way once
// their program has stopped.
func (m SessionModel) Close() {
	if m.active.game == nil {
		return
	}
	m.active.game.Close()
	m.active.game = nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Run starts a local session in the terminal.
func Run(opts Options, start StartMode) error {
	p := tea.NewProgram(
		NewSessionModel(opts, start),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
