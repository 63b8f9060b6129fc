package web

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Frames waiting to be written before new ones are dropped.
	sendBuffer = 16
)

var errBadSize = errors.New("web: canvas size must be positive")

// slot is where a connection's progress is saved.
type slot interface {
	bricks.ProgressStore
	ClearProgress() error
}

// client is one browser connection and the game it drives.
type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan Message
	done   chan struct{}
	once   sync.Once
	player string
	logger *log.Logger

	mu         sync.Mutex
	game       *bricks.Game
	slot       slot
	scoreSaved bool
}

func newClient(s *Server, conn *websocket.Conn, player string) *client {
	var sl slot = &bricks.MemoryStore{}
	if s.store != nil {
		sl = s.store.SlotFor(player)
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := s.logger.With("player", player)
	game := bricks.New(s.config.Game, sl, seed)
	game.SetLogger(logger)

	return &client{
		server: s,
		conn:   conn,
		send:   make(chan Message, sendBuffer),
		done:   make(chan struct{}),
		player: player,
		logger: logger,
		game:   game,
		slot:   sl,
	}
}

// readPump decodes commands until the connection fails.
func (c *client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("failed to set read deadline", "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read failed", "error", err)
			}
			return
		}
		c.handle(cmd)
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return

		case msg := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Debug("failed to set write deadline", "error", err)
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write failed", "error", err)
				c.close()
				return
			}

		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.logger.Debug("ping failed", "error", err)
				c.close()
				return
			}
		}
	}
}

// loop runs the server-side clock. With a zero tick rate the client drives
// the game through tick commands instead.
func (c *client) loop() {
	rate := c.server.config.TickRate
	if rate <= 0 {
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			delta := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now

			c.mu.Lock()
			before := c.game.State()
			res := c.advance(delta)
			frame := c.game.Frame()
			c.mu.Unlock()

			// Frozen states only need a frame when they are entered.
			if res.State == bricks.StateRunning || res.State == bricks.StateLevelComplete || res.State != before {
				c.push(Message{Type: MsgFrame, Frame: &frame})
			}
		}
	}
}

// handle applies a command and answers with the resulting frame.
func (c *client) handle(cmd Command) {
	c.mu.Lock()
	err := c.apply(cmd)
	frame := c.game.Frame()
	c.mu.Unlock()

	if err != nil {
		c.logger.Debug("command rejected", "type", cmd.Type, "error", err)
		c.push(Message{Type: MsgError, Error: err.Error()})
		return
	}
	c.push(Message{Type: MsgFrame, Frame: &frame})
}

// apply runs one command against the game. Callers hold c.mu.
func (c *client) apply(cmd Command) error {
	switch cmd.Type {
	case CmdStart:
		c.game.StartGame(cmd.Resume)
		c.scoreSaved = false
	case CmdMove:
		c.game.MovePaddle(cmd.X)
	case CmdResize:
		if cmd.Width <= 0 || cmd.Height <= 0 {
			return errBadSize
		}
		c.game.Resize(core.NewMetrics(cmd.Width, cmd.Height, c.server.config.Game.Canvas.BaseWidth))
	case CmdPause:
		c.game.Pause()
	case CmdResume:
		c.game.Resume()
	case CmdRetry:
		c.game.Retry()
		c.scoreSaved = false
	case CmdReset:
		if err := c.slot.ClearProgress(); err != nil {
			return fmt.Errorf("web: reset progress: %w", err)
		}
		c.game.StartGame(false)
		c.scoreSaved = false
	case CmdTick:
		c.advance(cmd.Delta)
	default:
		return fmt.Errorf("web: unknown command %q", cmd.Type)
	}
	return nil
}

// advance ticks the game and records the score when the level is lost.
// Callers hold c.mu.
func (c *client) advance(deltaMs float64) bricks.TickResult {
	res := c.game.Tick(deltaMs)
	if res.LevelFailed {
		c.recordScore()
	}
	return res
}

func (c *client) recordScore() {
	s := c.game.Session()
	if c.scoreSaved || c.server.store == nil || s.Score <= 0 {
		return
	}
	c.scoreSaved = true
	if _, err := c.server.store.SaveScore(c.player, s.Level, s.Score); err != nil {
		c.logger.Warn("could not record score", "error", err)
	}
}

// push queues a message, dropping it when the writer has fallen behind.
func (c *client) push(m Message) {
	select {
	case <-c.done:
	case c.send <- m:
	default:
		c.logger.Debug("send buffer full, dropping message", "type", m.Type)
	}
}

// close tears the connection down once and saves the game before the
// server forgets the connection.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = c.conn.Close()

		c.mu.Lock()
		c.game.Close()
		session := c.game.Session()
		c.mu.Unlock()

		c.server.unregister(c)

		c.logger.Info("connection closed", "level", session.Level, "score", session.Score)
	})
}
