package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config  config.BricksConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil keeps progress in memory and skips score history
	Player  string         // Save slot owner, empty for local play
	Logger  *log.Logger
}

// Slot is a player's save slot.
type Slot interface {
	bricks.ProgressStore
	ClearProgress() error
}

func (o Options) slot() Slot {
	if o.Store != nil {
		return o.Store.SlotFor(o.Player)
	}
	return &bricks.MemoryStore{}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) seed() int64 {
	if o.Runtime.Seed != 0 {
		return o.Runtime.Seed
	}
	return time.Now().UnixNano()
}

func (o Options) metrics() core.Metrics {
	return core.MetricsForScreen(o.Runtime.ScreenW, o.Runtime.ScreenH, o.Config.Canvas.BaseWidth)
}
