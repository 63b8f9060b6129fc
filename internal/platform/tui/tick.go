// Package tui provides the Bubble Tea driver for the brick breaker.
// It runs the frame loop, maps keys and mouse to engine calls and draws
// engine frames onto a terminal screen buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the frame loop that produced it; ticks from a loop that has
// been replaced are dropped, which stops that loop.
type TickMsg struct {
	Gen int64
	At  time.Time
}

var loopGen atomic.Int64

// nextGen returns a fresh frame loop generation.
func nextGen() int64 {
	return loopGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at the specified rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// elapsedMs returns the milliseconds between two ticks. A zero previous time
// or a clock going backwards yields 0.
func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}
