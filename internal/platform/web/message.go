// Package web serves the brick breaker engine to browsers over WebSocket.
// Each connection owns one game; the server pushes frames and the page
// draws them.
package web

import "github.com/vovakirdan/tui-bricks/internal/games/bricks"

// Command types accepted from the browser.
const (
	CmdStart  = "start"  // Start or resume a game
	CmdMove   = "move"   // Pointer moved to X
	CmdResize = "resize" // Canvas resized
	CmdPause  = "pause"
	CmdResume = "resume"
	CmdRetry  = "retry"
	CmdReset  = "reset" // Clear the save and start over
	CmdTick   = "tick"  // Advance by Delta ms, for clients driving their own clock
)

// Message types sent to the browser.
const (
	MsgFrame = "frame"
	MsgError = "error"
)

// Command is a message from the browser.
type Command struct {
	Type   string  `json:"type"`
	Resume bool    `json:"resume,omitempty"`
	X      float64 `json:"x,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
}

// Message is a message to the browser.
type Message struct {
	Type  string        `json:"type"`
	Frame *bricks.Frame `json:"frame,omitempty"`
	Error string        `json:"error,omitempty"`
}
