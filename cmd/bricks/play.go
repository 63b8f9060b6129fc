package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	flagNew      bool
	flagContinue bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal. Without flags the main menu opens.

Controls:
  A/D, Left/Right, Mouse - Move paddle
  P/Esc                  - Pause
  R/Enter                - Retry (after a failed level)
  Q/Ctrl+C               - Quit

Progress is saved as you play; --continue picks up the saved level and
score.

Examples:
  bricks play
  bricks play --new
  bricks play --continue --fps 30
  bricks play --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Skip the menu and start at level 1")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Skip the menu and resume the saved game")
	playCmd.MarkFlagsMutuallyExclusive("new", "continue")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(flagLogFile); err == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger := newLogger(logOut, "bricks")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - progress lives for this run only
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	start := tui.StartMenu
	switch {
	case flagNew:
		start = tui.StartNew
	case flagContinue:
		start = tui.StartContinue
	}

	opts := tui.Options{
		Config:  loadConfig(),
		Runtime: runtimeConfig(width, height),
		Store:   store,
		Logger:  logger,
	}
	logger.Info("starting local session", "width", width, "height", height, "fps", flagFPS)

	if err := tui.Run(opts, start); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
