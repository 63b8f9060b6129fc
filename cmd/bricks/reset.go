package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var flagResetPlayer string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved game",
	Long: `Delete the saved level and score so the next game starts at level 1.
The score history is kept; use 'bricks scores --clear' for that.

Examples:
  bricks reset
  bricks reset --player alice   # SSH or WebSocket player`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetPlayer, "player", "", "Reset a remote player's slot instead of the local one")
}

func runReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	slot := store.SlotFor(flagResetPlayer)
	if !slot.HasProgress() {
		fmt.Println("No saved game.")
		return nil
	}
	if err := slot.ClearProgress(); err != nil {
		return fmt.Errorf("error clearing progress: %w", err)
	}
	fmt.Printf("Saved game %q cleared.\n", slot.Key())
	return nil
}
