package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

var (
	flagLevelsCount int
	flagLevelsScale float64
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the generated level table",
	Long: `Show rows, columns, ball speed and points per brick for the first
levels. Speeds are in pixels per frame at the given scale.

Examples:
  bricks levels
  bricks levels --count 20 --scale 0.5`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagLevelsCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", flagLevelsCount)
		}
		writeLevels(os.Stdout, flagLevelsCount, flagLevelsScale)
		return nil
	},
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsCount, "count", 10, "Number of levels to show")
	levelsCmd.Flags().Float64Var(&flagLevelsScale, "scale", 1, "Canvas scale factor")
}

func writeLevels(w io.Writer, count int, scale float64) {
	fmt.Fprintf(w, "  %-5s  %-4s  %-7s  %-6s  %-6s  %s\n", "Level", "Rows", "Columns", "Bricks", "Speed", "Points")
	fmt.Fprintf(w, "  %-5s  %-4s  %-7s  %-6s  %-6s  %s\n", "-----", "----", "-------", "------", "-----", "------")

	for level := 1; level <= count; level++ {
		cfg := bricks.GenerateLevelConfig(level, scale)
		fmt.Fprintf(w, "  %-5d  %-4d  %-7d  %-6d  %-6.2f  %d\n",
			level, cfg.RowCount, cfg.ColumnCount, cfg.BrickCount(), cfg.Speed, cfg.ScorePerBrick)
	}
}
