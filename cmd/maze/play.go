package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagPlayRows int
	flagPlayCols int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a maze",
	Long: `Carve a maze and explore it from start (S) to finish (F).

Controls:
  Arrows/WASD  - Move (hold to repeat)
  H/J/K/L      - Pan the view
  +/-, wheel   - Zoom in/out (wheel zooms around the pointer)
  G            - Align the view to whole tiles
  C            - Center the view on the player
  1-4          - Jump to a corner of the maze
  Tab          - Toggle fast movement
  N            - New maze
  P/Esc        - Pause
  ?            - Full help
  Q/Ctrl+C     - Quit

Completed runs are saved to the runs database.

Examples:
  maze play
  maze play --rows 50 --cols 50
  maze play --seed 42 --fps 30
  maze play --config ./my-maze.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayRows, "rows", 0, "Maze rows (3-50, 0 = from config)")
	playCmd.Flags().IntVar(&flagPlayCols, "cols", 0, "Maze columns (3-50, 0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	mazeCfg := loadConfig(flagPlayRows, flagPlayCols)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: mazeCfg.TickRate,
		Seed:     seed(),
	}
	logger.Debug("starting session", "width", width, "height", height, "seed", cfg.Seed)

	session, err := game.New(mazeCfg.ToGameConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - the maze still works
		store = nil
	}

	runErr := tui.Run(session, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running maze: %v\n", runErr)
		os.Exit(1)
	}
}
