package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagHistRows        int
	flagHistCols        int
	flagHistLimit       int
	flagHistAll         bool
	flagHistInteractive bool
	flagHistClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show best completed runs",
	Long: `Display the best runs (fewest moves, then fastest) for a maze size.

Examples:
  maze history
  maze history --rows 50 --cols 50 --limit 20
  maze history --all
  maze history -i
  maze history --rows 10 --cols 10 --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistRows, "rows", 0, "Maze rows (0 = from config)")
	historyCmd.Flags().IntVar(&flagHistCols, "cols", 0, "Maze columns (0 = from config)")
	historyCmd.Flags().IntVar(&flagHistLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistAll, "all", false, "Summarize every maze size played")
	historyCmd.Flags().BoolVarP(&flagHistInteractive, "interactive", "i", false, "Browse runs in a table")
	historyCmd.Flags().BoolVar(&flagHistClear, "clear", false, "Delete the runs for the maze size")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig(flagHistRows, flagHistCols)
	rows, cols := cfg.Maze.Rows, cfg.Maze.Cols

	store, err := storage.Open(dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	case flagHistAll:
		printSizeStats(store)
		return
	}

	if flagHistClear {
		if err := store.ClearRuns(rows, cols); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %dx%d.\n", rows, cols)
		return
	}

	runs, err := store.TopRuns(rows, cols, flagHistLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %dx%d\n", rows, cols)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play --rows %d --cols %d' to set the first record!\n", rows, cols)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %-12s  %s\n",
			i+1, r.Moves, fmt.Sprintf("%.1fs", r.Duration().Seconds()), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSizeStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-7s  %-5s  %-10s  %-9s  %s\n", "Size", "Runs", "Best", "Avg", "Last played")
	fmt.Printf("  %-7s  %-5s  %-10s  %-9s  %s\n", "----", "----", "----", "---", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-7s  %-5d  %-10s  %-9.1f  %s\n",
			fmt.Sprintf("%dx%d", s.Rows, s.Cols), s.Runs,
			fmt.Sprintf("%d moves", s.BestMoves), s.AvgMoves,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
