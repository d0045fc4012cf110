package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	flagStatsRows  int
	flagStatsCols  int
	flagStatsCount int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Generate many mazes and summarize them",
	Long: `Carve --count mazes with consecutive seeds and report how long the
start to finish path is and how many dead ends each maze has.

Examples:
  maze stats
  maze stats --count 500 --rows 50 --cols 50
  maze stats --seed 1000`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRows, "rows", 0, "Maze rows (3-50, 0 = from config)")
	statsCmd.Flags().IntVar(&flagStatsCols, "cols", 0, "Maze columns (3-50, 0 = from config)")
	statsCmd.Flags().IntVarP(&flagStatsCount, "count", "n", 100, "Number of mazes to generate")
}

// summary holds min, mean and max of a series.
type summary struct {
	min, max int
	mean     float64
}

func summarize(values []float64) summary {
	if len(values) == 0 {
		return summary{}
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return summary{
		min:  int(slices.Min(values)),
		max:  int(slices.Max(values)),
		mean: total / float64(len(values)),
	}
}

func runStats(_ *cobra.Command, _ []string) {
	if flagStatsCount < 1 {
		fmt.Fprintln(os.Stderr, "Error: --count must be at least 1")
		os.Exit(1)
	}

	cfg := loadConfig(flagStatsRows, flagStatsCols)
	rows, cols := cfg.Maze.Rows, cfg.Maze.Cols
	base := seed()

	pathLens := make([]float64, 0, flagStatsCount)
	deadEnds := make([]float64, 0, flagStatsCount)

	for i := range flagStatsCount {
		s := base + int64(i)
		m, err := carve(rows, cols, s)
		if err != nil {
			logger.Warn("skipping maze", "seed", s, "error", err)
			continue
		}

		path, err := m.Solution()
		if err != nil {
			logger.Warn("skipping maze", "seed", s, "error", err)
			continue
		}

		pathLens = append(pathLens, float64(len(path)-1))
		deadEnds = append(deadEnds, float64(len(maze.DeadEnds(m.Grid()))))
	}

	if len(pathLens) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no maze could be generated")
		os.Exit(1)
	}

	p := summarize(pathLens)
	d := summarize(deadEnds)

	fmt.Printf("Mazes: %d x %dx%d  seeds %d..%d\n", len(pathLens), rows, cols, base, base+int64(flagStatsCount)-1)
	fmt.Println()
	fmt.Printf("  %-12s  %6s  %8s  %6s\n", "", "Min", "Mean", "Max")
	fmt.Printf("  %-12s  %6d  %8.1f  %6d\n", "Path length", p.min, p.mean, p.max)
	fmt.Printf("  %-12s  %6d  %8.1f  %6d\n", "Dead ends", d.min, d.mean, d.max)
	fmt.Println()

	if len(pathLens) < 2 {
		return
	}

	fmt.Println(asciigraph.Plot(pathLens,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("start to finish path length per seed"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(deadEnds,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("dead ends per seed"),
	))
}
