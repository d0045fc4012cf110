// maze is a terminal maze explorer with zoom, pan and hold-to-repeat controls.
//
// Usage:
//
//	maze play               - Explore a maze interactively
//	maze generate           - Print a maze as ASCII
//	maze stats              - Generate many mazes and summarize them
//	maze serve              - Start SSH server for remote play
//	maze history            - Show best completed runs
//	maze config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config: 60)
//	--seed <value>   - Set RNG seed for reproducible mazes
//	--db <path>      - Set database path (default: $MAZE_DB or ~/.maze/runs.db)
//	--config <path>  - Use a custom maze.yaml
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

const defaultDBPath = "~/.maze/runs.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "maze",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - generate and explore mazes in your terminal",
	Long: `Maze carves perfect mazes with a randomized backtracker, places the
start and finish on far-apart dead ends and lets you explore them with a
zoomable, pannable view.

Available commands:
  play     - Explore a maze interactively
  generate - Print a maze as ASCII
  stats    - Generate many mazes and summarize them
  serve    - Start SSH server for remote play
  history  - Show best completed runs
  config   - Print the effective configuration

Examples:
  maze play
  maze play --rows 40 --cols 40
  maze generate --seed 42 --solution
  maze stats --count 200
  maze serve --ssh :2222
  maze history`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if err := config.LoadEnv(); err != nil {
			logger.Warn("could not load .env", "error", err)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default $MAZE_DB or "+defaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig resolves the maze config from file, environment and flags.
// rows and cols override the config when positive.
func loadConfig(rows, cols int) config.MazeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if rows > 0 {
		cfg.Maze.Rows = rows
	}
	if cols > 0 {
		cfg.Maze.Cols = cols
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("config loaded",
		"rows", cfg.Maze.Rows, "cols", cfg.Maze.Cols, "tick_rate", cfg.TickRate)
	return cfg
}

// dbPath returns the runs database path: --db, then $MAZE_DB, then the default.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.EnvOr(config.EnvDB, defaultDBPath)
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
