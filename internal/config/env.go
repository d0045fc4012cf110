package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv and the CLI.
const (
	EnvRows     = "MAZE_ROWS"
	EnvCols     = "MAZE_COLS"
	EnvTickRate = "MAZE_TICK_RATE"
	EnvDB       = "MAZE_DB"
)

// LoadEnv loads variables from the given .env files (".env" when none are
// named) into the process environment. Variables already set win.
// A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from MAZE_ROWS, MAZE_COLS and MAZE_TICK_RATE and
// re-validates the result.
func ApplyEnv(cfg *MazeConfig) error {
	overrides := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Maze.Rows},
		{EnvCols, &cfg.Maze.Cols},
		{EnvTickRate, &cfg.TickRate},
	}
	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", o.key, err)
		}
		*o.dst = v
	}
	return cfg.Validate()
}

// EnvOr returns the value of key, or def when it is unset or empty.
func EnvOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
