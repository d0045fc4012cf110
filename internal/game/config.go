package game

import (
	"github.com/vovakirdan/tui-maze/internal/player"
	"github.com/vovakirdan/tui-maze/internal/viewport"
)

// Config describes a maze session.
type Config struct {
	Rows int
	Cols int

	Viewport viewport.Config
	Player   player.Config
}

// DefaultConfig returns a 30x20 maze with stock viewport and player settings.
func DefaultConfig() Config {
	return Config{
		Rows:     30,
		Cols:     20,
		Viewport: viewport.DefaultConfig(),
		Player:   player.DefaultConfig(),
	}
}
