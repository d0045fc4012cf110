// Package config provides YAML-based configuration loading for the maze
// explorer, with .env and environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/player"
	"github.com/vovakirdan/tui-maze/internal/viewport"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// MazeConfig contains all configuration for a maze session.
type MazeConfig struct {
	Maze     MazeSection     `yaml:"maze"`
	Viewport ViewportSection `yaml:"viewport"`
	Player   PlayerSection   `yaml:"player"`
	TickRate int             `yaml:"tick_rate"`
}

// MazeSection defines the grid dimensions.
type MazeSection struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ViewportSection defines zoom and pan behaviour.
type ViewportSection struct {
	MinFrameTiles int     `yaml:"min_frame_tiles"`
	MaxFrameTiles int     `yaml:"max_frame_tiles"`
	Ratio         float64 `yaml:"ratio"`
	StartZoom     float64 `yaml:"start_zoom"`
	PanStep       float64 `yaml:"pan_step"`
	PanSpeed      float64 `yaml:"pan_speed"`
	ZoomStep      int     `yaml:"zoom_step"`
	ZoomSpeed     float64 `yaml:"zoom_speed"`
	ZoomDelay     float64 `yaml:"zoom_delay"`
}

// PlayerSection defines player movement.
type PlayerSection struct {
	Speed         int  `yaml:"speed"`
	AltSpeed      int  `yaml:"alt_speed"`
	VerticalFirst bool `yaml:"vertical_first"`
}

// Validate reports the first setting that cannot be used.
func (c MazeConfig) Validate() error {
	switch {
	case !grid.ValidDims(c.Maze.Rows, c.Maze.Cols):
		return fmt.Errorf("%w: maze %dx%d outside [%d, %d]", ErrInvalid, c.Maze.Rows, c.Maze.Cols, grid.MinDim, grid.MaxDim)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	case c.Viewport.MinFrameTiles < 1 || c.Viewport.MaxFrameTiles < c.Viewport.MinFrameTiles:
		return fmt.Errorf("%w: frame tiles [%d, %d]", ErrInvalid, c.Viewport.MinFrameTiles, c.Viewport.MaxFrameTiles)
	case c.Viewport.Ratio <= 0 || c.Viewport.Ratio > 1:
		return fmt.Errorf("%w: viewport ratio %g", ErrInvalid, c.Viewport.Ratio)
	case c.Viewport.StartZoom <= 0 || c.Viewport.StartZoom > 1:
		return fmt.Errorf("%w: start_zoom %g", ErrInvalid, c.Viewport.StartZoom)
	case c.Viewport.PanStep <= 0 || c.Viewport.PanSpeed <= 0:
		return fmt.Errorf("%w: pan step %g speed %g", ErrInvalid, c.Viewport.PanStep, c.Viewport.PanSpeed)
	case c.Viewport.ZoomStep < 1 || c.Viewport.ZoomSpeed <= 0 || c.Viewport.ZoomDelay <= 0:
		return fmt.Errorf("%w: zoom step %d speed %g delay %g", ErrInvalid, c.Viewport.ZoomStep, c.Viewport.ZoomSpeed, c.Viewport.ZoomDelay)
	case c.Player.Speed < player.MinSpeed || c.Player.Speed > player.MaxSpeed:
		return fmt.Errorf("%w: player speed %d", ErrInvalid, c.Player.Speed)
	case c.Player.AltSpeed < player.MinSpeed || c.Player.AltSpeed > player.MaxSpeed:
		return fmt.Errorf("%w: player alt_speed %d", ErrInvalid, c.Player.AltSpeed)
	}
	return nil
}

// ToViewportConfig converts the viewport section to runtime settings.
func (c MazeConfig) ToViewportConfig() viewport.Config {
	v := c.Viewport
	return viewport.Config{
		MinFrameTiles: v.MinFrameTiles,
		MaxFrameTiles: v.MaxFrameTiles,
		Ratio:         v.Ratio,
		StartZoom:     v.StartZoom,
		PanStep:       v.PanStep,
		PanSpeed:      v.PanSpeed,
		ZoomStep:      v.ZoomStep,
		ZoomSpeed:     v.ZoomSpeed,
		ZoomDelay:     v.ZoomDelay,
		TickRate:      c.TickRate,
	}
}

// ToPlayerConfig converts the player section to runtime settings.
func (c MazeConfig) ToPlayerConfig() player.Config {
	return player.Config{
		Speed:         c.Player.Speed,
		AltSpeed:      c.Player.AltSpeed,
		VerticalFirst: c.Player.VerticalFirst,
		TickRate:      c.TickRate,
	}
}

// ToGameConfig builds a session config.
func (c MazeConfig) ToGameConfig() game.Config {
	return game.Config{
		Rows:     c.Maze.Rows,
		Cols:     c.Maze.Cols,
		Viewport: c.ToViewportConfig(),
		Player:   c.ToPlayerConfig(),
	}
}
