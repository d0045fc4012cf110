package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
// It mirrors defaults/maze.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeSection{
			Rows: 30,
			Cols: 20,
		},
		Viewport: ViewportSection{
			MinFrameTiles: 3,
			MaxFrameTiles: 50,
			Ratio:         8.0 / 9.0,
			StartZoom:     0.75,
			PanStep:       0.5,
			PanSpeed:      5,
			ZoomStep:      1,
			ZoomSpeed:     15,
			ZoomDelay:     0.25,
		},
		Player: PlayerSection{
			Speed:         6,
			AltSpeed:      18,
			VerticalFirst: true,
		},
		TickRate: 60,
	}
}
