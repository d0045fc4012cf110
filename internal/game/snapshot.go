package game

import "github.com/vovakirdan/tui-maze/internal/grid"

// Snapshot captures session state for determinism tests and debugging.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Start     grid.Cell
	Finish    grid.Cell
	Player    grid.Cell
	Moves     int
	Escaped   bool
	Paused    bool
	ZoomTiles int
	FrameRow  float64
	FrameCol  float64
	TileSize  int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	pos := s.view.FramePos()
	return Snapshot{
		Tick:      s.tick,
		Rows:      s.maze.Rows(),
		Cols:      s.maze.Cols(),
		Start:     s.maze.Start(),
		Finish:    s.maze.Finish(),
		Player:    s.player.Pos(),
		Moves:     s.player.Moves(),
		Escaped:   s.player.Escaped(),
		Paused:    s.paused,
		ZoomTiles: s.view.ZoomTiles(),
		FrameRow:  pos.Row,
		FrameCol:  pos.Col,
		TileSize:  s.view.TileSize(),
	}
}
