// Package game runs one interactive maze: generation, player movement and
// the viewport that follows it, stepped one frame at a time.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/player"
	"github.com/vovakirdan/tui-maze/internal/viewport"
)

// Terminal layout. A display unit is one terminal row high and two columns
// wide, so square tiles look square.
const (
	hudHeight   = 1
	unitColumns = 2
)

// edgeActions fire once per press rather than while held.
var edgeActions = []core.Action{
	core.ActionRegenerate,
	core.ActionPause,
	core.ActionToggleSpeed,
	core.ActionAlign,
	core.ActionCenter,
	core.ActionQuadrant1,
	core.ActionQuadrant2,
	core.ActionQuadrant3,
	core.ActionQuadrant4,
}

// Session is a maze being explored.
type Session struct {
	cfg     Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	maze   *maze.Maze
	view   *viewport.Viewport
	player *player.Player

	tick    uint64
	paused  bool
	prev    map[core.Action]bool
	lastErr error
}

// New creates a session. Call Reset before stepping it.
func New(cfg Config) (*Session, error) {
	m, err := maze.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(1)),
		maze:   m,
		view:   viewport.New(cfg.Rows, cfg.Cols, cfg.Viewport),
		player: player.New(cfg.Player),
		prev:   make(map[core.Action]bool),
	}, nil
}

// ID returns the session identifier used for storage.
func (s *Session) ID() string {
	return "maze"
}

// Title returns a human-readable name.
func (s *Session) Title() string {
	return "Maze"
}

// Reset seeds the generator, fits the view to the screen and carves a maze.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	s.runtime = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.paused = false
	clear(s.prev)

	s.view.SetTickRate(cfg.TickRate)
	s.player.SetTickRate(cfg.TickRate)
	s.Resize(cfg.ScreenW, cfg.ScreenH)
	s.view.SetZoom(s.view.Config().StartZoom)

	s.regenerate()
}

// Resize adapts the viewport to a new terminal size without touching the maze.
func (s *Session) Resize(screenW, screenH int) {
	s.runtime.ScreenW = screenW
	s.runtime.ScreenH = screenH
	s.view.SetDisplaySize(screenW/unitColumns, screenH-hudHeight)
}

// SetGridSize switches to a maze of new dimensions and carves it.
func (s *Session) SetGridSize(rows, cols int) error {
	if err := s.maze.Resize(rows, cols); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	s.cfg.Rows, s.cfg.Cols = rows, cols
	s.view.Resize(rows, cols)
	s.regenerate()
	return nil
}

func (s *Session) regenerate() {
	seed := maze.RandomCell(s.maze.Rows(), s.maze.Cols(), s.rng)
	if err := s.maze.Generate(seed, s.rng); err != nil {
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.tick = 0
	s.player.Place(s.maze.Start())
	s.view.ResetControls()
	s.view.CenterOn(s.maze.Start())
}

// Err returns the error from the last failed generation, if any.
func (s *Session) Err() error {
	return s.lastErr
}

// pressed reports whether a is held this frame but was not last frame.
func (s *Session) pressed(in core.InputFrame, a core.Action) bool {
	return in.Has(a) && !s.prev[a]
}

// Step advances the session by one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	defer func() {
		for _, a := range edgeActions {
			s.prev[a] = in.Has(a)
		}
	}()

	if s.pressed(in, core.ActionRegenerate) {
		s.regenerate()
		res.Regenerated = s.lastErr == nil
		res.State = s.State()
		return res
	}
	if s.pressed(in, core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused || !s.maze.Generated() {
		res.State = s.State()
		return res
	}

	// The clock stops once the finish is reached.
	if !s.player.Escaped() {
		s.tick++
	}

	if s.pressed(in, core.ActionToggleSpeed) {
		s.player.SetAlt(!s.player.Alt())
	}

	// Movement: the frame follows the player.
	dRow := in.Axis(core.ActionUp, core.ActionDown)
	dCol := in.Axis(core.ActionLeft, core.ActionRight)
	if s.player.Update(dRow, dCol, s.maze.Grid()) {
		s.view.CenterOn(s.player.Pos())
		res.JustEscaped = s.player.CheckEscaped(s.maze.Finish())
	}

	// Frame shortcuts.
	switch {
	case s.pressed(in, core.ActionCenter):
		s.view.CenterOn(s.player.Pos())
	case s.pressed(in, core.ActionAlign):
		s.view.AlignToGrid()
	case s.pressed(in, core.ActionQuadrant1):
		s.view.SetQuadrant(1)
	case s.pressed(in, core.ActionQuadrant2):
		s.view.SetQuadrant(2)
	case s.pressed(in, core.ActionQuadrant3):
		s.view.SetQuadrant(3)
	case s.pressed(in, core.ActionQuadrant4):
		s.view.SetQuadrant(4)
	}

	controls := viewport.ControlsFrom(in)
	controls.Cursor = s.displayCursor(in.Cursor)
	s.view.Update(controls)

	res.State = s.State()
	return res
}

// displayCursor converts a terminal cursor to viewport display units.
func (s *Session) displayCursor(c core.Cursor) core.Cursor {
	if !c.Valid {
		return c
	}
	return core.Cursor{X: c.X / unitColumns, Y: c.Y - hudHeight, Valid: true}
}

// ZoomAt zooms by whole steps (positive in, negative out) keeping the cell
// under terminal position (x, y) in place. Used for mouse wheel zoom.
func (s *Session) ZoomAt(steps, x, y int) {
	if s.paused || steps == 0 {
		return
	}
	cursor := s.displayCursor(core.Cursor{X: x, Y: y, Valid: true})
	s.view.ZoomBy(steps*s.view.Config().ZoomStep, cursor)
}

// CellAt returns the maze cell under a terminal position.
func (s *Session) CellAt(x, y int) (grid.Cell, bool) {
	c := s.displayCursor(core.Cursor{X: x, Y: y, Valid: true})
	return s.view.CellAt(c.X, c.Y)
}

// State returns the current session state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Moves:   s.player.Moves(),
		Ticks:   s.tick,
		Escaped: s.player.Escaped(),
		Paused:  s.paused,
	}
}

// Maze returns the maze being played.
func (s *Session) Maze() *maze.Maze {
	return s.maze
}

// Viewport returns the session viewport.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Player returns the session player.
func (s *Session) Player() *player.Player {
	return s.player
}
