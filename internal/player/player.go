// Package player moves a marker through the passages of a carved maze.
package player

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Speed limits in tiles per second.
const (
	MinSpeed     = 1
	MaxSpeed     = 30
	DefaultSpeed = 6
	AltSpeed     = 18
)

// MinMoveDelay is the shortest hold, in seconds, before movement repeats.
const MinMoveDelay = 0.25

// Config holds the movement settings.
type Config struct {
	Speed         int  // tiles per second at normal speed
	AltSpeed      int  // tiles per second while the alternate speed is on
	VerticalFirst bool // try the vertical component of a diagonal first
	TickRate      int
}

// DefaultConfig returns the stock movement settings at 60 fps.
func DefaultConfig() Config {
	return Config{
		Speed:         DefaultSpeed,
		AltSpeed:      AltSpeed,
		VerticalFirst: true,
		TickRate:      60,
	}
}

// Player is a position in the maze plus its movement state.
type Player struct {
	cfg   Config
	cell  grid.Cell
	alt   bool
	timer *core.RepeatTimer

	moves   int
	escaped bool
}

// New creates a player at (0, 0).
func New(cfg Config) *Player {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.Speed = core.Clamp(cfg.Speed, MinSpeed, MaxSpeed)
	cfg.AltSpeed = core.Clamp(cfg.AltSpeed, MinSpeed, MaxSpeed)

	p := &Player{cfg: cfg, timer: core.NewRepeatTimer(1, 1)}
	p.applySpeed()
	return p
}

// Speed returns the active speed in tiles per second.
func (p *Player) Speed() int {
	if p.alt {
		return p.cfg.AltSpeed
	}
	return p.cfg.Speed
}

// Alt reports whether the alternate speed is active.
func (p *Player) Alt() bool {
	return p.alt
}

// SetAlt switches between normal and alternate speed.
func (p *Player) SetAlt(alt bool) {
	if p.alt == alt {
		return
	}
	p.alt = alt
	p.applySpeed()
}

// SetTickRate rescales movement timing for a new frame rate.
func (p *Player) SetTickRate(fps int) {
	if fps <= 0 {
		return
	}
	p.cfg.TickRate = fps
	p.applySpeed()
}

// Intervals returns the initial hold delay and the repeat interval in frames.
func (p *Player) Intervals() (delay, interval int) {
	fps := float64(p.cfg.TickRate)
	interval = max(int(math.Round(fps/float64(p.Speed()))), 1)
	delay = max(int(MinMoveDelay*fps), interval)
	return delay, interval
}

func (p *Player) applySpeed() {
	p.timer.SetDurations(p.Intervals())
}

// Place puts the player on c, clearing the move count and escape flag.
func (p *Player) Place(c grid.Cell) {
	p.cell = c
	p.moves = 0
	p.escaped = false
	p.timer.Reset()
}

// Teleport moves the player without touching its counters.
func (p *Player) Teleport(c grid.Cell) {
	p.cell = c
}

// Pos returns the current cell.
func (p *Player) Pos() grid.Cell {
	return p.cell
}

// Moves returns the number of successful steps since the last Place.
func (p *Player) Moves() int {
	return p.moves
}

// Escaped reports whether the player has reached the finish.
func (p *Player) Escaped() bool {
	return p.escaped
}

// Update handles one frame of held movement input. dRow and dCol are each
// -1, 0 or +1. It reports whether the player moved.
//
// A blocked step does not start the repeat delay, so holding a direction
// into a wall moves the player the moment a passage opens up.
func (p *Player) Update(dRow, dCol int, g *grid.Grid) bool {
	if !p.timer.Tick(dRow != 0 || dCol != 0) {
		return false
	}
	if !p.Step(dRow, dCol, g) {
		p.timer.Reset()
		return false
	}
	return true
}

// Step tries a single move right away. When both components are set only
// one is taken: the preferred axis if open, otherwise the other one.
func (p *Player) Step(dRow, dCol int, g *grid.Grid) bool {
	first, second := p.vertical, p.horizontal
	if !p.cfg.VerticalFirst {
		first, second = second, first
	}
	if first(dRow, dCol, g) || second(dRow, dCol, g) {
		p.moves++
		return true
	}
	return false
}

func (p *Player) vertical(dRow, _ int, g *grid.Grid) bool {
	switch {
	case dRow < 0:
		return p.advance(grid.North, -1, 0, g)
	case dRow > 0:
		return p.advance(grid.South, 1, 0, g)
	}
	return false
}

func (p *Player) horizontal(_, dCol int, g *grid.Grid) bool {
	switch {
	case dCol < 0:
		return p.advance(grid.West, 0, -1, g)
	case dCol > 0:
		return p.advance(grid.East, 0, 1, g)
	}
	return false
}

func (p *Player) advance(wall grid.Wall, dRow, dCol int, g *grid.Grid) bool {
	if !g.InBounds(p.cell) || g.HasWall(p.cell, wall) {
		return false
	}
	next := p.cell.Add(dRow, dCol)
	if !g.InBounds(next) {
		return false
	}
	p.cell = next
	return true
}

// CheckEscaped marks the player as escaped when standing on finish.
// It returns true only on the call that first detects the escape.
func (p *Player) CheckEscaped(finish grid.Cell) bool {
	if p.escaped || p.cell != finish {
		return false
	}
	p.escaped = true
	return true
}
