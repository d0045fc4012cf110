package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// DeadEnd is the wall count of a cell with a single passage.
const DeadEnd = 3

// ErrNoMatchingCell is returned when a ring search runs out of radii.
var ErrNoMatchingCell = errors.New("maze: no matching cell")

// SearchResult is a cell found by ring search and the ring it was found on.
type SearchResult struct {
	Cell   grid.Cell
	Radius int
}

// FindCellWithBorders returns the cell closest to seed, by ring, whose wall
// count equals target. Rings of radius 0 up to max(rows, cols)-1 are walked
// from corner in the given rotation; the first match wins.
func FindCellWithBorders(g *grid.Grid, seed grid.Cell, target int, rot Rotation, corner Corner) (grid.Cell, error) {
	res, err := search(g, seed, rot, corner, func(c grid.Cell) bool {
		return g.WallCount(c) == target
	})
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%w: %d walls from %v", err, target, seed)
	}
	return res.Cell, nil
}

// search runs the ring search with an arbitrary predicate.
func search(g *grid.Grid, seed grid.Cell, rot Rotation, corner Corner, match func(grid.Cell) bool) (SearchResult, error) {
	if !g.InBounds(seed) {
		return SearchResult{}, fmt.Errorf("maze: seed %v: %w", seed, grid.ErrOutOfBounds)
	}

	maxRadius := max(g.Rows(), g.Cols()) - 1
	for radius := 0; radius <= maxRadius; radius++ {
		ring := NewRing(g.Rows(), g.Cols(), seed, radius)
		for c := range ring.Cells(corner, rot) {
			if match(c) {
				return SearchResult{Cell: c, Radius: radius}, nil
			}
		}
	}
	return SearchResult{}, ErrNoMatchingCell
}

// FindExits picks the start and finish cells of a carved grid.
//
// The start is the dead end nearest the bottom-left corner (clockwise walk),
// the finish the dead end nearest the top-right corner (counter-clockwise
// walk). Both walks begin at the top-left corner of each ring. If both
// searches land on the same dead end, the finish search skips it.
func FindExits(g *grid.Grid) (start, finish grid.Cell, err error) {
	startSeed := grid.C(g.Rows()-1, 0)
	finishSeed := grid.C(0, g.Cols()-1)

	start, err = FindCellWithBorders(g, startSeed, DeadEnd, Clockwise, TopLeft)
	if err != nil {
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("start: %w", err)
	}

	res, err := search(g, finishSeed, CounterClockwise, TopLeft, func(c grid.Cell) bool {
		return c != start && g.WallCount(c) == DeadEnd
	})
	if err != nil {
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("finish: %w: dead end from %v", err, finishSeed)
	}
	return start, res.Cell, nil
}
