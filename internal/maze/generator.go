// Package maze carves perfect mazes into a grid and locates their exits.
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// ErrNotFresh is returned when generation starts on a grid that already has
// visited cells or removed walls.
var ErrNotFresh = errors.New("maze: grid already carved")

// Source is the random source used for generation.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// RandomCell picks a uniformly random cell of a rows x cols grid.
func RandomCell(rows, cols int, rng Source) grid.Cell {
	return grid.C(rng.Intn(rows), rng.Intn(cols))
}

// Generate carves a spanning tree into g with a randomized depth-first
// backtracker starting at start.
//
// The walk keeps its own stack instead of recursing, so a 50x50 grid needs no
// deep call stack. Each time a cell becomes the top of the stack its unvisited
// neighbours are recomputed, one is picked with rng, the wall between them is
// removed and the neighbour is pushed. A cell with no unvisited neighbours is
// popped. The same grid size, start cell and source sequence always produce
// the same maze.
func Generate(g *grid.Grid, start grid.Cell, rng Source) error {
	if !g.InBounds(start) {
		return fmt.Errorf("maze: start %v: %w", start, grid.ErrOutOfBounds)
	}
	if g.RemovedWalls() != 0 || g.VisitedCount() != 0 {
		return ErrNotFresh
	}

	stack := make([]grid.Cell, 0, g.Size())
	buf := make([]grid.Cell, 0, 4)

	g.MarkVisited(start)
	stack = append(stack, start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		buf = g.AppendNeighbors(buf[:0], current, true)
		if len(buf) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := buf[rng.Intn(len(buf))]
		if err := g.RemoveWallBetween(current, next); err != nil {
			return fmt.Errorf("maze: carving %v->%v: %w", current, next, err)
		}
		g.MarkVisited(next)
		stack = append(stack, next)
	}

	return nil
}
