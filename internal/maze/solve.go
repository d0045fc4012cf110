package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// ErrUnreachable is returned when no passage connects two cells.
var ErrUnreachable = errors.New("maze: cell unreachable")

// Solve returns the path from one cell to another through removed walls,
// both ends included. In a perfect maze this is the only simple path.
func Solve(g *grid.Grid, from, to grid.Cell) ([]grid.Cell, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, fmt.Errorf("maze: solve %v->%v: %w", from, to, grid.ErrOutOfBounds)
	}

	prev := make(map[grid.Cell]grid.Cell, g.Size())
	prev[from] = from
	queue := []grid.Cell{from}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			break
		}
		for _, n := range g.Open(c) {
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = c
			queue = append(queue, n)
		}
	}

	if _, ok := prev[to]; !ok {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, to, from)
	}

	var path []grid.Cell
	for c := to; ; c = prev[c] {
		path = append(path, c)
		if c == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Reachable counts the cells connected to from through removed walls.
func Reachable(g *grid.Grid, from grid.Cell) int {
	seen := map[grid.Cell]bool{from: true}
	stack := []grid.Cell{from}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.Open(c) {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen)
}

// DeadEnds returns every cell with exactly three standing walls.
func DeadEnds(g *grid.Grid) []grid.Cell {
	var out []grid.Cell
	g.Cells(func(c grid.Cell, w grid.Wall) {
		if w.Count() == DeadEnd {
			out = append(out, c)
		}
	})
	return out
}
