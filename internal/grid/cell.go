package grid

import "fmt"

// Cell identifies a grid position by row and column.
type Cell struct {
	Row int
	Col int
}

// C is a shorthand constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell offset by the given deltas.
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Wall is a bit mask of standing walls around a cell.
type Wall uint8

const (
	North Wall = 1 << iota
	East
	South
	West

	AllWalls = North | East | South | West
	NoWalls  Wall = 0
)

// Has reports whether every wall in w2 is standing in w.
func (w Wall) Has(w2 Wall) bool {
	return w&w2 == w2
}

// Count returns the number of standing walls.
func (w Wall) Count() int {
	n := 0
	for _, d := range []Wall{North, East, South, West} {
		if w&d != 0 {
			n++
		}
	}
	return n
}

// Opposite returns the wall on the other side of a shared boundary.
func (w Wall) Opposite() Wall {
	switch w {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return NoWalls
	}
}

// String returns a compact representation like "N.S." for debugging.
func (w Wall) String() string {
	b := []byte("....")
	for i, d := range []struct {
		wall Wall
		ch   byte
	}{{North, 'N'}, {East, 'E'}, {South, 'S'}, {West, 'W'}} {
		if w&d.wall != 0 {
			b[i] = d.ch
		}
	}
	return string(b)
}

// Direction returns the wall of a that faces b, or NoWalls when the cells
// are not orthogonally adjacent.
func Direction(a, b Cell) Wall {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return North
	case b.Row == a.Row+1 && b.Col == a.Col:
		return South
	case b.Col == a.Col+1 && b.Row == a.Row:
		return East
	case b.Col == a.Col-1 && b.Row == a.Row:
		return West
	default:
		return NoWalls
	}
}
