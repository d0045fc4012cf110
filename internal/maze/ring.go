package maze

import (
	"iter"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Rotation is the direction a ring is walked in.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// String returns the rotation name.
func (r Rotation) String() string {
	if r == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Corner selects the ring corner a walk starts from.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

var (
	east  = grid.C(0, 1)
	south = grid.C(1, 0)
	west  = grid.C(0, -1)
	north = grid.C(-1, 0)

	// Headings in clockwise order; a right turn is +1, a left turn is +3.
	headings = [4]grid.Cell{east, south, west, north}

	// Index into headings of the first step when leaving each corner clockwise.
	cwStart = [4]int{TopLeft: 0, TopRight: 1, BottomRight: 2, BottomLeft: 3}
)

// Ring is the boundary of the square of half-width Radius around Center,
// clamped to the grid. Sides that would leave the grid are pulled onto the
// nearest row or column inside it, so a ring near an edge hugs that edge.
type Ring struct {
	Center grid.Cell
	Radius int

	Top, Left, Bottom, Right int
}

// NewRing builds the clamped ring of the given radius for a rows x cols grid.
func NewRing(rows, cols int, center grid.Cell, radius int) Ring {
	return Ring{
		Center: center,
		Radius: radius,
		Top:    max(center.Row-radius, 0),
		Bottom: min(center.Row+radius, rows-1),
		Left:   max(center.Col-radius, 0),
		Right:  min(center.Col+radius, cols-1),
	}
}

// Corner returns the cell at the given ring corner.
func (r Ring) Corner(c Corner) grid.Cell {
	switch c {
	case TopRight:
		return grid.C(r.Top, r.Right)
	case BottomRight:
		return grid.C(r.Bottom, r.Right)
	case BottomLeft:
		return grid.C(r.Bottom, r.Left)
	default:
		return grid.C(r.Top, r.Left)
	}
}

func (r Ring) isCorner(c grid.Cell) bool {
	return (c.Row == r.Top || c.Row == r.Bottom) && (c.Col == r.Left || c.Col == r.Right)
}

// Len returns the number of distinct cells on the ring.
func (r Ring) Len() int {
	h := r.Bottom - r.Top + 1
	w := r.Right - r.Left + 1
	if h == 1 || w == 1 {
		return h * w
	}
	return 2*(h+w) - 4
}

// Cells walks the ring once, starting at the given corner, in the given
// rotation. The walk runs along a side, turns at each corner and stops when
// it arrives back at its start.
//
// A ring that collapsed to a single row or column has no loop to follow; it
// is walked end to end starting from the side holding the start corner. A
// ring of one cell yields just that cell.
func (r Ring) Cells(start Corner, rot Rotation) iter.Seq[grid.Cell] {
	return func(yield func(grid.Cell) bool) {
		origin := r.Corner(start)

		switch {
		case r.Top == r.Bottom && r.Left == r.Right:
			yield(origin)
			return
		case r.Top == r.Bottom:
			line(r.Left, r.Right, origin.Col, func(i int) grid.Cell { return grid.C(r.Top, i) }, yield)
			return
		case r.Left == r.Right:
			line(r.Top, r.Bottom, origin.Row, func(i int) grid.Cell { return grid.C(i, r.Left) }, yield)
			return
		}

		turn := 1
		h := cwStart[start]
		if rot == CounterClockwise {
			// Counter-clockwise leaves each corner one heading later and turns left.
			h = (cwStart[start] + 1) % 4
			turn = 3
		}

		pos := origin
		for {
			if !yield(pos) {
				return
			}
			pos = pos.Add(headings[h].Row, headings[h].Col)
			if pos == origin {
				return
			}
			if r.isCorner(pos) {
				h = (h + turn) % 4
			}
		}
	}
}

// line walks a degenerate ring from the end at from towards the other end.
func line(lo, hi, from int, at func(int) grid.Cell, yield func(grid.Cell) bool) {
	if from == lo {
		for i := lo; i <= hi; i++ {
			if !yield(at(i)) {
				return
			}
		}
		return
	}
	for i := hi; i >= lo; i-- {
		if !yield(at(i)) {
			return
		}
	}
}
