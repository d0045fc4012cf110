package maze

import (
	"strings"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// String renders the maze as ASCII art with S and F marking the exits.
func (m *Maze) String() string {
	return m.ASCII(nil)
}

// ASCII renders the maze as ASCII art. Cells on path are marked with '.'.
//
//	+---+---+
//	| S     |
//	+---+   +
//	| F     |
//	+---+---+
func (m *Maze) ASCII(path []grid.Cell) string {
	g := m.grid
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	sb.Grow((g.Rows()*2 + 1) * (g.Cols()*4 + 2))

	// Top boundary
	sb.WriteString("+")
	for col := range g.Cols() {
		if g.HasWall(grid.C(0, col), grid.North) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')

	for row := range g.Rows() {
		// Cell row
		if g.HasWall(grid.C(row, 0), grid.West) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for col := range g.Cols() {
			c := grid.C(row, col)
			sb.WriteByte(' ')
			sb.WriteByte(m.marker(c, onPath))
			sb.WriteByte(' ')
			if g.HasWall(c, grid.East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		// Wall row
		sb.WriteByte('+')
		for col := range g.Cols() {
			if g.HasWall(grid.C(row, col), grid.South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (m *Maze) marker(c grid.Cell, onPath map[grid.Cell]bool) byte {
	switch {
	case m.generated && c == m.start:
		return 'S'
	case m.generated && c == m.finish:
		return 'F'
	case onPath[c]:
		return '.'
	default:
		return ' '
	}
}
