// Package grid holds the wall and visited state of a rectangular maze grid.
// Cells are stored in row-major order: index = row*cols + col.
package grid

import "fmt"

// Grid size limits, inclusive.
const (
	MinDim = 3
	MaxDim = 50
)

// neighbourOffsets is the fixed neighbour order: left, up, right, down.
var neighbourOffsets = [4]Cell{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// Grid is a rows x cols field of cells with symmetric walls.
type Grid struct {
	rows    int
	cols    int
	walls   []Wall
	visited []bool
	removed int // walls removed since creation
}

// New creates a grid with every wall standing and every cell unvisited.
func New(rows, cols int) (*Grid, error) {
	if !ValidDims(rows, cols) {
		return nil, fmt.Errorf("%w: %dx%d (allowed %d..%d)", ErrDimensionOutOfRange, rows, cols, MinDim, MaxDim)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		walls:   make([]Wall, rows*cols),
		visited: make([]bool, rows*cols),
	}
	for i := range g.walls {
		g.walls[i] = AllWalls
	}
	return g, nil
}

// ValidDims reports whether rows and cols are both inside [MinDim, MaxDim].
func ValidDims(rows, cols int) bool {
	return rows >= MinDim && rows <= MaxDim && cols >= MinDim && cols <= MaxDim
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// index converts a cell to a flat array index.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Walls returns the standing walls of a cell. Out-of-bounds cells report all walls.
func (g *Grid) Walls(c Cell) Wall {
	if !g.InBounds(c) {
		return AllWalls
	}
	return g.walls[g.index(c)]
}

// HasWall reports whether the given wall of c is standing.
func (g *Grid) HasWall(c Cell, w Wall) bool {
	return g.Walls(c).Has(w)
}

// WallCount returns the number of standing walls around c (0-4).
// 3 marks a dead end, 2 a corridor, 1 or 0 a junction.
func (g *Grid) WallCount(c Cell) int {
	return g.Walls(c).Count()
}

// Visited reports whether the generator has visited c.
func (g *Grid) Visited(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.visited[g.index(c)]
}

// MarkVisited flags c as visited. Out-of-bounds cells are ignored.
func (g *Grid) MarkVisited(c Cell) {
	if g.InBounds(c) {
		g.visited[g.index(c)] = true
	}
}

// VisitedCount returns how many cells are marked visited.
func (g *Grid) VisitedCount() int {
	n := 0
	for _, v := range g.visited {
		if v {
			n++
		}
	}
	return n
}

// RemovedWalls returns the number of walls removed since creation.
func (g *Grid) RemovedWalls() int {
	return g.removed
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// left, up, right, down. With unvisitedOnly set, visited cells are skipped.
func (g *Grid) Neighbors(c Cell, unvisitedOnly bool) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, 4), c, unvisitedOnly)
}

// AppendNeighbors is Neighbors writing into dst, for allocation-free loops.
func (g *Grid) AppendNeighbors(dst []Cell, c Cell, unvisitedOnly bool) []Cell {
	for _, off := range neighbourOffsets {
		n := c.Add(off.Row, off.Col)
		if !g.InBounds(n) {
			continue
		}
		if unvisitedOnly && g.visited[g.index(n)] {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// Open returns the neighbours of c reachable through removed walls.
func (g *Grid) Open(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, n := range g.Neighbors(c, false) {
		if !g.HasWall(c, Direction(c, n)) {
			out = append(out, n)
		}
	}
	return out
}

// RemoveWallBetween clears the shared wall of two adjacent cells on both sides.
// Removing an already open wall is a no-op.
func (g *Grid) RemoveWallBetween(a, b Cell) error {
	if a == b {
		return fmt.Errorf("%w: %v", ErrSameCell, a)
	}
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v-%v in %dx%d", ErrOutOfBounds, a, b, g.rows, g.cols)
	}

	dir := Direction(a, b)
	if dir == NoWalls {
		return fmt.Errorf("%w: %v-%v", ErrNotAdjacent, a, b)
	}

	ia, ib := g.index(a), g.index(b)
	if g.walls[ia]&dir == 0 {
		return nil
	}
	g.walls[ia] &^= dir
	g.walls[ib] &^= dir.Opposite()
	g.removed++
	return nil
}

// Reset restores every wall and clears the visited flags.
func (g *Grid) Reset() {
	for i := range g.walls {
		g.walls[i] = AllWalls
		g.visited[i] = false
	}
	g.removed = 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	walls := make([]Wall, len(g.walls))
	copy(walls, g.walls)
	visited := make([]bool, len(g.visited))
	copy(visited, g.visited)
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		walls:   walls,
		visited: visited,
		removed: g.removed,
	}
}

// Equal reports whether two grids have identical dimensions and walls.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.walls {
		if g.walls[i] != other.walls[i] {
			return false
		}
	}
	return true
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c Cell, w Wall)) {
	for i, w := range g.walls {
		fn(Cell{Row: i / g.cols, Col: i % g.cols}, w)
	}
}
