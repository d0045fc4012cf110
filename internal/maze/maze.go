package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Maze is a carved grid together with its start and finish cells.
type Maze struct {
	grid      *grid.Grid
	start     grid.Cell
	finish    grid.Cell
	generated bool
}

// New creates an uncarved maze of the given size.
func New(rows, cols int) (*Maze, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: g}, nil
}

// Generate discards any previous layout, carves a new one from seed and
// picks the exits.
func (m *Maze) Generate(seed grid.Cell, rng Source) error {
	m.grid.Reset()
	m.generated = false

	if err := Generate(m.grid, seed, rng); err != nil {
		return err
	}

	start, finish, err := FindExits(m.grid)
	if err != nil {
		return fmt.Errorf("maze: locating exits: %w", err)
	}

	m.start = start
	m.finish = finish
	m.generated = true
	return nil
}

// Resize replaces the grid with an uncarved one of the new size.
// On error the current maze is left untouched.
func (m *Maze) Resize(rows, cols int) error {
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}
	m.grid = g
	m.start = grid.Cell{}
	m.finish = grid.Cell{}
	m.generated = false
	return nil
}

// Grid returns the underlying grid for read access.
func (m *Maze) Grid() *grid.Grid {
	return m.grid
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.grid.Rows()
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.grid.Cols()
}

// Start returns the start cell. Only meaningful after Generate.
func (m *Maze) Start() grid.Cell {
	return m.start
}

// Finish returns the finish cell. Only meaningful after Generate.
func (m *Maze) Finish() grid.Cell {
	return m.finish
}

// Generated reports whether the maze has been carved since the last reset.
func (m *Maze) Generated() bool {
	return m.generated
}

// Solution returns the path from start to finish.
func (m *Maze) Solution() ([]grid.Cell, error) {
	return Solve(m.grid, m.start, m.finish)
}
