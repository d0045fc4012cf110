package grid

import "errors"

var (
	// ErrDimensionOutOfRange is returned when rows or cols fall outside [MinDim, MaxDim].
	ErrDimensionOutOfRange = errors.New("grid: dimension out of range")

	// ErrNotAdjacent is returned when two cells do not share a wall.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")

	// ErrSameCell is returned when a wall operation names one cell twice.
	ErrSameCell = errors.New("grid: same cell")

	// ErrOutOfBounds is returned for cells outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)
