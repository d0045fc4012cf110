package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

func carve(t *testing.T, rows, cols int, start grid.Cell, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, Generate(g, start, NewSource(seed)))
	return g
}

// openEdges counts passages by looking at east and south walls only, so every
// shared wall is seen once.
func openEdges(g *grid.Grid) int {
	n := 0
	g.Cells(func(c grid.Cell, w grid.Wall) {
		if c.Col < g.Cols()-1 && !w.Has(grid.East) {
			n++
		}
		if c.Row < g.Rows()-1 && !w.Has(grid.South) {
			n++
		}
	})
	return n
}

func TestGenerateSpanningTree(t *testing.T) {
	dims := [][2]int{{3, 3}, {3, 50}, {50, 3}, {5, 5}, {17, 31}, {30, 20}, {50, 50}}
	seeds := []int64{1, 7, 42, 12345}

	for _, d := range dims {
		for _, seed := range seeds {
			t.Run(fmt.Sprintf("%dx%d/seed=%d", d[0], d[1], seed), func(t *testing.T) {
				rows, cols := d[0], d[1]
				rng := NewSource(seed)
				start := RandomCell(rows, cols, rng)

				g, err := grid.New(rows, cols)
				require.NoError(t, err)
				require.NoError(t, Generate(g, start, rng))

				size := rows * cols
				assert.Equal(t, size-1, g.RemovedWalls(), "removed walls")
				assert.Equal(t, size-1, openEdges(g), "open edges")
				assert.Equal(t, size, g.VisitedCount(), "visited cells")
				// n-1 edges and fully connected means no cycles.
				assert.Equal(t, size, Reachable(g, grid.C(0, 0)), "reachable cells")
			})
		}
	}
}

func TestGenerateFiveByFiveFromOrigin(t *testing.T) {
	g := carve(t, 5, 5, grid.C(0, 0), 99)

	for row := range 5 {
		for col := range 5 {
			c := grid.C(row, col)
			assert.True(t, g.Visited(c), "cell %v not visited", c)

			path, err := Solve(g, grid.C(0, 0), c)
			require.NoError(t, err)
			assert.Equal(t, grid.C(0, 0), path[0])
			assert.Equal(t, c, path[len(path)-1])
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, seed := range []int64{3, 8, 2024} {
		a := carve(t, 23, 37, grid.C(4, 9), seed)
		b := carve(t, 23, 37, grid.C(4, 9), seed)
		assert.True(t, a.Equal(b), "seed %d produced different mazes", seed)
	}

	a := carve(t, 23, 37, grid.C(4, 9), 1)
	b := carve(t, 23, 37, grid.C(4, 9), 2)
	assert.False(t, a.Equal(b), "different seeds should differ")
}

func TestGenerateWallsSymmetric(t *testing.T) {
	g := carve(t, 12, 9, grid.C(6, 3), 5)

	g.Cells(func(c grid.Cell, w grid.Wall) {
		for _, n := range g.Neighbors(c, false) {
			dir := grid.Direction(c, n)
			assert.Equal(t, w.Has(dir), g.HasWall(n, dir.Opposite()), "%v/%v", c, n)
		}
	})
}

func TestGenerateRejectsCarvedGrid(t *testing.T) {
	g := carve(t, 4, 4, grid.C(0, 0), 1)
	assert.ErrorIs(t, Generate(g, grid.C(0, 0), NewSource(1)), ErrNotFresh)

	fresh, err := grid.New(4, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, Generate(fresh, grid.C(4, 0), NewSource(1)), grid.ErrOutOfBounds)
}

// scripted replays fixed choices so the carve order can be checked by hand.
type scripted struct {
	picks []int
	calls []int
}

func (s *scripted) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.picks) == 0 {
		return 0
	}
	p := s.picks[0] % n
	s.picks = s.picks[1:]
	return p
}

func TestGenerateAlwaysFirstNeighbour(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	src := &scripted{}
	require.NoError(t, Generate(g, grid.C(0, 0), src))

	// Always taking the first neighbour (left, up, right, down order) from the
	// top-left corner snakes right along row 0, and so on.
	path, err := Solve(g, grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, g.Size()-1, g.RemovedWalls())
	assert.NotEmpty(t, path)

	assert.False(t, g.HasWall(grid.C(0, 0), grid.East), "first move goes right")
	assert.Equal(t, 2, src.calls[0], "corner has two unvisited neighbours")
}
