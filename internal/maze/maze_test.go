package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

func TestSolveSerpentine(t *testing.T) {
	g := serpentine(t)

	path, err := Solve(g, grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{
		grid.C(0, 0), grid.C(0, 1), grid.C(0, 2),
		grid.C(1, 2), grid.C(1, 1), grid.C(1, 0),
		grid.C(2, 0), grid.C(2, 1), grid.C(2, 2),
	}, path)

	path, err = Solve(g, grid.C(1, 1), grid.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{grid.C(1, 1)}, path)

	assert.ElementsMatch(t, []grid.Cell{grid.C(0, 0), grid.C(2, 2)}, DeadEnds(g))
}

func TestSolveUnreachable(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	_, err = Solve(g, grid.C(0, 0), grid.C(2, 2))
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 1, Reachable(g, grid.C(0, 0)))

	_, err = Solve(g, grid.C(0, 0), grid.C(5, 5))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestSolvePathIsConnected(t *testing.T) {
	g := carve(t, 25, 40, grid.C(0, 0), 8)

	path, err := Solve(g, grid.C(24, 0), grid.C(0, 39))
	require.NoError(t, err)
	for i := 1; i < len(path); i++ {
		dir := grid.Direction(path[i-1], path[i])
		require.NotEqual(t, grid.NoWalls, dir, "step %d not adjacent", i)
		assert.False(t, g.HasWall(path[i-1], dir), "step %d crosses a wall", i)
	}
}

func TestMazeGenerate(t *testing.T) {
	m, err := New(12, 20)
	require.NoError(t, err)
	assert.False(t, m.Generated())

	require.NoError(t, m.Generate(grid.C(5, 5), NewSource(1)))
	assert.True(t, m.Generated())
	assert.Equal(t, 12, m.Rows())
	assert.Equal(t, 20, m.Cols())
	assert.NotEqual(t, m.Start(), m.Finish())
	assert.Equal(t, 12*20-1, m.Grid().RemovedWalls())

	first := m.Grid().Clone()

	// Regenerating with the same seed reproduces the layout.
	require.NoError(t, m.Generate(grid.C(5, 5), NewSource(1)))
	assert.True(t, first.Equal(m.Grid()))

	sol, err := m.Solution()
	require.NoError(t, err)
	assert.Equal(t, m.Start(), sol[0])
	assert.Equal(t, m.Finish(), sol[len(sol)-1])
}

func TestMazeResize(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)
	require.NoError(t, m.Generate(grid.C(0, 0), NewSource(5)))
	start := m.Start()

	err = m.Resize(2, 10)
	require.ErrorIs(t, err, grid.ErrDimensionOutOfRange)
	assert.True(t, m.Generated())
	assert.Equal(t, start, m.Start())
	assert.Equal(t, 10, m.Rows())

	require.NoError(t, m.Resize(7, 40))
	assert.False(t, m.Generated())
	assert.Equal(t, 7, m.Rows())
	assert.Equal(t, 40, m.Cols())
	assert.Equal(t, 0, m.Grid().RemovedWalls())

	_, err = New(51, 3)
	assert.ErrorIs(t, err, grid.ErrDimensionOutOfRange)
}

func TestMazeASCII(t *testing.T) {
	m, err := New(6, 9)
	require.NoError(t, err)
	require.NoError(t, m.Generate(grid.C(3, 3), NewSource(77)))

	out := m.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2*6+1)
	for i, line := range lines {
		assert.Len(t, line, 4*9+1, "line %d", i)
	}
	assert.Equal(t, "+"+strings.Repeat("---+", 9), lines[0])
	assert.Equal(t, lines[0], lines[len(lines)-1])
	assert.Equal(t, 1, strings.Count(out, "S"))
	assert.Equal(t, 1, strings.Count(out, "F"))
	assert.Zero(t, strings.Count(out, "."))

	sol, err := m.Solution()
	require.NoError(t, err)
	withPath := m.ASCII(sol)
	assert.Equal(t, len(sol)-2, strings.Count(withPath, "."))
}

func TestMazeASCIISerpentineRow(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)
	m.grid = serpentine(t)

	expected := strings.Join([]string{
		"+---+---+---+",
		"|           |",
		"+---+---+   +",
		"|           |",
		"+   +---+---+",
		"|           |",
		"+---+---+---+",
		"",
	}, "\n")
	assert.Equal(t, expected, m.ASCII(nil))
}
