package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/grid"
)

// corridor is a 3x3 grid with one winding passage:
// (0,0)-(0,1)-(0,2), down to (1,2)-(1,1)-(1,0), down to (2,0)-(2,1)-(2,2).
func corridor(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	path := []grid.Cell{
		grid.C(0, 0), grid.C(0, 1), grid.C(0, 2),
		grid.C(1, 2), grid.C(1, 1), grid.C(1, 0),
		grid.C(2, 0), grid.C(2, 1), grid.C(2, 2),
	}
	for i := 1; i < len(path); i++ {
		require.NoError(t, g.RemoveWallBetween(path[i-1], path[i]))
	}
	return g
}

func TestIntervals(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		alt      bool
		delay    int
		interval int
	}{
		{"default", DefaultConfig(), false, 15, 10},
		{"alt", DefaultConfig(), true, 15, 3},
		{"slowest", Config{Speed: 0, AltSpeed: 18, TickRate: 60}, false, 60, 60},
		{"fastest", Config{Speed: 99, AltSpeed: 18, TickRate: 60}, false, 15, 2},
		{"low fps", Config{Speed: 6, AltSpeed: 18, TickRate: 10}, false, 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.cfg)
			p.SetAlt(tc.alt)
			delay, interval := p.Intervals()
			assert.Equal(t, tc.delay, delay)
			assert.Equal(t, tc.interval, interval)
		})
	}
}

func TestSpeedToggle(t *testing.T) {
	p := New(DefaultConfig())
	assert.Equal(t, DefaultSpeed, p.Speed())
	assert.False(t, p.Alt())

	p.SetAlt(true)
	assert.Equal(t, AltSpeed, p.Speed())
	assert.True(t, p.Alt())

	p.SetAlt(false)
	assert.Equal(t, DefaultSpeed, p.Speed())
}

func TestStepFollowsPassages(t *testing.T) {
	g := corridor(t)
	p := New(DefaultConfig())
	p.Place(grid.C(0, 0))

	assert.False(t, p.Step(1, 0, g), "wall below")
	assert.False(t, p.Step(0, -1, g), "grid edge")
	assert.False(t, p.Step(-1, 0, g), "grid edge")
	assert.Equal(t, grid.C(0, 0), p.Pos())
	assert.Equal(t, 0, p.Moves())

	assert.True(t, p.Step(0, 1, g))
	assert.True(t, p.Step(0, 1, g))
	assert.True(t, p.Step(1, 0, g))
	assert.Equal(t, grid.C(1, 2), p.Pos())
	assert.Equal(t, 3, p.Moves())
}

func TestStepDirectionPriority(t *testing.T) {
	g := corridor(t)

	// (1,2) is open to the north and to the west.
	vertical := New(DefaultConfig())
	vertical.Place(grid.C(1, 2))
	require.True(t, vertical.Step(-1, -1, g))
	assert.Equal(t, grid.C(0, 2), vertical.Pos())

	cfg := DefaultConfig()
	cfg.VerticalFirst = false
	horizontal := New(cfg)
	horizontal.Place(grid.C(1, 2))
	require.True(t, horizontal.Step(-1, -1, g))
	assert.Equal(t, grid.C(1, 1), horizontal.Pos())

	// Falls back to the other axis when the preferred one is walled.
	horizontal.Place(grid.C(0, 2))
	require.True(t, horizontal.Step(1, 1, g))
	assert.Equal(t, grid.C(1, 2), horizontal.Pos())
}

func TestUpdateHoldToRepeat(t *testing.T) {
	g := corridor(t)
	p := New(DefaultConfig())
	p.Place(grid.C(0, 0))

	var moved []int
	for frame := range 16 {
		if p.Update(0, 1, g) {
			moved = append(moved, frame)
		}
	}
	// First press moves at once, the hold repeats after the 15 frame delay.
	assert.Equal(t, []int{0, 15}, moved)
	assert.Equal(t, grid.C(0, 2), p.Pos())

	// Pushing into the wall keeps trying every frame.
	for range 20 {
		assert.False(t, p.Update(0, 1, g))
	}

	// Turning the corner moves on the very next frame.
	assert.True(t, p.Update(1, 0, g))
	assert.Equal(t, grid.C(1, 2), p.Pos())
}

func TestUpdateReleaseResets(t *testing.T) {
	g := corridor(t)
	p := New(DefaultConfig())
	p.Place(grid.C(0, 0))

	assert.True(t, p.Update(0, 1, g))
	assert.False(t, p.Update(0, 1, g))
	assert.False(t, p.Update(0, 0, g))
	assert.True(t, p.Update(0, 1, g))
	assert.Equal(t, grid.C(0, 2), p.Pos())
	assert.Equal(t, 2, p.Moves())
}

func TestCheckEscaped(t *testing.T) {
	p := New(DefaultConfig())
	p.Place(grid.C(1, 1))

	assert.False(t, p.CheckEscaped(grid.C(2, 2)))
	assert.False(t, p.Escaped())

	p.Teleport(grid.C(2, 2))
	assert.True(t, p.CheckEscaped(grid.C(2, 2)))
	assert.True(t, p.Escaped())
	assert.False(t, p.CheckEscaped(grid.C(2, 2)), "reported once")

	p.Place(grid.C(0, 0))
	assert.False(t, p.Escaped())
	assert.Equal(t, 0, p.Moves())
}
