package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// activeFrames counts consecutive frames on which a stays held.
func activeFrames(h *heldKeys, a core.Action) int {
	n := 0
	for range 100 {
		in := core.NewInputFrame()
		h.Fill(&in)
		if !in.Has(a) {
			return n
		}
		n++
	}
	return n
}

func TestHeldKeysLatch(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		action   core.Action
		want     int
	}{
		{"move at 60fps", 60, core.ActionUp, 6},
		{"pan at 60fps", 60, core.ActionPanLeft, 6},
		{"zoom at 30fps", 30, core.ActionZoomIn, 3},
		{"edge action", 60, core.ActionPause, 1},
		{"regenerate", 60, core.ActionRegenerate, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHeldKeys(tt.tickRate)
			h.Press(tt.action)
			assert.Equal(t, tt.want, activeFrames(h, tt.action))
		})
	}
}

func TestHeldKeysAutorepeatKeepsHold(t *testing.T) {
	h := newHeldKeys(60)
	held := 0
	for frame := range 30 {
		// Autorepeat every third frame.
		if frame%3 == 0 {
			h.Press(core.ActionRight)
		}
		in := core.NewInputFrame()
		h.Fill(&in)
		if in.Has(core.ActionRight) {
			held++
		}
	}
	assert.Equal(t, 30, held)
}

func TestHeldKeysGroupReplaces(t *testing.T) {
	h := newHeldKeys(60)
	h.Press(core.ActionUp)
	h.Press(core.ActionPanDown)
	h.Press(core.ActionRight)

	in := core.NewInputFrame()
	h.Fill(&in)
	assert.False(t, in.Has(core.ActionUp), "new direction replaces the old one")
	assert.True(t, in.Has(core.ActionRight))
	assert.True(t, in.Has(core.ActionPanDown), "other groups are untouched")
}

func TestHeldKeysIgnoresNoneAndRelease(t *testing.T) {
	h := newHeldKeys(60)
	h.Press(core.ActionNone)
	h.Press(core.ActionZoomOut)
	h.Release()

	in := core.NewInputFrame()
	h.Fill(&in)
	assert.Empty(t, in.Actions)
}
