package tui

import (
	"slices"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// holdLatch is how long a key press counts as held, in seconds. Terminals
// report presses and autorepeats but never releases, so a key is released
// when its autorepeat stops arriving.
const holdLatch = 0.1

var (
	moveActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	panActions  = []core.Action{core.ActionPanUp, core.ActionPanDown, core.ActionPanLeft, core.ActionPanRight}
	zoomActions = []core.Action{core.ActionZoomIn, core.ActionZoomOut}
)

// heldKeys turns key presses into per-frame held actions.
type heldKeys struct {
	latch int
	left  map[core.Action]int
}

func newHeldKeys(tickRate int) *heldKeys {
	return &heldKeys{
		latch: core.FramesFor(holdLatch, tickRate),
		left:  make(map[core.Action]int),
	}
}

// Press records a key press. Holdable actions stay active for the latch
// period and replace any other action of their group; the rest last one frame.
func (h *heldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	for _, group := range [][]core.Action{moveActions, panActions, zoomActions} {
		if !slices.Contains(group, a) {
			continue
		}
		for _, other := range group {
			delete(h.left, other)
		}
		h.left[a] = h.latch
		return
	}
	h.left[a] = max(h.left[a], 1)
}

// Fill marks every held action on the frame and ages the latches by one frame.
func (h *heldKeys) Fill(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Release drops every held action.
func (h *heldKeys) Release() {
	clear(h.left)
}
