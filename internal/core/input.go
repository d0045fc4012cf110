package core

// Action represents a semantic maze action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - move player up
	ActionDown               // S, Down arrow - move player down
	ActionLeft               // A, Left arrow - move player left
	ActionRight              // D, Right arrow - move player right
	ActionPanUp              // K - scroll frame up
	ActionPanDown            // J - scroll frame down
	ActionPanLeft            // H - scroll frame left
	ActionPanRight           // L - scroll frame right
	ActionZoomIn             // +, wheel up
	ActionZoomOut            // -, wheel down
	ActionAlign              // G - snap the frame to whole tiles
	ActionCenter             // C - center frame on the player
	ActionQuadrant1          // 1 - pin frame top-right
	ActionQuadrant2          // 2 - pin frame top-left
	ActionQuadrant3          // 3 - pin frame bottom-left
	ActionQuadrant4          // 4 - pin frame bottom-right
	ActionRegenerate         // N - carve a new maze
	ActionToggleSpeed        // Tab - switch player speed
	ActionPause              // P - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit session
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionPanUp:       "PanUp",
	ActionPanDown:     "PanDown",
	ActionPanLeft:     "PanLeft",
	ActionPanRight:    "PanRight",
	ActionZoomIn:      "ZoomIn",
	ActionZoomOut:     "ZoomOut",
	ActionAlign:       "Align",
	ActionCenter:      "Center",
	ActionQuadrant1:   "Quadrant1",
	ActionQuadrant2:   "Quadrant2",
	ActionQuadrant3:   "Quadrant3",
	ActionQuadrant4:   "Quadrant4",
	ActionRegenerate:  "Regenerate",
	ActionToggleSpeed: "ToggleSpeed",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Cursor is a pointer position inside the display area, in display units.
type Cursor struct {
	X, Y  int
	Valid bool // false when no pointer position is known
}

// InputFrame represents the input state during one simulation tick.
// It contains every action held this frame and the last known cursor.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// Cursor is used to anchor zooming.
	Cursor Cursor
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis folds two opposing actions into -1, 0 or +1.
func (f InputFrame) Axis(neg, pos Action) int {
	v := 0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame. The cursor is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Cursor = f.Cursor
	return clone
}
