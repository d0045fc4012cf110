package core

// RepeatTimer implements hold-to-repeat for a single control.
//
// The first frame a control is held fires immediately. While it stays held the
// next fire happens initialDelay frames later and every repeatInterval frames
// after that. Releasing the control resets the timer on the same frame.
type RepeatTimer struct {
	initialDelay   int
	repeatInterval int

	held      bool
	repeating bool // past the initial delay
	remaining int  // frames until the next fire
}

// NewRepeatTimer creates a timer with the given frame counts.
// Values below 1 are treated as 1 (fire every frame).
func NewRepeatTimer(initialDelay, repeatInterval int) *RepeatTimer {
	return &RepeatTimer{
		initialDelay:   max(initialDelay, 1),
		repeatInterval: max(repeatInterval, 1),
	}
}

// FramesFor converts a duration in seconds to a frame count at the given tick rate.
// The result is truncated and never below 1.
func FramesFor(seconds float64, tickRate int) int {
	return max(int(seconds*float64(tickRate)), 1)
}

// Tick advances the timer by one frame and reports whether the action fires.
func (t *RepeatTimer) Tick(active bool) bool {
	if !active {
		t.Reset()
		return false
	}

	if !t.held {
		t.held = true
		t.remaining = t.initialDelay
		return true
	}

	t.remaining--
	if t.remaining > 0 {
		return false
	}

	t.repeating = true
	t.remaining = t.repeatInterval
	return true
}

// Reset returns the timer to idle.
func (t *RepeatTimer) Reset() {
	t.held = false
	t.repeating = false
	t.remaining = 0
}

// Held reports whether the control was active on the last tick.
func (t *RepeatTimer) Held() bool {
	return t.held
}

// Repeating reports whether the initial delay has elapsed for the current hold.
func (t *RepeatTimer) Repeating() bool {
	return t.repeating
}

// SetDurations changes the frame counts without resetting an active hold.
func (t *RepeatTimer) SetDurations(initialDelay, repeatInterval int) {
	t.initialDelay = max(initialDelay, 1)
	t.repeatInterval = max(repeatInterval, 1)
}
