package core

import "testing"

// fires runs the timer over a held/released pattern and returns the fire pattern.
func fires(timer *RepeatTimer, pattern []bool) []bool {
	out := make([]bool, len(pattern))
	for i, active := range pattern {
		out[i] = timer.Tick(active)
	}
	return out
}

func held(n int) []bool {
	p := make([]bool, n)
	for i := range p {
		p[i] = true
	}
	return p
}

func TestRepeatTimerInitialDelayThenInterval(t *testing.T) {
	timer := NewRepeatTimer(3, 2)
	got := fires(timer, held(10))
	expected := []bool{true, false, false, true, false, true, false, true, false, true}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("frame %d: fired = %v, expected %v", i, got[i], expected[i])
		}
	}
	if !timer.Repeating() {
		t.Error("timer should be repeating after the initial delay")
	}
}

func TestRepeatTimerReleaseResets(t *testing.T) {
	timer := NewRepeatTimer(4, 1)

	if !timer.Tick(true) {
		t.Fatal("first held frame should fire")
	}
	if timer.Tick(true) {
		t.Error("second held frame should wait for the delay")
	}
	if timer.Tick(false) {
		t.Error("released frame should never fire")
	}
	if timer.Held() {
		t.Error("timer should be idle after release")
	}
	if !timer.Tick(true) {
		t.Error("pressing again should fire immediately")
	}
}

func TestRepeatTimerEveryFrame(t *testing.T) {
	tests := []struct {
		name            string
		delay, interval int
	}{
		{"one frame", 1, 1},
		{"zero clamps to one", 0, 0},
		{"negative clamps to one", -3, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer := NewRepeatTimer(tc.delay, tc.interval)
			for i, f := range fires(timer, held(5)) {
				if !f {
					t.Errorf("frame %d should fire", i)
				}
			}
		})
	}
}

func TestRepeatTimerSetDurations(t *testing.T) {
	timer := NewRepeatTimer(10, 10)
	timer.Tick(true)
	timer.SetDurations(2, 1)

	// The pending countdown keeps its old value; the new interval applies afterwards.
	count := 0
	for range 10 {
		if timer.Tick(true) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("fires during old countdown = %d, expected 1", count)
	}
	if !timer.Tick(true) {
		t.Error("new interval of 1 should fire every frame")
	}
}

func TestFramesFor(t *testing.T) {
	tests := []struct {
		seconds  float64
		tickRate int
		expected int
	}{
		{0.25, 60, 15},
		{0.1, 60, 6},
		{0.001, 60, 1},
		{0, 30, 1},
	}

	for _, tc := range tests {
		result := FramesFor(tc.seconds, tc.tickRate)
		if result != tc.expected {
			t.Errorf("FramesFor(%v, %d) = %d, expected %d", tc.seconds, tc.tickRate, result, tc.expected)
		}
	}
}
