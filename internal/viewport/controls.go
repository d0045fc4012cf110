package viewport

import "github.com/vovakirdan/tui-maze/internal/core"

// Controls is the viewport input for one frame.
type Controls struct {
	PanRow int // -1 up, +1 down
	PanCol int // -1 left, +1 right
	Zoom   int // +1 in, -1 out
	Cursor core.Cursor
}

// ControlsFrom reads pan and zoom actions out of an input frame.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		PanRow: in.Axis(core.ActionPanUp, core.ActionPanDown),
		PanCol: in.Axis(core.ActionPanLeft, core.ActionPanRight),
		Zoom:   in.Axis(core.ActionZoomOut, core.ActionZoomIn),
		Cursor: in.Cursor,
	}
}

// Update applies held pan and zoom controls for one frame, rate-limited by
// the viewport's repeat timers. It reports whether the frame moved.
func (v *Viewport) Update(c Controls) bool {
	changed := false

	if v.pan.Tick(c.PanRow != 0 || c.PanCol != 0) {
		before := v.pos
		v.Pan(float64(c.PanRow)*v.cfg.PanStep, float64(c.PanCol)*v.cfg.PanStep)
		changed = v.pos != before
	}

	if v.zoom.Tick(c.Zoom != 0) {
		before := v.zoomTiles
		v.ZoomBy(c.Zoom*v.cfg.ZoomStep, c.Cursor)
		changed = changed || v.zoomTiles != before
	}

	return changed
}

// ResetControls drops any hold in progress.
func (v *Viewport) ResetControls() {
	v.pan.Reset()
	v.zoom.Reset()
}
