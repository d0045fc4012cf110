package viewport

import "github.com/vovakirdan/tui-maze/internal/core"

// Config holds the viewport tuning constants.
type Config struct {
	MinFrameTiles int     // fewest tiles shown on the short side (max zoom in)
	MaxFrameTiles int     // most tiles shown on the short side (max zoom out)
	Ratio         float64 // share of the display the full-size panel may use
	StartZoom     float64 // initial zoom as a fraction of the short grid side

	PanStep  float64 // tiles moved per pan
	PanSpeed float64 // pans per second while held

	ZoomStep  int     // tiles added or removed per zoom
	ZoomSpeed float64 // zooms per second while held
	ZoomDelay float64 // seconds before a held zoom starts repeating

	TickRate int // frames per second
}

// DefaultConfig returns the stock viewport settings.
func DefaultConfig() Config {
	return Config{
		MinFrameTiles: 3,
		MaxFrameTiles: 50,
		Ratio:         8.0 / 9.0,
		StartZoom:     0.75,
		PanStep:       0.5,
		PanSpeed:      5,
		ZoomStep:      1,
		ZoomSpeed:     15,
		ZoomDelay:     0.25,
		TickRate:      60,
	}
}

// normalized fills zero or invalid fields from DefaultConfig.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MinFrameTiles < 1 {
		c.MinFrameTiles = def.MinFrameTiles
	}
	if c.MaxFrameTiles < c.MinFrameTiles {
		c.MaxFrameTiles = max(def.MaxFrameTiles, c.MinFrameTiles)
	}
	if c.Ratio <= 0 || c.Ratio > 1 {
		c.Ratio = def.Ratio
	}
	if c.StartZoom <= 0 || c.StartZoom > 1 {
		c.StartZoom = def.StartZoom
	}
	if c.PanStep <= 0 {
		c.PanStep = def.PanStep
	}
	if c.PanSpeed <= 0 {
		c.PanSpeed = def.PanSpeed
	}
	if c.ZoomStep < 1 {
		c.ZoomStep = def.ZoomStep
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = def.ZoomSpeed
	}
	if c.ZoomDelay <= 0 {
		c.ZoomDelay = def.ZoomDelay
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// PanFrames is the number of frames between pans while a pan control is held.
// The same count is used for the initial delay.
func (c Config) PanFrames() int {
	return core.FramesFor(c.PanStep/c.PanSpeed, c.TickRate)
}

// ZoomDelayFrames is the number of frames a zoom control must be held before it repeats.
func (c Config) ZoomDelayFrames() int {
	return core.FramesFor(c.ZoomDelay, c.TickRate)
}

// ZoomIntervalFrames is the number of frames between repeated zooms.
func (c Config) ZoomIntervalFrames() int {
	return core.FramesFor(float64(c.ZoomStep)/c.ZoomSpeed, c.TickRate)
}
