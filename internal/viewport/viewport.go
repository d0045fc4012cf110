// Package viewport maps a window of the maze grid onto a fixed display area.
//
// The frame is the block of tiles currently on screen, measured in grid
// units. Its position may be fractional while panning; its size is always a
// whole number of tiles. All operations clamp instead of failing: the frame
// never leaves the grid and never grows larger than it.
package viewport

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Point is a fractional grid position.
type Point struct {
	Row, Col float64
}

// Viewport tracks zoom, frame position and the display panel for a rows x cols grid.
type Viewport struct {
	cfg Config

	rows, cols int

	displayW, displayH int
	panel              core.Rect
	tile               int

	zoomTiles int
	pos       Point
	frameRows int
	frameCols int

	pan  *core.RepeatTimer
	zoom *core.RepeatTimer
}

// New creates a viewport for a rows x cols grid with zoom at cfg.StartZoom.
// The display size starts at zero; call SetDisplaySize before rendering.
func New(rows, cols int, cfg Config) *Viewport {
	cfg = cfg.normalized()
	v := &Viewport{
		cfg:  cfg,
		rows: max(rows, 1),
		cols: max(cols, 1),
		pan:  core.NewRepeatTimer(cfg.PanFrames(), cfg.PanFrames()),
		zoom: core.NewRepeatTimer(cfg.ZoomDelayFrames(), cfg.ZoomIntervalFrames()),
	}
	v.zoomTiles = int(math.Round(cfg.StartZoom * float64(v.shortSide())))
	v.restrictZoom()
	v.layout()
	return v
}

// Config returns the active settings.
func (v *Viewport) Config() Config {
	return v.cfg
}

// SetTickRate rescales the hold-to-repeat timers for a new frame rate.
func (v *Viewport) SetTickRate(fps int) {
	v.cfg.TickRate = fps
	v.cfg = v.cfg.normalized()
	v.pan.SetDurations(v.cfg.PanFrames(), v.cfg.PanFrames())
	v.zoom.SetDurations(v.cfg.ZoomDelayFrames(), v.cfg.ZoomIntervalFrames())
}

// SetDisplaySize sets the size of the area the panel is centred in.
func (v *Viewport) SetDisplaySize(w, h int) {
	v.displayW = max(w, 0)
	v.displayH = max(h, 0)
	v.layout()
}

// Resize adapts the viewport to a grid of new dimensions, keeping the zoom
// level where it still fits.
func (v *Viewport) Resize(rows, cols int) {
	v.rows = max(rows, 1)
	v.cols = max(cols, 1)
	v.restrictZoom()
	v.layout()
}

// SetZoom sets the zoom as a fraction of the short grid side, rounded to
// whole tiles. 0 zooms in as far as allowed, 1 shows the whole short side.
func (v *Viewport) SetZoom(fraction float64) {
	fraction = core.ClampF(fraction, 0, 1)
	v.zoomTiles = int(math.RoundToEven(fraction * float64(v.shortSide())))
	v.restrictZoom()
	v.layout()
}

// ZoomBy zooms in by tiles (negative zooms out). When the cursor is over the
// panel, the cell under it stays under it after the zoom.
func (v *Viewport) ZoomBy(tiles int, cursor core.Cursor) {
	if tiles == 0 {
		return
	}
	v.zoomTiles -= tiles
	v.restrictZoom()

	target, ok := v.cursorCell(cursor)
	v.layout()
	if ok {
		v.AnchorToCursor(target, cursor.X, cursor.Y)
	}
}

// Pan moves the frame by the given number of tiles.
func (v *Viewport) Pan(dRow, dCol float64) {
	v.pos.Row += dRow
	v.pos.Col += dCol
	v.clampFrame()
}

// CenterOn moves the frame so the given cell sits in its middle.
func (v *Viewport) CenterOn(c grid.Cell) {
	v.centerAt(float64(c.Row), float64(c.Col))
}

// CenterOnGrid moves the frame to the middle of the grid.
func (v *Viewport) CenterOnGrid() {
	v.centerAt(float64(v.rows)/2, float64(v.cols)/2)
}

func (v *Viewport) centerAt(row, col float64) {
	v.pos.Row = row - float64(v.frameRows)/2 + 0.5
	v.pos.Col = col - float64(v.frameCols)/2 + 0.5
	v.clampFrame()
}

// AnchorToCursor moves the frame so that target lies under display
// coordinates (x, y). It does nothing when (x, y) is outside the panel.
func (v *Viewport) AnchorToCursor(target Point, x, y int) {
	if v.tile <= 0 || !v.panel.Contains(x, y) {
		return
	}
	tile := float64(v.tile)
	v.pos.Row = target.Row - float64(y-v.panel.Y)/tile
	v.pos.Col = target.Col - float64(x-v.panel.X)/tile
	v.clampFrame()
}

// MapScreenToCell converts display coordinates to a fractional grid position.
// ok is false when the point is outside the panel.
func (v *Viewport) MapScreenToCell(x, y int) (row, col float64, ok bool) {
	if v.tile <= 0 || !v.panel.Contains(x, y) {
		return 0, 0, false
	}
	tile := float64(v.tile)
	row = float64(y-v.panel.Y)/tile + v.pos.Row
	col = float64(x-v.panel.X)/tile + v.pos.Col
	return row, col, true
}

// CellAt returns the grid cell under display coordinates (x, y).
func (v *Viewport) CellAt(x, y int) (grid.Cell, bool) {
	row, col, ok := v.MapScreenToCell(x, y)
	if !ok {
		return grid.Cell{}, false
	}
	c := grid.C(int(math.Floor(row)), int(math.Floor(col)))
	if c.Row >= v.rows || c.Col >= v.cols {
		return grid.Cell{}, false
	}
	return c, true
}

func (v *Viewport) cursorCell(cursor core.Cursor) (Point, bool) {
	if !cursor.Valid {
		return Point{}, false
	}
	row, col, ok := v.MapScreenToCell(cursor.X, cursor.Y)
	return Point{Row: row, Col: col}, ok
}

// AlignToGrid snaps a frame that ends part-way through a tile onto whole
// tiles. An aligned frame is left alone.
func (v *Viewport) AlignToGrid() {
	bottom := v.pos.Row + float64(v.frameRows)
	right := v.pos.Col + float64(v.frameCols)
	if core.IsWhole(bottom) && core.IsWhole(right) {
		return
	}
	v.pos.Row = math.RoundToEven(v.pos.Row)
	v.pos.Col = math.RoundToEven(v.pos.Col)
	v.clampFrame()
}

// SetQuadrant pins the frame to a corner of the grid, numbered like the
// Cartesian quadrants: 1 top-right, 2 top-left, 3 bottom-left, 4 bottom-right.
// Any other value selects 3.
func (v *Viewport) SetQuadrant(q int) {
	if q < 1 || q > 4 {
		q = 3
	}
	if q == 1 || q == 2 {
		v.pos.Row = 0
	} else {
		v.pos.Row = float64(v.rows - v.frameRows)
	}
	if q == 2 || q == 3 {
		v.pos.Col = 0
	} else {
		v.pos.Col = float64(v.cols - v.frameCols)
	}
}

// FramePos returns the grid position of the frame's top-left corner.
func (v *Viewport) FramePos() Point {
	return v.pos
}

// FrameSize returns the frame size in tiles.
func (v *Viewport) FrameSize() (rows, cols int) {
	return v.frameRows, v.frameCols
}

// ZoomTiles returns the number of tiles shown along the short side.
func (v *Viewport) ZoomTiles() int {
	return v.zoomTiles
}

// Zoom returns the zoom as a fraction of the short grid side, to two decimals.
func (v *Viewport) Zoom() float64 {
	return math.Round(float64(v.zoomTiles)/float64(v.shortSide())*100) / 100
}

// TileSize returns the edge length of one tile in display units.
func (v *Viewport) TileSize() int {
	return v.tile
}

// Bounds returns the panel rectangle in display coordinates.
func (v *Viewport) Bounds() core.Rect {
	return v.panel
}

// GridSize returns the grid dimensions the viewport was built for.
func (v *Viewport) GridSize() (rows, cols int) {
	return v.rows, v.cols
}

// Visible reports whether any part of the cell is inside the frame.
func (v *Viewport) Visible(c grid.Cell) bool {
	r, col := float64(c.Row), float64(c.Col)
	return r+1 > v.pos.Row && r < v.pos.Row+float64(v.frameRows) &&
		col+1 > v.pos.Col && col < v.pos.Col+float64(v.frameCols)
}

func (v *Viewport) shortSide() int {
	return min(v.rows, v.cols)
}

func (v *Viewport) restrictZoom() {
	hi := min(v.shortSide(), v.cfg.MaxFrameTiles)
	v.zoomTiles = core.Clamp(v.zoomTiles, v.cfg.MinFrameTiles, max(hi, v.cfg.MinFrameTiles))
	// A grid narrower than MinFrameTiles is shown whole.
	v.zoomTiles = min(v.zoomTiles, v.shortSide())
}

// layout recomputes tile size, frame size and panel placement, then clamps
// the frame position.
func (v *Viewport) layout() {
	rows, cols := float64(v.rows), float64(v.cols)

	// Largest panel with the grid's aspect ratio that fits the display,
	// scaled down by Ratio.
	scale := min(float64(v.displayW)/cols, float64(v.displayH)/rows) * v.cfg.Ratio
	full := min(cols*scale, rows*scale)
	v.tile = int(full / float64(v.zoomTiles))

	// The short side shows zoomTiles; the long side keeps the grid's aspect.
	short := v.zoomTiles
	if v.rows <= v.cols {
		v.frameRows = short
		v.frameCols = min(short*v.cols/v.rows, v.cols)
	} else {
		v.frameCols = short
		v.frameRows = min(short*v.rows/v.cols, v.rows)
	}

	w, h := v.tile*v.frameCols, v.tile*v.frameRows
	v.panel = core.NewRect(
		int(math.Round(float64(v.displayW-w)/2)),
		int(math.Round(float64(v.displayH-h)/2)),
		w, h,
	)

	v.clampFrame()
}

func (v *Viewport) clampFrame() {
	v.pos.Row = core.ClampF(v.pos.Row, 0, float64(v.rows-v.frameRows))
	v.pos.Col = core.ClampF(v.pos.Col, 0, float64(v.cols-v.frameCols))
}
