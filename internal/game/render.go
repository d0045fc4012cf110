package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/grid"
)

// Glyphs used to draw the maze.
const (
	glyphCorner = '+'
	glyphHWall  = '-'
	glyphVWall  = '|'
	glyphPlayer = '@'
	glyphStart  = 'S'
	glyphFinish = 'F'
)

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	switch {
	case s.lastErr != nil:
		renderOverlay(dst, "Generation failed", "Press N to retry")
		return
	case s.view.TileSize() == 0:
		renderOverlay(dst, "Window too small", "Zoom in (+) or resize")
		return
	}

	s.renderMaze(dst)

	if s.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line.
func (s *Session) renderHUD(dst *core.Screen) {
	secs := int(s.tick) / max(s.runtime.TickRate, 1)
	hud := fmt.Sprintf(" Maze %dx%d | Moves: %d | Time: %02d:%02d | Zoom: %d%% | Speed: %d",
		s.maze.Rows(), s.maze.Cols(), s.player.Moves(), secs/60, secs%60,
		int(math.Round(s.view.Zoom()*100)), s.player.Speed())
	dst.DrawText(0, 0, hud, core.ColorHUD)

	if s.player.Escaped() {
		dst.DrawText(len(hud)+2, 0, "ESCAPED!", core.ColorStart)
	}
}

// mazeCanvas clips drawing to the panel plus the closing wall line on its
// right and bottom edges.
type mazeCanvas struct {
	dst  *core.Screen
	clip core.Rect
}

func (c mazeCanvas) set(x, y int, r rune, col core.Color) {
	if c.clip.Contains(x, y) {
		c.dst.SetColored(x, y, r, col)
	}
}

// renderMaze draws the visible part of the maze. A tile of size t takes t
// rows and 2t columns; its top row carries the north wall and its first
// column the west wall.
func (s *Session) renderMaze(dst *core.Screen) {
	g := s.maze.Grid()
	panel := s.view.Bounds()
	pos := s.view.FramePos()
	frameRows, frameCols := s.view.FrameSize()

	th := s.view.TileSize()
	tw := th * unitColumns
	ox := panel.X * unitColumns
	oy := panel.Y + hudHeight

	canvas := mazeCanvas{
		dst:  dst,
		clip: core.NewRect(ox, oy, panel.W*unitColumns+1, panel.H+1),
	}

	// A display unit belongs to the cell it maps to, so partial tiles are
	// cut at the top and left edges.
	offY := int(math.Floor(pos.Row * float64(th)))
	offX := int(math.Floor(pos.Col*float64(th))) * unitColumns

	r0, c0 := int(math.Floor(pos.Row)), int(math.Floor(pos.Col))
	r1 := min(int(math.Ceil(pos.Row+float64(frameRows))), g.Rows()-1)
	c1 := min(int(math.Ceil(pos.Col+float64(frameCols))), g.Cols()-1)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cell := grid.C(r, c)
			x := ox + c*tw - offX
			y := oy + r*th - offY
			s.drawCell(canvas, cell, g.Walls(cell), x, y, th, tw, r == g.Rows()-1, c == g.Cols()-1)
		}
	}
}

func (s *Session) drawCell(cv mazeCanvas, cell grid.Cell, walls grid.Wall, x, y, th, tw int, lastRow, lastCol bool) {
	hline := func(y int, present bool) {
		cv.set(x, y, glyphCorner, core.ColorWall)
		if present {
			for i := 1; i < tw; i++ {
				cv.set(x+i, y, glyphHWall, core.ColorWall)
			}
		}
		if lastCol {
			cv.set(x+tw, y, glyphCorner, core.ColorWall)
		}
	}
	vline := func(x int, present bool) {
		if !present {
			return
		}
		for i := 1; i < th; i++ {
			cv.set(x, y+i, glyphVWall, core.ColorWall)
		}
	}

	hline(y, walls.Has(grid.North))
	vline(x, walls.Has(grid.West))
	if lastRow {
		hline(y+th, walls.Has(grid.South))
	}
	if lastCol {
		vline(x+tw, walls.Has(grid.East))
	}

	if r, col, ok := s.marker(cell); ok {
		cv.set(x+tw/2, y+th/2, r, col)
	}
}

func (s *Session) marker(c grid.Cell) (rune, core.Color, bool) {
	switch c {
	case s.player.Pos():
		return glyphPlayer, core.ColorPlayer, true
	case s.maze.Finish():
		return glyphFinish, core.ColorFinish, true
	case s.maze.Start():
		return glyphStart, core.ColorStart, true
	}
	return 0, 0, false
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			top := y == box.Y || y == box.Bottom()-1
			side := x == box.X || x == box.Right()-1
			switch {
			case top && side:
				dst.Set(x, y, '+')
			case top:
				dst.Set(x, y, '-')
			case side:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1, core.ColorHUD)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
