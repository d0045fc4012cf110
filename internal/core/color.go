package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for maze elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorPeach
)

// Roles used by the maze renderer.
const (
	ColorWall   = ColorGray
	ColorStart  = ColorGreen
	ColorFinish = ColorRed
	ColorPlayer = ColorYellow
	ColorHUD    = ColorPeach
)
