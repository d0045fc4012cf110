package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// KeyMap defines the key bindings for the maze explorer.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PanUp       key.Binding
	PanDown     key.Binding
	PanLeft     key.Binding
	PanRight    key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Align       key.Binding
	Center      key.Binding
	Quadrant1   key.Binding
	Quadrant2   key.Binding
	Quadrant3   key.Binding
	Quadrant4   key.Binding
	Regenerate  key.Binding
	ToggleSpeed key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.ZoomIn, k.ZoomOut, k.Regenerate, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.ZoomIn, k.ZoomOut, k.Align, k.Center},
		{k.Quadrant1, k.Quadrant2, k.Quadrant3, k.Quadrant4},
		{k.Regenerate, k.ToggleSpeed, k.Pause, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑↓←→/wasd", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("k", "shift+up"),
			key.WithHelp("k", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("j", "shift+down"),
			key.WithHelp("j", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("h", "shift+left"),
			key.WithHelp("h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("l", "shift+right"),
			key.WithHelp("l", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Align: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "align"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center"),
		),
		Quadrant1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "top right"),
		),
		Quadrant2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "top left"),
		),
		Quadrant3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "bottom left"),
		),
		Quadrant4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "bottom right"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new maze"),
		),
		ToggleSpeed: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "speed"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings pairs each session action with its key binding.
func (k KeyMap) bindings() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionUp, k.Up},
		{core.ActionDown, k.Down},
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
		{core.ActionPanUp, k.PanUp},
		{core.ActionPanDown, k.PanDown},
		{core.ActionPanLeft, k.PanLeft},
		{core.ActionPanRight, k.PanRight},
		{core.ActionZoomIn, k.ZoomIn},
		{core.ActionZoomOut, k.ZoomOut},
		{core.ActionAlign, k.Align},
		{core.ActionCenter, k.Center},
		{core.ActionQuadrant1, k.Quadrant1},
		{core.ActionQuadrant2, k.Quadrant2},
		{core.ActionQuadrant3, k.Quadrant3},
		{core.ActionQuadrant4, k.Quadrant4},
		{core.ActionRegenerate, k.Regenerate},
		{core.ActionToggleSpeed, k.ToggleSpeed},
		{core.ActionPause, k.Pause},
		{core.ActionQuit, k.Quit},
	}
}

// MapKey translates a key message to a session action.
// Returns ActionNone for keys that are not session actions.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// wheelNotches returns +1 for a wheel-up press, -1 for wheel-down and 0 for
// any other mouse event.
func wheelNotches(msg tea.MouseMsg) int {
	if msg.Action != tea.MouseActionPress {
		return 0
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return 1
	case tea.MouseButtonWheelDown:
		return -1
	}
	return 0
}
