package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// runSavedMsg reports the outcome of storing a completed run.
type runSavedMsg struct {
	run  storage.Run
	best *storage.Run
	err  error
}

// Model is the Bubble Tea model for exploring a maze.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	player   string
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	input    core.InputFrame
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
// player names the runs saved to the store.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if player == "" {
		player = "local"
	}

	m := Model{
		session: session,
		store:   store,
		config:  cfg,
		player:  player,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    newHeldKeys(cfg.TickRate),
		input:   core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.mazeHeight())
	return m
}

// Init carves the first maze and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.mazeHeight()
	m.session.Reset(cfg)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case runSavedMsg:
		return m.handleRunSaved(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(m.keys.MapKey(msg))
	return m, nil
}

// handleMouse tracks the pointer and zooms on wheel events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.Cursor = core.Cursor{X: msg.X, Y: msg.Y, Valid: msg.Y < m.screen.Height()}

	if steps := wheelNotches(msg); steps != 0 && m.input.Cursor.Valid {
		m.session.ZoomAt(steps, msg.X, msg.Y)
	}
	return m, nil
}

// handleResize keeps the maze and refits the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Fill(&m.input)
	result := m.session.Step(m.input)
	m.input.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	switch {
	case result.Regenerated:
		m.held.Release()
		m.setStatus("")
	case result.JustEscaped:
		secs := float64(result.State.Ticks) / float64(m.config.TickRate)
		m.setStatus(fmt.Sprintf("Escaped in %d moves, %.1fs", result.State.Moves, secs))
		if m.store != nil {
			cmds = append(cmds, m.saveRunCmd(result.State))
		}
	}

	return m, tea.Batch(cmds...)
}

// saveRunCmd stores the finished run off the UI loop.
func (m Model) saveRunCmd(state core.GameState) tea.Cmd {
	store := m.store
	run := storage.Run{
		Player:   m.player,
		Rows:     m.session.Maze().Rows(),
		Cols:     m.session.Maze().Cols(),
		Moves:    state.Moves,
		Ticks:    int64(state.Ticks),
		TickRate: m.config.TickRate,
	}

	return func() tea.Msg {
		id, err := store.SaveRun(run)
		if err != nil {
			return runSavedMsg{run: run, err: err}
		}
		run.ID = id
		best, err := store.BestRun(run.Rows, run.Cols)
		return runSavedMsg{run: run, best: best, err: err}
	}
}

func (m Model) handleRunSaved(msg runSavedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		m.setStatus(fmt.Sprintf("Could not save run: %v", msg.err))
	case msg.best != nil && msg.best.ID == msg.run.ID:
		m.setStatus(fmt.Sprintf("New best for %dx%d: %d moves!", msg.run.Rows, msg.run.Cols, msg.run.Moves))
	case msg.best != nil:
		m.setStatus(fmt.Sprintf("Escaped in %d moves (best %d)", msg.run.Moves, msg.best.Moves))
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	if s == m.status {
		return
	}
	m.status = s
	m.layout()
}

// footer renders the status and help lines below the maze.
func (m Model) footer() string {
	helpView := footerStyle.Render(m.help.View(m.keys))
	if m.status == "" {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(" "+m.status), helpView)
}

// mazeHeight is the number of terminal rows left for the session.
func (m Model) mazeHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.footer()), 0)
}

// layout resizes the screen buffer and session to the space above the footer.
func (m *Model) layout() {
	h := m.mazeHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.session.Resize(m.config.ScreenW, h)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".maze", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%dx%d_%s.txt", m.session.ID(),
		m.session.Maze().Rows(), m.session.Maze().Cols(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for a local session.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(session, store, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Wheel zoom follows the pointer
	)

	_, err := p.Run()
	return err
}
