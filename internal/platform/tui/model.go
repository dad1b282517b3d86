package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/input"
	"github.com/vovakirdan/gridsnake/internal/render"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// helpHeight is the number of lines reserved below the board.
const helpHeight = 1

// Model is the Bubble Tea model for one game session.
//
// Bubble Tea delivers key presses and ticks on the same goroutine, so a
// direction change is always fully applied before the next tick.
type Model struct {
	cfg     config.SnakeConfig
	game    *snake.Game
	board   *render.Board
	screen  *core.Screen
	palette Palette
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	gen      int  // current tick chain
	ticking  bool // whether a tick for gen is in flight
	quitting bool
	games    int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the session logger.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPalette sets the color palette, e.g. one bound to an SSH session.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) {
		m.palette = p
	}
}

// NewModel validates cfg and creates a model with a fresh game.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	if rt.Seed != 0 {
		cfg.Seed = rt.Seed
	}

	m := Model{
		cfg:    cfg,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH-helpHeight),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
		board: render.NewBoard(render.Options{
			CellSize: cfg.Render.CellSize,
			Status:   "Tick: " + cfg.Tick.String(),
			Hint:     "r new game · q quit",
		}),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.palette.styles == nil {
		m.palette = NewPalette(nil)
	}
	m.help.Width = rt.ScreenW

	if err := m.newGame(cfg.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newGame mounts a fresh game and starts a new tick chain.
func (m *Model) newGame(seed int64) error {
	simCfg, err := m.cfg.ToSim()
	if err != nil {
		return err
	}
	simCfg.Seed = seed

	game, err := snake.New(simCfg, snake.WithLogger(m.logger))
	if err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}
	m.game = game
	m.games++
	m.gen++
	m.ticking = true
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Tick.Period(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.ticking = false
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		if !m.game.GameOver() {
			return m, nil
		}
		if err := m.newGame(time.Now().UnixNano()); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		m.logger.Info("game restarted", "games", m.games)
		return m, tickCmd(m.cfg.Tick.Period(), m.gen)
	}

	if dir, ok := input.Direction(action); ok {
		m.game.SetDirection(dir)
	}
	return m, nil
}

// handleTick advances the game and re-arms the chain while it is running.
// Once the game is over the chain is not re-armed, so no further tick for
// this game is ever produced.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	m.game.Tick()
	if m.game.GameOver() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.cfg.Tick.Period(), m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Draw(m.screen, m.game.Snapshot())
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot exposes the current game state.
func (m Model) Snapshot() snake.Snapshot {
	return m.game.Snapshot()
}

// Ticking reports whether a tick chain is active.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, WithModelLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
