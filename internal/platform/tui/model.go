// Package tui runs the game full-screen in the terminal with Bubble Tea.
// It maps keys to actions, feeds them to the game and draws the result.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// helpHeight is the number of rows kept below the board for key help.
const helpHeight = 3

// Options configures the TUI.
type Options struct {
	Rules  t2048.Rules
	Color  bool
	Logger *log.Logger
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	color    bool
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model and starts a new game.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game := t2048.New(opts.Rules)
	boardH := max(cfg.ScreenH-helpHeight, 0)
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: boardH, Seed: cfg.Seed})
	logger.Info("game started", "seed", cfg.Seed, "win_tile", game.Rules().WinTile, "spawn", game.Rules().Spawn)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, boardH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		color:  opts.Color,
		logger: logger,
	}
}

// Game returns the game driven by the model.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "status", m.game.Status(), "moves", m.game.Moves())
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionRestart:
		if m.game.Status().Terminal() {
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(core.RuntimeConfig{ScreenW: m.screen.Width(), ScreenH: m.screen.Height(), Seed: m.config.Seed})
			m.logger.Info("game restarted", "seed", m.config.Seed)
		}
		return m, nil
	}

	before := m.game.Status()
	result := m.game.Step(core.FrameOf(action))
	m.logger.Debug("move", "action", action, "changed", result.Changed, "moves", result.State.Moves, "max", result.State.MaxTile)

	if after := m.game.Status(); after != before {
		m.logger.Info("game finished", "status", after, "moves", result.State.Moves, "max", result.State.MaxTile)
	}
	return m, nil
}

// handleResize keeps the game running and only re-lays out the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	boardH := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, boardH)
	m.game.Resize(msg.Width, boardH)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.color) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and returns the final game status.
func Run(cfg core.RuntimeConfig, opts Options) (t2048.Status, error) {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.game.Status(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.game.Status(), nil
	}
	return model.game.Status(), nil
}
