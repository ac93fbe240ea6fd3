package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

// stateHasher is implemented by games that can hash their full state.
type stateHasher interface {
	StateHash() uint64
}

// configReporter is implemented by games that fall back to default
// settings when their config fails to load.
type configReporter interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *core.HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	embedded   bool // Running inside a session; Back returns to the menu
	quitting   bool
	backToMenu bool
	reported   bool   // Whether the current game over has been logged
	gen        uint64 // Tick loop ID
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      core.NewHoldTracker(core.DefaultHoldTicks * cfg.TickRate / core.DefaultTickRate),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		gen:        nextGeneration(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.warnConfigFallback()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, boost := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case action.IsDirection():
		// Terminals never report key releases; hold the direction for a while
		m.holds.Press(action)
		if boost {
			m.holds.Press(core.ActionBoost)
		}

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its playfield to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart after game over gets a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && !m.gameState.Frozen {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.warnConfigFallback()
		m.gameState = m.game.State()
		m.reported = false
		m.holds.Release()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	m.holds.Apply(&m.inputFrame)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.logger.Debug("event", "game", m.game.ID(), "name", e.Name, "value", e.Value)
	}

	if m.gameState.GameOver && !m.reported {
		m.reportGameOver()
		m.reported = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.gen)
}

// warnConfigFallback logs a config that was replaced by the defaults.
func (m Model) warnConfigFallback() {
	if r, ok := m.game.(configReporter); ok {
		if err := r.ConfigError(); err != nil {
			m.logger.Warn("config not loaded, using defaults", "game", m.game.ID(), "error", err)
		}
	}
}

func (m Model) reportGameOver() {
	outcome := "defeat"
	if m.gameState.Victory {
		outcome = "victory"
	}
	fields := []any{"game", m.game.ID(), "outcome", outcome, "score", m.gameState.Score, "seed", m.config.Seed}
	if h, ok := m.game.(stateHasher); ok {
		fields = append(fields, "hash", fmt.Sprintf("%016x", h.StateHash()))
	}
	m.logger.Info("game over", fields...)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".skyraid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)

	// The screen takes whatever the help footer leaves
	h := m.config.ScreenH - lipgloss.Height(footer)
	if h < 1 {
		h = 1
	}
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
