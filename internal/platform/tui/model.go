package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/keymap"
	"github.com/vovakirdan/flappy-dragon/internal/platform/screenshot"
)

// WindowTitle is set on the terminal when the program starts.
const WindowTitle = "Flappy Dragon"

// maxPending bounds the raw key queue. Keys beyond it are dropped.
const maxPending = 8

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game     *dragon.Game
	screen   *core.Screen
	keys     keymap.KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	pending  []string
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   keymap.Default(),
		help:   help.New(),
		config: cfg,
		logger: logger,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the raw key. It is resolved against the mode that is
// active when a tick consumes it, not the mode at press time.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	raw := msg.String()
	if raw == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if len(m.pending) >= maxPending {
		m.logger.Debug("key dropped", "key", raw)
		return m, nil
	}
	m.pending = append(m.pending, raw)
	return m, nil
}

// handleTick feeds the game one frame with at most one key.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.Frame{ElapsedMs: elapsedMs(m.lastTick, now)}
	m.lastTick = now

	if len(m.pending) > 0 {
		raw := m.pending[0]
		m.pending = m.pending[1:]
		frame.Key = m.keys.Resolve(m.game.Mode(), raw)
	}

	m.game.Tick(frame, m.screen)

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	dir, err := screenshot.Dir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	path, err := screenshot.Save(dir, m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the screen buffer followed by the key help for the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.screen) + "\n" + m.keys.HelpView(m.help, m.game.Mode())
}
