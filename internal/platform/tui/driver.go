package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// DriverName is the --driver value selecting this package.
const DriverName = "tui"

func init() {
	info := registry.DriverInfo{
		Name:  DriverName,
		Title: "Bubble Tea renderer with lipgloss colors",
	}
	registry.Register(info, func() registry.Driver {
		return &Driver{}
	})
}

// Driver runs the game inside a Bubble Tea program.
type Driver struct{}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return DriverName
}

// Run starts the Bubble Tea program and blocks until the game quits.
func (d *Driver) Run(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	logger.Debug("starting driver", "driver", DriverName, "fps", cfg.TickRate)

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
