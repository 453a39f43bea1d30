package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// helpRows is the space drivers reserve below the playfield.
const helpRows = 1

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game at the main menu.

Controls:
  P          - Play (menu, game over)
  Space/W/Up - Flap
  A/D        - Shift left/right
  P/Esc      - Pause
  C          - Continue (paused)
  R          - Restart (paused)
  Q          - Quit, or back to the menu from pause and game over
  Ctrl+C     - Quit
  Ctrl+S     - Save a text screenshot

Examples:
  dragon play
  dragon play --driver tcell
  dragon play --fit --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Log file is append-only, nothing to recover

	driver, err := registry.Create(flagDriver)
	if err != nil {
		return fmt.Errorf("%w (run 'dragon drivers' to list them)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := runtimeConfig(cfg, seed)
	logger.Info("session started",
		"driver", driver.Name(),
		"width", rc.ScreenW,
		"height", rc.ScreenH,
		"fps", rc.TickRate,
		"seed", rc.Seed,
	)

	game := newGame(cfg, rc, logger)
	if err := driver.Run(game, rc, logger); err != nil {
		logger.Error("driver failed", "err", err)
		return err
	}

	logger.Info("session ended", "best", game.Best())
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.DragonConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DragonConfig{}, err
	}

	fitW, fitH := 0, 0
	if flagFit {
		w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			return config.DragonConfig{}, fmt.Errorf("--fit: cannot read terminal size: %w", termErr)
		}
		fitW, fitH = w, h
	}

	cfg = applyOverrides(cfg, flagFPS, fitW, fitH)
	if err := cfg.Validate(); err != nil {
		return config.DragonConfig{}, err
	}
	return cfg, nil
}

// applyOverrides applies --fps and the terminal size from --fit.
// Zero values leave the config untouched.
func applyOverrides(cfg config.DragonConfig, fps, termW, termH int) config.DragonConfig {
	if fps > 0 {
		cfg.Timing.FPS = fps
	}
	if termW > 0 && termH > helpRows {
		cfg.Screen.Width = termW
		cfg.Screen.Height = termH - helpRows
	}
	return cfg
}

// newGame creates the game with obstacles drawn from a source seeded by rc.Seed.
func newGame(cfg config.DragonConfig, rc core.RuntimeConfig, logger *log.Logger) *dragon.Game {
	src := rand.New(rand.NewSource(rc.Seed))
	return dragon.New(cfg, src, dragon.WithLogger(logger))
}

func runtimeConfig(cfg config.DragonConfig, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed,
	}
}
