// Package dragon implements Flappy Dragon: an entity falls under gravity and
// must pass through gaps in a stream of walls, scoring one point per wall.
//
// The package is driver independent. A driver calls Game.Tick once per
// rendered frame with that frame's key press and elapsed time, then shows
// the screen buffer the game drew into.
package dragon

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Mode is the active screen of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// transition is the mode table. Given the active mode and a key it returns
// the next mode and whether a fresh run has to be started on entry.
// Keys a mode does not react to leave the mode unchanged.
func transition(mode Mode, key core.Key) (next Mode, fresh bool) {
	switch mode {
	case ModeMenu:
		if key == core.KeyPlay {
			return ModePlaying, true
		}
	case ModePlaying:
		if key == core.KeyPause {
			return ModePaused, false
		}
	case ModePaused:
		switch key {
		case core.KeyContinue:
			return ModePlaying, false
		case core.KeyRestart:
			return ModePlaying, true
		case core.KeyBack:
			return ModeMenu, false
		}
	case ModeEnded:
		switch key {
		case core.KeyPlay:
			return ModePlaying, true
		case core.KeyBack:
			return ModeMenu, false
		}
	}
	return mode, false
}

// Game owns the mode, the current run and the obstacle generator.
type Game struct {
	cfg      config.DragonConfig
	gen      *Generator
	run      *Run // nil in the menu
	mode     Mode
	best     int // Best score this session
	quitting bool
	logger   *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for mode changes and run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in the menu. Gap centers are drawn from src.
func New(cfg config.DragonConfig, src Source, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		gen:    NewGenerator(src, cfg.Obstacles),
		mode:   ModeMenu,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Run returns the current run, or nil while in the menu.
func (g *Game) Run() *Run {
	return g.run
}

// Best returns the best score reached this session.
func (g *Game) Best() int {
	return g.best
}

// Quitting reports whether the player asked to exit the program.
func (g *Game) Quitting() bool {
	return g.quitting
}

// Tick runs one rendered frame: it dispatches to the active mode, which
// may advance the simulation, draws into dst and reacts to the frame's key.
// Quit is honored in every mode.
func (g *Game) Tick(in core.Frame, dst *core.Screen) {
	if g.quitting {
		return
	}
	if in.Key == core.KeyQuit {
		g.quitting = true
		g.logger.Info("quit requested", "mode", g.mode)
		return
	}

	switch g.mode {
	case ModeMenu:
		g.renderMenu(dst)
	case ModePlaying:
		g.play(in, dst)
		return
	case ModePaused:
		g.renderRun(dst)
		g.renderPaused(dst)
	case ModeEnded:
		g.renderRun(dst)
		g.renderEnded(dst)
	}

	if in.HasKey() {
		g.apply(in.Key)
	}
}

// play advances the run when enough frame time has accumulated, draws it
// and then handles the playing controls.
func (g *Game) play(in core.Frame, dst *core.Screen) {
	if g.run.Accumulate(in.ElapsedMs) {
		score := g.run.Score
		crashed := g.run.Advance()
		if g.run.Score != score {
			g.logger.Debug("scored", "run", g.run.ID, "score", g.run.Score)
		}
		if crashed {
			g.end()
		}
	}
	g.renderRun(dst)
	if g.mode != ModePlaying {
		return
	}

	switch in.Key {
	case core.KeyBoost:
		g.run.Entity.Boost(g.cfg.Physics)
	case core.KeyMoveLeft:
		g.run.Entity.ShiftLane(-1, g.cfg.Screen.Width)
	case core.KeyMoveRight:
		g.run.Entity.ShiftLane(1, g.cfg.Screen.Width)
	default:
		g.apply(in.Key)
	}
}

// apply feeds a key through the mode table and performs the entry work.
func (g *Game) apply(key core.Key) {
	next, fresh := transition(g.mode, key)
	if next == g.mode && !fresh {
		return
	}

	if fresh {
		g.start()
	}
	if next == ModeMenu {
		g.run = nil
	}
	g.setMode(next)
}

// start replaces the current run with a fresh one.
func (g *Game) start() {
	g.run = NewRun(g.cfg, g.gen)
	g.logger.Info("run started", "run", g.run.ID)
}

// end finishes the current run after a crash.
func (g *Game) end() {
	if g.run.Score > g.best {
		g.best = g.run.Score
	}
	g.logger.Info("run ended",
		"run", g.run.ID,
		"score", g.run.Score,
		"distance", g.run.Entity.WorldX,
	)
	g.setMode(ModeEnded)
}

func (g *Game) setMode(m Mode) {
	g.logger.Debug("mode changed", "from", g.mode, "to", m)
	g.mode = m
}
