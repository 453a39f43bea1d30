// Package term provides a tcell driver. It owns the terminal directly,
// polling events on a goroutine and drawing on a fixed ticker.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/keymap"
	"github.com/vovakirdan/flappy-dragon/internal/platform/screenshot"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// DriverName is the --driver value selecting this package.
const DriverName = "tcell"

// WindowTitle is set on the terminal when the driver starts.
const WindowTitle = "Flappy Dragon"

const maxPending = 8

func init() {
	info := registry.DriverInfo{
		Name:  DriverName,
		Title: "tcell renderer with direct cell access",
	}
	registry.Register(info, func() registry.Driver {
		return &Driver{}
	})
}

// Driver runs the game on a raw tcell screen.
type Driver struct{}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return DriverName
}

// Run initializes the terminal and blocks until the game quits.
func (d *Driver) Run(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer s.Fini()

	s.SetTitle(WindowTitle)
	s.HideCursor()
	s.Clear()

	logger.Debug("starting driver", "driver", DriverName, "fps", cfg.TickRate)
	return loop(s, game, cfg, logger)
}

// loop is the frame loop. Keys are queued as they arrive and fed to the
// game one per tick, resolved against the mode active at that tick.
func loop(s tcell.Screen, game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	keys := keymap.Default()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	var (
		pending  []string
		lastTick time.Time
	)

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				pending = enqueue(pending, rawKey(e), screen, logger)
			}

		case now := <-ticker.C:
			frame := core.Frame{ElapsedMs: elapsedMs(lastTick, now)}
			lastTick = now

			if len(pending) > 0 {
				frame.Key = keys.Resolve(game.Mode(), pending[0])
				pending = pending[1:]
			}

			game.Tick(frame, screen)
			if game.Quitting() {
				return nil
			}

			draw(s, screen, helpLine(helpFor(keys, game.Mode())))
			s.Show()
		}
	}
}

// enqueue adds a raw key to the pending queue. ctrl+s is handled at once
// and never reaches the game.
func enqueue(pending []string, raw string, screen *core.Screen, logger *log.Logger) []string {
	switch {
	case raw == "":
		return pending
	case raw == "ctrl+s":
		saveScreenshot(screen, logger)
		return pending
	case len(pending) >= maxPending:
		logger.Debug("key dropped", "key", raw)
		return pending
	}
	return append(pending, raw)
}

func helpFor(keys keymap.KeyMap, mode dragon.Mode) []keyHelp {
	bindings := keys.Bindings(mode)
	out := make([]keyHelp, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, keyHelp{key: h.Key, desc: h.Desc})
	}
	return out
}

func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}

func saveScreenshot(screen *core.Screen, logger *log.Logger) {
	dir, err := screenshot.Dir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	path, err := screenshot.Save(dir, screen, time.Now())
	if err != nil {
		logger.Warn("screenshot failed", "err", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}
