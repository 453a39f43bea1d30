package dragon

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func newTestGame(cfg config.DragonConfig) (*Game, *core.Screen) {
	g := New(cfg, &fixedSource{n: 10})
	return g, core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
}

func press(k core.Key) core.Frame {
	return core.Frame{Key: k}
}

func idle(ms float64) core.Frame {
	return core.Frame{ElapsedMs: ms}
}

// startedGame returns a game that has just entered Playing.
func startedGame(t *testing.T, cfg config.DragonConfig) (*Game, *core.Screen) {
	t.Helper()
	g, screen := newTestGame(cfg)
	g.Tick(press(core.KeyPlay), screen)
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v after Play, expected playing", g.Mode())
	}
	return g, screen
}

func TestTransition(t *testing.T) {
	tests := []struct {
		mode  Mode
		key   core.Key
		next  Mode
		fresh bool
	}{
		{ModeMenu, core.KeyPlay, ModePlaying, true},
		{ModeMenu, core.KeyBoost, ModeMenu, false},
		{ModeMenu, core.KeyBack, ModeMenu, false},
		{ModePlaying, core.KeyPause, ModePaused, false},
		{ModePlaying, core.KeyPlay, ModePlaying, false},
		{ModePlaying, core.KeyBack, ModePlaying, false},
		{ModePaused, core.KeyContinue, ModePlaying, false},
		{ModePaused, core.KeyRestart, ModePlaying, true},
		{ModePaused, core.KeyBack, ModeMenu, false},
		{ModePaused, core.KeyBoost, ModePaused, false},
		{ModeEnded, core.KeyPlay, ModePlaying, true},
		{ModeEnded, core.KeyBack, ModeMenu, false},
		{ModeEnded, core.KeyContinue, ModeEnded, false},
	}

	for _, tc := range tests {
		next, fresh := transition(tc.mode, tc.key)
		if next != tc.next || fresh != tc.fresh {
			t.Errorf("transition(%v, %v) = (%v, %v), expected (%v, %v)",
				tc.mode, tc.key, next, fresh, tc.next, tc.fresh)
		}
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g, screen := newTestGame(config.DefaultDragonConfig())

	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", g.Mode())
	}
	if g.Run() != nil {
		t.Error("no run should exist in the menu")
	}

	g.Tick(idle(16), screen)
	if !strings.Contains(screen.Row(5), "Welcome to Flappy Dragon @!") {
		t.Errorf("menu title missing, row 5 = %q", screen.Row(5))
	}
}

func TestGamePlayStartsFreshRun(t *testing.T) {
	g, _ := startedGame(t, config.DefaultDragonConfig())

	r := g.Run()
	if r == nil {
		t.Fatal("Run() should exist after Play")
	}
	if r.Score != 0 {
		t.Errorf("Score = %d, expected 0", r.Score)
	}
	got := make([]int, 0, len(r.Obstacles))
	for _, o := range r.Obstacles {
		got = append(got, o.WorldX)
	}
	if !slices.Equal(got, []int{80, 100, 120, 140}) {
		t.Errorf("obstacle positions = %v, expected [80 100 120 140]", got)
	}
}

func TestGameQuitFromEveryMode(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Game, screen *core.Screen)
		mode  Mode
	}{
		{"menu", func(*testing.T, *Game, *core.Screen) {}, ModeMenu},
		{"playing", func(_ *testing.T, g *Game, screen *core.Screen) {
			g.Tick(press(core.KeyPlay), screen)
		}, ModePlaying},
		{"paused", func(_ *testing.T, g *Game, screen *core.Screen) {
			g.Tick(press(core.KeyPlay), screen)
			g.Tick(press(core.KeyPause), screen)
		}, ModePaused},
		{"ended", func(t *testing.T, g *Game, screen *core.Screen) {
			g.Tick(press(core.KeyPlay), screen)
			crash(t, g, screen)
		}, ModeEnded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, screen := newTestGame(config.DefaultDragonConfig())
			tc.setup(t, g, screen)
			if g.Mode() != tc.mode {
				t.Fatalf("Mode() = %v before quit, expected %v", g.Mode(), tc.mode)
			}
			g.Tick(press(core.KeyQuit), screen)
			if !g.Quitting() {
				t.Error("Quit should set the quitting flag")
			}
		})
	}
}

func TestGameStepsOnlyPastThreshold(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	g.Tick(idle(30), screen)
	if x := g.Run().Entity.WorldX; x != 0 {
		t.Fatalf("WorldX = %d after 30ms, expected 0", x)
	}
	g.Tick(idle(30), screen)
	if x := g.Run().Entity.WorldX; x != 1 {
		t.Fatalf("WorldX = %d after 60ms, expected 1", x)
	}
}

func TestGameOneStepPerFrame(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	g.Tick(idle(5000), screen)
	if x := g.Run().Entity.WorldX; x != 1 {
		t.Errorf("WorldX = %d after a 5s frame, expected exactly 1", x)
	}
}

func TestGamePlayingControls(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	g.Tick(press(core.KeyBoost), screen)
	if v := g.Run().Entity.Velocity; v != -2.0 {
		t.Errorf("Velocity = %v after Boost, expected -2.0", v)
	}

	g.Tick(press(core.KeyMoveRight), screen)
	g.Tick(press(core.KeyMoveRight), screen)
	if lane := g.Run().Entity.LaneOffset; lane != 2 {
		t.Errorf("LaneOffset = %d, expected 2", lane)
	}

	for i := 0; i < 5; i++ {
		g.Tick(press(core.KeyMoveLeft), screen)
	}
	if lane := g.Run().Entity.LaneOffset; lane != 0 {
		t.Errorf("LaneOffset = %d, expected clamp to 0", lane)
	}
}

func TestGamePauseContinuePreservesRun(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())
	for i := 0; i < 5; i++ {
		g.Tick(idle(60), screen)
	}

	run := g.Run()
	entity := run.Entity
	score := run.Score
	obstacles := slices.Clone(run.Obstacles)

	g.Tick(press(core.KeyPause), screen)
	if g.Mode() != ModePaused {
		t.Fatalf("Mode() = %v, expected paused", g.Mode())
	}
	for i := 0; i < 20; i++ {
		g.Tick(idle(1000), screen)
		g.Tick(press(core.KeyBoost), screen)
	}
	if !strings.Contains(screen.String(), "Game Pause!") {
		t.Error("pause panel should be drawn")
	}

	g.Tick(press(core.KeyContinue), screen)
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected playing", g.Mode())
	}
	if g.Run() != run {
		t.Fatal("Continue should resume the same run")
	}
	if run.Entity != entity {
		t.Errorf("Entity = %+v, expected unchanged %+v", run.Entity, entity)
	}
	if run.Score != score {
		t.Errorf("Score = %d, expected unchanged %d", run.Score, score)
	}
	if !slices.Equal(run.Obstacles, obstacles) {
		t.Errorf("Obstacles = %+v, expected unchanged %+v", run.Obstacles, obstacles)
	}
}

func TestGamePausedRestart(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())
	for i := 0; i < 5; i++ {
		g.Tick(idle(60), screen)
	}
	old := g.Run()

	g.Tick(press(core.KeyPause), screen)
	g.Tick(press(core.KeyRestart), screen)

	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected playing", g.Mode())
	}
	if g.Run() == old {
		t.Fatal("Restart should create a new run")
	}
	if g.Run().Entity != NewEntity(0) {
		t.Errorf("Entity = %+v, expected spawn", g.Run().Entity)
	}
}

func TestGamePausedBack(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	g.Tick(press(core.KeyPause), screen)
	g.Tick(press(core.KeyBack), screen)

	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", g.Mode())
	}
	if g.Run() != nil {
		t.Error("run should be discarded on return to the menu")
	}
}

// crash forces the current run off the bottom of the screen.
func crash(t *testing.T, g *Game, screen *core.Screen) {
	t.Helper()
	g.Run().Entity.ScreenY = 60
	g.Tick(idle(60), screen)
	if g.Mode() != ModeEnded {
		t.Fatalf("Mode() = %v after falling off screen, expected ended", g.Mode())
	}
}

func TestGameFallingOffScreenEnds(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	// WorldX 1 is nowhere near an obstacle
	g.Run().Entity.ScreenY = 49
	g.Run().Entity.Velocity = 2.0
	g.Tick(idle(60), screen)

	if g.Mode() != ModeEnded {
		t.Errorf("Mode() = %v, expected ended", g.Mode())
	}
	// The panel is drawn from the next frame on
	g.Tick(idle(16), screen)
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("game over panel should be drawn")
	}
}

func TestGameEndedFreezesRun(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())
	crash(t, g, screen)

	x := g.Run().Entity.WorldX
	for i := 0; i < 10; i++ {
		g.Tick(idle(100), screen)
		g.Tick(press(core.KeyBoost), screen)
	}
	if g.Run().Entity.WorldX != x {
		t.Errorf("WorldX moved from %d to %d after the run ended", x, g.Run().Entity.WorldX)
	}
	if g.Mode() != ModeEnded {
		t.Errorf("Mode() = %v, expected ended", g.Mode())
	}
}

func TestGamePlayAgainResets(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())
	g.Run().Score = 7
	crash(t, g, screen)

	if g.Best() != 7 {
		t.Errorf("Best() = %d, expected 7", g.Best())
	}

	g.Tick(press(core.KeyPlay), screen)
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected playing", g.Mode())
	}
	if g.Run().Score != 0 {
		t.Errorf("Score = %d after play again, expected 0", g.Run().Score)
	}
	if g.Run().Entity != NewEntity(0) {
		t.Errorf("Entity = %+v, expected spawn", g.Run().Entity)
	}
}

func TestGameEndedBack(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())
	crash(t, g, screen)

	g.Tick(press(core.KeyBack), screen)
	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", g.Mode())
	}
	if g.Run() != nil {
		t.Error("run should be discarded on return to the menu")
	}
}

func TestGameRenderPlayfield(t *testing.T) {
	g, screen := startedGame(t, config.DefaultDragonConfig())

	g.Run().Entity.WorldX = 60
	g.Run().Entity.ScreenY = 10
	g.Tick(idle(0), screen)

	if c := screen.GetCell(0, 10); c.Rune != EntityChar || c.Fg != core.ColorYellow {
		t.Errorf("entity cell = %+v, expected yellow %q", c, EntityChar)
	}

	// First obstacle is 20 columns ahead, gap rows [8, 32]
	if c := screen.GetCell(20, 49); c.Rune != ObstacleChar || c.Fg != core.ColorRed {
		t.Errorf("wall cell = %+v, expected red %q", c, ObstacleChar)
	}
	if c := screen.GetCell(20, 20); c.Rune != ' ' || c.Bg != core.ColorNavy {
		t.Errorf("gap cell = %+v, expected blank navy", c)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing, row 0 = %q", screen.Row(0))
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	cfg.Physics.Gravity = 0

	play := func() *Run {
		g := New(cfg, rand.New(rand.NewSource(12345)))
		screen := core.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
		g.Tick(press(core.KeyPlay), screen)
		g.Run().Entity.ScreenY = 20
		for i := 0; i < 300 && g.Mode() == ModePlaying; i++ {
			g.Tick(idle(60), screen)
		}
		return g.Run()
	}

	r1, r2 := play(), play()
	if r1.Score != r2.Score || r1.Entity != r2.Entity {
		t.Errorf("runs diverged: (%d, %+v) vs (%d, %+v)", r1.Score, r1.Entity, r2.Score, r2.Entity)
	}
	if !slices.Equal(r1.Obstacles, r2.Obstacles) {
		t.Errorf("obstacles diverged: %+v vs %+v", r1.Obstacles, r2.Obstacles)
	}
}
