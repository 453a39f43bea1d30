package dragon

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	EntityChar   = '@'
	ObstacleChar = '■'
)

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	dst.Clear(core.ColorBlack)
	dst.PrintCentered(5, "Welcome to Flappy Dragon @!")
	dst.PrintCentered(8, "(P) Play")
	dst.PrintCentered(9, "(Q) Quit")
	if g.best > 0 {
		dst.PrintCentered(12, fmt.Sprintf("Best this session: %d", g.best))
	}
}

// renderRun draws the playfield: walls relative to the entity's world
// position, the entity in its lane and the HUD.
func (g *Game) renderRun(dst *core.Screen) {
	dst.Clear(core.ColorNavy)

	e := g.run.Entity
	for _, o := range g.run.Obstacles {
		g.drawObstacle(dst, o, e.WorldX)
	}
	dst.SetCell(e.LaneOffset, e.ScreenY, core.ColorYellow, core.ColorBlack, EntityChar)

	dst.PrintCentered(0, fmt.Sprintf("Score: %d", g.run.Score))
	dst.PrintAt(0, 0, "Press Space to flap")
	dst.PrintAt(0, 1, "Press A, D to move")
}

// drawObstacle renders the wall rows of one obstacle. Columns off screen
// are clipped by the screen buffer.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, worldX int) {
	x := o.WorldX - worldX
	for y := 0; y < g.cfg.Screen.Height; y++ {
		if o.Blocks(y) {
			dst.SetCell(x, y, core.ColorRed, core.ColorBlack, ObstacleChar)
		}
	}
}

// renderPaused overlays the pause panel on the frozen playfield.
func (g *Game) renderPaused(dst *core.Screen) {
	drawPanel(dst,
		"Game Pause!",
		"",
		"(C) Continue",
		"(R) Restart",
		"(Q) Back to main menu",
	)
}

// renderEnded overlays the game over panel on the final playfield.
func (g *Game) renderEnded(dst *core.Screen) {
	drawPanel(dst,
		"Game Over!",
		fmt.Sprintf("Score: %d  Best: %d", g.run.Score, g.best),
		"",
		"(P) Play again",
		"(Q) Back to main menu",
	)
}

// drawPanel draws a boxed block of centered lines in the middle of the screen.
func drawPanel(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.PrintAt(x, box.Y+1+i, l)
	}
}
