package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// palette uses the same ANSI-256 indices as the Bubble Tea driver so both
// drivers show identical colors.
var palette = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.PaletteColor(0),
	core.ColorRed:     tcell.PaletteColor(1),
	core.ColorYellow:  tcell.PaletteColor(3),
	core.ColorNavy:    tcell.PaletteColor(17),
	core.ColorGray:    tcell.PaletteColor(245),
}

func colorOf(c core.Color) tcell.Color {
	if tc, ok := palette[c]; ok {
		return tc
	}
	return tcell.ColorDefault
}

func styleOf(cell core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(colorOf(cell.Fg)).Background(colorOf(cell.Bg))
}

// draw copies the screen buffer to the terminal, then writes the help
// line on the row below it.
func draw(s tcell.Screen, src *core.Screen, help string) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			s.SetContent(x, y, cell.Rune, nil, styleOf(cell))
		}
	}

	st := tcell.StyleDefault.Foreground(colorOf(core.ColorGray))
	helpY := src.Height()
	w, _ := s.Size()
	for x := range w {
		s.SetContent(x, helpY, ' ', nil, tcell.StyleDefault)
	}
	x := 0
	for _, r := range help {
		s.SetContent(x, helpY, r, nil, st)
		x++
	}
}
