package term

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// rawKey converts a tcell key event to Bubble Tea key notation so both
// drivers share one keymap. It returns "" for keys the game never binds.
func rawKey(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		return string(r)
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	}
	return ""
}

// helpLine renders bindings as plain "key desc" pairs. The bubbles help
// view emits ANSI sequences, which tcell would print literally.
func helpLine(bindings []keyHelp) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.key+" "+b.desc)
	}
	return strings.Join(parts, " • ")
}

type keyHelp struct {
	key, desc string
}
