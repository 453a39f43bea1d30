// Package keymap translates raw terminal key names into the game's symbolic
// keys. Bindings depend on the active mode: "q" quits from the menu and
// during play, but returns to the menu from the pause and game over screens.
package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
)

// Raw is a key name in Bubble Tea notation ("a", " ", "up", "ctrl+c").
// Every driver reports keys this way.
type Raw string

// String implements fmt.Stringer for key.Matches.
func (r Raw) String() string {
	return string(r)
}

// Binding ties a bubbles key binding to the symbolic key it produces.
type Binding struct {
	key.Binding
	Key core.Key
}

func bind(k core.Key, keys []string, helpKey, desc string) Binding {
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc)),
		Key:     k,
	}
}

// KeyMap holds the bindings of every mode.
type KeyMap struct {
	modes map[dragon.Mode][]Binding
}

// Default returns the classic bindings: Space flaps, A/D move, P pauses.
func Default() KeyMap {
	quit := bind(core.KeyQuit, []string{"q", "Q", "ctrl+c"}, "q", "quit")
	hardQuit := bind(core.KeyQuit, []string{"ctrl+c"}, "ctrl+c", "quit")
	back := bind(core.KeyBack, []string{"q", "Q", "b", "esc"}, "q", "main menu")

	return KeyMap{
		modes: map[dragon.Mode][]Binding{
			dragon.ModeMenu: {
				bind(core.KeyPlay, []string{"p", "P", "enter"}, "p", "play"),
				quit,
			},
			dragon.ModePlaying: {
				bind(core.KeyBoost, []string{" ", "w", "up"}, "space", "flap"),
				bind(core.KeyMoveLeft, []string{"a", "A", "left"}, "a", "left"),
				bind(core.KeyMoveRight, []string{"d", "D", "right"}, "d", "right"),
				bind(core.KeyPause, []string{"p", "P", "esc"}, "p", "pause"),
				quit,
			},
			dragon.ModePaused: {
				bind(core.KeyContinue, []string{"c", "C", "p", "P"}, "c", "continue"),
				bind(core.KeyRestart, []string{"r", "R"}, "r", "restart"),
				back,
				hardQuit,
			},
			dragon.ModeEnded: {
				bind(core.KeyPlay, []string{"p", "P", "r", "R", "enter"}, "p", "play again"),
				back,
				hardQuit,
			},
		},
	}
}

// Resolve returns the symbolic key for a raw key in the given mode,
// or core.KeyNone when the mode has no binding for it.
func (km KeyMap) Resolve(mode dragon.Mode, raw string) core.Key {
	for _, b := range km.modes[mode] {
		if key.Matches(Raw(raw), b.Binding) {
			return b.Key
		}
	}
	return core.KeyNone
}

// Bindings returns the key bindings of a mode, for help views.
func (km KeyMap) Bindings(mode dragon.Mode) []key.Binding {
	bs := km.modes[mode]
	out := make([]key.Binding, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Binding)
	}
	return out
}

// HelpView renders the one-line help for a mode.
func (km KeyMap) HelpView(h help.Model, mode dragon.Mode) string {
	return h.ShortHelpView(km.Bindings(mode))
}
