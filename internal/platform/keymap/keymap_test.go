package keymap

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
)

func TestResolve(t *testing.T) {
	km := Default()

	tests := []struct {
		mode     dragon.Mode
		raw      string
		expected core.Key
	}{
		{dragon.ModeMenu, "p", core.KeyPlay},
		{dragon.ModeMenu, "P", core.KeyPlay},
		{dragon.ModeMenu, "q", core.KeyQuit},
		{dragon.ModeMenu, " ", core.KeyNone},
		{dragon.ModePlaying, " ", core.KeyBoost},
		{dragon.ModePlaying, "a", core.KeyMoveLeft},
		{dragon.ModePlaying, "d", core.KeyMoveRight},
		{dragon.ModePlaying, "p", core.KeyPause},
		{dragon.ModePlaying, "q", core.KeyQuit},
		{dragon.ModePlaying, "r", core.KeyNone},
		{dragon.ModePaused, "c", core.KeyContinue},
		{dragon.ModePaused, "r", core.KeyRestart},
		{dragon.ModePaused, "q", core.KeyBack},
		{dragon.ModePaused, "ctrl+c", core.KeyQuit},
		{dragon.ModeEnded, "p", core.KeyPlay},
		{dragon.ModeEnded, "q", core.KeyBack},
		{dragon.ModeEnded, "ctrl+c", core.KeyQuit},
		{dragon.ModeEnded, " ", core.KeyNone},
	}

	for _, tc := range tests {
		if got := km.Resolve(tc.mode, tc.raw); got != tc.expected {
			t.Errorf("Resolve(%v, %q) = %v, expected %v", tc.mode, tc.raw, got, tc.expected)
		}
	}
}

func TestHelpView(t *testing.T) {
	km := Default()
	h := help.New()

	view := km.HelpView(h, dragon.ModePlaying)
	for _, want := range []string{"space", "flap", "pause"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view %q should mention %q", view, want)
		}
	}
	if len(km.Bindings(dragon.ModeMenu)) != 2 {
		t.Errorf("menu should have 2 bindings, got %d", len(km.Bindings(dragon.ModeMenu)))
	}
}
