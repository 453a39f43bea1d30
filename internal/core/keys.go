package core

// Key is a symbolic key code, abstracted from physical key presses.
// Drivers translate raw terminal keys into these using per-mode bindings.
type Key int

const (
	KeyNone      Key = iota
	KeyPlay          // Start a run from the menu, or play again after a crash
	KeyQuit          // Exit the program from any mode
	KeyBoost         // Flap upward
	KeyMoveLeft      // Shift the entity one column left
	KeyMoveRight     // Shift the entity one column right
	KeyPause         // Freeze the current run
	KeyContinue      // Resume a paused run
	KeyRestart       // Start over from the pause screen
	KeyBack          // Return to the menu
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyPlay:
		return "Play"
	case KeyQuit:
		return "Quit"
	case KeyBoost:
		return "Boost"
	case KeyMoveLeft:
		return "MoveLeft"
	case KeyMoveRight:
		return "MoveRight"
	case KeyPause:
		return "Pause"
	case KeyContinue:
		return "Continue"
	case KeyRestart:
		return "Restart"
	case KeyBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Frame is everything the driver hands to the game for one rendered frame:
// at most one discrete key press and the time elapsed since the previous frame.
type Frame struct {
	Key       Key     // KeyNone when nothing was pressed
	ElapsedMs float64 // Milliseconds since the last frame, monotonic
}

// HasKey reports whether a key press arrived this frame.
func (f Frame) HasKey() bool {
	return f.Key != KeyNone
}
