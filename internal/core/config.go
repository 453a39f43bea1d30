package core

// RuntimeConfig contains configuration the driver passes to the game at startup.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in cells
	ScreenH  int   // Playfield height in cells
	TickRate int   // Rendered frames per second
	Seed     int64 // RNG seed for obstacle generation
}
