package core

// Color represents a foreground or background color for a screen cell.
// Drivers map these to their own palettes (ANSI codes, tcell colors).
type Color uint8

// Colors used by the game and the drivers' help line.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorNavy
	ColorGray
)

// String returns the color name, mostly for logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorNavy:
		return "navy"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
