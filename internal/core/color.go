package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorOf returns the color used for an ASCII-art character.
// The art only carries shape, so color is derived from the glyph class:
// borders are gray, pipe bodies green, the bird yellow and text white.
func ColorOf(ch rune) Color {
	switch ch {
	case '+', '-', '|', '=':
		return ColorGray
	case '#', '[', ']':
		return ColorGreen
	case ':', ';':
		return ColorBrightGreen
	case '>', '<', 'v', '^', 'o', '\\', '/':
		return ColorBrightYellow
	case '*', '~':
		return ColorOrange
	case '.', '\'', '`', ',':
		return ColorCyan
	}
	if ch >= '0' && ch <= '9' || ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' {
		return ColorBrightWhite
	}
	return ColorDefault
}
