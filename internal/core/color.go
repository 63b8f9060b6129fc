package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// brickPalette cycles red, orange, yellow, green, sky and violet.
var brickPalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
}

// BrickColor returns the palette color for a brick at (col, row).
func BrickColor(col, row int) Color {
	i := (col + row) % len(brickPalette)
	if i < 0 {
		i += len(brickPalette)
	}
	return brickPalette[i]
}
