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
	ColorPink
)

// towerPalette is the repeating color sequence for stacked layers.
var towerPalette = []Color{
	ColorPink,
	ColorMagenta,
	ColorBrightMagenta,
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
}

// PaletteColor returns the palette color for layer i. Negative indexes wrap.
func PaletteColor(i int) Color {
	n := len(towerPalette)
	return towerPalette[((i%n)+n)%n]
}
