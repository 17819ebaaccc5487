package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for grid elements.
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
	ColorDarkGray
)

// Bright returns the highlighted variant of c, used for the hovered hex.
// Colors without a brighter variant are returned unchanged.
func (c Color) Bright() Color {
	switch c {
	case ColorRed:
		return ColorBrightRed
	case ColorGreen:
		return ColorBrightGreen
	case ColorYellow, ColorOrange:
		return ColorBrightYellow
	case ColorBlue:
		return ColorBrightBlue
	case ColorMagenta:
		return ColorBrightMagenta
	case ColorCyan:
		return ColorBrightCyan
	case ColorWhite, ColorGray:
		return ColorBrightWhite
	case ColorDarkGray:
		return ColorGray
	default:
		return c
	}
}
