package core

// Color is a foreground color tag for a screen cell or a settled block.
// The zero value means "no color" and doubles as the empty marker on boards.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDim
)

var colorNames = [...]string{
	ColorNone:    "none",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
	ColorDim:     "dim",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ANSI returns the 256-color palette index used by the terminal renderer.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "9"
	case ColorGreen:
		return "10"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "12"
	case ColorMagenta:
		return "13"
	case ColorCyan:
		return "14"
	case ColorWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorDim:
		return "238"
	default:
		return ""
	}
}
