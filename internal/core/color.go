package core

// Color is the foreground color of a screen cell. Front ends decide how each
// value is shown; the zero value means "terminal default".
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightGreen
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
