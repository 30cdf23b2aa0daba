package core

// Color is an index into the 256-entry VGA palette.
// ColorDefault leaves the terminal's own color in place when rendering cells.
type Color int16

// ColorDefault means "no color": the platform keeps the terminal default.
const ColorDefault Color = -1

// The first sixteen palette entries follow the EGA ordering.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// ColorInvalid is substituted for indices outside the palette.
const ColorInvalid Color = 201

// Valid reports whether c addresses a palette entry.
func (c Color) Valid() bool {
	return c >= 0 && c <= 255
}
