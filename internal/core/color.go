package core

// Color is the foreground color of a screen cell. Platforms map it to a
// concrete terminal color.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)
