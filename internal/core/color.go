package core

// Color is the foreground color of a screen cell.
// Hosts map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBrightWhite
)
