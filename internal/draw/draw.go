// Package draw renders to ANSI terminals using half-block characters.
package draw

import (
	"fmt"
	"io"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Color is a palette index. The zero value is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorCyan
	ColorBrightCyan
	ColorYellow
	ColorRed
	ColorMagenta
	ColorGreen
	ColorOrange
)

// ColorReset restores the terminal's default attributes.
const ColorReset = "\033[0m"

var palette = [...]string{
	ColorNone:       ColorReset,
	ColorWhite:      "\033[97m",
	ColorGray:       "\033[90m",
	ColorCyan:       "\033[36m",
	ColorBrightCyan: "\033[96m",
	ColorYellow:     "\033[93m",
	ColorRed:        "\033[91m",
	ColorMagenta:    "\033[95m",
	ColorGreen:      "\033[92m",
	ColorOrange:     "\033[38;5;208m",
}

// Code returns the ANSI escape that selects the color.
func (c Color) Code() string {
	if int(c) >= len(palette) {
		return ColorReset
	}
	return palette[c]
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}
