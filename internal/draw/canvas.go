package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// cell is what one terminal character shows.
type cell struct {
	ch    rune
	color Color
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game code draws in logical coordinates; the canvas scales them
// to the terminal.
//
// Render only emits cells that changed since the previous frame. Text written
// over the canvas must be reported with MarkTextDirty so it gets cleaned up.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // [y * termWidth + x], ColorNone if unset

	prev  []cell // What the terminal currently shows
	dirty []bool // Cells overwritten by text since the last render
	force bool   // Redraw every cell on the next render

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas that maps the logical rectangle
// logicalWidth x logicalHeight onto termWidth x termHeight characters.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.force = true
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.force = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.force = true
}

// MarkTextDirty records that text was written over n cells starting at the
// 1-based (col, row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.dirty[y*c.termWidth+x] = true
		}
	}
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// SetFloat sets the pixel under a logical point.
func (c *Canvas) SetFloat(x, y float64, color Color) {
	c.setPixel(int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY)), color)
}

// FillRect fills a logical rectangle. Anything that covers part of a pixel
// lights it, so small entities never vanish at low resolutions.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.termWidth-1), min(y1, c.subPixelHeight-1)

	for py := y0; py <= y1; py++ {
		row := c.pixels[py*c.termWidth:]
		for px := x0; px <= x1; px++ {
			row[px] = color
		}
	}
}

// StrokeRect draws the outline of a logical rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64, color Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	for px := x0; px <= x1; px++ {
		c.setPixel(px, y0, color)
		c.setPixel(px, y1, color)
	}
	for py := y0; py <= y1; py++ {
		c.setPixel(x0, py, color)
		c.setPixel(x1, py, color)
	}
}

// cellAt combines the two sub-pixels of a terminal cell. The top pixel's
// color wins when both are set.
func (c *Canvas) cellAt(col, row int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	var bottom Color
	if row*2+1 < c.subPixelHeight {
		bottom = c.pixels[(row*2+1)*c.termWidth+col]
	}
	switch {
	case top != ColorNone && bottom != ColorNone:
		return cell{BlockFull, top}
	case top != ColorNone:
		return cell{BlockUpperHalf, top}
	case bottom != ColorNone:
		return cell{BlockLowerHalf, bottom}
	default:
		return cell{BlockEmpty, ColorNone}
	}
}

// Render writes the cells that changed since the last call.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	current := ColorNone

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			i := row*c.termWidth + col
			next := c.cellAt(col, row)
			if !c.force && !c.dirty[i] && c.prev[i] == next {
				continue
			}
			c.prev[i] = next
			c.dirty[i] = false

			if next.color != current {
				c.renderBuf.WriteString(next.color.Code())
				current = next.color
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, next.ch)
		}
	}
	if current != ColorNone {
		c.renderBuf.WriteString(ColorReset)
	}
	c.force = false

	io.WriteString(w, c.renderBuf.String())
}

// RenderBorder draws a box around the canvas area when the terminal is
// larger than the render area. Sides are only drawn where there is room.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the render area's column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area's row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based (col, row)
// inside the render area, for placing text next to drawn entities.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
