package draw

import (
	"math"

	"github.com/tomz197/skyraid/internal/assets"
)

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// A pixel value of 0 means empty.
type Canvas struct {
	termWidth      int            // Terminal columns covered by the canvas
	termHeight     int            // Terminal rows covered by the canvas
	subPixelHeight int            // termHeight * 2
	pixels         []assets.Color // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight
}

// NewCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]assets.Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, color assets.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// FillRect fills the logical rectangle with top-left (x, y). Anything that
// covers less than a pixel still sets the pixel under its center.
func (c *Canvas) FillRect(x, y, w, h float64, color assets.Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x0 = int((x + w/2) * c.scaleX)
		x1 = x0
	}
	if y1 < y0 {
		y0 = int((y + h/2) * c.scaleY)
		y1 = y0
	}

	x0, x1 = max(x0, 0), min(x1, c.termWidth-1)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight-1)
	for py := y0; py <= y1; py++ {
		row := c.pixels[py*c.termWidth:]
		for px := x0; px <= x1; px++ {
			row[px] = color
		}
	}
}

// Cell returns the half-block character and colors for the terminal cell at
// (col, row), both 0-based. bg is 0 when the cell has no background.
func (c *Canvas) Cell(col, row int) (ch rune, fg, bg assets.Color) {
	top := c.pixels[row*2*c.termWidth+col]
	var bottom assets.Color
	if row*2+1 < c.subPixelHeight {
		bottom = c.pixels[(row*2+1)*c.termWidth+col]
	}

	switch {
	case top == 0 && bottom == 0:
		return BlockEmpty, 0, 0
	case top == bottom:
		return BlockFull, top, 0
	case bottom == 0:
		return BlockUpperHalf, top, 0
	case top == 0:
		return BlockLowerHalf, bottom, 0
	default:
		return BlockUpperHalf, top, bottom
	}
}

// LogicalToTerminal converts logical coordinates to a 0-based terminal cell (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px, py / 2
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
