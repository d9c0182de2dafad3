// Package render rasterizes a world frame into a pixel canvas and converts
// the canvas into terminal cells. It has no terminal library dependency;
// platform/tui styles the resulting core.Screen.
package render

import "github.com/vovakirdan/tilewalk/internal/core"

// Canvas is a fixed-size pixel buffer in viewport space.
type Canvas struct {
	width  int
	height int
	pix    []core.RGB
}

// NewCanvas creates a canvas filled with black.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]core.RGB, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg core.RGB) {
	for i := range c.pix {
		c.pix[i] = bg
	}
}

// Set writes a pixel. Out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, rgb core.RGB) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = rgb
}

// At returns a pixel. Out-of-bounds reads return black.
func (c *Canvas) At(x, y int) core.RGB {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.ColorBlack
	}
	return c.pix[y*c.width+x]
}

// FillRect fills r clipped to the canvas.
func (c *Canvas) FillRect(r core.Rect, rgb core.RGB) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), c.width), min(r.Bottom(), c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.pix[y*c.width+x] = rgb
		}
	}
}

// HalfBlock is the upper half block. Its foreground is the top pixel and its
// background the bottom pixel, so one cell shows two vertical pixels.
const HalfBlock = '▀'

// ToScreen writes the canvas into dst starting at row top, two pixel rows
// per cell row. Cells outside dst are dropped and an odd last pixel row is
// paired with bg.
func (c *Canvas) ToScreen(dst *core.Screen, top int, bg core.RGB) {
	for cy := 0; cy*2 < c.height; cy++ {
		for x := 0; x < c.width; x++ {
			upper := c.At(x, cy*2)
			lower := bg
			if cy*2+1 < c.height {
				lower = c.At(x, cy*2+1)
			}
			dst.SetCell(x, top+cy, core.Cell{Rune: HalfBlock, Fg: upper, Bg: lower})
		}
	}
}

// Rows returns how many screen rows ToScreen uses.
func (c *Canvas) Rows() int {
	return (c.height + 1) / 2
}
