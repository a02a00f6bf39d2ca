// Package canvas provides the bounded character buffer the globe renders
// into. Coordinates are raw pixel units; CharPix gives the assumed pixel
// footprint of one displayed character cell, so the displayable region is
// (width/CharPix.X) x (height/CharPix.Y) cells.
package canvas

import "strings"

// DefaultCharPix approximates monospace glyph proportions.
var DefaultCharPix = CharPix{X: 4, Y: 8}

// CharPix is the pixel footprint of a single character cell.
type CharPix struct {
	X, Y int
}

// Canvas is a mutable rune grid. Size is fixed at construction; resizing
// means building a new Canvas.
type Canvas struct {
	Grid    [][]rune
	CharPix CharPix
	width   int
	height  int
}

// New allocates a width x height canvas of spaces with the default CharPix.
func New(width, height int) *Canvas {
	return NewWithCharPix(width, height, DefaultCharPix)
}

// NewWithCharPix allocates a canvas with an explicit cell footprint.
func NewWithCharPix(width, height int, cp CharPix) *Canvas {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	return &Canvas{Grid: grid, CharPix: cp, width: width, height: height}
}

// Size returns (width, height) in raw pixel units.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear resets every cell to space.
func (c *Canvas) Clear() {
	for y := range c.Grid {
		for x := range c.Grid[y] {
			c.Grid[y][x] = ' '
		}
	}
}

// Set writes ch at column x, row y. Out-of-range coordinates are a silent
// no-op, never an error.
func (c *Canvas) Set(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.Grid[y][x] = ch
}

// String renders the displayable char-cell region, one line per row.
func (c *Canvas) String() string {
	rows := c.height / c.CharPix.Y
	cols := c.width / c.CharPix.X
	var b strings.Builder
	b.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		b.WriteString(string(c.Grid[y][:cols]))
		b.WriteByte('\n')
	}
	return b.String()
}
