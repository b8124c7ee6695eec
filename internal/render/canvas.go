package render

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

type cell struct {
	r  rune
	fg color.RGBA
}

// Canvas is one frame of the screen. Anything written past the edges is
// dropped and counted, so a layout can be checked for overflow.
// Every rune takes one cell. The clef and notehead glyphs are ambiguous
// width and some terminals draw them two columns wide, so layouts keep the
// last column free to absorb that.
type Canvas struct {
	width, height int
	cells         []cell
	clipped       int
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	c.clipped = 0
}

// Put writes s starting at a zero based row and column
func (c *Canvas) Put(row, col int, s string, fg color.RGBA) {
	for _, r := range s {
		if row < 0 || row >= c.height || col < 0 || col >= c.width {
			c.clipped++
		} else {
			c.cells[row*c.width+col] = cell{r: r, fg: fg}
		}
		col++
	}
}

// Clipped is the number of runes written outside the canvas since Clear
func (c *Canvas) Clipped() int {
	return c.clipped
}

// Line returns the text of a row without colors or trailing spaces
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row*c.width : (row+1)*c.width] {
		b.WriteRune(cl.r)
	}
	return strings.TrimRight(b.String(), " ")
}

// Find the first row and column holding s
func (c *Canvas) Find(s string) (int, int, bool) {
	for row := 0; row < c.height; row++ {
		line := c.Line(row)
		if idx := strings.Index(line, s); idx >= 0 {
			return row, utf8.RuneCountInString(line[:idx]), true
		}
	}
	return 0, 0, false
}

func (c *Canvas) At(row, col int) (rune, color.RGBA) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0, color.RGBA{}
	}
	cl := c.cells[row*c.width+col]
	return cl.r, cl.fg
}
