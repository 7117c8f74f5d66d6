package viz

import "strings"

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot grid. Dot coordinates run from (0, 0) at the top
// left to (2*Width-1, 4*Height-1).
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = blank
		}
	}
}

// Set turns on one dot; out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

// Project maps world coordinates onto dots so that [-scale, scale] spans
// the shorter canvas side, centred on the origin. ok is false when the
// point falls outside the canvas.
func (c *Canvas) Project(x, y, scale float64) (px, py int, ok bool) {
	w, h := c.Width*2, c.Height*4
	half := w / 2
	if h/2 < half {
		half = h / 2
	}
	px = w/2 + int(x/scale*float64(half))
	py = h/2 - int(y/scale*float64(half))
	return px, py, px >= 0 && py >= 0 && px < w && py < h
}

// Marker draws a 2x2 block around a dot.
func (c *Canvas) Marker(x, y int) {
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
