package tui

import (
	"math"
	"strings"

	"github.com/san-kum/unvolume/internal/control"
)

// Braille cells pack 2x4 dots, so a w x h cell canvas gives a drawing
// surface of 2w x 4h. Widget coordinates map 1:1 onto those dots.
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	cols, rows int
	grid       []rune
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, grid: make([]rune, cols*rows)}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for i := range c.grid {
		c.grid[i] = 0x2800
	}
}

// width and height report the dot-space dimensions, which are also the
// widget coordinate space handed to controls via Resize.
func (c *canvas) width() float64  { return float64(c.cols * 2) }
func (c *canvas) height() float64 { return float64(c.rows * 4) }

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.grid[row*c.cols+col] |= dotMask[y%4][x%2]
}

func (c *canvas) plot(p control.Point) {
	c.set(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// line draws with Bresenham in dot space.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// disc fills a small circle, used for balls and projectiles.
func (c *canvas) disc(center control.Point, r float64) {
	cx, cy := int(math.Round(center.X)), int(math.Round(center.Y))
	ri := int(math.Ceil(r))
	for y := -ri; y <= ri; y++ {
		for x := -ri; x <= ri; x++ {
			if float64(x*x+y*y) <= r*r {
				c.set(cx+x, cy+y)
			}
		}
	}
}

// border traces the canvas edge so the play area reads as a box.
func (c *canvas) border() {
	w, h := c.cols*2-1, c.rows*4-1
	c.line(0, 0, w, 0)
	c.line(0, h, w, h)
	c.line(0, 0, 0, h)
	c.line(w, 0, w, h)
}

func (c *canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		b.WriteString(string(c.grid[row*c.cols : (row+1)*c.cols]))
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
