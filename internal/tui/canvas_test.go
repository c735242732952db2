package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/unvolume/internal/control"
)

func TestCanvasDimensions(t *testing.T) {
	c := newCanvas(10, 5)
	if c.width() != 20 || c.height() != 20 {
		t.Fatalf("dot space = %vx%v, want 20x20", c.width(), c.height())
	}
	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d rows, want 5", len(lines))
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 10 {
			t.Errorf("row %d has %d cells, want 10", i, got)
		}
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := newCanvas(4, 4)
	c.set(-1, 0)
	c.set(0, -1)
	c.set(8, 0)
	c.set(0, 16)
	for i, r := range c.grid {
		if r != 0x2800 {
			t.Fatalf("cell %d modified by out-of-bounds set", i)
		}
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 0, 3, 15, 3},
		{"vertical", 4, 0, 4, 15},
		{"diagonal", 0, 0, 15, 15},
		{"steep", 2, 1, 3, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCanvas(8, 4)
			c.line(tc.x0, tc.y0, tc.x1, tc.y1)
			if !c.dotSet(tc.x0, tc.y0) {
				t.Errorf("start dot (%d,%d) not set", tc.x0, tc.y0)
			}
			if !c.dotSet(tc.x1, tc.y1) {
				t.Errorf("end dot (%d,%d) not set", tc.x1, tc.y1)
			}
		})
	}
}

func TestCanvasDiscCoversCenter(t *testing.T) {
	c := newCanvas(8, 4)
	c.disc(control.Point{X: 8, Y: 8}, 2)
	if !c.dotSet(8, 8) {
		t.Error("disc center not set")
	}
	if c.dotSet(8, 12) {
		t.Error("dot outside radius set")
	}
}

func TestCanvasClear(t *testing.T) {
	c := newCanvas(4, 4)
	c.line(0, 0, 7, 15)
	c.clear()
	for i, r := range c.grid {
		if r != 0x2800 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

// dotSet reports whether a single dot is lit, test helper only.
func (c *canvas) dotSet(x, y int) bool {
	col, row := x/2, y/4
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return false
	}
	return c.grid[row*c.cols+col]&dotMask[y%4][x%2] != 0
}
