package controls

import (
	"math"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

const (
	// DefaultMinStrokePoints is the minimum captured points for a
	// stroke to be graded at all.
	DefaultMinStrokePoints = 10

	// Calibration of the perfection curve: near-perfect circles land
	// near 100, lightly wobbly ones stay usable.
	circleScoreScale  = 150.0
	circleScoreOffset = -50.0
)

// Circle grades a hand-drawn stroke by how circular it is: the volume
// is derived from the spread of point radii around the stroke centroid.
type Circle struct {
	control.Emitter

	MinPoints  int
	ClearAfter time.Duration
	TickEvery  time.Duration

	points  []control.Point
	drawing bool
	clearIn int // ticks until the finished stroke is wiped
}

func NewCircle() *Circle {
	return &Circle{
		MinPoints:  DefaultMinStrokePoints,
		ClearAfter: time.Second,
		TickEvery:  16 * time.Millisecond,
	}
}

func (c *Circle) Name() string { return "circle" }

func (c *Circle) Interval() time.Duration { return c.TickEvery }

func (c *Circle) Reset() {
	c.points = c.points[:0]
	c.drawing = false
	c.clearIn = 0
}

func (c *Circle) Resize(w, h float64) {}

func (c *Circle) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		c.points = c.points[:0]
		c.drawing = true
		c.clearIn = 0
		c.points = append(c.points, ev.Pos)
	case control.PointerMove:
		if c.drawing {
			c.points = append(c.points, ev.Pos)
		}
	case control.PointerUp:
		if !c.drawing {
			return
		}
		c.drawing = false
		c.finish()
	}
}

func (c *Circle) finish() {
	if len(c.points) < c.MinPoints {
		// Too short to be a circle attempt; drop it silently.
		c.points = c.points[:0]
		return
	}
	c.Emit(c.grade())
	c.clearIn = int(c.ClearAfter / c.TickEvery)
}

// grade computes 1 - stddev(radii)/mean(radii) over the captured
// stroke, mapped through the calibration curve.
func (c *Circle) grade() int {
	var cx, cy float64
	for _, p := range c.points {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(c.points))
	centroid := control.Point{X: cx / n, Y: cy / n}

	radii := make([]float64, len(c.points))
	var mean float64
	for i, p := range c.points {
		radii[i] = p.Sub(centroid).Len()
		mean += radii[i]
	}
	mean /= n

	if mean == 0 {
		return 0
	}

	var variance float64
	for _, r := range radii {
		d := r - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / n)

	perfection := 1 - stddev/mean
	return int(math.Round(perfection*circleScoreScale + circleScoreOffset))
}

func (c *Circle) Tick() {
	if c.clearIn <= 0 {
		return
	}
	c.clearIn--
	if c.clearIn == 0 {
		c.points = c.points[:0]
	}
}

// Stroke reports the captured points for rendering.
func (c *Circle) Stroke() []control.Point { return c.points }

// Drawing reports whether a stroke is being captured.
func (c *Circle) Drawing() bool { return c.drawing }
