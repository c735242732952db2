package controls

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/unvolume/internal/control"
)

// DefaultColorDrift is the per-channel random walk amplitude per tick.
const DefaultColorDrift = 2

// maxRGBDistance is the Euclidean distance between black and white in
// unit RGB space, the worst possible mismatch.
var maxRGBDistance = math.Sqrt(3)

// ColorMatch is the chase-a-color volume control. The target color
// drifts on its own; the volume is how closely the user's mix tracks it.
type ColorMatch struct {
	control.Emitter

	Drift     int
	TickEvery time.Duration

	rng      *rand.Rand
	target   [3]int
	current  [3]int
	width    float64
	height   float64
	dragging bool
	channel  int
}

func NewColorMatch(rng *rand.Rand) *ColorMatch {
	c := &ColorMatch{
		Drift:     DefaultColorDrift,
		TickEvery: 150 * time.Millisecond,
		rng:       rng,
	}
	c.Reset()
	return c
}

func (c *ColorMatch) Name() string { return "color" }

func (c *ColorMatch) Interval() time.Duration { return c.TickEvery }

// Reset starts a fresh challenge: a new target away from the extremes,
// all channels back at the midpoint. Emits once, after both are set.
func (c *ColorMatch) Reset() {
	for i := range c.target {
		c.target[i] = 50 + c.rng.Intn(151)
	}
	c.current = [3]int{128, 128, 128}
	c.Emit(c.similarity())
}

func (c *ColorMatch) Resize(w, h float64) {
	c.width = w
	c.height = h
}

// Tick drifts the target by at most Drift per channel, clamped to the
// byte range, then re-emits the similarity.
func (c *ColorMatch) Tick() {
	span := 2*c.Drift + 1
	for i := range c.target {
		c.target[i] = control.ClampInt(c.target[i]+c.rng.Intn(span)-c.Drift, 0, 255)
	}
	c.Emit(c.similarity())
}

// SetTarget pins the target color directly, bypassing the random walk.
func (c *ColorMatch) SetTarget(r, g, b int) {
	c.target = [3]int{
		control.ClampInt(r, 0, 255),
		control.ClampInt(g, 0, 255),
		control.ClampInt(b, 0, 255),
	}
	c.Emit(c.similarity())
}

// SetChannel sets one RGB channel (0=r, 1=g, 2=b) directly and emits.
func (c *ColorMatch) SetChannel(i, v int) {
	if i < 0 || i > 2 {
		return
	}
	c.current[i] = control.ClampInt(v, 0, 255)
	c.Emit(c.similarity())
}

// Pointer maps the widget area onto three horizontal slider bands: the
// y coordinate picks the channel on press, the x coordinate sets its
// value while dragging.
func (c *ColorMatch) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		if c.height <= 0 {
			return
		}
		band := int(ev.Pos.Y / (c.height / 3))
		c.channel = control.ClampInt(band, 0, 2)
		c.dragging = true
		c.slide(ev.Pos.X)
	case control.PointerMove:
		if c.dragging {
			c.slide(ev.Pos.X)
		}
	case control.PointerUp:
		c.dragging = false
	}
}

func (c *ColorMatch) slide(x float64) {
	if c.width <= 0 {
		return
	}
	c.SetChannel(c.channel, int(math.Round(control.Clamp(x/c.width, 0, 1)*255)))
}

func (c *ColorMatch) similarity() int {
	d := c.TargetColor().DistanceRgb(c.CurrentColor())
	return int(math.Round(100 * (1 - d/maxRGBDistance)))
}

// Target reports the drifting target channels.
func (c *ColorMatch) Target() [3]int { return c.target }

// Current reports the user-mixed channels.
func (c *ColorMatch) Current() [3]int { return c.current }

// TargetColor returns the target as a colorful.Color for rendering.
func (c *ColorMatch) TargetColor() colorful.Color { return byteColor(c.target) }

// CurrentColor returns the mix as a colorful.Color for rendering.
func (c *ColorMatch) CurrentColor() colorful.Color { return byteColor(c.current) }

func byteColor(rgb [3]int) colorful.Color {
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}
}
