package controls

import (
	"math"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

const (
	DefaultTiltSmoothing  = 0.1
	DefaultTiltGravity    = 0.007
	DefaultTiltFriction   = 0.985
	DefaultTiltBounceLoss = 0.4
)

// Gravity is the tilt-a-bar volume control. Dragging sets a target
// angle; the bar eases toward it while a ball rolls along the bar under
// gravity. The resting ball position, not the tilt, decides the volume.
type Gravity struct {
	control.Emitter

	Smoothing  float64
	G          float64
	Friction   float64
	BounceLoss float64
	TickEvery  time.Duration

	angle    float64 // wrapped to [-π, π]
	target   float64
	pos      float64 // ball position along the bar, [-1, 1]
	vel      float64
	dragging bool
	width    float64
	height   float64
}

func NewGravity() *Gravity {
	g := &Gravity{
		Smoothing:  DefaultTiltSmoothing,
		G:          DefaultTiltGravity,
		Friction:   DefaultTiltFriction,
		BounceLoss: DefaultTiltBounceLoss,
		TickEvery:  16 * time.Millisecond,
	}
	g.Reset()
	return g
}

func (g *Gravity) Name() string { return "gravity" }

func (g *Gravity) Interval() time.Duration { return g.TickEvery }

func (g *Gravity) Reset() {
	g.angle = 0
	g.target = 0
	g.pos = 0
	g.vel = 0
	g.dragging = false
	g.Emit(50)
}

func (g *Gravity) Resize(w, h float64) {
	g.width = w
	g.height = h
}

func (g *Gravity) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		g.dragging = true
		g.aim(ev.Pos)
	case control.PointerMove:
		if g.dragging {
			g.aim(ev.Pos)
		}
	case control.PointerUp:
		g.dragging = false
	}
}

func (g *Gravity) aim(p control.Point) {
	dx := p.X - g.width/2
	dy := p.Y - g.height/2
	if dx == 0 && dy == 0 {
		return
	}
	g.target = math.Atan2(dy, dx)
}

func (g *Gravity) Tick() {
	// Ease the bar toward the target angle along the shortest arc.
	delta := control.WrapAngle(g.target - g.angle)
	g.angle = control.WrapAngle(g.angle + delta*g.Smoothing)

	g.vel += g.G * math.Sin(g.angle)
	g.vel *= g.Friction
	g.pos += g.vel

	if g.pos > 1 {
		g.pos = 1
		g.vel *= -g.BounceLoss
	} else if g.pos < -1 {
		g.pos = -1
		g.vel *= -g.BounceLoss
	}

	g.Emit(int(math.Round(50 * (1 - g.pos))))
}

// Angle reports the current bar angle for rendering.
func (g *Gravity) Angle() float64 { return g.angle }

// Ball reports the ball position along the bar, in [-1, 1].
func (g *Gravity) Ball() float64 { return g.pos }
