package controls

import (
	"math"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

const (
	DefaultBounceGravity     = 0.5
	DefaultBounceRestitution = 0.8
	DefaultFlingScale        = 0.2

	// DefaultBounceThreshold is the minimum reflected speed for a
	// contact to count as a bounce; softer contacts are noise.
	DefaultBounceThreshold = 1.5

	// DefaultRestSpeed is the speed below which a ball near the floor
	// stops animating.
	DefaultRestSpeed = 0.1

	bounceFloorSlop = 1.0
	flingWindow     = 5
)

// Bounce is the fling-a-ball volume control: the volume is the number
// of wall contacts hard enough to count, capped at 100.
type Bounce struct {
	control.Emitter

	Gravity     float64
	Restitution float64
	FlingScale  float64
	Threshold   float64
	RestSpeed   float64
	TickEvery   time.Duration

	width     float64
	height    float64
	pos       control.Point
	vel       control.Vec
	bounces   int
	animating bool
	tracking  bool
	samples   []control.Point // rolling window of recent pointer positions
}

func NewBounce() *Bounce {
	return &Bounce{
		Gravity:     DefaultBounceGravity,
		Restitution: DefaultBounceRestitution,
		FlingScale:  DefaultFlingScale,
		Threshold:   DefaultBounceThreshold,
		RestSpeed:   DefaultRestSpeed,
		TickEvery:   16 * time.Millisecond,
		samples:     make([]control.Point, 0, flingWindow),
	}
}

func (b *Bounce) Name() string { return "bounce" }

func (b *Bounce) Interval() time.Duration { return b.TickEvery }

func (b *Bounce) Reset() {
	b.animating = false
	b.tracking = false
	b.vel = control.Vec{}
	b.bounces = 0
	b.samples = b.samples[:0]
	b.Emit(0)
}

func (b *Bounce) Resize(w, h float64) {
	b.width = w
	b.height = h
	b.pos.X = control.Clamp(b.pos.X, 0, w)
	b.pos.Y = control.Clamp(b.pos.Y, 0, h)
}

func (b *Bounce) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		// Grabbing the ball zeroes everything, including the score.
		b.animating = false
		b.vel = control.Vec{}
		b.bounces = 0
		b.Emit(0)
		b.tracking = true
		b.samples = append(b.samples[:0], ev.Pos)
		b.pos = ev.Pos
	case control.PointerMove:
		if !b.tracking {
			return
		}
		b.pos = ev.Pos
		if len(b.samples) == flingWindow {
			copy(b.samples, b.samples[1:])
			b.samples[flingWindow-1] = ev.Pos
		} else {
			b.samples = append(b.samples, ev.Pos)
		}
	case control.PointerUp:
		if !b.tracking {
			return
		}
		b.tracking = false
		if len(b.samples) >= 2 {
			oldest := b.samples[0]
			newest := b.samples[len(b.samples)-1]
			b.vel = newest.Sub(oldest).Scale(b.FlingScale)
		}
		b.animating = true
	}
}

func (b *Bounce) Tick() {
	if !b.animating {
		return
	}

	b.vel.Y += b.Gravity
	b.pos = b.pos.Add(b.vel)

	if b.pos.X < 0 {
		b.pos.X = 0
		b.contact(&b.vel.X)
	} else if b.pos.X > b.width {
		b.pos.X = b.width
		b.contact(&b.vel.X)
	}
	if b.pos.Y < 0 {
		b.pos.Y = 0
		b.contact(&b.vel.Y)
	} else if b.pos.Y > b.height {
		b.pos.Y = b.height
		b.contact(&b.vel.Y)
		// A reflected speed the next gravity step would swallow means
		// the ball is grounded, not bouncing; kill it or it chatters
		// at the floor forever.
		if math.Abs(b.vel.Y) < b.Gravity {
			b.vel.Y = 0
		}
	}

	if b.vel.Len() < b.RestSpeed && b.pos.Y > b.height-bounceFloorSlop {
		b.animating = false
		b.vel = control.Vec{}
	}
}

// contact reflects one velocity component and scores the bounce when
// the reflected component is above the noise threshold.
func (b *Bounce) contact(v *float64) {
	if math.Abs(*v) > b.Threshold {
		b.bounces++
		b.Emit(b.bounces) // Emit caps at VolumeMax
	}
	*v *= -b.Restitution
}

// Pos reports the ball position for rendering.
func (b *Bounce) Pos() control.Point { return b.pos }

// Animating reports whether the ball is in flight.
func (b *Bounce) Animating() bool { return b.animating }

// Bounces reports the scored bounce count.
func (b *Bounce) Bounces() int { return b.bounces }
