package controls

import (
	"math"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

const (
	DefaultLaunchStrength = 0.15
	DefaultSlingGravity   = 0.1
	DefaultSlingBounce    = 0.85
	DefaultMaxPull        = 200.0

	// slingRestSpeed is the speed below which a projectile near the
	// floor is considered landed.
	slingRestSpeed = 0.5
	slingFloorSlop = 1.0
)

// Slingshot is the pull-and-fling volume control. The pullback length
// at release sets the volume once; the projectile flight afterwards is
// pure spectacle.
type Slingshot struct {
	control.Emitter

	LaunchStrength float64
	Gravity        float64
	Restitution    float64
	MaxPull        float64
	TickEvery      time.Duration

	width    float64
	height   float64
	anchor   control.Point
	drag     control.Point
	pos      control.Point
	vel      control.Vec
	dragging bool
	firing   bool
}

func NewSlingshot() *Slingshot {
	s := &Slingshot{
		LaunchStrength: DefaultLaunchStrength,
		Gravity:        DefaultSlingGravity,
		Restitution:    DefaultSlingBounce,
		MaxPull:        DefaultMaxPull,
		TickEvery:      16 * time.Millisecond,
	}
	s.Reset()
	return s
}

func (s *Slingshot) Name() string { return "slingshot" }

func (s *Slingshot) Interval() time.Duration { return s.TickEvery }

func (s *Slingshot) Reset() {
	s.dragging = false
	s.firing = false
	s.pos = s.anchor
	s.vel = control.Vec{}
}

func (s *Slingshot) Resize(w, h float64) {
	s.width = w
	s.height = h
	// Anchor sits at the horizontal center, in the lower third.
	s.anchor = control.Point{X: w / 2, Y: h * 0.75}
	if !s.firing && !s.dragging {
		s.pos = s.anchor
	}
	s.pos.X = control.Clamp(s.pos.X, 0, s.width)
	s.pos.Y = control.Clamp(s.pos.Y, 0, s.height)
}

func (s *Slingshot) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		// A new grab cancels any in-flight projectile.
		s.firing = false
		s.dragging = true
		s.drag = ev.Pos
	case control.PointerMove:
		if s.dragging {
			s.drag = ev.Pos
		}
	case control.PointerUp:
		if !s.dragging {
			return
		}
		s.dragging = false
		s.launch()
	}
}

func (s *Slingshot) launch() {
	pull := s.anchor.Sub(s.drag)
	length := pull.Len()
	if length == 0 {
		return
	}
	s.Emit(int(math.Round(100 * length / s.MaxPull)))
	s.vel = pull.Scale(s.LaunchStrength)
	s.pos = s.anchor
	s.firing = true
}

func (s *Slingshot) Tick() {
	if !s.firing {
		return
	}

	s.vel.Y += s.Gravity
	s.pos = s.pos.Add(s.vel)

	if s.pos.X < 0 {
		s.pos.X = 0
		s.vel.X *= -s.Restitution
	} else if s.pos.X > s.width {
		s.pos.X = s.width
		s.vel.X *= -s.Restitution
	}
	if s.pos.Y < 0 {
		s.pos.Y = 0
		s.vel.Y *= -s.Restitution
	} else if s.pos.Y > s.height {
		s.pos.Y = s.height
		s.vel.Y *= -s.Restitution
	}

	if s.vel.Len() < slingRestSpeed && s.pos.Y > s.height-slingFloorSlop {
		s.firing = false
		s.vel = control.Vec{}
	}
}

// Anchor reports the sling anchor point for rendering.
func (s *Slingshot) Anchor() control.Point { return s.anchor }

// Projectile reports the projectile (or drag handle) position and
// whether a flight is in progress.
func (s *Slingshot) Projectile() (control.Point, bool) {
	if s.dragging {
		return s.drag, false
	}
	return s.pos, s.firing
}

// Dragging reports whether a pull is being captured.
func (s *Slingshot) Dragging() bool { return s.dragging }
