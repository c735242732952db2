package controls

import (
	"math"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

// DefaultDecayRate is the continuous value lost per 50 ms tick
// (0.25/tick = 5 volume per second).
const DefaultDecayRate = 0.25

// Isotope is the unstable slider: set a value, watch it decay. The
// displayed integer is the floor of a continuous value so emissions
// only fire when the visible number actually changes.
type Isotope struct {
	control.Emitter

	DecayRate float64
	TickEvery time.Duration

	value     float64 // [0, 100], monotonically non-increasing between drags
	displayed int
	width     float64
	height    float64
	dragging  bool
}

func NewIsotope() *Isotope {
	i := &Isotope{
		DecayRate: DefaultDecayRate,
		TickEvery: 50 * time.Millisecond,
	}
	i.Reset()
	return i
}

func (i *Isotope) Name() string { return "isotope" }

func (i *Isotope) Interval() time.Duration { return i.TickEvery }

func (i *Isotope) Reset() {
	i.set(50)
}

func (i *Isotope) Resize(w, h float64) {
	i.width = w
	i.height = h
}

// Pointer maps the x coordinate onto the slider range and sets the
// value directly, restarting the decay from there.
func (i *Isotope) Pointer(ev control.Pointer) {
	switch ev.Kind {
	case control.PointerDown:
		i.dragging = true
		i.grab(ev.Pos.X)
	case control.PointerMove:
		if i.dragging {
			i.grab(ev.Pos.X)
		}
	case control.PointerUp:
		i.dragging = false
	}
}

func (i *Isotope) grab(x float64) {
	if i.width <= 0 {
		return
	}
	i.set(int(math.Round(control.Clamp(x/i.width, 0, 1) * 100)))
}

func (i *Isotope) set(v int) {
	i.value = float64(v)
	i.displayed = v
	i.Emit(v)
}

func (i *Isotope) Tick() {
	if i.value <= 0 {
		return
	}
	i.value = math.Max(0, i.value-i.DecayRate)
	if d := int(math.Floor(i.value)); d != i.displayed {
		i.displayed = d
		i.Emit(d)
	}
}

// Value reports the continuous decaying value for rendering.
func (i *Isotope) Value() float64 { return i.value }
