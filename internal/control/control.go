package control

import "time"

// VolumeMax is the upper bound of every emitted volume value.
const VolumeMax = 100

// PointerKind discriminates the three pointer event variants.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Pointer is a discrete pointer event in widget coordinates.
type Pointer struct {
	Kind PointerKind
	Pos  Point
}

// Sink receives emitted integer volume values (0..100). The shell
// subscribes once per control; the control stays ignorant of who is
// listening.
type Sink func(volume int)

// Control is the contract every volume widget satisfies.
type Control interface {
	// Name is the stable identifier used by the CLI and the menu.
	Name() string

	// Interval is the tick period the shell must honor while the
	// control is active.
	Interval() time.Duration

	// Reset restores the control to its initial state. Controls that
	// persist across navigation implement this as the explicit
	// challenge reset.
	Reset()

	// Resize updates the control's bounds. Called on layout changes;
	// in-flight state is clamped, never invalidated.
	Resize(w, h float64)

	// Pointer feeds one pointer event into the state machine.
	Pointer(ev Pointer)

	// Tick advances the simulation by one fixed step.
	Tick()

	// Volume reports the most recently emitted value.
	Volume() int

	// SetSink registers the single volume listener.
	SetSink(s Sink)
}

// Emitter implements the output side of [Control]. Simulators embed it
// and call Emit; the last value is retained for pull-style readers.
type Emitter struct {
	sink   Sink
	volume int
}

func (e *Emitter) SetSink(s Sink) { e.sink = s }

func (e *Emitter) Volume() int { return e.volume }

// Emit clamps v to [0, VolumeMax], records it, and notifies the sink.
func (e *Emitter) Emit(v int) {
	v = ClampInt(v, 0, VolumeMax)
	e.volume = v
	if e.sink != nil {
		e.sink(v)
	}
}
