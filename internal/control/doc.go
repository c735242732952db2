// Package control provides the core primitives shared by every volume
// control: 2D geometry, pointer events, the [Control] contract, and the
// volume emission path.
//
// A control is a small synchronous state machine. It advances only from
// two entry points: [Control.Tick], invoked by the shell at the control's
// declared interval, and [Control.Pointer], invoked on discrete pointer
// events. Neither blocks; both are safe to drive from a test loop with no
// timer at all.
//
//	tilt := controls.NewGravity(rng)
//	tilt.SetSink(func(v int) { fmt.Println("volume", v) })
//	tilt.Pointer(control.Pointer{Kind: control.PointerDown, Pos: p})
//	tilt.Tick()
//
// # Thread Safety
//
// Controls are NOT thread-safe. The shell owns each instance and drives
// it from a single event loop.
package control
