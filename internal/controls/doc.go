// Package controls implements the volume widgets themselves.
//
// Each widget is a state struct plus a deterministic transition driven by
// [control.Control]'s Tick and Pointer entry points:
//
//   - [Gravity]: tilt a bar, the resting ball position is the volume
//   - [ColorMatch]: chase a drifting target color with RGB channels
//   - [Slingshot]: pull back and fling, pull distance is the volume
//   - [Isotope]: a slider whose value decays while you watch
//   - [Circle]: draw a circle, roundness is the volume
//   - [Bounce]: fling a ball, bounces are the volume
//   - [Memory]: match card pairs, progress is the volume
//
// Widgets that need randomness take a *rand.Rand so runs are
// reproducible under a fixed seed.
package controls
