package control

import "math"

// Point is a position in widget coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Vec { return Vec{p.X - q.X, p.Y - q.Y} }

func (p Point) Add(v Vec) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Vec is a 2D displacement or velocity.
type Vec struct {
	X, Y float64
}

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps a to the principal range [-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
