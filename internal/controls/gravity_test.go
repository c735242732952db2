package controls

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/unvolume/internal/control"
)

func TestGravityInitialVolume(t *testing.T) {
	g := NewGravity()
	if g.Volume() != 50 {
		t.Errorf("initial volume = %d, want 50", g.Volume())
	}
}

func TestGravityBallStaysBounded(t *testing.T) {
	g := NewGravity()
	g.Resize(400, 300)
	rng := rand.New(rand.NewSource(7))

	// Random slam-dragging for a while must never push the ball off
	// the bar.
	for i := 0; i < 5000; i++ {
		if i%17 == 0 {
			p := control.Point{X: rng.Float64() * 400, Y: rng.Float64() * 300}
			g.Pointer(control.Pointer{Kind: control.PointerDown, Pos: p})
			g.Pointer(control.Pointer{Kind: control.PointerUp, Pos: p})
		}
		g.Tick()

		if pos := g.Ball(); pos < -1 || pos > 1 {
			t.Fatalf("tick %d: ball position %v outside [-1,1]", i, pos)
		}
		if v := g.Volume(); v < 0 || v > 100 {
			t.Fatalf("tick %d: volume %d outside [0,100]", i, v)
		}
	}
}

func TestGravityAngleWrapped(t *testing.T) {
	g := NewGravity()
	g.Resize(100, 100)

	// Drag to the far left so the target sits near ±π, then tick
	// through the wrap boundary.
	g.Pointer(control.Pointer{Kind: control.PointerDown, Pos: control.Point{X: 0, Y: 49}})
	for i := 0; i < 200; i++ {
		g.Tick()
		if a := g.Angle(); a < -math.Pi || a > math.Pi {
			t.Fatalf("tick %d: angle %v outside [-π,π]", i, a)
		}
	}
}

func TestGravityVolumeFromRest(t *testing.T) {
	g := NewGravity()
	g.Resize(400, 300)

	// Tilt hard right: the ball rolls to pos=+1 and the volume settles
	// at 50*(1-1)=0... but the bar keeps easing, so just require the
	// settled value to track the formula.
	g.Pointer(control.Pointer{Kind: control.PointerDown, Pos: control.Point{X: 300, Y: 151}})
	g.Pointer(control.Pointer{Kind: control.PointerUp, Pos: control.Point{X: 300, Y: 151}})
	for i := 0; i < 3000; i++ {
		g.Tick()
	}

	want := control.ClampInt(int(math.Round(50*(1-g.Ball()))), 0, 100)
	if g.Volume() != want {
		t.Errorf("volume = %d, want %d for ball %v", g.Volume(), want, g.Ball())
	}
	if g.Volume() > 5 {
		t.Errorf("volume = %d after settling right, want near 0", g.Volume())
	}
}

func TestGravityResetEmits50(t *testing.T) {
	g := NewGravity()
	g.Resize(400, 300)
	for i := 0; i < 100; i++ {
		g.Tick()
	}

	var got int
	g.SetSink(func(v int) { got = v })
	g.Reset()
	if got != 50 {
		t.Errorf("reset emitted %d, want 50", got)
	}
}
