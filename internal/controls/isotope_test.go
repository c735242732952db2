package controls

import (
	"testing"

	"github.com/san-kum/unvolume/internal/control"
)

func TestIsotopeDecaysToZeroAndStays(t *testing.T) {
	i := NewIsotope()

	// 50 / (0.25 per tick) = 200 ticks to empty.
	for n := 0; n < 200; n++ {
		i.Tick()
	}
	if i.Value() != 0 {
		t.Errorf("value after 200 ticks = %v, want 0", i.Value())
	}

	for n := 0; n < 100; n++ {
		i.Tick()
		if i.Value() < 0 {
			t.Fatalf("value went negative: %v", i.Value())
		}
	}
	if i.Volume() != 0 {
		t.Errorf("volume = %d, want 0", i.Volume())
	}
}

func TestIsotopeEmitsOnlyOnDisplayChange(t *testing.T) {
	i := NewIsotope()

	var emissions []int
	i.SetSink(func(v int) { emissions = append(emissions, v) })

	// 8 ticks of 0.25 decay from 50: the displayed floor passes through
	// 49 and 48 only.
	for n := 0; n < 8; n++ {
		i.Tick()
	}
	if len(emissions) != 2 || emissions[0] != 49 || emissions[1] != 48 {
		t.Errorf("emissions = %v, want [49 48]", emissions)
	}
}

func TestIsotopeDragSetsValueImmediately(t *testing.T) {
	i := NewIsotope()
	i.Resize(200, 40)

	var got int
	i.SetSink(func(v int) { got = v })
	i.Pointer(control.Pointer{Kind: control.PointerDown, Pos: control.Point{X: 150, Y: 20}})

	if got != 75 {
		t.Errorf("drag to 3/4 emitted %d, want 75", got)
	}
	if i.Value() != 75 {
		t.Errorf("value = %v, want 75", i.Value())
	}

	// Decay resumes from the dragged value.
	i.Pointer(control.Pointer{Kind: control.PointerUp, Pos: control.Point{X: 150, Y: 20}})
	for n := 0; n < 4; n++ {
		i.Tick()
	}
	if got != 74 {
		t.Errorf("after 4 ticks volume = %d, want 74", got)
	}
}
