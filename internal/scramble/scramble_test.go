package scramble

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestLabel(text string) *Label {
	return New(text, 40*time.Millisecond, rand.New(rand.NewSource(1)))
}

func TestLabelStartsScrambled(t *testing.T) {
	l := newTestLabel("GRAVITY SLIDER")

	if l.Revealing() || l.Revealed() {
		t.Error("new label should be in the scrambled state")
	}
	if len(l.Text()) == 0 {
		t.Fatal("scrambled text is empty")
	}
	for _, r := range l.Text() {
		if !strings.ContainsRune(DefaultCharset, r) {
			t.Errorf("scrambled rune %c not in charset", r)
		}
	}
}

func TestLabelRevealProgression(t *testing.T) {
	text := "VOLUME"
	l := newTestLabel(text)
	l.StartReveal()

	for i := 1; i <= len(text); i++ {
		l.Tick()
		if got := l.Text()[:i]; got != text[:i] {
			t.Fatalf("after %d ticks prefix = %q, want %q", i, got, text[:i])
		}
	}
	if !l.Revealed() {
		t.Error("label not revealed after one tick per character")
	}
	if l.Text() != text {
		t.Errorf("final text = %q, want %q", l.Text(), text)
	}

	// Further ticks are harmless.
	l.Tick()
	if l.Text() != text {
		t.Errorf("text changed after reveal finished: %q", l.Text())
	}
}

func TestLabelStartRevealIdempotent(t *testing.T) {
	l := newTestLabel("ISOTOPE")
	l.StartReveal()
	l.Tick()
	l.Tick()

	l.StartReveal() // mid-reveal: must not restart
	if got := l.Text()[:2]; got != "IS" {
		t.Errorf("prefix lost after redundant StartReveal: %q", l.Text())
	}
}

func TestLabelResetScramble(t *testing.T) {
	text := "SLINGSHOT"
	l := newTestLabel(text)
	l.StartReveal()
	for i := 0; i < 4; i++ {
		l.Tick()
	}

	l.ResetScramble()
	if l.Revealing() || l.Revealed() {
		t.Error("reset label should be fully scrambled")
	}
	// Ticking a scrambled label does nothing.
	before := l.Text()
	l.Tick()
	if l.Text() != before {
		t.Error("scrambled label animated without StartReveal")
	}
}

func TestLabelSetTextRescrambles(t *testing.T) {
	l := newTestLabel("OLD")
	l.StartReveal()
	for i := 0; i < 3; i++ {
		l.Tick()
	}

	l.SetText("BRAND NEW")
	if l.Revealed() || l.Revealing() {
		t.Error("SetText should return to the scrambled state")
	}
	if len(l.Text()) != len("BRAND NEW") {
		t.Errorf("scrambled length = %d, want %d", len(l.Text()), len("BRAND NEW"))
	}
}

func TestLabelEmptyText(t *testing.T) {
	l := newTestLabel("")
	l.StartReveal() // no-op on empty text
	if l.Revealing() {
		t.Error("empty label must not animate")
	}
	l.Tick()
	if l.Text() != "" {
		t.Errorf("empty label text = %q", l.Text())
	}
}
