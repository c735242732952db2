// Package scramble implements the menu's decrypting-label animation:
// labels start as random noise and reveal their true text one character
// per tick once scrolled into view.
package scramble

import (
	"math/rand"
	"time"
)

// DefaultCharset is the pool the scrambled placeholder characters are
// drawn from.
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"

// Label holds one label's decryption animation state.
//
// State machine: Scrambled -> (StartReveal) -> Revealing -> (all
// characters revealed) -> Revealed. ResetScramble returns to Scrambled
// from anywhere.
type Label struct {
	Speed time.Duration // reveal interval, one character per tick

	rng      *rand.Rand
	charset  []rune
	original []rune
	display  []rune
	revealed int
	anim     bool
	inView   bool
}

// New creates a label in the Scrambled state.
func New(text string, speed time.Duration, rng *rand.Rand) *Label {
	l := &Label{
		Speed:   speed,
		rng:     rng,
		charset: []rune(DefaultCharset),
	}
	l.SetText(text)
	return l
}

// SetCharset replaces the scramble character pool. Empty charsets are
// ignored.
func (l *Label) SetCharset(cs string) {
	if cs == "" {
		return
	}
	l.charset = []rune(cs)
	l.ResetScramble()
}

// SetText replaces the label content and immediately rescrambles.
func (l *Label) SetText(text string) {
	l.original = []rune(text)
	l.ResetScramble()
}

// StartReveal begins revealing the original text from the first
// character. A no-op while a reveal is already running or on empty text.
func (l *Label) StartReveal() {
	if l.anim || len(l.original) == 0 {
		return
	}
	l.anim = true
	l.revealed = 0
}

// ResetScramble cancels any in-progress reveal and re-randomizes the
// full string.
func (l *Label) ResetScramble() {
	l.anim = false
	l.revealed = 0
	l.display = make([]rune, len(l.original))
	l.rescrambleTail(0)
}

// Tick advances a running reveal by one character and re-randomizes
// everything still hidden.
func (l *Label) Tick() {
	if !l.anim {
		return
	}
	if l.revealed >= len(l.original) {
		l.anim = false
		copy(l.display, l.original)
		return
	}
	l.revealed++
	copy(l.display, l.original[:l.revealed])
	l.rescrambleTail(l.revealed)
	if l.revealed == len(l.original) {
		l.anim = false
	}
}

func (l *Label) rescrambleTail(from int) {
	for i := from; i < len(l.display); i++ {
		l.display[i] = l.charset[l.rng.Intn(len(l.charset))]
	}
}

// Text reports the string currently shown: revealed prefix plus
// scrambled tail.
func (l *Label) Text() string { return string(l.display) }

// Original reports the true text.
func (l *Label) Original() string { return string(l.original) }

// Revealing reports whether a reveal animation is running.
func (l *Label) Revealing() bool { return l.anim }

// Revealed reports whether the full text is currently shown.
func (l *Label) Revealed() bool {
	return !l.anim && l.revealed == len(l.original) && len(l.original) > 0
}
