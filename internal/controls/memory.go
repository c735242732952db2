package controls

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/unvolume/internal/control"
)

const (
	memoryCards = 16
	memoryPairs = 8
	memoryCols  = 4
	memoryRows  = 4
)

var memorySymbols = []rune("♠♥♦♣★☀☾♫")

// Card is one cell of the memory board.
type Card struct {
	Symbol  rune
	FaceUp  bool
	Matched bool
}

// Memory is the card-matching volume control: matched pairs are
// progress, progress is volume.
type Memory struct {
	control.Emitter

	MismatchDelay time.Duration
	TickEvery     time.Duration

	rng     *rand.Rand
	cards   [memoryCards]Card
	first   int // index of the first face-up card, -1 when none
	second  int
	pending int // ticks until a mismatch is hidden again
	matched int
	width   float64
	height  float64
}

func NewMemory(rng *rand.Rand) *Memory {
	m := &Memory{
		MismatchDelay: time.Second,
		TickEvery:     100 * time.Millisecond,
		rng:           rng,
	}
	m.Reset()
	return m
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Interval() time.Duration { return m.TickEvery }

// Reset shuffles a fresh board of eight symbol pairs, all face down.
func (m *Memory) Reset() {
	for i := 0; i < memoryCards; i++ {
		m.cards[i] = Card{Symbol: memorySymbols[i/2]}
	}
	m.rng.Shuffle(memoryCards, func(i, j int) {
		m.cards[i], m.cards[j] = m.cards[j], m.cards[i]
	})
	m.first = -1
	m.second = -1
	m.pending = 0
	m.matched = 0
	m.Emit(0)
}

func (m *Memory) Resize(w, h float64) {
	m.width = w
	m.height = h
}

// Pointer hit-tests the 4x4 grid and selects the card under the press.
func (m *Memory) Pointer(ev control.Pointer) {
	if ev.Kind != control.PointerDown || m.width <= 0 || m.height <= 0 {
		return
	}
	col := int(ev.Pos.X / (m.width / memoryCols))
	row := int(ev.Pos.Y / (m.height / memoryRows))
	if col < 0 || col >= memoryCols || row < 0 || row >= memoryRows {
		return
	}
	m.Select(row*memoryCols + col)
}

// Select reveals the card at index i. Selections are ignored while a
// mismatch is waiting to be hidden, and for matched or already face-up
// cards.
func (m *Memory) Select(i int) {
	if i < 0 || i >= memoryCards {
		return
	}
	if m.pending > 0 {
		return
	}
	card := &m.cards[i]
	if card.Matched || card.FaceUp {
		return
	}

	card.FaceUp = true
	if m.first < 0 {
		m.first = i
		return
	}
	m.second = i

	if m.cards[m.first].Symbol == m.cards[m.second].Symbol {
		m.cards[m.first].Matched = true
		m.cards[m.second].Matched = true
		m.first = -1
		m.second = -1
		m.matched++
		m.Emit(int(math.Round(100 * float64(m.matched) / memoryPairs)))
		return
	}

	m.pending = int(m.MismatchDelay / m.TickEvery)
	if m.pending < 1 {
		m.pending = 1
	}
}

// Tick only counts down the mismatch-hide delay.
func (m *Memory) Tick() {
	if m.pending <= 0 {
		return
	}
	m.pending--
	if m.pending == 0 {
		m.cards[m.first].FaceUp = false
		m.cards[m.second].FaceUp = false
		m.first = -1
		m.second = -1
	}
}

// Cards reports the board for rendering.
func (m *Memory) Cards() []Card { return m.cards[:] }

// MatchedPairs reports solved pair count.
func (m *Memory) MatchedPairs() int { return m.matched }
