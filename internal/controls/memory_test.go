package controls

import (
	"math/rand"
	"testing"
)

// findPair returns the indices of two face-down cards sharing a symbol.
func findPair(m *Memory) (int, int) {
	cards := m.Cards()
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if !cards[i].Matched && cards[i].Symbol == cards[j].Symbol {
				return i, j
			}
		}
	}
	return -1, -1
}

// findMismatch returns the indices of two face-down cards with
// different symbols.
func findMismatch(m *Memory) (int, int) {
	cards := m.Cards()
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if !cards[i].Matched && !cards[j].Matched && cards[i].Symbol != cards[j].Symbol {
				return i, j
			}
		}
	}
	return -1, -1
}

func TestMemoryBoardComposition(t *testing.T) {
	m := NewMemory(rand.New(rand.NewSource(1)))

	counts := map[rune]int{}
	for _, c := range m.Cards() {
		counts[c.Symbol]++
		if c.FaceUp || c.Matched {
			t.Fatal("fresh board has exposed cards")
		}
	}
	if len(counts) != 8 {
		t.Fatalf("board has %d symbols, want 8", len(counts))
	}
	for sym, n := range counts {
		if n != 2 {
			t.Errorf("symbol %c appears %d times, want 2", sym, n)
		}
	}
}

func TestMemorySameCardTwice(t *testing.T) {
	m := NewMemory(rand.New(rand.NewSource(2)))

	m.Select(3)
	m.Select(3)

	if m.MatchedPairs() != 0 {
		t.Errorf("matchedPairs = %d, want 0", m.MatchedPairs())
	}
	faceUp := 0
	for _, c := range m.Cards() {
		if c.FaceUp {
			faceUp++
		}
	}
	if faceUp != 1 {
		t.Errorf("%d cards face up, want 1", faceUp)
	}
}

func TestMemoryMatchDisablesPair(t *testing.T) {
	m := NewMemory(rand.New(rand.NewSource(3)))
	i, j := findPair(m)

	var emissions []int
	m.SetSink(func(v int) { emissions = append(emissions, v) })

	m.Select(i)
	m.Select(j)

	if m.MatchedPairs() != 1 {
		t.Fatalf("matchedPairs = %d, want 1", m.MatchedPairs())
	}
	if !m.Cards()[i].Matched || !m.Cards()[j].Matched {
		t.Error("matched cards not disabled")
	}
	if len(emissions) != 1 || emissions[0] != 13 {
		t.Errorf("emissions = %v, want [13]", emissions)
	}

	// Disabled cards are dead to selection.
	m.Select(i)
	if m.Cards()[i].FaceUp != true {
		t.Error("matched card state changed by reselection")
	}
	if m.MatchedPairs() != 1 {
		t.Error("reselecting a matched card changed progress")
	}
}

func TestMemoryMismatchHidesAfterDelay(t *testing.T) {
	m := NewMemory(rand.New(rand.NewSource(4)))
	i, j := findMismatch(m)

	var emissions int
	m.SetSink(func(int) { emissions++ })

	m.Select(i)
	m.Select(j)

	if emissions != 0 {
		t.Errorf("mismatch emitted %d times, want 0", emissions)
	}

	// Selection is ignored while the mismatch is pending.
	k, _ := findMismatch(m)
	for k == i || k == j {
		k++
	}
	m.Select(k)
	if m.Cards()[k].FaceUp {
		t.Error("selection accepted while mismatch pending")
	}

	// MismatchDelay / TickEvery ticks hide both again.
	for n := 0; n < 10; n++ {
		m.Tick()
	}
	if m.Cards()[i].FaceUp || m.Cards()[j].FaceUp {
		t.Error("mismatched cards still face up after delay")
	}

	// Board is selectable again.
	m.Select(k)
	if !m.Cards()[k].FaceUp {
		t.Error("selection rejected after mismatch cleared")
	}
}

func TestMemoryFullSolve(t *testing.T) {
	m := NewMemory(rand.New(rand.NewSource(5)))

	var last int
	m.SetSink(func(v int) { last = v })

	for p := 0; p < 8; p++ {
		i, j := findPair(m)
		if i < 0 {
			t.Fatalf("no pair found at round %d", p)
		}
		m.Select(i)
		m.Select(j)
	}

	if m.MatchedPairs() != 8 {
		t.Fatalf("matchedPairs = %d, want 8", m.MatchedPairs())
	}
	if last != 100 {
		t.Errorf("final volume = %d, want 100", last)
	}
}
