package check

import "github.com/mira/puzzleacademy/internal/models"

// FlipResult describes the outcome of flipping one memory card.
type FlipResult int

const (
	// FlipRejected: the flip was ignored (unknown card, already face up or
	// matched, or two unresolved cards are blocking input).
	FlipRejected FlipResult = iota
	// FlipFaceUp: the first card of a pair is now face up.
	FlipFaceUp
	// FlipMatched: the second card completed a matching pair.
	FlipMatched
	// FlipNoMatch: the second card did not match; both stay face up until
	// ResolvePending flips them back.
	FlipNoMatch
)

// MemoryBoard is the working state of one memory-cards attempt. It is scoped
// to a single play and discarded when the puzzle is exited.
type MemoryBoard struct {
	cards   map[string]models.MemoryCard
	flipped []string // unresolved face-up card ids, at most two
	matched map[string]bool
	pairs   int
	moves   int
	total   int
}

// NewMemoryBoard builds a fresh board with every card face down.
func NewMemoryBoard(cards []models.MemoryCard) *MemoryBoard {
	b := &MemoryBoard{
		cards:   make(map[string]models.MemoryCard, len(cards)),
		matched: make(map[string]bool),
		total:   len(cards),
	}
	for _, c := range cards {
		b.cards[c.ID] = c
	}
	return b
}

// Flip turns one card face up. While two non-matching cards are face up and
// unresolved, further flips are rejected until ResolvePending runs; this is
// the board's only input gate.
func (b *MemoryBoard) Flip(id string) FlipResult {
	if len(b.flipped) >= 2 {
		return FlipRejected
	}
	card, ok := b.cards[id]
	if !ok || b.matched[id] {
		return FlipRejected
	}
	for _, f := range b.flipped {
		if f == id {
			return FlipRejected
		}
	}

	b.flipped = append(b.flipped, id)
	if len(b.flipped) < 2 {
		return FlipFaceUp
	}

	b.moves++
	first := b.cards[b.flipped[0]]
	if first.Content == card.Content {
		b.matched[b.flipped[0]] = true
		b.matched[b.flipped[1]] = true
		b.pairs++
		b.flipped = nil
		return FlipMatched
	}
	return FlipNoMatch
}

// ResolvePending flips two non-matching cards back face down. The caller is
// responsible for the gameplay delay before invoking it; the board itself
// has no clock.
func (b *MemoryBoard) ResolvePending() {
	if len(b.flipped) == 2 {
		b.flipped = nil
	}
}

// MatchedPairs returns the number of pairs found so far.
func (b *MemoryBoard) MatchedPairs() int {
	return b.pairs
}

// Moves returns the number of pair comparisons made.
func (b *MemoryBoard) Moves() int {
	return b.moves
}

// Solved reports whether every pair has been matched.
func (b *MemoryBoard) Solved() bool {
	return b.total > 0 && b.pairs == b.total/2
}
