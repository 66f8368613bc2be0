package check

import (
	"fmt"

	"github.com/mira/puzzleacademy/internal/models"
)

// ScrambleBoard is the working state of one image-scramble attempt.
type ScrambleBoard struct {
	pieces []models.ScramblePiece
	byID   map[string]int
}

// NewScrambleBoard copies the puzzle's starting arrangement so the catalog
// record is never mutated.
func NewScrambleBoard(pieces []models.ScramblePiece) *ScrambleBoard {
	b := &ScrambleBoard{
		pieces: make([]models.ScramblePiece, len(pieces)),
		byID:   make(map[string]int, len(pieces)),
	}
	copy(b.pieces, pieces)
	for i, p := range b.pieces {
		b.byID[p.ID] = i
	}
	return b
}

// Swap exchanges the current positions of exactly two pieces. The exchange is
// atomic: either both positions change or neither does.
func (b *ScrambleBoard) Swap(idA, idB string) error {
	if idA == idB {
		return fmt.Errorf("cannot swap piece %q with itself", idA)
	}
	i, ok := b.byID[idA]
	if !ok {
		return fmt.Errorf("unknown piece %q", idA)
	}
	j, ok := b.byID[idB]
	if !ok {
		return fmt.Errorf("unknown piece %q", idB)
	}
	b.pieces[i].CurrentPosition, b.pieces[j].CurrentPosition = b.pieces[j].CurrentPosition, b.pieces[i].CurrentPosition
	return nil
}

// Pieces returns the current arrangement.
func (b *ScrambleBoard) Pieces() []models.ScramblePiece {
	return b.pieces
}

// Solved reports whether every piece sits at its correct position.
func (b *ScrambleBoard) Solved() bool {
	return ScrambleSolved(b.pieces)
}

// ScrambleSolved is the bare predicate over any piece list.
func ScrambleSolved(pieces []models.ScramblePiece) bool {
	if len(pieces) == 0 {
		return false
	}
	for _, p := range pieces {
		if p.CurrentPosition != p.CorrectPosition {
			return false
		}
	}
	return true
}
