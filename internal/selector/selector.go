// Package selector picks puzzles for a practice session from the catalog,
// given a difficulty/subject/age profile.
package selector

import (
	"math/rand"

	"github.com/mira/puzzleacademy/internal/models"
)

const (
	// MinDifficulty and MaxDifficulty bound the adaptive range. Catalog
	// content may carry higher difficulties historically; requests are
	// clamped into this range and only the final subject fallback can
	// return anything outside it.
	MinDifficulty = 1
	MaxDifficulty = 4

	// DefaultCount is substituted when the caller asks for zero or fewer.
	DefaultCount = 5
)

// DefaultSubjects is substituted when the caller supplies no subjects.
// Invalid requests never fail; they degrade to these defaults so a session
// can always start.
var DefaultSubjects = []models.Subject{models.SubjectMathematics, models.SubjectLogic}

// Request describes one selection.
type Request struct {
	Level    int
	Subjects []models.Subject
	Count    int
	AgeGroup models.AgeGroup // optional; empty skips the age-band policy
}

// Select returns up to req.Count puzzles in random order. The search starts
// at the clamped target difficulty, widens one level down then one level up
// on shortfall, and finally falls back to any difficulty within the requested
// subjects. The result carries no duplicate ids; a short result just means
// the catalog could not supply enough, which is not an error.
func Select(pool []models.Puzzle, req Request) []models.Puzzle {
	return SelectWithRand(pool, req, nil)
}

// SelectWithRand is Select with an injectable randomness source for tests.
// A nil source uses the shared global one.
func SelectWithRand(pool []models.Puzzle, req Request, rng *rand.Rand) []models.Puzzle {
	subjects := req.Subjects
	if len(subjects) == 0 {
		subjects = DefaultSubjects
	}
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	target := clamp(req.Level, MinDifficulty, MaxDifficulty)

	subjectSet := make(map[models.Subject]bool, len(subjects))
	for _, s := range subjects {
		subjectSet[s] = true
	}

	selected := make([]models.Puzzle, 0, count)
	seen := make(map[string]bool)

	take := func(difficulty int, anyDifficulty bool) {
		for _, p := range pool {
			if seen[p.ID] || !subjectSet[p.Subject] {
				continue
			}
			if !anyDifficulty {
				if p.Difficulty != difficulty {
					continue
				}
				if !ageBandAllows(req.AgeGroup, p.Difficulty) {
					continue
				}
			}
			seen[p.ID] = true
			selected = append(selected, p)
		}
	}

	// Primary filter at the target difficulty, then widen one step down and
	// one step up while short.
	take(target, false)
	for _, d := range []int{target - 1, target + 1} {
		if len(selected) >= count {
			break
		}
		if d < MinDifficulty || d > MaxDifficulty {
			continue
		}
		take(d, false)
	}

	// Final fallback: anything in the requested subjects.
	if len(selected) < count {
		take(0, true)
	}

	shuffle(selected, rng)
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

// ageBandAllows applies the coarse age policy on top of numeric difficulty:
// children stay at 2 or below, teens at 2..3, adults at 3 and above.
func ageBandAllows(group models.AgeGroup, difficulty int) bool {
	switch group {
	case models.AgeGroupChild:
		return difficulty <= 2
	case models.AgeGroupTeen:
		return difficulty >= 2 && difficulty <= 3
	case models.AgeGroupAdult:
		return difficulty >= 3
	default:
		return true
	}
}

func shuffle(puzzles []models.Puzzle, rng *rand.Rand) {
	swap := func(i, j int) {
		puzzles[i], puzzles[j] = puzzles[j], puzzles[i]
	}
	if rng != nil {
		rng.Shuffle(len(puzzles), swap)
	} else {
		rand.Shuffle(len(puzzles), swap)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
