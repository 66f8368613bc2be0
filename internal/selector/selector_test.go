package selector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/selector"
)

func makePool() []models.Puzzle {
	var pool []models.Puzzle
	id := 0
	add := func(subject models.Subject, difficulty, n int) {
		for i := 0; i < n; i++ {
			id++
			pool = append(pool, models.Puzzle{
				ID:         fmt.Sprintf("p-%03d", id),
				Type:       models.TypeMathProblem,
				Subject:    subject,
				Difficulty: difficulty,
				Points:     10,
			})
		}
	}
	add(models.SubjectMathematics, 1, 4)
	add(models.SubjectMathematics, 2, 4)
	add(models.SubjectMathematics, 3, 4)
	add(models.SubjectLogic, 2, 3)
	add(models.SubjectScience, 4, 2)
	return pool
}

func rng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestSelect_RespectsSubjectAndDifficulty(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    2,
		Subjects: []models.Subject{models.SubjectMathematics},
		Count:    3,
	}, rng())

	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, models.SubjectMathematics, p.Subject)
		assert.Equal(t, 2, p.Difficulty, "enough level-2 puzzles exist, no widening needed")
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    2,
		Subjects: []models.Subject{models.SubjectMathematics},
		Count:    12,
	}, rng())

	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID], "puzzle %s selected twice", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, got, 12, "all mathematics puzzles should be reachable via widening")
}

func TestSelect_WidensOnShortfall(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    3,
		Subjects: []models.Subject{models.SubjectMathematics},
		Count:    6,
	}, rng())

	require.Len(t, got, 6)
	for _, p := range got {
		assert.Contains(t, []int{2, 3}, p.Difficulty,
			"shortfall at level 3 widens to the neighbor levels first")
	}
}

func TestSelect_SubjectFallbackIgnoresDifficulty(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    1,
		Subjects: []models.Subject{models.SubjectScience},
		Count:    2,
	}, rng())

	require.Len(t, got, 2, "science only exists at difficulty 4, the fallback must still find it")
	for _, p := range got {
		assert.Equal(t, models.SubjectScience, p.Subject)
	}
}

func TestSelect_DefaultsForInvalidRequest(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level: -5,
		Count: 0,
	}, rng())

	assert.Len(t, got, selector.DefaultCount)
	for _, p := range got {
		assert.Contains(t, selector.DefaultSubjects, p.Subject,
			"empty subjects substitute the default set")
	}
}

func TestSelect_LevelClampedToRange(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    99,
		Subjects: []models.Subject{models.SubjectScience},
		Count:    2,
	}, rng())

	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, 4, p.Difficulty)
	}
}

func TestSelect_ChildAgeBand(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    3,
		Subjects: []models.Subject{models.SubjectMathematics},
		Count:    4,
		AgeGroup: models.AgeGroupChild,
	}, rng())

	// The primary and widened passes exclude difficulty 3 for children; only
	// the level-2 neighbor qualifies.
	for _, p := range got {
		assert.LessOrEqual(t, p.Difficulty, 2,
			"children never receive puzzles above difficulty 2 from the banded passes")
	}
}

func TestSelect_ShortResultIsNotAnError(t *testing.T) {
	got := selector.SelectWithRand(makePool(), selector.Request{
		Level:    1,
		Subjects: []models.Subject{models.SubjectHistory},
		Count:    5,
	}, rng())

	assert.Empty(t, got, "no history puzzles exist; an empty result is fine")
}
