package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mira/puzzleacademy/internal/check"
	"github.com/mira/puzzleacademy/internal/models"
)

func TestAnswerCorrect_ExactEquality(t *testing.T) {
	p := &models.Puzzle{
		Type:          models.TypeMathProblem,
		CorrectAnswer: models.NumberAnswer("10"),
	}

	assert.True(t, check.AnswerCorrect(p, models.NumberAnswer("10")))
	assert.False(t, check.AnswerCorrect(p, models.StringAnswer("10")),
		"the string \"10\" is not the number 10")
	assert.False(t, check.AnswerCorrect(p, models.NumberAnswer("11")))
}

func TestAnswerCorrect_StringIsCaseSensitive(t *testing.T) {
	p := &models.Puzzle{
		Type:          models.TypeWordPuzzle,
		CorrectAnswer: models.StringAnswer("Paris"),
	}

	assert.True(t, check.AnswerCorrect(p, models.StringAnswer("Paris")))
	assert.False(t, check.AnswerCorrect(p, models.StringAnswer("paris")))
}

func TestAnswerCorrect_RiddleAlternates(t *testing.T) {
	p := &models.Puzzle{
		Type:          models.TypeRiddle,
		CorrectAnswer: models.StringAnswer("an echo"),
		Riddle: &models.RiddleData{
			Riddle:            "I speak without a mouth",
			AcceptableAnswers: []string{"echo", "an echo"},
		},
	}

	assert.True(t, check.AnswerCorrect(p, models.StringAnswer("an echo")))
	assert.True(t, check.AnswerCorrect(p, models.StringAnswer("  Echo ")),
		"alternates are trimmed and case-insensitive")
	assert.False(t, check.AnswerCorrect(p, models.StringAnswer("sound")))
}

func TestAnswerCorrect_StructuralSentinel(t *testing.T) {
	p := &models.Puzzle{
		Type:          models.TypeCrossword,
		CorrectAnswer: models.StringAnswer(models.AnswerComplete),
	}

	assert.True(t, check.AnswerCorrect(p, models.StringAnswer(models.AnswerComplete)))
	assert.False(t, check.AnswerCorrect(p, models.StringAnswer(models.AnswerIncomplete)))
}
