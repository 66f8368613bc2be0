package check

import (
	"strings"

	"github.com/mira/puzzleacademy/internal/models"
)

// AnswerCorrect decides whether a submitted answer solves the puzzle. For the
// structural types the caller has already reduced working state to the
// "complete"/"incomplete" sentinel, so everything funnels through exact value
// equality; riddles additionally accept a small set of alternate strings,
// compared case-insensitively after trimming.
func AnswerCorrect(p *models.Puzzle, answer models.Answer) bool {
	if p.CorrectAnswer.Equals(answer) {
		return true
	}
	if p.Type == models.TypeRiddle && p.Riddle != nil && !answer.IsNumber {
		got := strings.ToLower(strings.TrimSpace(answer.Value))
		for _, alt := range p.Riddle.AcceptableAnswers {
			if strings.ToLower(strings.TrimSpace(alt)) == got {
				return true
			}
		}
	}
	return false
}
