// Package check holds the per-type solved predicates. Each function is pure
// over the caller's working state; nothing here touches the catalog or the
// session.
package check

import (
	"strings"

	"github.com/mira/puzzleacademy/internal/models"
)

// CrosswordSolved walks every clue's answer cells along its direction and
// compares them against the working grid. Comparison is upper-case exact;
// user input is normalized before the compare. A cell outside the grid counts
// as a mismatch.
func CrosswordSolved(grid [][]string, clues []models.CrosswordClue) bool {
	if len(clues) == 0 {
		return false
	}
	for _, clue := range clues {
		answer := []rune(strings.ToUpper(clue.Answer))
		for i, letter := range answer {
			row := clue.StartRow
			col := clue.StartCol
			if clue.Direction == "down" {
				row += i
			} else {
				col += i
			}
			if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
				return false
			}
			if strings.ToUpper(grid[row][col]) != string(letter) {
				return false
			}
		}
	}
	return true
}
