package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira/puzzleacademy/internal/check"
)

// planetGrid hides MERCURY across the top row, VENUS down the first column
// and MARS on the main diagonal.
func planetGrid() [][]string {
	return [][]string{
		{"M", "E", "R", "C", "U", "R", "Y"},
		{"V", "X", "X", "X", "X", "X", "X"},
		{"E", "X", "M", "X", "X", "X", "X"},
		{"N", "X", "X", "A", "X", "X", "X"},
		{"U", "X", "X", "X", "R", "X", "X"},
		{"S", "X", "X", "X", "X", "S", "X"},
	}
}

var planetWords = []string{"MERCURY", "VENUS", "MARS"}

func TestLineCells_Horizontal(t *testing.T) {
	cells := check.LineCells(check.Cell{Row: 0, Col: 0}, check.Cell{Row: 0, Col: 6})
	require.Len(t, cells, 7)
	assert.Equal(t, check.Cell{Row: 0, Col: 3}, cells[3])
}

func TestLineCells_Diagonal(t *testing.T) {
	cells := check.LineCells(check.Cell{Row: 2, Col: 2}, check.Cell{Row: 5, Col: 5})
	require.Len(t, cells, 4)
	assert.Equal(t, check.Cell{Row: 3, Col: 3}, cells[1])
}

func TestLineCells_RejectsBentSelection(t *testing.T) {
	assert.Nil(t, check.LineCells(check.Cell{Row: 0, Col: 0}, check.Cell{Row: 1, Col: 3}),
		"a knight-shaped selection is not a straight line")
}

func TestMatchWord_Forward(t *testing.T) {
	grid := planetGrid()
	cells := check.LineCells(check.Cell{Row: 0, Col: 0}, check.Cell{Row: 0, Col: 6})

	assert.Equal(t, "MERCURY", check.MatchWord(grid, cells, planetWords))
}

func TestMatchWord_Backward(t *testing.T) {
	grid := planetGrid()
	// Select VENUS bottom-to-top.
	cells := check.LineCells(check.Cell{Row: 5, Col: 0}, check.Cell{Row: 1, Col: 0})

	assert.Equal(t, "VENUS", check.MatchWord(grid, cells, planetWords),
		"reversed selection should match the catalog word")
}

func TestMatchWord_NoMatch(t *testing.T) {
	grid := planetGrid()
	cells := check.LineCells(check.Cell{Row: 1, Col: 1}, check.Cell{Row: 1, Col: 3})

	assert.Empty(t, check.MatchWord(grid, cells, planetWords))
}

func TestMatchWord_OutOfBounds(t *testing.T) {
	grid := planetGrid()
	cells := check.LineCells(check.Cell{Row: 0, Col: 5}, check.Cell{Row: 0, Col: 9})

	assert.Empty(t, check.MatchWord(grid, cells, planetWords))
}

func TestWordSearchSolved(t *testing.T) {
	found := map[string]bool{"MERCURY": true, "VENUS": true}
	assert.False(t, check.WordSearchSolved(found, planetWords))

	found["MARS"] = true
	assert.True(t, check.WordSearchSolved(found, planetWords))
}

func TestWordSearchSolved_EmptyWordList(t *testing.T) {
	assert.False(t, check.WordSearchSolved(map[string]bool{}, nil),
		"a puzzle with no words can never be solved")
}
