package check

import "strings"

// Cell is one grid coordinate of a word-search selection.
type Cell struct {
	Row int
	Col int
}

// LineCells expands a start/end pair into the full run of cells between them,
// inclusive. The pair must describe a straight line: same row, same column,
// or an exact diagonal. Returns nil otherwise.
func LineCells(start, end Cell) []Cell {
	rowDiff := end.Row - start.Row
	colDiff := end.Col - start.Col
	if rowDiff != 0 && colDiff != 0 && abs(rowDiff) != abs(colDiff) {
		return nil
	}

	rowStep := sign(rowDiff)
	colStep := sign(colDiff)

	cells := []Cell{start}
	cur := start
	for cur != end {
		cur.Row += rowStep
		cur.Col += colStep
		cells = append(cells, cur)
	}
	return cells
}

// SelectedWord reads the letters under a run of cells. Cells outside the grid
// yield an empty string.
func SelectedWord(grid [][]string, cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.Row < 0 || c.Row >= len(grid) || c.Col < 0 || c.Col >= len(grid[c.Row]) {
			return ""
		}
		sb.WriteString(grid[c.Row][c.Col])
	}
	return sb.String()
}

// MatchWord reports which catalog word a selection spells, reading the run
// forward or backward. Returns "" when the selection matches nothing.
func MatchWord(grid [][]string, cells []Cell, words []string) string {
	word := SelectedWord(grid, cells)
	if word == "" {
		return ""
	}
	reversed := reverse(word)
	for _, w := range words {
		if w == word || w == reversed {
			return w
		}
	}
	return ""
}

// WordSearchSolved reports whether every catalog word has been found. The
// found set is keyed by word text, so duplicate finds collapse naturally.
func WordSearchSolved(found map[string]bool, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !found[w] {
			return false
		}
	}
	return true
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
