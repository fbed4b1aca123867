// Package render draws a solved (or partially solved) crossword, either as
// plain text or as a PNG image.
package render

import (
	"strings"

	"github.com/bendobbins/crossgen/board"
	"github.com/bendobbins/crossgen/solver"
)

const blockedRune = '█'

// LetterGrid lays the assigned words onto a height×width rune grid. Cells
// with no letter (blocked, or open but unassigned) are zero.
func LetterGrid(m *board.Model, a solver.Assignment) [][]rune {
	letters := make([][]rune, m.Height())
	for i := range letters {
		letters[i] = make([]rune, m.Width())
	}
	for slot, word := range a {
		for k := 0; k < len(word); k++ {
			r, c := slot.Cell(k)
			letters[r][c] = rune(word[k])
		}
	}
	return letters
}

// Text renders the grid one rune per cell: letters in their cells, blocked
// cells solid, unfilled open cells blank.
func Text(m *board.Model, a solver.Assignment) string {
	letters := LetterGrid(m, a)
	var sb strings.Builder
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			switch {
			case !m.Open(r, c):
				sb.WriteRune(blockedRune)
			case letters[r][c] != 0:
				sb.WriteRune(letters[r][c])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
