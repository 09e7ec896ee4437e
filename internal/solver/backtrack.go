package solver

import (
	"errors"

	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

// ErrUnsolvable reports that backtracking exhausted the search space
// without completing the grid.
var ErrUnsolvable = errors.New("puzzle is unsolvable or search was canceled")

// BacktrackingSolver is a straightforward recursive solver over the
// plain numeric grid. It doubles as the bounded solution counter used
// by the generator's digging step.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers shared by Solve and CountSolutions ---

func findEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func isValid(g *[9][9]uint8, r, c int, v uint8) bool {
	return validator.SafeInGrid(g, r, c, v)
}
