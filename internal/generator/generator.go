package generator

import (
	"errors"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// ErrIncompleteGrid reports that backtracking failed to complete a
// full solution grid. For a correct 9x9 generator this cannot happen;
// seeing it means a logic defect, so puzzle creation aborts instead of
// returning a partial grid.
var ErrIncompleteGrid = errors.New("generator: could not complete a full grid")

// DiggingGenerator builds a full solved grid and then digs holes while
// the solution stays unique, verified through the solver's bounded
// solution counter.
type DiggingGenerator struct {
	Solver ports.Solver
}

// New wires a generator that uses the given solver for uniqueness checks.
func New(s ports.Solver) *DiggingGenerator {
	return &DiggingGenerator{Solver: s}
}

// targetRemovals maps a difficulty to the number of cells to dig out
// of the 81. Difficulty grades by clue count only; no technique-based
// regrading happens after digging.
func targetRemovals(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 30
	case domain.Medium:
		return 38
	case domain.Hard:
		return 46
	case domain.Expert:
		return 55
	default:
		return 64 // Master
	}
}
