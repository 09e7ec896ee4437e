package solver

import (
	"context"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/technique"
)

// TechniqueEngine drives the deduction loop: find the first applicable
// technique in a fixed priority order, apply it, repeat until the board
// is solved or no technique applies. Notes persist across passes, so
// eliminations made by advanced techniques keep constraining later
// single detection.
type TechniqueEngine struct{}

func NewTechniqueEngine() *TechniqueEngine { return &TechniqueEngine{} }

// detectors beyond the two singles, in priority order.
var advanced = []func(*domain.Board) *domain.TechniqueResult{
	technique.LockedCandidates,
	technique.Subsets,
	technique.XWing,
	technique.Skyscraper,
	technique.Swordfish,
	technique.XYWing,
	technique.XYZWing,
	technique.BUGPlusOne,
}

// nextStep returns the first applicable technique result, or nil when
// the board is stuck. Notes must already be normalized.
func nextStep(b *domain.Board) *domain.TechniqueResult {
	if res := nakedSingle(b); res != nil {
		return res
	}
	if res := hiddenSingle(b); res != nil {
		return res
	}
	for _, detect := range advanced {
		if res := detect(b); res != nil {
			return res
		}
	}
	return nil
}

// NextStep exposes the technique search for hinting. The board's notes
// are normalized in place but no step is applied.
func (e *TechniqueEngine) NextStep(ctx context.Context, b *domain.Board) (*domain.TechniqueResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	NormalizeNotes(b)
	return nextStep(b), nil
}

// Run applies techniques until the board is solved or stuck. It
// returns the steps taken and whether the board ended solved. The
// board is mutated; callers pass a clone to keep live state intact.
func (e *TechniqueEngine) Run(ctx context.Context, b *domain.Board) ([]domain.TechniqueResult, bool, error) {
	return e.run(ctx, b, nextStep)
}

// RunBasics applies only naked and hidden singles. It intentionally
// fails on anything harder and serves as a cheap solvability probe for
// coarse classification.
func (e *TechniqueEngine) RunBasics(ctx context.Context, b *domain.Board) ([]domain.TechniqueResult, bool, error) {
	return e.run(ctx, b, func(b *domain.Board) *domain.TechniqueResult {
		if res := nakedSingle(b); res != nil {
			return res
		}
		return hiddenSingle(b)
	})
}

func (e *TechniqueEngine) run(ctx context.Context, b *domain.Board, next func(*domain.Board) *domain.TechniqueResult) ([]domain.TechniqueResult, bool, error) {
	NormalizeNotes(b)
	var steps []domain.TechniqueResult
	for {
		if err := ctx.Err(); err != nil {
			return steps, false, err
		}
		if b.Solved() {
			return steps, true, nil
		}
		res := next(b)
		if res == nil {
			return steps, false, nil
		}
		applyResult(b, res)
		steps = append(steps, *res)
	}
}
