package ports

import (
	"context"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver is the brute-force search: full solve and bounded solution
// counting (limit=2 answers the uniqueness question).
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Engine is the deduction loop over the technique library. Run and
// RunBasics mutate the given board; callers pass a clone when the live
// grid must stay untouched.
type Engine interface {
	Run(ctx context.Context, b *domain.Board) ([]domain.TechniqueResult, bool, error)
	RunBasics(ctx context.Context, b *domain.Board) ([]domain.TechniqueResult, bool, error)
	NextStep(ctx context.Context, b *domain.Board) (*domain.TechniqueResult, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step without touching the caller's board.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Detector attributes a player's move to a technique. A false ok is the
// normal answer for blind guesses, not an error.
type Detector interface {
	DetectPlacement(ctx context.Context, b *domain.Board, move domain.Placement) (domain.TechniqueResult, bool, error)
	DetectElimination(ctx context.Context, b *domain.Board, elim domain.Elimination) (domain.TechniqueResult, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
