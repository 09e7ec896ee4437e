package usecase

import (
	"context"
	"errors"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// Service is the in-process contract a game state store talks to: it
// owns no grid of its own and only computes over boards the caller
// hands in.
type Service struct {
	Solver    ports.Solver
	Engine    ports.Engine
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Detector  ports.Detector
	Storage   ports.Storage
}

func NewService(s ports.Solver, e ports.Engine, g ports.Generator, v ports.Validator, h ports.Hinter, d ports.Detector, st ports.Storage) *Service {
	return &Service{Solver: s, Engine: e, Generator: g, Validator: v, Hinter: h, Detector: d, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, b, limit)
}

// Deduce runs the technique engine on a clone and reports the steps it
// took; the caller's board stays untouched.
func (u *Service) Deduce(ctx context.Context, b *domain.Board) ([]domain.TechniqueResult, bool, error) {
	if u.Engine == nil {
		return nil, false, errNotConfigured
	}
	return u.Engine.Run(ctx, b.Clone())
}

// SolvableWithBasics probes whether singles alone finish the puzzle.
func (u *Service) SolvableWithBasics(ctx context.Context, b *domain.Board) (bool, error) {
	if u.Engine == nil {
		return false, errNotConfigured
	}
	_, solved, err := u.Engine.RunBasics(ctx, b.Clone())
	return solved, err
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}

func (u *Service) ExplainPlacement(ctx context.Context, b *domain.Board, move domain.Placement) (domain.TechniqueResult, bool, error) {
	if u.Detector == nil {
		return domain.TechniqueResult{}, false, errNotConfigured
	}
	return u.Detector.DetectPlacement(ctx, b, move)
}

func (u *Service) ExplainElimination(ctx context.Context, b *domain.Board, elim domain.Elimination) (domain.TechniqueResult, bool, error) {
	if u.Detector == nil {
		return domain.TechniqueResult{}, false, errNotConfigured
	}
	return u.Detector.DetectElimination(ctx, b, elim)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
