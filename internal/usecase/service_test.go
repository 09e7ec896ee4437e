package usecase

import (
	"context"
	"testing"

	"github.com/chammyae24/newsprint-sudoku/internal/detect"
	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/generator"
	"github.com/chammyae24/newsprint-sudoku/internal/hint"
	"github.com/chammyae24/newsprint-sudoku/internal/infrastructure/storage"
	"github.com/chammyae24/newsprint-sudoku/internal/solver"
	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	e := solver.NewTechniqueEngine()
	return NewService(
		s,
		e,
		generator.New(s),
		validator.New(),
		hint.New(e),
		detect.New(),
		storage.NewFS(t.TempDir()),
	)
}

const sampleLine = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestServiceEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, _, err := svc.Generate(ctx, 3, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	n, _, err := svc.CountSolutions(ctx, &p.Board, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("generated puzzle has %d solutions", n)
	}

	ok, conflicts, err := svc.Validate(ctx, &p.Board)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || len(conflicts) != 0 {
		t.Fatalf("fresh puzzle reported conflicts: %v", conflicts)
	}

	p.ID = "easy-3"
	if err := svc.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	loaded, err := svc.Load(ctx, "easy-3")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Board.Line() != p.Board.Line() {
		t.Fatal("persisted board differs")
	}
	metas, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 || metas[0].ID != "easy-3" {
		t.Fatalf("List = %+v", metas)
	}
}

func TestServiceDeduceLeavesInputAlone(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	b, err := domain.ParseLine(sampleLine)
	if err != nil {
		t.Fatal(err)
	}
	steps, solved, err := svc.Deduce(ctx, b)
	if err != nil {
		t.Fatal(err)
	}
	if !solved || len(steps) == 0 {
		t.Fatalf("solved=%v steps=%d", solved, len(steps))
	}
	if b.Solved() {
		t.Fatal("Deduce mutated the caller's board")
	}

	basics, err := svc.SolvableWithBasics(ctx, b)
	if err != nil {
		t.Fatal(err)
	}
	if !basics {
		t.Fatal("singles-solvable puzzle not recognized as basic")
	}
}

func TestServiceGuardsMissingDependencies(t *testing.T) {
	ctx := context.Background()
	var svc Service

	if _, _, err := svc.Solve(ctx, &domain.Board{}); err == nil {
		t.Fatal("nil solver not guarded")
	}
	if _, _, err := svc.Hint(ctx, &domain.Board{}); err == nil {
		t.Fatal("nil hinter not guarded")
	}
	if err := svc.Save(ctx, &domain.Puzzle{ID: "x"}); err == nil {
		t.Fatal("nil storage not guarded")
	}
}
