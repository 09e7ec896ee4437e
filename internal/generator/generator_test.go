package generator

import (
	"context"
	"testing"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/solver"
	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	g := New(solver.NewBacktrackingSolver())
	check := solver.NewDLXSolver()

	diffs := []domain.Difficulty{
		domain.Easy, domain.Medium, domain.Hard, domain.Expert, domain.Master,
	}
	for _, diff := range diffs {
		diff := diff
		t.Run(diff.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 42, diff)
			if err != nil {
				t.Fatalf("Generate: %v (nodes=%d)", err, st.Nodes)
			}

			// embedded solution is a valid full grid
			var sol [9][9]uint8
			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					cell := p.Board.Cells[r][c]
					sol[r][c] = cell.Solution
					if cell.Value != 0 {
						if !cell.Given {
							t.Fatalf("clue at (%d,%d) not marked given", r, c)
						}
						if cell.Value != cell.Solution {
							t.Fatalf("clue at (%d,%d) contradicts the solution", r, c)
						}
						givens++
					}
				}
			}
			if !validator.IsComplete(&sol) {
				t.Fatal("embedded solution is not a valid grid")
			}
			if givens < 17 {
				t.Fatalf("only %d givens, below the uniqueness floor", givens)
			}
			if min := 81 - targetRemovals(diff); givens < min {
				t.Fatalf("givens = %d, want at least %d for %s", givens, min, diff)
			}

			// unique, and solving reproduces the embedded solution
			n, _, err := check.CountSolutions(ctx, &p.Board, 2)
			if err != nil {
				t.Fatal(err)
			}
			if n != 1 {
				t.Fatalf("puzzle admits %d solutions", n)
			}
			solved, _, err := check.Solve(ctx, &p.Board)
			if err != nil {
				t.Fatal(err)
			}
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if solved.Cells[r][c].Value != sol[r][c] {
						t.Fatalf("solver disagrees with embedded solution at (%d,%d)", r, c)
					}
				}
			}
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	g := New(solver.NewBacktrackingSolver())

	p1, _, err := g.Generate(ctx, 7, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	p2, _, err := g.Generate(ctx, 7, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Board.Line() != p2.Board.Line() {
		t.Fatal("same seed produced different puzzles")
	}

	p3, _, err := g.Generate(ctx, 8, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Board.Line() == p3.Board.Line() {
		t.Fatal("different seeds produced identical puzzles")
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New(solver.NewBacktrackingSolver()).Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatal("expected context error")
	}
}
