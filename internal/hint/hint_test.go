package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/solver"
)

const solvedLine = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestHintSuggestsPlacement(t *testing.T) {
	b, err := domain.ParseLine(solvedLine)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 9; r++ {
		b.Cells[r][0] = domain.Cell{}
	}

	g := New(solver.NewTechniqueEngine())
	h, ok, err := g.Hint(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no hint on a board full of singles")
	}
	p := h.Result.Placement
	if p == nil || p.Cell.Col != 0 {
		t.Fatalf("hint placement = %+v, want a column 0 cell", p)
	}
	if h.Message == "" || !strings.Contains(h.Message, "naked single") {
		t.Fatalf("message = %q", h.Message)
	}

	// the caller's board must stay untouched
	if b.Cells[p.Cell.Row][0].Value != 0 {
		t.Fatal("Hint mutated the caller's board")
	}
	for r := 0; r < 9; r++ {
		for c := 1; c < 9; c++ {
			if b.Cells[r][c].Notes != 0 {
				t.Fatal("Hint leaked normalized notes into the caller's board")
			}
		}
	}
}

func TestHintStuck(t *testing.T) {
	g := New(solver.NewTechniqueEngine())
	_, ok, err := g.Hint(context.Background(), &domain.Board{})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("empty board produced a hint")
	}
}
