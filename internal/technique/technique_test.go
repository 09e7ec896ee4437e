package technique

import (
	"testing"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

// note is one cell's candidate set in a hand-built scenario.
type note struct {
	r, c   int
	digits []uint8
}

func noteBoard(notes []note) *domain.Board {
	b := &domain.Board{}
	for _, n := range notes {
		b.Cells[n.r][n.c].Notes = domain.NewDigitSet(n.digits...)
	}
	return b
}

func coord(r, c int) domain.CellCoord { return domain.CellCoord{Row: r, Col: c} }

func checkEliminations(t *testing.T, res *domain.TechniqueResult, want []domain.Elimination) {
	t.Helper()
	if res == nil {
		t.Fatal("no result")
	}
	if len(res.Eliminations) != len(want) {
		t.Fatalf("got %d eliminations %v, want %d", len(res.Eliminations), res.Eliminations, len(want))
	}
	for _, w := range want {
		found := false
		for _, e := range res.Eliminations {
			if e == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing elimination %v in %v", w, res.Eliminations)
		}
	}
}

func TestPointing(t *testing.T) {
	// digit 5 confined to row 0 inside box 0 strikes 5 at (0,5)
	b := noteBoard([]note{
		{0, 0, []uint8{1, 5}},
		{0, 1, []uint8{2, 5}},
		{0, 5, []uint8{5, 9}},
	})
	res := LockedCandidates(b)
	if res == nil || res.Technique != domain.TechniquePointing {
		t.Fatalf("got %+v, want pointing", res)
	}
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(0, 5), Digit: 5},
	})
}

func TestClaiming(t *testing.T) {
	// digit 7 confined to box 5 inside row 3 strikes 7 from the rest of
	// the box
	b := noteBoard([]note{
		{3, 6, []uint8{1, 7}},
		{3, 7, []uint8{2, 7}},
		{4, 7, []uint8{3, 7}},
		{5, 8, []uint8{5, 7}},
	})
	res := LockedCandidates(b)
	if res == nil || res.Technique != domain.TechniqueClaiming {
		t.Fatalf("got %+v, want claiming", res)
	}
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(4, 7), Digit: 7},
		{Cell: coord(5, 8), Digit: 7},
	})
}

func TestNakedPair(t *testing.T) {
	b := noteBoard([]note{
		{0, 0, []uint8{2, 5}},
		{0, 1, []uint8{2, 5}},
		{0, 4, []uint8{2, 5, 7}},
		{0, 7, []uint8{5, 8}},
	})
	res := Subsets(b)
	if res == nil || res.Technique != domain.TechniqueNakedSubset {
		t.Fatalf("got %+v, want naked subset", res)
	}
	if len(res.Primary) != 2 {
		t.Fatalf("pair should have 2 primary cells, got %v", res.Primary)
	}
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(0, 4), Digit: 2},
		{Cell: coord(0, 4), Digit: 5},
		{Cell: coord(0, 7), Digit: 5},
	})
}

func TestHiddenPair(t *testing.T) {
	// 4 and 5 fit only at (0,0) and (0,1); their other candidates go
	b := noteBoard([]note{
		{0, 0, []uint8{4, 5, 6, 7}},
		{0, 1, []uint8{4, 5, 8}},
		{0, 3, []uint8{6, 8}},
		{0, 5, []uint8{7, 8}},
	})
	res := Subsets(b)
	if res == nil || res.Technique != domain.TechniqueHiddenSubset {
		t.Fatalf("got %+v, want hidden subset", res)
	}
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(0, 0), Digit: 6},
		{Cell: coord(0, 0), Digit: 7},
		{Cell: coord(0, 1), Digit: 8},
	})
}

func TestXWing(t *testing.T) {
	// digit 4 in rows 2 and 6 confined to columns 3 and 7
	b := noteBoard([]note{
		{2, 3, []uint8{4, 1}},
		{2, 7, []uint8{4, 2}},
		{6, 3, []uint8{4, 5}},
		{6, 7, []uint8{4, 6}},
		{0, 3, []uint8{4, 7}},
		{5, 7, []uint8{4, 8}},
	})
	res := XWing(b)
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(0, 3), Digit: 4},
		{Cell: coord(5, 7), Digit: 4},
	})
	if res.Technique != domain.TechniqueXWing {
		t.Fatalf("technique = %v", res.Technique)
	}
}

func TestSwordfish(t *testing.T) {
	// digit 9 in rows 0, 3 and 6 confined to columns 1, 4 and 8
	b := noteBoard([]note{
		{0, 1, []uint8{9, 1}},
		{0, 4, []uint8{9, 2}},
		{3, 4, []uint8{9, 3}},
		{3, 8, []uint8{9, 4}},
		{6, 1, []uint8{9, 5}},
		{6, 8, []uint8{9, 6}},
		{2, 4, []uint8{9, 7}},
		{7, 8, []uint8{9, 8}},
	})
	res := Swordfish(b)
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(2, 4), Digit: 9},
		{Cell: coord(7, 8), Digit: 9},
	})
	if res.Technique != domain.TechniqueSwordfish {
		t.Fatalf("technique = %v", res.Technique)
	}
}

func TestSkyscraper(t *testing.T) {
	// digit 7 in rows 1 and 4 sharing column 0; tips (1,3) and (4,5),
	// and (0,5) sees both
	b := noteBoard([]note{
		{1, 0, []uint8{7, 1}},
		{1, 3, []uint8{7, 2}},
		{4, 0, []uint8{7, 3}},
		{4, 5, []uint8{7, 4}},
		{0, 5, []uint8{7, 9}},
	})
	res := Skyscraper(b)
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(0, 5), Digit: 7},
	})
	if res.Technique != domain.TechniqueSkyscraper {
		t.Fatalf("technique = %v", res.Technique)
	}
}

func TestXYWing(t *testing.T) {
	// pivot {1,2}, pincers {1,3} and {2,3}; 3 goes from the crossing cell
	b := noteBoard([]note{
		{0, 0, []uint8{1, 2}},
		{0, 4, []uint8{1, 3}},
		{4, 0, []uint8{2, 3}},
		{4, 4, []uint8{3, 7}},
	})
	res := XYWing(b)
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(4, 4), Digit: 3},
	})
	if res.Primary[0] != coord(0, 0) {
		t.Fatalf("pivot = %v", res.Primary)
	}
}

func TestXYZWing(t *testing.T) {
	// trivalue pivot keeps its z, so only a cell seeing all three
	// pattern cells loses the 3
	b := noteBoard([]note{
		{4, 4, []uint8{1, 2, 3}},
		{3, 5, []uint8{2, 3}},
		{4, 0, []uint8{1, 3}},
		{4, 3, []uint8{3, 8}},
	})
	res := XYZWing(b)
	checkEliminations(t, res, []domain.Elimination{
		{Cell: coord(4, 3), Digit: 3},
	})
	if res.Technique != domain.TechniqueXYZWing {
		t.Fatalf("technique = %v", res.Technique)
	}
}

func TestBUGPlusOne(t *testing.T) {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Cells[r][c].Value = 9
		}
	}
	open := []note{
		{4, 4, []uint8{1, 2, 3}}, // the one trivalue cell
		{4, 0, []uint8{3, 5}},
		{4, 8, []uint8{3, 6}},
		{0, 4, []uint8{3, 7}},
		{8, 4, []uint8{3, 8}},
		{3, 3, []uint8{3, 9}},
		{5, 5, []uint8{3, 4}},
	}
	for _, n := range open {
		b.Cells[n.r][n.c].Value = 0
		b.Cells[n.r][n.c].Notes = domain.NewDigitSet(n.digits...)
	}

	res := BUGPlusOne(b)
	if res == nil {
		t.Fatal("no result")
	}
	if res.Placement == nil || res.Placement.Cell != coord(4, 4) || res.Placement.Digit != 3 {
		t.Fatalf("placement = %+v, want 3 at (4,4)", res.Placement)
	}

	// a second trivalue cell breaks the shape
	b.Cells[4][0].Notes = domain.NewDigitSet(3, 5, 7)
	if BUGPlusOne(b) != nil {
		t.Fatal("two trivalue cells must not match")
	}
}

func TestDetectorsIgnoreFilledCells(t *testing.T) {
	b := noteBoard([]note{
		{0, 0, []uint8{1, 5}},
		{0, 1, []uint8{2, 5}},
		{0, 5, []uint8{5, 9}},
	})
	// a value kills the cell's notes for every detector
	b.Cells[0][1].Value = 2
	if res := LockedCandidates(b); res != nil {
		t.Fatalf("pattern should dissolve once a spot is filled, got %+v", res)
	}
}
