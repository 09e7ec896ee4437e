package solver

import (
	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/technique"
	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

// legalCandidates derives the digits still placeable at (r, c) from
// the placed values alone.
func legalCandidates(grid *[9][9]uint8, r, c int) domain.DigitSet {
	var set domain.DigitSet
	for d := uint8(1); d <= 9; d++ {
		if validator.SafeInGrid(grid, r, c, d) {
			set.Add(d)
		}
	}
	return set
}

// NormalizeNotes brings every cell's notes in line with the placed
// values. Empty cells with no notes are seeded with their full legal
// candidate set; cells that already carry notes only lose digits that
// placements now rule out. Earlier eliminations therefore persist
// across solver passes instead of being recomputed away.
func NormalizeNotes(b *domain.Board) {
	grid := b.Values()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := &b.Cells[r][c]
			if cell.Value != 0 {
				cell.Notes = 0
				continue
			}
			legal := legalCandidates(&grid, r, c)
			if cell.Notes == 0 {
				cell.Notes = legal
			} else {
				cell.Notes &= legal
			}
		}
	}
}

// place writes a digit and propagates it: the cell's notes are cleared
// and the digit is struck from every peer's notes.
func place(b *domain.Board, at domain.CellCoord, d uint8) {
	b.Cells[at.Row][at.Col].Value = d
	b.Cells[at.Row][at.Col].Notes = 0
	for _, p := range technique.Peers(at) {
		b.Cells[p.Row][p.Col].Notes.Remove(d)
	}
}

// applyResult mutates the board per a technique result: either one
// placement or a batch of note eliminations.
func applyResult(b *domain.Board, res *domain.TechniqueResult) {
	if res.Placement != nil {
		place(b, res.Placement.Cell, res.Placement.Digit)
		return
	}
	for _, e := range res.Eliminations {
		b.Cells[e.Cell.Row][e.Cell.Col].Notes.Remove(e.Digit)
	}
}
