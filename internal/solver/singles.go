package solver

import (
	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/technique"
)

// nakedSingle finds the first empty cell whose candidate set has
// exactly one member.
func nakedSingle(b *domain.Board) *domain.TechniqueResult {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := b.Cells[r][c]
			if cell.Value != 0 {
				continue
			}
			if d, ok := cell.Notes.Single(); ok {
				at := domain.CellCoord{Row: r, Col: c}
				return &domain.TechniqueResult{
					Technique: domain.TechniqueNakedSingle,
					Primary:   []domain.CellCoord{at},
					Placement: &domain.Placement{Cell: at, Digit: d},
				}
			}
		}
	}
	return nil
}

// hiddenSingle finds the first digit that is a candidate of exactly
// one empty cell within some unit. Rows are checked before columns
// before boxes; the first match wins.
func hiddenSingle(b *domain.Board) *domain.TechniqueResult {
	for _, u := range technique.Units() {
		for d := uint8(1); d <= 9; d++ {
			var at domain.CellCoord
			count := 0
			for _, c := range u.Cells {
				cell := b.Cells[c.Row][c.Col]
				if cell.Value == 0 && cell.Notes.Has(d) {
					at = c
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				return &domain.TechniqueResult{
					Technique: domain.TechniqueHiddenSingle,
					Primary:   []domain.CellCoord{at},
					Secondary: unitCoords(u),
					Placement: &domain.Placement{Cell: at, Digit: d},
				}
			}
		}
	}
	return nil
}

func unitCoords(u technique.Unit) []domain.CellCoord {
	out := make([]domain.CellCoord, 9)
	copy(out, u.Cells[:])
	return out
}
