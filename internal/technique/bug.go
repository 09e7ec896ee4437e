package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// BUGPlusOne applies when every empty cell is bivalue except exactly
// one trivalue cell. If one of that cell's candidates occurs exactly
// three times in its row, its column, and its box, placing it is the
// only way to avoid a deadly (multi-solution) pattern, so the result
// is a direct placement with no eliminations.
func BUGPlusOne(b *domain.Board) *domain.TechniqueResult {
	extra := domain.CellCoord{Row: -1, Col: -1}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := domain.CellCoord{Row: r, Col: c}
			n := notesAt(b, cell)
			if b.Cells[r][c].Value != 0 {
				continue
			}
			switch n.Count() {
			case 2:
			case 3:
				if extra.Row >= 0 {
					return nil // two trivalue cells, not a BUG+1 shape
				}
				extra = cell
			default:
				return nil
			}
		}
	}
	if extra.Row < 0 {
		return nil
	}
	for _, d := range notesAt(b, extra).Digits() {
		if digitCount(b, Row(extra.Row), d) == 3 &&
			digitCount(b, Column(extra.Col), d) == 3 &&
			digitCount(b, Box(extra.Box()), d) == 3 {
			return &domain.TechniqueResult{
				Technique: domain.TechniqueBUGPlusOne,
				Primary:   []domain.CellCoord{extra},
				Placement: &domain.Placement{Cell: extra, Digit: d},
			}
		}
	}
	return nil
}

func digitCount(b *domain.Board, u Unit, d uint8) int {
	return len(cellsWithDigit(b, u, d))
}
