package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// XYWing: a pivot with candidates {A,B} and two pincer peers holding
// {A,C} and {B,C} strike C from every cell seeing both pincers.
func XYWing(b *domain.Board) *domain.TechniqueResult {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			pivot := domain.CellCoord{Row: r, Col: c}
			pn := notesAt(b, pivot)
			if pn.Count() != 2 {
				continue
			}
			peers := Peers(pivot)
			for i, p1 := range peers {
				n1 := notesAt(b, p1)
				if n1.Count() != 2 || n1 == pn || n1&pn == 0 {
					continue
				}
				for _, p2 := range peers[i+1:] {
					n2 := notesAt(b, p2)
					if n2.Count() != 2 || n2 == pn || n2 == n1 {
						continue
					}
					// shared digit C, distinct pivot digits A and B
					common := n1 & n2
					z, ok := common.Single()
					if !ok || pn.Has(z) {
						continue
					}
					if (n1|n2)&^common != pn {
						continue
					}
					if res := wingResult(b, domain.TechniqueXYWing, pivot, p1, p2, z, false); res != nil {
						return res
					}
				}
			}
		}
	}
	return nil
}

// XYZWing: as XYWing, but the pivot holds {X,Y,Z} and keeps Z itself,
// so Z is only struck from cells seeing the pivot and both pincers.
func XYZWing(b *domain.Board) *domain.TechniqueResult {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			pivot := domain.CellCoord{Row: r, Col: c}
			pn := notesAt(b, pivot)
			if pn.Count() != 3 {
				continue
			}
			peers := Peers(pivot)
			for i, p1 := range peers {
				n1 := notesAt(b, p1)
				if n1.Count() != 2 || n1&pn != n1 {
					continue
				}
				for _, p2 := range peers[i+1:] {
					n2 := notesAt(b, p2)
					if n2.Count() != 2 || n2&pn != n2 || n2 == n1 {
						continue
					}
					if n1|n2 != pn {
						continue
					}
					z, ok := (n1 & n2).Single()
					if !ok {
						continue
					}
					if res := wingResult(b, domain.TechniqueXYZWing, pivot, p1, p2, z, true); res != nil {
						return res
					}
				}
			}
		}
	}
	return nil
}

// wingResult collects the Z eliminations for a wing pattern. When
// needPivot is set, only cells that also see the pivot qualify.
func wingResult(b *domain.Board, tech domain.Technique, pivot, p1, p2 domain.CellCoord, z uint8, needPivot bool) *domain.TechniqueResult {
	var elims []domain.Elimination
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := domain.CellCoord{Row: r, Col: c}
			if cell == pivot || cell == p1 || cell == p2 {
				continue
			}
			if !cell.Sees(p1) || !cell.Sees(p2) {
				continue
			}
			if needPivot && !cell.Sees(pivot) {
				continue
			}
			if notesAt(b, cell).Has(z) {
				elims = append(elims, domain.Elimination{Cell: cell, Digit: z})
			}
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &domain.TechniqueResult{
		Technique:    tech,
		Primary:      []domain.CellCoord{pivot},
		Secondary:    []domain.CellCoord{p1, p2},
		Eliminations: elims,
	}
}
