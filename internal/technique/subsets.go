package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// Subsets finds the first naked or hidden subset, smallest size first
// (pair, then triple, then quad). For each size the naked form is
// searched before the hidden form, each over rows, then columns, then
// boxes.
func Subsets(b *domain.Board) *domain.TechniqueResult {
	for n := 2; n <= 4; n++ {
		if res := NakedSubset(b, n); res != nil {
			return res
		}
		if res := HiddenSubset(b, n); res != nil {
			return res
		}
	}
	return nil
}

// NakedSubset finds n cells of a unit whose combined candidates total
// exactly n digits; those digits are struck from every other cell of
// the unit.
func NakedSubset(b *domain.Board, n int) *domain.TechniqueResult {
	var found *domain.TechniqueResult
	for _, u := range Units() {
		var empty []domain.CellCoord
		for _, c := range u.Cells {
			notes := notesAt(b, c)
			if notes.Count() >= 2 && notes.Count() <= n {
				empty = append(empty, c)
			}
		}
		if len(empty) < n {
			continue
		}
		u := u
		ok := combinations(len(empty), n, func(idx []int) bool {
			var union domain.DigitSet
			cells := make([]domain.CellCoord, n)
			for i, j := range idx {
				cells[i] = empty[j]
				union |= notesAt(b, empty[j])
			}
			if union.Count() != n {
				return false
			}
			var elims []domain.Elimination
			for _, c := range u.Cells {
				if containsCoord(cells, c) {
					continue
				}
				for _, d := range union.Digits() {
					if notesAt(b, c).Has(d) {
						elims = append(elims, domain.Elimination{Cell: c, Digit: d})
					}
				}
			}
			if len(elims) == 0 {
				return false
			}
			found = &domain.TechniqueResult{
				Technique:    domain.TechniqueNakedSubset,
				Primary:      cells,
				Eliminations: elims,
			}
			return true
		})
		if ok {
			return found
		}
	}
	return nil
}

// HiddenSubset finds n digits that occur only within n cells of a
// unit; every other candidate is struck from those n cells.
func HiddenSubset(b *domain.Board, n int) *domain.TechniqueResult {
	var found *domain.TechniqueResult
	for _, u := range Units() {
		// digits still unplaced in this unit and their positions
		var digits []uint8
		spots := map[uint8][]domain.CellCoord{}
		for d := uint8(1); d <= 9; d++ {
			cells := cellsWithDigit(b, u, d)
			if len(cells) >= 2 && len(cells) <= n {
				digits = append(digits, d)
				spots[d] = cells
			}
		}
		if len(digits) < n {
			continue
		}
		ok := combinations(len(digits), n, func(idx []int) bool {
			var cells []domain.CellCoord
			var set domain.DigitSet
			for _, j := range idx {
				set.Add(digits[j])
				for _, c := range spots[digits[j]] {
					if !containsCoord(cells, c) {
						cells = append(cells, c)
					}
				}
			}
			if len(cells) != n {
				return false
			}
			var elims []domain.Elimination
			for _, c := range cells {
				for _, d := range notesAt(b, c).Digits() {
					if !set.Has(d) {
						elims = append(elims, domain.Elimination{Cell: c, Digit: d})
					}
				}
			}
			if len(elims) == 0 {
				return false
			}
			found = &domain.TechniqueResult{
				Technique:    domain.TechniqueHiddenSubset,
				Primary:      cells,
				Eliminations: elims,
			}
			return true
		})
		if ok {
			return found
		}
	}
	return nil
}

func containsCoord(cells []domain.CellCoord, c domain.CellCoord) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
