package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// XWing finds a size-2 fish.
func XWing(b *domain.Board) *domain.TechniqueResult {
	return fish(b, 2, domain.TechniqueXWing)
}

// Swordfish finds a size-3 fish.
func Swordfish(b *domain.Board) *domain.TechniqueResult {
	return fish(b, 3, domain.TechniqueSwordfish)
}

// fish: for one digit, n base lines whose candidates are confined to
// the same n cover lines strike the digit from those cover lines in
// every other base-direction line. Rows as base are tried before
// columns as base.
func fish(b *domain.Board, n int, tech domain.Technique) *domain.TechniqueResult {
	for d := uint8(1); d <= 9; d++ {
		if res := fishOnLines(b, d, n, tech, true); res != nil {
			return res
		}
		if res := fishOnLines(b, d, n, tech, false); res != nil {
			return res
		}
	}
	return nil
}

func fishOnLines(b *domain.Board, d uint8, n int, tech domain.Technique, rowsAsBase bool) *domain.TechniqueResult {
	line := func(i int) Unit {
		if rowsAsBase {
			return Row(i)
		}
		return Column(i)
	}
	cross := func(c domain.CellCoord) int {
		if rowsAsBase {
			return c.Col
		}
		return c.Row
	}

	// base candidates: lines where the digit sits in 2..n cells
	var baseIdx []int
	baseSpots := map[int][]domain.CellCoord{}
	for i := 0; i < 9; i++ {
		spots := cellsWithDigit(b, line(i), d)
		if len(spots) >= 2 && len(spots) <= n {
			baseIdx = append(baseIdx, i)
			baseSpots[i] = spots
		}
	}
	if len(baseIdx) < n {
		return nil
	}

	var found *domain.TechniqueResult
	ok := combinations(len(baseIdx), n, func(idx []int) bool {
		var cover domain.DigitSet // cross-line indices, reusing the bitmask with indices 1..9
		var primary []domain.CellCoord
		base := map[int]bool{}
		for _, j := range idx {
			i := baseIdx[j]
			base[i] = true
			for _, c := range baseSpots[i] {
				cover.Add(uint8(cross(c) + 1))
				primary = append(primary, c)
			}
		}
		if cover.Count() != n {
			return false
		}
		var elims []domain.Elimination
		for _, ci := range cover.Digits() {
			var coverLine Unit
			if rowsAsBase {
				coverLine = Column(int(ci - 1))
			} else {
				coverLine = Row(int(ci - 1))
			}
			for _, c := range coverLine.Cells {
				baseLine := c.Row
				if !rowsAsBase {
					baseLine = c.Col
				}
				if base[baseLine] {
					continue
				}
				if notesAt(b, c).Has(d) {
					elims = append(elims, domain.Elimination{Cell: c, Digit: d})
				}
			}
		}
		if len(elims) == 0 {
			return false
		}
		found = &domain.TechniqueResult{
			Technique:    tech,
			Primary:      primary,
			Eliminations: elims,
		}
		return true
	})
	if ok {
		return found
	}
	return nil
}

// Skyscraper: two rows (or columns) hold the digit in exactly two
// cells each and share exactly one cross-line index; the digit is
// struck from any cell that sees both of the non-shared "tip" cells.
func Skyscraper(b *domain.Board) *domain.TechniqueResult {
	for d := uint8(1); d <= 9; d++ {
		if res := skyscraperOnLines(b, d, true); res != nil {
			return res
		}
		if res := skyscraperOnLines(b, d, false); res != nil {
			return res
		}
	}
	return nil
}

func skyscraperOnLines(b *domain.Board, d uint8, rowsAsBase bool) *domain.TechniqueResult {
	line := func(i int) Unit {
		if rowsAsBase {
			return Row(i)
		}
		return Column(i)
	}
	cross := func(c domain.CellCoord) int {
		if rowsAsBase {
			return c.Col
		}
		return c.Row
	}

	var lines []int
	spots := map[int][]domain.CellCoord{}
	for i := 0; i < 9; i++ {
		cells := cellsWithDigit(b, line(i), d)
		if len(cells) == 2 {
			lines = append(lines, i)
			spots[i] = cells
		}
	}
	for a := 0; a < len(lines); a++ {
		for bIdx := a + 1; bIdx < len(lines); bIdx++ {
			s1, s2 := spots[lines[a]], spots[lines[bIdx]]
			tips := make([]domain.CellCoord, 0, 2)
			shared := 0
			for _, c1 := range s1 {
				matched := false
				for _, c2 := range s2 {
					if cross(c1) == cross(c2) {
						matched = true
					}
				}
				if matched {
					shared++
				} else {
					tips = append(tips, c1)
				}
			}
			for _, c2 := range s2 {
				matched := false
				for _, c1 := range s1 {
					if cross(c1) == cross(c2) {
						matched = true
					}
				}
				if !matched {
					tips = append(tips, c2)
				}
			}
			if shared != 1 || len(tips) != 2 {
				continue
			}
			var elims []domain.Elimination
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					cell := domain.CellCoord{Row: r, Col: c}
					if cell == tips[0] || cell == tips[1] {
						continue
					}
					if !cell.Sees(tips[0]) || !cell.Sees(tips[1]) {
						continue
					}
					if notesAt(b, cell).Has(d) {
						elims = append(elims, domain.Elimination{Cell: cell, Digit: d})
					}
				}
			}
			if len(elims) > 0 {
				return &domain.TechniqueResult{
					Technique:    domain.TechniqueSkyscraper,
					Primary:      tips,
					Secondary:    append(append([]domain.CellCoord{}, s1...), s2...),
					Eliminations: elims,
				}
			}
		}
	}
	return nil
}
