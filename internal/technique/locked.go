package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// LockedCandidates finds the first pointing or claiming pattern.
// Pointing is tried box by box before claiming is tried line by line.
func LockedCandidates(b *domain.Board) *domain.TechniqueResult {
	if res := pointing(b); res != nil {
		return res
	}
	return claiming(b)
}

// pointing: within a box, all occurrences of a digit on one row or
// column strike that digit from the rest of the line outside the box.
func pointing(b *domain.Board) *domain.TechniqueResult {
	for box := 0; box < 9; box++ {
		u := Box(box)
		for d := uint8(1); d <= 9; d++ {
			spots := cellsWithDigit(b, u, d)
			if len(spots) < 2 {
				continue
			}
			row, col := sameLine(spots)
			var elims []domain.Elimination
			switch {
			case row >= 0:
				elims = lineEliminations(b, Row(row), d, box)
			case col >= 0:
				elims = lineEliminations(b, Column(col), d, box)
			}
			if len(elims) > 0 {
				return &domain.TechniqueResult{
					Technique:    domain.TechniquePointing,
					Primary:      spots,
					Eliminations: elims,
				}
			}
		}
	}
	return nil
}

// claiming: within a row or column, all occurrences of a digit inside
// one box strike that digit from the rest of the box.
func claiming(b *domain.Board) *domain.TechniqueResult {
	lines := make([]Unit, 0, 18)
	for i := 0; i < 9; i++ {
		lines = append(lines, Row(i))
	}
	for i := 0; i < 9; i++ {
		lines = append(lines, Column(i))
	}
	for _, u := range lines {
		for d := uint8(1); d <= 9; d++ {
			spots := cellsWithDigit(b, u, d)
			if len(spots) < 2 {
				continue
			}
			box := spots[0].Box()
			confined := true
			for _, s := range spots[1:] {
				if s.Box() != box {
					confined = false
					break
				}
			}
			if !confined {
				continue
			}
			var elims []domain.Elimination
			for _, c := range Box(box).Cells {
				if u.Kind == RowUnit && c.Row == u.Index {
					continue
				}
				if u.Kind == ColumnUnit && c.Col == u.Index {
					continue
				}
				if notesAt(b, c).Has(d) {
					elims = append(elims, domain.Elimination{Cell: c, Digit: d})
				}
			}
			if len(elims) > 0 {
				return &domain.TechniqueResult{
					Technique:    domain.TechniqueClaiming,
					Primary:      spots,
					Eliminations: elims,
				}
			}
		}
	}
	return nil
}

// cellsWithDigit lists the empty cells of a unit whose notes contain d.
func cellsWithDigit(b *domain.Board, u Unit, d uint8) []domain.CellCoord {
	var out []domain.CellCoord
	for _, c := range u.Cells {
		if notesAt(b, c).Has(d) {
			out = append(out, c)
		}
	}
	return out
}

// sameLine reports the shared row or column of the cells, -1 when the
// coordinate differs. Exactly one of the results can be >= 0 here
// because the cells come from a single box.
func sameLine(cells []domain.CellCoord) (row, col int) {
	row, col = cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row != row {
			row = -1
		}
		if c.Col != col {
			col = -1
		}
	}
	return row, col
}

// lineEliminations strikes d from the line's cells outside the given box.
func lineEliminations(b *domain.Board, line Unit, d uint8, skipBox int) []domain.Elimination {
	var out []domain.Elimination
	for _, c := range line.Cells {
		if c.Box() == skipBox {
			continue
		}
		if notesAt(b, c).Has(d) {
			out = append(out, domain.Elimination{Cell: c, Digit: d})
		}
	}
	return out
}
