package validator

import (
	"context"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

// SafeInGrid reports whether digit can be placed at (row, col) without
// colliding in its row, column, or containing 3x3 box. The cell itself
// is ignored so an already-placed value can be re-checked.
func SafeInGrid(grid *[9][9]uint8, row, col int, digit uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && grid[row][i] == digit {
			return false
		}
		if i != row && grid[i][col] == digit {
			return false
		}
	}
	return SafeInBox(grid, row, col, digit)
}

// SafeInBox is the same check restricted to the cell's 3x3 box.
func SafeInBox(grid *[9][9]uint8, row, col int, digit uint8) bool {
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && grid[r][c] == digit {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every row, column, and box of a full grid
// is a permutation of 1..9.
func IsComplete(grid *[9][9]uint8) bool {
	for i := 0; i < 9; i++ {
		var row, col, box domain.DigitSet
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			row.Add(grid[i][j])
			col.Add(grid[j][i])
			box.Add(grid[br+j/3][bc+j%3])
		}
		if row != domain.FullDigitSet || col != domain.FullDigitSet || box != domain.FullDigitSet {
			return false
		}
	}
	return true
}

// FastValidator scans the whole board for row/col/box conflicts.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Cells[r][c].Value
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Cells[r][c].Value
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Cells[r][c].Value
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
