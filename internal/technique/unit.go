// Package technique holds the pattern detectors of the deduction
// engine. Every detector is a pure function from a board with
// up-to-date notes to at most one result; none of them mutate state.
package technique

import "github.com/chammyae24/newsprint-sudoku/internal/domain"

// UnitKind distinguishes the three kinds of uniqueness-constrained
// cell groups.
type UnitKind int

const (
	RowUnit UnitKind = iota
	ColumnUnit
	BoxUnit
)

// Unit is one row, column, or box as an enumerable coordinate group.
type Unit struct {
	Kind  UnitKind
	Index int
	Cells [9]domain.CellCoord
}

// Row returns row r as a unit.
func Row(r int) Unit {
	u := Unit{Kind: RowUnit, Index: r}
	for c := 0; c < 9; c++ {
		u.Cells[c] = domain.CellCoord{Row: r, Col: c}
	}
	return u
}

// Column returns column c as a unit.
func Column(c int) Unit {
	u := Unit{Kind: ColumnUnit, Index: c}
	for r := 0; r < 9; r++ {
		u.Cells[r] = domain.CellCoord{Row: r, Col: c}
	}
	return u
}

// Box returns box b (0..8, row-major) as a unit.
func Box(b int) Unit {
	u := Unit{Kind: BoxUnit, Index: b}
	br, bc := (b/3)*3, (b%3)*3
	for i := 0; i < 9; i++ {
		u.Cells[i] = domain.CellCoord{Row: br + i/3, Col: bc + i%3}
	}
	return u
}

// Units enumerates all rows, then all columns, then all boxes, in the
// search order shared by the subset detectors.
func Units() []Unit {
	out := make([]Unit, 0, 27)
	for i := 0; i < 9; i++ {
		out = append(out, Row(i))
	}
	for i := 0; i < 9; i++ {
		out = append(out, Column(i))
	}
	for i := 0; i < 9; i++ {
		out = append(out, Box(i))
	}
	return out
}

// Peers lists the 20 cells sharing a row, column, or box with c.
func Peers(c domain.CellCoord) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, 20)
	for r := 0; r < 9; r++ {
		for col := 0; col < 9; col++ {
			o := domain.CellCoord{Row: r, Col: col}
			if c.Sees(o) {
				out = append(out, o)
			}
		}
	}
	return out
}

// notesAt returns the candidate set of an empty cell, or the empty set
// for a filled cell.
func notesAt(b *domain.Board, c domain.CellCoord) domain.DigitSet {
	cell := b.Cells[c.Row][c.Col]
	if cell.Value != 0 {
		return 0
	}
	return cell.Notes
}

// combinations invokes fn with every k-sized index combination of
// 0..n-1, in lexicographic order, until fn returns true.
func combinations(n, k int, fn func(idx []int) bool) bool {
	idx := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			return fn(idx)
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			if rec(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return rec(0, 0)
}
