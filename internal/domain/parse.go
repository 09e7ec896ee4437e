package domain

import (
	"fmt"
	"strings"
)

// ParseLine builds a board from an 81-character puzzle string in
// row-major order. Digits 1-9 become givens; '0' and '.' are empty.
func ParseLine(line string) (*Board, error) {
	line = strings.TrimSpace(line)
	if len(line) != 81 {
		return nil, fmt.Errorf("puzzle string must be 81 characters, got %d", len(line))
	}
	b := &Board{}
	for i, ch := range []byte(line) {
		r, c := i/9, i%9
		switch {
		case ch >= '1' && ch <= '9':
			b.Cells[r][c] = Cell{Value: ch - '0', Given: true}
		case ch == '0' || ch == '.':
			// empty
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return b, nil
}

// Line renders the board as an 81-character string, '.' for empty.
func (b *Board) Line() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Cells[r][c].Value
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// Format renders the board as a human-readable 9-line grid.
func (b *Board) Format() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Cells[r][c].Value
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c == 2 || c == 5 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString("---+---+---\n")
		}
	}
	return sb.String()
}
