package solver

import (
	"context"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// Solve completes the board by brute force and returns a new board;
// the input is not mutated.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	out := b.Clone()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out.Cells[r][c].Value = grid[r][c]
			out.Cells[r][c].Notes = 0
		}
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
