package solver

import (
	"context"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// CountSolutions counts completions of the board up to limit and stops
// searching the moment the limit is reached. limit=2 answers the
// "exactly one solution" question cheaply; limit=1 is a plain
// solvability probe.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := b.Values()
	nodes := 0
	count := countGrid(ctx, &grid, limit, &nodes)
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// countGrid is the shared search core; the generator calls it directly
// on a raw grid during digging.
func countGrid(ctx context.Context, grid *[9][9]uint8, limit int, nodes *int) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			*nodes++
			if isValid(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					grid[r][c] = 0
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count
}
