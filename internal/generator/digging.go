package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

// Generate produces a puzzle with a unique solution from the seed and
// target difficulty. The three diagonal boxes are filled first with
// independent random permutations, the rest is completed by randomized
// backtracking, and holes are dug while uniqueness holds.
func (g *DiggingGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var grid [9][9]uint8
	seedDiagonalBoxes(rng, &grid)
	if !fillRemaining(ctx, rng, &grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrIncompleteGrid
	}
	solution := grid

	board := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			board.Cells[r][c] = domain.Cell{
				Value:    solution[r][c],
				Given:    true,
				Solution: solution[r][c],
			}
		}
	}

	nodes, err := g.dig(ctx, rng, board, targetRemovals(diff))
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      *board,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// dig visits all 81 positions in random order. Each filled cell is
// tentatively cleared; when the solution count under limit 2 is not
// exactly 1 the clearing is reverted, otherwise it sticks. Digging
// stops at the difficulty's target removal count or when every
// position has been tried.
func (g *DiggingGenerator) dig(ctx context.Context, rng *rand.Rand, b *domain.Board, target int) (int, error) {
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	nodes := 0
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		if err := ctx.Err(); err != nil {
			return nodes, err
		}
		r, c := pos/9, pos%9
		cell := &b.Cells[r][c]
		if cell.Value == 0 {
			continue
		}
		old := cell.Value
		cell.Value = 0
		cell.Given = false
		count, st, err := g.Solver.CountSolutions(ctx, b, 2)
		nodes += st.Nodes
		if err != nil {
			return nodes, err
		}
		if count != 1 {
			// revert, this clue is load-bearing
			cell.Value = old
			cell.Given = true
			continue
		}
		removed++
	}
	return nodes, nil
}

// seedDiagonalBoxes places random permutations in boxes 0, 4, and 8.
// They share no rows or columns, so the fills cannot conflict.
func seedDiagonalBoxes(rng *rand.Rand, grid *[9][9]uint8) {
	for box := 0; box < 3; box++ {
		digits := shuffledDigits(rng)
		for i, d := range digits {
			grid[box*3+i/3][box*3+i%3] = d
		}
	}
}

// fillRemaining completes the grid via recursive backtracking: scan in
// row-major order, try digits in random order at the first empty cell,
// recurse, undo on failure.
func fillRemaining(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := firstEmpty(grid)
	if !ok {
		return true
	}
	for _, d := range shuffledDigits(rng) {
		if validator.SafeInGrid(grid, r, c, d) {
			grid[r][c] = d
			if fillRemaining(ctx, rng, grid) {
				return true
			}
			grid[r][c] = 0
		}
	}
	return false
}

func firstEmpty(grid *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// shuffledDigits returns 1..9 in Fisher-Yates order.
func shuffledDigits(rng *rand.Rand) [9]uint8 {
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(9, func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	return digits
}
