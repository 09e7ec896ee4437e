package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links as an alternative
// brute-force backend. Exact-cover mapping: 324 constraint columns,
// 729 candidate rows (r,c,v).
// Columns: 0..80   -> cell (r,c) filled
//          81..161 -> row r has digit v
//          162..242-> col c has digit v
//          243..323-> box b has digit v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols   = 324
	dlxRows   = 729
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlx struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	sol       [81]*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newDLX() *dlx {
	d := &dlx{}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = dlxCols

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				row := dlxRowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range dlxRowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring over the row's 4 nodes
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func dlxRowIndex(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func dlxRowColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		colCell + r*9 + c,
		colRowNum + r*9 + (v - 1),
		colColNum + c*9 + (v - 1),
		colBoxNum + box*9 + (v - 1),
	}
}

func (d *dlx) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the fewest candidates.
func (d *dlx) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active && (best == nil || c.size < best.size) {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search counts exact covers up to limit and stops there, leaving the
// links restored on the way out.
func (d *dlx) search(ctx context.Context, k, limit int, found *int) bool {
	if ctx.Err() != nil {
		return true
	}
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= limit
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		done := d.search(ctx, k+1, limit, found)
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
		if done {
			d.uncover(c)
			return true
		}
	}
	d.uncover(c)
	return false
}

// loadGivens covers the columns of every placed value's row. Two
// givens that share a unit and a digit would cover the same constraint
// column twice; that is a contradiction, not a puzzle.
func (d *dlx) loadGivens(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := int(b.Cells[r][c].Value)
			if v == 0 {
				continue
			}
			head := d.rowHead[dlxRowIndex(r, c, v)]
			if head == nil {
				return errors.New("invalid row mapping")
			}
			for j := head; ; j = j.right {
				if !j.col.active {
					return fmt.Errorf("conflicting given %d at r%dc%d", v, r+1, c+1)
				}
				d.cover(j.col)
				if j.right == head {
					break
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	d := newDLX()
	if err := d.loadGivens(b); err != nil {
		return nil, ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	if found < 1 {
		return nil, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	out := b.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := dlxDecodeRow(d.sol[i].rowIdx)
		out.Cells[r][c].Value = uint8(v)
		out.Cells[r][c].Notes = 0
	}
	return out, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	d := newDLX()
	if err := d.loadGivens(b); err != nil {
		return 0, ports.Stats{}, err
	}
	found := 0
	_ = d.search(ctx, 0, limit, &found)
	return found, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}

func dlxDecodeRow(row int) (r, c, v int) {
	cell := row / 9
	return cell / 9, cell % 9, row%9 + 1
}
