// Package detect attributes player moves to solving techniques, for
// per-move feedback and statistics. Detection always works on an
// internal clone of the supplied board.
package detect

import (
	"context"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/solver"
	"github.com/chammyae24/newsprint-sudoku/internal/technique"
)

// MoveDetector implements ports.Detector.
type MoveDetector struct{}

func New() *MoveDetector { return &MoveDetector{} }

// advanced detectors whose eliminations can enable a naked single, and
// whose results justify eliminations, in engine priority order.
var advanced = []func(*domain.Board) *domain.TechniqueResult{
	technique.LockedCandidates,
	technique.Subsets,
	technique.XWing,
	technique.Skyscraper,
	technique.Swordfish,
	technique.XYWing,
	technique.XYZWing,
}

// DetectPlacement determines which technique justifies placing
// move.Digit at move.Cell. ok is false when no technique does, the
// expected outcome for blind guesses.
func (d *MoveDetector) DetectPlacement(ctx context.Context, b *domain.Board, move domain.Placement) (domain.TechniqueResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.TechniqueResult{}, false, err
	}
	work := b.Clone()
	solver.NormalizeNotes(work)
	at := move.Cell
	notes := work.Cells[at.Row][at.Col].Notes

	if work.Cells[at.Row][at.Col].Value != 0 || !notes.Has(move.Digit) {
		return domain.TechniqueResult{}, false, nil
	}

	// naked single: the move's digit is the only candidate left
	if v, ok := notes.Single(); ok && v == move.Digit {
		return domain.TechniqueResult{
			Technique: domain.TechniqueNakedSingle,
			Primary:   []domain.CellCoord{at},
			Placement: &move,
		}, true, nil
	}

	// hidden single in the cell's row or column; a box-local single is
	// reported as cross-hatching for display
	if tech, ok := hiddenSingleAt(work, at, move.Digit); ok {
		return domain.TechniqueResult{
			Technique: tech,
			Primary:   []domain.CellCoord{at},
			Placement: &move,
		}, true, nil
	}

	// BUG+1 placement
	if res := technique.BUGPlusOne(work); res != nil && res.Placement != nil &&
		res.Placement.Cell == at && res.Placement.Digit == move.Digit {
		return *res, true, nil
	}

	// naked single enabled by an advanced technique's eliminations
	for _, detector := range advanced {
		res := detector(work)
		if res == nil || len(res.Eliminations) == 0 {
			continue
		}
		probe := work.Clone()
		for _, e := range res.Eliminations {
			probe.Cells[e.Cell.Row][e.Cell.Col].Notes.Remove(e.Digit)
		}
		if v, ok := probe.Cells[at.Row][at.Col].Notes.Single(); ok && v == move.Digit {
			out := *res
			out.Placement = &move
			return out, true, nil
		}
	}

	return domain.TechniqueResult{}, false, nil
}

// DetectElimination answers whether removing elim.Digit from elim.Cell
// is justified: some technique result must list that exact elimination.
func (d *MoveDetector) DetectElimination(ctx context.Context, b *domain.Board, elim domain.Elimination) (domain.TechniqueResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.TechniqueResult{}, false, err
	}
	work := b.Clone()
	solver.NormalizeNotes(work)
	for _, detector := range advanced {
		res := detector(work)
		if res == nil {
			continue
		}
		for _, e := range res.Eliminations {
			if e == elim {
				return *res, true, nil
			}
		}
	}
	return domain.TechniqueResult{}, false, nil
}

// hiddenSingleAt checks whether digit fits only at the given cell
// within its row, column, or box, in that order.
func hiddenSingleAt(b *domain.Board, at domain.CellCoord, digit uint8) (domain.Technique, bool) {
	units := []struct {
		u    technique.Unit
		tech domain.Technique
	}{
		{technique.Row(at.Row), domain.TechniqueHiddenSingle},
		{technique.Column(at.Col), domain.TechniqueHiddenSingle},
		{technique.Box(at.Box()), domain.TechniqueCrossHatching},
	}
	for _, entry := range units {
		count := 0
		for _, c := range entry.u.Cells {
			cell := b.Cells[c.Row][c.Col]
			if cell.Value == 0 && cell.Notes.Has(digit) {
				count++
			}
		}
		if count == 1 {
			return entry.tech, true
		}
	}
	return domain.TechniqueNone, false
}
