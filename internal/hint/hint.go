package hint

import (
	"context"
	"fmt"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
)

// Generator suggests the next move by running the engine's technique
// search on a clone of the caller's board, so live game state is never
// touched. Applying the returned placement or eliminations is the
// caller's job.
type Generator struct {
	Engine ports.Engine
}

func New(e ports.Engine) *Generator { return &Generator{Engine: e} }

// Hint returns the first applicable technique result. ok is false when
// no known technique applies; that is a normal stuck state, not an
// error.
func (g *Generator) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	res, err := g.Engine.NextStep(ctx, b.Clone())
	if err != nil {
		return domain.Hint{}, false, err
	}
	if res == nil {
		return domain.Hint{}, false, nil
	}
	return domain.Hint{Message: message(res), Result: *res}, true, nil
}

func message(res *domain.TechniqueResult) string {
	if res.Placement != nil {
		p := res.Placement
		return fmt.Sprintf("%s: %d goes in row %d, column %d", res.Technique, p.Digit, p.Cell.Row+1, p.Cell.Col+1)
	}
	return fmt.Sprintf("%s: removes %d candidate(s)", res.Technique, len(res.Eliminations))
}
