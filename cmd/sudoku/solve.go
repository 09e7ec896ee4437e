package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

var solveLogical bool

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve an 81-character puzzle string",
		Long: `Solve a puzzle given as 81 characters in row-major order,
with '.' or '0' for empty cells.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve --logical <puzzle>   # use solving techniques instead of brute force`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().BoolVar(&solveLogical, "logical", false, "solve with the technique engine and print each step")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseLine(args[0])
	if err != nil {
		return err
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if solveLogical {
		steps, solved, err := uc.Deduce(ctx, b)
		if err != nil {
			return err
		}
		for i, s := range steps {
			fmt.Printf("%2d. %s\n", i+1, describeStep(&s))
		}
		if !solved {
			log.Warn("stuck: no known technique applies to the remaining cells")
		}
		// reapply the placements for display
		for _, s := range steps {
			if s.Placement != nil {
				b.Cells[s.Placement.Cell.Row][s.Placement.Cell.Col].Value = s.Placement.Digit
			}
		}
		fmt.Println(b.Format())
		return nil
	}

	out, st, err := uc.Solve(ctx, b)
	if err != nil {
		return err
	}
	log.WithField("nodes", st.Nodes).WithField("dur", st.Duration.Round(time.Millisecond)).Info("solved")
	fmt.Println(out.Format())
	return nil
}

func describeStep(res *domain.TechniqueResult) string {
	if res.Placement != nil {
		p := res.Placement
		return fmt.Sprintf("%s: place %d at r%dc%d", res.Technique, p.Digit, p.Cell.Row+1, p.Cell.Col+1)
	}
	return fmt.Sprintf("%s: %d elimination(s)", res.Technique, len(res.Eliminations))
}
