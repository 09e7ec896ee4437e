package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

func init() {
	rateCmd := &cobra.Command{
		Use:   "rate <puzzle>",
		Short: "Report clue count and the techniques a puzzle requires",
		Args:  cobra.ExactArgs(1),
		RunE:  runRate,
	}
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseLine(args[0])
	if err != nil {
		return err
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	ok, conflicts, err := uc.Validate(ctx, b)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("puzzle has conflicting givens at %v", conflicts)
	}

	n, _, err := uc.CountSolutions(ctx, b, 2)
	if err != nil {
		return err
	}
	switch n {
	case 0:
		return fmt.Errorf("puzzle has no solution")
	case 1:
	default:
		fmt.Println("warning: puzzle has multiple solutions")
	}

	basics, err := uc.SolvableWithBasics(ctx, b)
	if err != nil {
		return err
	}
	steps, solved, err := uc.Deduce(ctx, b)
	if err != nil {
		return err
	}

	counts := map[domain.Technique]int{}
	for _, s := range steps {
		counts[s.Technique]++
	}

	fmt.Printf("clues: %d\n", b.FilledCount())
	fmt.Printf("singles only: %v\n", basics)
	fmt.Printf("logically solvable: %v\n", solved)
	for tech := domain.TechniqueNakedSingle; tech <= domain.TechniqueBUGPlusOne; tech++ {
		if c := counts[tech]; c > 0 {
			fmt.Printf("  %-28s %d\n", tech, c)
		}
	}
	return nil
}
