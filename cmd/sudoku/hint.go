package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

func init() {
	hintCmd := &cobra.Command{
		Use:   "hint <puzzle>",
		Short: "Suggest the next logical move for a puzzle string",
		Args:  cobra.ExactArgs(1),
		RunE:  runHint,
	}
	rootCmd.AddCommand(hintCmd)

	explainCmd := &cobra.Command{
		Use:   "explain <puzzle> <row> <col> <digit>",
		Short: "Name the technique that justifies placing a digit",
		Long: `Explain a move on a puzzle string. Row and column are 1-based.
Prints "no technique" when the move is a blind guess.`,
		Args: cobra.ExactArgs(4),
		RunE: runExplain,
	}
	rootCmd.AddCommand(explainCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseLine(args[0])
	if err != nil {
		return err
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	h, ok, err := uc.Hint(context.Background(), b)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no hint: no known technique applies")
		return nil
	}
	fmt.Println(h.Message)
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	b, err := domain.ParseLine(args[0])
	if err != nil {
		return err
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}
	digit, err := strconv.Atoi(args[3])
	if err != nil {
		return err
	}
	if row < 1 || row > 9 || col < 1 || col > 9 || digit < 1 || digit > 9 {
		return fmt.Errorf("row, col, and digit must be 1..9")
	}
	uc, err := newService()
	if err != nil {
		return err
	}
	move := domain.Placement{
		Cell:  domain.CellCoord{Row: row - 1, Col: col - 1},
		Digit: uint8(digit),
	}
	res, ok, err := uc.ExplainPlacement(context.Background(), b, move)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no technique (guess)")
		return nil
	}
	fmt.Printf("%s (%v tier)\n", res.Technique, tierName(res.Technique.Category()))
	return nil
}

func tierName(c domain.TechniqueCategory) string {
	switch c {
	case domain.CategoryBasic:
		return "basic"
	case domain.CategoryIntermediate:
		return "intermediate"
	default:
		return "advanced"
	}
}
