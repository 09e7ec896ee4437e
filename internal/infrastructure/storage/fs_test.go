package storage

import (
	"context"
	"os"
	"testing"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

func samplePuzzle(t *testing.T, id string, diff domain.Difficulty) *domain.Puzzle {
	t.Helper()
	b, err := domain.ParseLine("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	if err != nil {
		t.Fatal(err)
	}
	b.Cells[0][2].Notes = domain.NewDigitSet(1, 2, 4)
	return &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: diff,
		Board:      *b,
		CreatedAt:  1700000000,
		Name:       "morning puzzle",
	}
}

func TestFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	in := samplePuzzle(t, "medium-42", domain.Medium)
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load(ctx, "medium-42")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.ID != in.ID || out.Seed != in.Seed || out.Difficulty != in.Difficulty || out.Name != in.Name {
		t.Fatalf("metadata mismatch: %+v", out)
	}
	if out.Board.Line() != in.Board.Line() {
		t.Fatal("board values did not round-trip")
	}
	if out.Board.Cells[0][2].Notes != domain.NewDigitSet(1, 2, 4) {
		t.Fatalf("notes did not round-trip: %v", out.Board.Cells[0][2].Notes)
	}
	if !out.Board.Cells[0][0].Given {
		t.Fatal("given flag did not round-trip")
	}
}

func TestFSSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for puzzle without ID")
	}
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestFSList(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	if err := s.Save(ctx, samplePuzzle(t, "easy-1", domain.Easy)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, samplePuzzle(t, "hard-9", domain.Hard)); err != nil {
		t.Fatal(err)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 {
		t.Fatalf("listed %d puzzles, want 2", len(metas))
	}
	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	if byID["easy-1"].Difficulty != domain.Easy || byID["hard-9"].Difficulty != domain.Hard {
		t.Fatalf("difficulties wrong: %+v", metas)
	}
}
