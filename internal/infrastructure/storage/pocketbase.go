package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"github.com/chammyae24/newsprint-sudoku/internal/domain"
)

// PocketBase persists puzzles in a remote PocketBase collection, for
// sharing generated puzzles across clients. Credentials come from the
// environment (POCKETBASE_EMAIL / POCKETBASE_PASSWORD), optionally via
// a .env file.
type PocketBase struct {
	client     *pocketbase.Client
	collection string
}

// NewPocketBase connects and authenticates against the given
// PocketBase instance.
func NewPocketBase(url, collection string) (*PocketBase, error) {
	// missing .env is fine, the variables may be set directly
	_ = godotenv.Load()

	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("pocketbase auth failed: %w", err)
	}
	return &PocketBase{client: client, collection: collection}, nil
}

func (s *PocketBase) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("invalid puzzle: missing ID")
	}
	boardJSON, err := json.Marshal(p.Board)
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	data := map[string]any{
		"id":         p.ID,
		"board":      string(boardJSON),
		"seed":       p.Seed,
		"difficulty": p.Difficulty.String(),
		"name":       p.Name,
		"createdAt":  p.CreatedAt,
	}
	if _, err := s.client.Create(s.collection, data); err != nil {
		return fmt.Errorf("upload puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *PocketBase) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	record, err := s.client.One(s.collection, id)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	p := &domain.Puzzle{ID: id}
	if raw, ok := record["board"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &p.Board); err != nil {
			return nil, fmt.Errorf("unmarshal board for %s: %w", id, err)
		}
	}
	if v, ok := record["seed"].(float64); ok {
		p.Seed = int64(v)
	}
	if v, ok := record["difficulty"].(string); ok {
		p.Difficulty = domain.ParseDifficulty(v)
	}
	if v, ok := record["name"].(string); ok {
		p.Name = v
	}
	if v, ok := record["createdAt"].(float64); ok {
		p.CreatedAt = int64(v)
	}
	return p, nil
}

func (s *PocketBase) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	result, err := s.client.List(s.collection, pocketbase.ParamsList{
		Page: 1,
		Size: 200,
		Sort: "-createdAt",
	})
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	out := make([]domain.PuzzleMeta, 0, len(result.Items))
	for _, item := range result.Items {
		m := domain.PuzzleMeta{}
		if v, ok := item["id"].(string); ok {
			m.ID = v
		}
		if v, ok := item["name"].(string); ok {
			m.Name = v
		}
		if v, ok := item["difficulty"].(string); ok {
			m.Difficulty = domain.ParseDifficulty(v)
		}
		if v, ok := item["createdAt"].(float64); ok {
			m.CreatedAt = int64(v)
		}
		if m.ID != "" {
			out = append(out, m)
		}
	}
	return out, nil
}
