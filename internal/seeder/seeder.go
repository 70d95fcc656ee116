package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// CatalogRepo is the bulk write surface the seeder needs.
type CatalogRepo interface {
	BulkInsert(ctx context.Context, products []domain.Product) (int, error)
}

// Seeder inserts catalog products in batches.
type Seeder struct {
	repo      CatalogRepo
	log       *slog.Logger
	batchSize int
	dryRun    bool
}

// New creates a Seeder.
func New(log *slog.Logger, repo CatalogRepo, cfg *Config) *Seeder {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Seeder{
		repo:      repo,
		log:       log.With("component", "seeder"),
		batchSize: batchSize,
		dryRun:    cfg.DryRun,
	}
}

// Run inserts the products in batches and returns the total inserted.
// In dry-run mode nothing is written; the validated count is returned.
func (s *Seeder) Run(ctx context.Context, products []domain.Product) (int, error) {
	if s.dryRun {
		s.log.Info("dry run, skipping writes", slog.Int("products", len(products)))
		return len(products), nil
	}

	total := 0
	for start := 0; start < len(products); start += s.batchSize {
		end := min(start+s.batchSize, len(products))

		inserted, err := s.repo.BulkInsert(ctx, products[start:end])
		total += inserted
		if err != nil {
			return total, fmt.Errorf("seed batch starting at %d: %w", start, err)
		}

		s.log.Info("batch seeded",
			slog.Int("batch_start", start),
			slog.Int("inserted", inserted),
		)
	}

	return total, nil
}
