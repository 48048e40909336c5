package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageza/cookify/backend/internal/model"
)

// Seeder fills an empty store with the sample recipes
type Seeder struct {
	store *RecipeStore
	clock Clock
	ids   IDAllocator
}

// NewSeeder creates a seeder writing through store
func NewSeeder(store *RecipeStore, clock Clock, ids IDAllocator) *Seeder {
	return &Seeder{store: store, clock: clock, ids: ids}
}

// SeedIfEmpty saves the sample recipes when the store holds none. Existing
// data is never overwritten. It reports whether anything was written.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	existing, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("seed check recipes: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("recipes already seeded, skipping", "count", len(existing))
		return false, nil
	}

	samples := SampleRecipes(model.Timestamp(s.clock.Now()), s.ids)
	if err := s.store.Save(ctx, samples); err != nil {
		return false, fmt.Errorf("seed save recipes: %w", err)
	}

	slog.Info("store seeded with sample recipes", "count", len(samples))
	return true, nil
}
