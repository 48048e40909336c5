package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/storage"
)

// RecipesKey is the key the whole collection is stored under
const RecipesKey = "recipes"

// errNotArray marks a stored value that decodes but is not a JSON array
var errNotArray = errors.New("stored value is not an array")

// RecipeStore persists the collection as one JSON array under RecipesKey.
// It holds no copy of the data: every Load reads the backend.
type RecipeStore struct {
	kv  storage.KeyValue
	key string
}

// NewRecipeStore creates a store over kv
func NewRecipeStore(kv storage.KeyValue) *RecipeStore {
	return &RecipeStore{kv: kv, key: RecipesKey}
}

// Load returns the stored collection. A missing value yields an empty
// collection. A value that isn't a well-formed recipe array is removed and
// an empty collection is returned; that case is logged, not reported.
func (s *RecipeStore) Load(ctx context.Context) (model.Collection, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	if !ok || len(bytes.TrimSpace([]byte(raw))) == 0 {
		return model.Collection{}, nil
	}

	c, err := decodeCollection([]byte(raw))
	if err != nil {
		slog.Warn("stored recipes corrupted, resetting", "key", s.key, "error", err)
		if rmErr := s.kv.Remove(ctx, s.key); rmErr != nil {
			slog.Error("failed to clear corrupted recipes", "key", s.key, "error", rmErr)
		}
		return model.Collection{}, nil
	}
	return c, nil
}

// Save overwrites the stored collection
func (s *RecipeStore) Save(ctx context.Context, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode recipes: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save recipes: %w", err)
	}
	return nil
}

func decodeCollection(data []byte) (model.Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	var c model.Collection
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = model.Collection{}
	}
	return c, nil
}
