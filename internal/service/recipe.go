package service

import (
	"context"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/storage"
	"github.com/pageza/cookify/backend/internal/types"
)

// RecipeService handles recipe operations for the API. Every call reads
// the collection fresh from the store.
type RecipeService struct {
	store  *RecipeStore
	editor *Editor
	seeder *Seeder
}

// NewRecipeService wires a store, editor and seeder over kv
func NewRecipeService(kv storage.KeyValue, clock Clock, ids IDAllocator) *RecipeService {
	store := NewRecipeStore(kv)
	return &RecipeService{
		store:  store,
		editor: NewEditor(store, clock, ids),
		seeder: NewSeeder(store, clock, ids),
	}
}

// ListRecipes returns the recipes matching opts
func (s *RecipeService) ListRecipes(ctx context.Context, opts QueryOptions) (model.Collection, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(c, opts), nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (model.Recipe, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return model.Recipe{}, err
	}
	r, ok := c.Find(id)
	if !ok {
		return model.Recipe{}, ErrNotFound
	}
	return r, nil
}

// CreateRecipe inserts the recipe a form describes, ignoring form.ID
func (s *RecipeService) CreateRecipe(ctx context.Context, form types.RecipeForm) (model.Recipe, error) {
	form.ID = 0
	return s.editor.Save(ctx, form)
}

// UpdateRecipe replaces the recipe with the given id
func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, form types.RecipeForm) (model.Recipe, error) {
	if id == 0 {
		return model.Recipe{}, ErrNotFound
	}
	form.ID = id
	return s.editor.Save(ctx, form)
}

// DeleteRecipe removes a recipe once confirm agrees
func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64, confirm Confirmer) (bool, error) {
	return s.editor.Delete(ctx, id, confirm)
}

// RecipeForm opens the modal in mode for the recipe with the given id and
// returns its description. Add mode ignores id.
func (s *RecipeService) RecipeForm(ctx context.Context, mode Mode, id int64) (types.FormView, error) {
	var modal Modal
	if mode == ModeAdd {
		_ = modal.OpenAdd()
		return modal.View(), nil
	}

	r, err := s.GetRecipe(ctx, id)
	if err != nil {
		return types.FormView{}, err
	}
	switch mode {
	case ModeEdit:
		err = modal.OpenEdit(r)
	case ModeView:
		err = modal.OpenView(r)
	default:
		return types.FormView{}, ErrModalOpen
	}
	if err != nil {
		return types.FormView{}, err
	}
	return modal.View(), nil
}

// SeedIfEmpty seeds the sample recipes into an empty store
func (s *RecipeService) SeedIfEmpty(ctx context.Context) (bool, error) {
	return s.seeder.SeedIfEmpty(ctx)
}
