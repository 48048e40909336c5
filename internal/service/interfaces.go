package service

import (
	"context"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, opts QueryOptions) (model.Collection, error)
	GetRecipe(ctx context.Context, id int64) (model.Recipe, error)
	CreateRecipe(ctx context.Context, form types.RecipeForm) (model.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, form types.RecipeForm) (model.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64, confirm Confirmer) (bool, error)
	RecipeForm(ctx context.Context, mode Mode, id int64) (types.FormView, error)
	SeedIfEmpty(ctx context.Context) (bool, error)
}

// IPreferenceService defines the interface for user preferences
type IPreferenceService interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

var (
	_ IRecipeService     = (*RecipeService)(nil)
	_ IPreferenceService = (*PreferenceStore)(nil)
	_ ImageEncoder       = DataURLEncoder{}
	_ ImageEncoder       = (*S3ImageStore)(nil)
)
