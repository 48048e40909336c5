package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/storage"
	"github.com/pageza/cookify/backend/internal/testhelpers"
)

func newTestRecipeService(t *testing.T) *RecipeService {
	t.Helper()
	clock := testhelpers.NewStepClock(time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC), time.Millisecond)
	svc := NewRecipeService(storage.NewMemoryKV(), clock, NewClockIDAllocator(clock))
	_, err := svc.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	return svc
}

func TestRecipeServiceList(t *testing.T) {
	svc := newTestRecipeService(t)
	ctx := context.Background()

	all, err := svc.ListRecipes(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	omelettes, err := svc.ListRecipes(ctx, QueryOptions{Title: "omelette", Difficulty: "Easy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bread Omelette (for 2)", "Masala Omelette"}, titlesOf(omelettes))

	none, err := svc.ListRecipes(ctx, QueryOptions{Difficulty: "Hard"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecipeServiceCRUD(t *testing.T) {
	svc := newTestRecipeService(t)
	ctx := context.Background()

	form := validForm()
	form.ID = 12345 // ignored on create
	created, err := svc.CreateRecipe(ctx, form)
	require.NoError(t, err)
	assert.NotEqual(t, int64(12345), created.ID)

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	form.Title = "Ginger Chai"
	updated, err := svc.UpdateRecipe(ctx, created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ginger Chai", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	deleted, err := svc.DeleteRecipe(ctx, created.ID, Always(true))
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetRecipe(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeServiceUpdateMissing(t *testing.T) {
	svc := newTestRecipeService(t)

	_, err := svc.UpdateRecipe(context.Background(), 1, validForm())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.UpdateRecipe(context.Background(), 0, validForm())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeServiceForm(t *testing.T) {
	svc := newTestRecipeService(t)
	ctx := context.Background()

	add, err := svc.RecipeForm(ctx, ModeAdd, 0)
	require.NoError(t, err)
	assert.Equal(t, "add", add.Mode)
	assert.True(t, add.CanSave)
	assert.False(t, add.CanDelete)

	all, err := svc.ListRecipes(ctx, QueryOptions{Title: "Aloo"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	paratha := all[0]

	view, err := svc.RecipeForm(ctx, ModeView, paratha.ID)
	require.NoError(t, err)
	assert.Equal(t, "View Recipe", view.Title)
	assert.False(t, view.Editable)
	assert.False(t, view.CanSave)
	assert.True(t, view.CanDelete)
	assert.Equal(t, paratha.Title, view.Form.Title)
	assert.Equal(t, "25", view.Form.PrepTime)

	edit, err := svc.RecipeForm(ctx, ModeEdit, paratha.ID)
	require.NoError(t, err)
	assert.True(t, edit.Editable)
	assert.True(t, edit.CanDelete)

	_, err = svc.RecipeForm(ctx, ModeEdit, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.RecipeForm(ctx, ModeClosed, paratha.ID)
	assert.Error(t, err)
}

func TestRecipeServiceSeededIDsAreDistinct(t *testing.T) {
	svc := newTestRecipeService(t)
	all, err := svc.ListRecipes(context.Background(), QueryOptions{Difficulty: model.DifficultyAll})
	require.NoError(t, err)

	seen := map[int64]bool{}
	for _, r := range all {
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}
