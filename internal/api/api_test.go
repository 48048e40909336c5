package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookify/backend/internal/middleware"
	"github.com/pageza/cookify/backend/internal/mocks"
	"github.com/pageza/cookify/backend/internal/model"
	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/storage"
	"github.com/pageza/cookify/backend/internal/testhelpers"
	"github.com/pageza/cookify/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// a 1x1 transparent PNG
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func newTestRouter(t *testing.T, kv storage.KeyValue, images service.ImageEncoder) *gin.Engine {
	t.Helper()
	clock := testhelpers.NewStepClock(time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC), time.Millisecond)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, Dependencies{
		Store:         kv,
		Recipes:       service.NewRecipeService(kv, clock, service.NewClockIDAllocator(clock)),
		Preferences:   service.NewPreferenceStore(kv),
		Images:        images,
		MaxImageBytes: 1 << 10,
	})
	return router
}

// setupSeededRouter returns a router over a store holding the sample recipes
func setupSeededRouter(t *testing.T) (*gin.Engine, storage.KeyValue) {
	t.Helper()
	kv := storage.NewMemoryKV()
	clock := testhelpers.NewStepClock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), time.Millisecond)
	_, err := service.NewSeeder(service.NewRecipeStore(kv), clock, service.NewClockIDAllocator(clock)).
		SeedIfEmpty(context.Background())
	require.NoError(t, err)
	return newTestRouter(t, kv, service.DataURLEncoder{MaxSize: 1 << 10}), kv
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func listRecipes(t *testing.T, router *gin.Engine, query string) types.RecipeListResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes"+query, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decode[types.RecipeListResponse](t, w)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func chaiForm() types.RecipeForm {
	return types.RecipeForm{
		Title:       "Masala Chai",
		Ingredients: "water\ntea\nmilk",
		Steps:       "boil\nsteep",
		Category:    "Drinks",
		Difficulty:  "Easy",
		PrepTime:    "10",
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupSeededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestHealthCheckUnhealthy(t *testing.T) {
	kv := new(mocks.MockKeyValue)
	kv.On("Ping", mock.Anything).Return(errors.New("connection refused"))
	router := newTestRouter(t, kv, service.DataURLEncoder{})

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListRecipes(t *testing.T) {
	router, _ := setupSeededRouter(t)

	all := listRecipes(t, router, "")
	assert.Len(t, all.Recipes, 6)
	assert.Empty(t, all.Message)

	easy := listRecipes(t, router, "?q=omelette&difficulty=Easy")
	require.Len(t, easy.Recipes, 2)
	assert.Equal(t, "Bread Omelette (for 2)", easy.Recipes[0].Title)

	drinks := listRecipes(t, router, "?category=Drinks")
	require.Len(t, drinks.Recipes, 1)
	assert.Equal(t, "Chocolate Milkshake", drinks.Recipes[0].Title)

	none := listRecipes(t, router, "?difficulty=Hard")
	assert.NotNil(t, none.Recipes)
	assert.Empty(t, none.Recipes)
	assert.Equal(t, MsgNoRecipes, none.Message)
}

func TestListRecipesEmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(t, storage.NewMemoryKV(), service.DataURLEncoder{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipes":[],"message":"No recipes found."}`, w.Body.String())
}

func TestListRecipesBackendError(t *testing.T) {
	kv := new(mocks.MockKeyValue)
	kv.On("Get", mock.Anything, service.RecipesKey).Return("", false, errors.New("connection refused"))
	router := newTestRouter(t, kv, service.DataURLEncoder{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode[types.ErrorResponse](t, w).Error)
}

func TestSaveRecipeBackendError(t *testing.T) {
	kv := new(mocks.MockKeyValue)
	kv.On("Get", mock.Anything, service.RecipesKey).Return("[]", true, nil)
	kv.On("Set", mock.Anything, service.RecipesKey, mock.Anything).Return(errors.New("disk full"))
	router := newTestRouter(t, kv, service.DataURLEncoder{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", chaiForm())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[types.ErrorResponse](t, w)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Empty(t, body.Errors)
	kv.AssertExpectations(t)
}

func TestGetRecipe(t *testing.T) {
	router, _ := setupSeededRouter(t)
	first := listRecipes(t, router, "").Recipes[0]

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+itoa(first.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decode[model.Recipe](t, w))

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipe(t *testing.T) {
	router, _ := setupSeededRouter(t)

	form := chaiForm()
	form.PrepTime = ""
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[map[string]any](t, w)
	assert.Equal(t, "Masala Chai", created["title"])
	assert.Nil(t, created["prepTime"])
	assert.Contains(t, created, "prepTime")
	assert.Equal(t, []any{"water", "tea", "milk"}, created["ingredients"])

	all := listRecipes(t, router, "")
	require.Len(t, all.Recipes, 7)
	assert.Equal(t, "Masala Chai", all.Recipes[0].Title, "new recipes come first")
	assert.Nil(t, all.Recipes[0].PrepTime)
}

func TestCreateRecipeNumericPrepTime(t *testing.T) {
	router, _ := setupSeededRouter(t)

	body := map[string]any{
		"title":       "Masala Chai",
		"ingredients": "water\ntea",
		"steps":       "boil",
		"difficulty":  "Easy",
		"prepTime":    10,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.Recipe](t, w)
	require.NotNil(t, created.PrepTime)
	assert.Equal(t, 10.0, *created.PrepTime)

	body["prepTime"] = -3
	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{service.MsgPrepTimeInvalid}, decode[types.ErrorResponse](t, w).Errors)
}

func TestCreateRecipeValidation(t *testing.T) {
	router, _ := setupSeededRouter(t)

	form := chaiForm()
	form.Title = "  "
	form.Ingredients = ""
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", form)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decode[types.ErrorResponse](t, w)
	assert.Equal(t, []string{service.MsgTitleRequired, service.MsgIngredientNeeded}, resp.Errors)
	assert.Equal(t, "Title required. At least one ingredient", resp.Error)
	assert.Len(t, listRecipes(t, router, "").Recipes, 6)
}

func TestCreateRecipeBadJSON(t *testing.T) {
	router, _ := setupSeededRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	router, _ := setupSeededRouter(t)
	before := listRecipes(t, router, "?q=pulao").Recipes[0]

	form := chaiForm()
	form.Title = "Vegetable Pulao (quick)"
	form.Difficulty = "Hard"
	w := doJSON(t, router, http.MethodPut, "/api/v1/recipes/"+itoa(before.ID), form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[model.Recipe](t, w)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.NotEmpty(t, updated.UpdatedAt)
	assert.Equal(t, model.DifficultyHard, updated.Difficulty)

	all := listRecipes(t, router, "")
	require.Len(t, all.Recipes, 6)
	assert.Equal(t, "Vegetable Pulao (quick)", all.Recipes[2].Title, "updates keep their position")
}

func TestUpdateRecipeErrors(t *testing.T) {
	router, _ := setupSeededRouter(t)
	existing := listRecipes(t, router, "").Recipes[0]

	w := doJSON(t, router, http.MethodPut, "/api/v1/recipes/1", chaiForm())
	assert.Equal(t, http.StatusNotFound, w.Code)

	bad := chaiForm()
	bad.Difficulty = "All"
	w = doJSON(t, router, http.MethodPut, "/api/v1/recipes/"+itoa(existing.ID), bad)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{service.MsgSelectDifficulty}, decode[types.ErrorResponse](t, w).Errors)
}

func TestDeleteRecipe(t *testing.T) {
	router, _ := setupSeededRouter(t)
	target := listRecipes(t, router, "?q=milkshake").Recipes[0]
	path := "/api/v1/recipes/" + itoa(target.ID)

	w := doJSON(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Equal(t, service.DeletePrompt, decode[types.ErrorResponse](t, w).Error)
	assert.Len(t, listRecipes(t, router, "").Recipes, 6)

	w = doJSON(t, router, http.MethodDelete, path+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.DeleteResponse{ID: target.ID, Deleted: true}, decode[types.DeleteResponse](t, w))
	assert.Len(t, listRecipes(t, router, "").Recipes, 5)

	// deleting again is a no-op
	w = doJSON(t, router, http.MethodDelete, path+"?confirm=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listRecipes(t, router, "").Recipes, 5)
}

func TestRecipeForms(t *testing.T) {
	router, _ := setupSeededRouter(t)
	paratha := listRecipes(t, router, "?q=aloo").Recipes[0]

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/form", nil)
	require.Equal(t, http.StatusOK, w.Code)
	add := decode[types.FormView](t, w)
	assert.Equal(t, "Add Recipe", add.Title)
	assert.True(t, add.CanSave)
	assert.False(t, add.CanDelete)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+itoa(paratha.ID)+"/form", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[types.FormView](t, w)
	assert.Equal(t, "view", view.Mode)
	assert.False(t, view.Editable)
	assert.True(t, view.CanDelete)
	assert.Equal(t, paratha.ID, view.Form.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+itoa(paratha.ID)+"/form?mode=edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	edit := decode[types.FormView](t, w)
	assert.Equal(t, "Edit Recipe", edit.Title)
	assert.True(t, edit.CanSave)
	assert.True(t, edit.CanDelete)
	assert.Contains(t, edit.Form.Ingredients, "\n")

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+itoa(paratha.ID)+"/form?mode=add", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/1/form?mode=edit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemePreference(t *testing.T) {
	router, _ := setupSeededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/preferences/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", decode[types.ThemeResponse](t, w).Theme)

	w = doJSON(t, router, http.MethodPut, "/api/v1/preferences/theme", types.ThemeRequest{Theme: "dark"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/preferences/theme", nil)
	assert.Equal(t, "dark", decode[types.ThemeResponse](t, w).Theme)

	w = doJSON(t, router, http.MethodPut, "/api/v1/preferences/theme", types.ThemeRequest{Theme: "sepia"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/preferences/theme", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the theme never disturbs the recipes
	assert.Len(t, listRecipes(t, router, "").Recipes, 6)
}

func uploadRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	router, _ := setupSeededRouter(t)

	tests := []struct {
		name   string
		field  string
		data   []byte
		status int
	}{
		{name: "png", field: "file", data: pngPixel, status: http.StatusOK},
		{name: "not an image", field: "file", data: []byte("just some text"), status: http.StatusBadRequest},
		{name: "too large", field: "file", data: append(append([]byte{}, pngPixel...), make([]byte, 2<<10)...), status: http.StatusRequestEntityTooLarge},
		{name: "wrong field", field: "image", data: pngPixel, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, tt.field, tt.data))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusOK {
				assert.Contains(t, decode[types.ImageResponse](t, w).Image, "data:image/png;base64,")
			}
		})
	}
}

func TestUploadImageEncoderError(t *testing.T) {
	enc := new(mocks.MockImageEncoder)
	enc.On("Encode", mock.Anything, pngPixel).Return("", errors.New("failed to upload to S3: access denied"))
	router := newTestRouter(t, storage.NewMemoryKV(), enc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "file", pngPixel))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode[types.ErrorResponse](t, w).Error)
	assert.NotContains(t, w.Body.String(), "access denied")
	enc.AssertExpectations(t)
}

func TestUploadedImageRoundTrip(t *testing.T) {
	router, _ := setupSeededRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "file", pngPixel))
	require.Equal(t, http.StatusOK, w.Code)
	image := decode[types.ImageResponse](t, w).Image

	form := chaiForm()
	form.ImagePreview = image
	form.ImageURL = "https://example.com/ignored.jpg"
	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes", form)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Recipe](t, w)
	require.NotNil(t, created.Image)
	assert.Equal(t, image, *created.Image)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+itoa(created.ID)+"/form?mode=edit", nil)
	edit := decode[types.FormView](t, w)
	assert.Empty(t, edit.Form.ImageURL)
	assert.Equal(t, image, edit.Form.ImagePreview)
}
