package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/types"
)

// MsgNoRecipes accompanies an empty listing
const MsgNoRecipes = "No recipes found."

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/form", h.NewRecipeForm)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/form", h.RecipeForm)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// ListRecipes filters by ?q= (title substring), ?difficulty= and ?category=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), service.QueryOptions{
		Title:      c.Query("q"),
		Difficulty: c.Query("difficulty"),
		Category:   c.Query("category"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := types.RecipeListResponse{Recipes: recipes}
	if len(recipes) == 0 {
		resp.Message = MsgNoRecipes
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// NewRecipeForm describes the empty Add form
func (h *RecipeHandler) NewRecipeForm(c *gin.Context) {
	view, err := h.recipes.RecipeForm(c.Request.Context(), service.ModeAdd, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RecipeForm describes the Edit or View form for a stored recipe. The mode
// defaults to view.
func (h *RecipeHandler) RecipeForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	mode, ok := service.ParseMode(c.DefaultQuery("mode", service.ModeView.String()))
	if !ok || mode == service.ModeAdd {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "mode must be edit or view"})
		return
	}

	view, err := h.recipes.RecipeForm(c.Request.Context(), mode, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var form types.RecipeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form types.RecipeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe requires ?confirm=true; without it nothing is removed and
// the client is asked to confirm
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	confirmed := c.Query("confirm") == "true"
	deleted, err := h.recipes.DeleteRecipe(c.Request.Context(), id, service.Always(confirmed))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusPreconditionRequired, types.ErrorResponse{Error: service.DeletePrompt})
		return
	}
	c.JSON(http.StatusOK, types.DeleteResponse{ID: id, Deleted: true})
}
