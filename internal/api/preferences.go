package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/types"
)

type PreferenceHandler struct {
	prefs service.IPreferenceService
}

func NewPreferenceHandler(prefs service.IPreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("/theme", h.GetTheme)
		prefs.PUT("/theme", h.SetTheme)
	}
}

func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	theme, err := h.prefs.Theme(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ThemeResponse{Theme: theme})
}

func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req types.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.prefs.SetTheme(c.Request.Context(), req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ThemeResponse{Theme: req.Theme})
}
