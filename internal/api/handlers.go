package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/middleware"
	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/storage"
)

// Dependencies are the services the routes are served from
type Dependencies struct {
	Store         storage.KeyValue
	Recipes       service.IRecipeService
	Preferences   service.IPreferenceService
	Images        service.ImageEncoder
	MaxImageBytes int64
	// WriteLimiter is optional; nil disables rate limiting
	WriteLimiter *middleware.RateLimiter
}

// HealthCheck pings the store backend
func HealthCheck(store storage.KeyValue) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := storage.Ping(c.Request.Context(), store); err != nil {
			slog.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck(deps.Store))

	v1 := router.Group("/api/v1")
	if deps.WriteLimiter != nil {
		v1.Use(deps.WriteLimiter.Middleware())
	}

	NewRecipeHandler(deps.Recipes).RegisterRoutes(v1)
	NewImageHandler(deps.Images, deps.MaxImageBytes).RegisterRoutes(v1)
	NewPreferenceHandler(deps.Preferences).RegisterRoutes(v1)
}
