package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/api"
	"github.com/pageza/cookify/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	router := gin.New()

	// multipart bodies larger than this spill to temp files
	if cfg.MaxImageBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxImageBytes + 1<<20
	}

	router.Use(
		middleware.RequestLogger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorHandler(),
	)

	api.RegisterRoutes(router, deps)
	return router
}
