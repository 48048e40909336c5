package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/api"
	"github.com/pageza/cookify/backend/internal/database"
	"github.com/pageza/cookify/backend/internal/middleware"
	"github.com/pageza/cookify/backend/internal/router"
	"github.com/pageza/cookify/backend/internal/server"
	"github.com/pageza/cookify/backend/internal/service"
)

func main() {
	env := config.GetEnvironment()
	slog.SetDefault(config.NewLogger(env, os.Stdout))
	gin.SetMode(env.GinMode())

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := database.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	clock := service.SystemClock{}
	recipes := service.NewRecipeService(kv, clock, service.NewClockIDAllocator(clock))
	if cfg.SeedOnStart {
		if _, err := recipes.SeedIfEmpty(ctx); err != nil {
			log.Fatalf("Failed to seed recipes: %v", err)
		}
	}

	images, err := newImageEncoder(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up image storage: %v", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis for rate limiting: %v", err)
		}
		defer redisClient.Close()
		limiter = middleware.NewWriteRateLimiter(redisClient, cfg.RateLimit, cfg.RateLimitWindow, cfg.RedisKeyPrefix)
	}

	r := router.SetupRouter(cfg, api.Dependencies{
		Store:         kv,
		Recipes:       recipes,
		Preferences:   service.NewPreferenceStore(kv),
		Images:        images,
		MaxImageBytes: cfg.MaxImageBytes,
		WriteLimiter:  limiter,
	})

	if err := server.New(cfg, r).Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func newImageEncoder(ctx context.Context, cfg *config.Config) (service.ImageEncoder, error) {
	if cfg.ImageBackend != config.ImageS3 {
		return service.DataURLEncoder{MaxSize: cfg.MaxImageBytes}, nil
	}
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return service.NewS3ImageStore(s3Config, cfg.MaxImageBytes), nil
}
