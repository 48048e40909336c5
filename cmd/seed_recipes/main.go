package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/database"
	"github.com/pageza/cookify/backend/internal/service"
)

func main() {
	env := config.GetEnvironment()
	slog.SetDefault(config.NewLogger(env, os.Stdout))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	kv, closeStore, err := database.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()

	clock := service.SystemClock{}
	seeded, err := service.NewSeeder(service.NewRecipeStore(kv), clock, service.NewClockIDAllocator(clock)).
		SeedIfEmpty(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	if seeded {
		log.Printf("Seeded sample recipes into the %s store", cfg.StoreBackend)
	} else {
		log.Println("Store already has recipes, nothing to do")
	}
}
