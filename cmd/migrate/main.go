package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/database"
)

func main() {
	env := config.GetEnvironment()
	slog.SetDefault(config.NewLogger(env, os.Stdout))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch cfg.StoreBackend {
	case config.BackendSQLite, config.BackendPostgres:
	default:
		log.Fatalf("Nothing to migrate for the %s backend", cfg.StoreBackend)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Println("All migrations applied successfully.")
}
