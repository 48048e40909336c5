package database

import (
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/cookify/backend/config"
)

// Open connects to the SQL database selected by cfg.StoreBackend
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.BackendPostgres:
		// lib/pq is registered as "postgres"; gorm uses it instead of pgx
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.PostgresDSN(),
		})
	default:
		return nil, fmt.Errorf("backend %q is not a SQL backend", cfg.StoreBackend)
	}

	logLevel := logger.Warn
	if config.GetEnvironment() == config.Test {
		logLevel = logger.Silent
	}

	// Log connection target (without password)
	if cfg.StoreBackend == config.BackendPostgres {
		slog.Info("connecting to database", "host", cfg.DBHost, "port", cfg.DBPort, "user", cfg.DBUser)
	} else {
		slog.Info("opening database", "path", cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting connection pool: %w", err)
	}
	if cfg.StoreBackend == config.BackendSQLite {
		// one writer keeps SQLite from returning SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	slog.Info("successfully connected to database", "backend", cfg.StoreBackend)
	return db, nil
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
