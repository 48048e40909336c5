package database

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/pageza/cookify/backend/internal/model"
)

// RunMigrations creates or updates the tables the SQL store needs
func RunMigrations(db *gorm.DB) error {
	slog.Info("running auto-migration", "dialect", db.Dialector.Name())
	return db.AutoMigrate(&model.Entry{})
}
