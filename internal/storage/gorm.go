package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/cookify/backend/internal/model"
)

// GormKV stores values as rows of the kv_entries table. It works with any
// gorm dialector; the API wires SQLite and PostgreSQL.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an open gorm connection. The kv_entries table must exist;
// see database.RunMigrations.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get returns the value stored under key
func (g *GormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.Entry
	err := g.db.WithContext(ctx).Where(&model.Entry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set inserts or overwrites the row for key
func (g *GormKV) Set(ctx context.Context, key, value string) error {
	entry := model.Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the row for key
func (g *GormKV) Remove(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Delete(&model.Entry{Key: key}).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Ping checks the underlying connection pool
func (g *GormKV) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
