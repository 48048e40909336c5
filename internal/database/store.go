package database

import (
	"fmt"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/storage"
)

// OpenStore opens the key-value backend named by cfg.StoreBackend, running
// migrations for SQL backends. The returned func releases the backend.
func OpenStore(cfg *config.Config) (storage.KeyValue, func() error, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		kv := storage.NewMemoryKV()
		return kv, kv.Close, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(db); err != nil {
			_ = Close(db)
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return storage.NewGormKV(db), func() error { return Close(db) }, nil

	case config.BackendRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisKV(client, cfg.RedisKeyPrefix), client.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
