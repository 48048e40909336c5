//go:build integration

package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/pageza/cookify/backend/config"
	"github.com/pageza/cookify/backend/internal/database"
)

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
}

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, string) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to get container host")
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err, "failed to get container port")
	return host, mapped.Port()
}

// SetupRedis starts a Redis container and returns a connected client
func SetupRedis(t *testing.T) *redis.Client {
	requireDocker(t)

	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}, "6379/tcp")

	client, err := database.NewRedisClient(&config.Config{
		RedisURL: fmt.Sprintf("redis://%s:%s/0", host, port),
	})
	require.NoError(t, err, "failed to connect to redis")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// SetupPostgres starts a PostgreSQL container and returns a migrated
// connection opened the way the API opens it
func SetupPostgres(t *testing.T) *gorm.DB {
	requireDocker(t)

	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "cookify",
		},
		// the server restarts once after init; wait for the second ready line
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(60 * time.Second),
	}, "5432/tcp")

	db, err := database.Open(&config.Config{
		StoreBackend: config.BackendPostgres,
		DBHost:       host,
		DBPort:       port,
		DBUser:       "testuser",
		DBPassword:   "testpass",
		DBName:       "cookify",
		DBSSLMode:    "disable",
	})
	require.NoError(t, err, "failed to connect to database")
	require.NoError(t, database.RunMigrations(db), "failed to migrate test database")
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
