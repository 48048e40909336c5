package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Image backends
const (
	ImageInline = "inline"
	ImageS3     = "s3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Store configuration
	StoreBackend string
	SQLitePath   string
	SeedOnStart  bool

	// Database configuration (postgres backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (redis backend and rate limiting)
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RedisURL       string
	RedisKeyPrefix string

	// Image configuration
	ImageBackend  string
	S3BucketName  string
	AWSRegion     string
	MaxImageBytes int64

	// Rate limiting of write requests; zero disables it
	RateLimit       int
	RateLimitWindow time.Duration
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Development, Test:
		if err := loadEnvConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
		}
	case Production:
		if err := loadEnvConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
		// Production passwords come only from Docker secrets
		cfg.DBPassword = readSecret("db_password")
		cfg.RedisPassword = readSecret("redis_password")
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig reads every setting from the environment, falling back to
// Docker secrets for passwords and to development defaults otherwise
func loadEnvConfig(cfg *Config) error {
	cfg.ServerPort = envOrDefault("SERVER_PORT", "8080")
	cfg.ServerHost = envOrDefault("SERVER_HOST", "0.0.0.0")
	cfg.CORSOrigins = splitList(envOrDefault("CORS_ORIGINS", "http://localhost:5173"))

	cfg.StoreBackend = strings.ToLower(envOrDefault("STORE_BACKEND", BackendSQLite))
	cfg.SQLitePath = envOrDefault("SQLITE_PATH", "cookify.db")

	cfg.DBHost = envOrDefault("DB_HOST", "localhost")
	cfg.DBPort = envOrDefault("DB_PORT", "5432")
	cfg.DBUser = envOrDefault("DB_USER", "postgres")
	cfg.DBPassword = envOrSecret("DB_PASSWORD", "db_password")
	cfg.DBName = envOrDefault("DB_NAME", "cookify")
	cfg.DBSSLMode = envOrDefault("DB_SSL_MODE", "disable")

	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = envOrDefault("REDIS_PORT", "6379")
	cfg.RedisPassword = envOrSecret("REDIS_PASSWORD", "redis_password")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisKeyPrefix = envOrDefault("REDIS_KEY_PREFIX", "cookify:")
	cfg.RedisDB = 0

	cfg.ImageBackend = strings.ToLower(envOrDefault("IMAGE_BACKEND", ImageInline))
	cfg.S3BucketName = os.Getenv("S3_BUCKET_NAME")
	cfg.AWSRegion = os.Getenv("AWS_REGION")

	var err error
	if cfg.SeedOnStart, err = envBool("SEED_ON_START", true); err != nil {
		return err
	}
	if cfg.MaxImageBytes, err = envInt64("MAX_IMAGE_BYTES", 5<<20); err != nil {
		return err
	}
	limit, err := envInt64("RATE_LIMIT", 0)
	if err != nil {
		return err
	}
	cfg.RateLimit = int(limit)
	if cfg.RateLimitWindow, err = envDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return err
	}

	return nil
}

// PostgresDSN returns the lib/pq connection string for the postgres backend
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the server listen address (host:port)
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envOrSecret(key, secret string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return readSecret(secret)
}

func envBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
