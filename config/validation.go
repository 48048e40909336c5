package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every setting and reports all problems at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"})
	}

	switch cfg.StoreBackend {
	case BackendMemory:
		if IsProduction() {
			errs = append(errs, ValidationError{"STORE_BACKEND", "memory backend is not durable and not allowed in production"})
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for the sqlite backend"})
		}
	case BackendPostgres:
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			errs = append(errs, ValidationError{"DB_HOST", "DB_HOST, DB_NAME and DB_USER are required for the postgres backend"})
		}
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "db_password secret or DB_PASSWORD is required for the postgres backend"})
		}
	case BackendRedis:
		if !cfg.RedisEnabled() {
			errs = append(errs, ValidationError{"REDIS_HOST", "REDIS_HOST or REDIS_URL is required for the redis backend"})
		}
	default:
		errs = append(errs, ValidationError{"STORE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.StoreBackend)})
	}

	switch cfg.ImageBackend {
	case ImageInline:
	case ImageS3:
		if cfg.S3BucketName == "" {
			errs = append(errs, ValidationError{"S3_BUCKET_NAME", "is required for the s3 image backend"})
		}
	default:
		errs = append(errs, ValidationError{"IMAGE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.ImageBackend)})
	}

	if cfg.MaxImageBytes <= 0 {
		errs = append(errs, ValidationError{"MAX_IMAGE_BYTES", "must be positive"})
	}
	if cfg.RateLimit < 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT", "must not be negative"})
	}
	if cfg.RateLimit > 0 {
		if !cfg.RedisEnabled() {
			errs = append(errs, ValidationError{"RATE_LIMIT", "rate limiting needs REDIS_HOST or REDIS_URL"})
		}
		if cfg.RateLimitWindow <= 0 {
			errs = append(errs, ValidationError{"RATE_LIMIT_WINDOW", "must be positive"})
		}
	}

	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
	}

	return nil
}
