package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSQL    = "sql"
	BackendS3     = "s3"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	// Application
	AppName  string
	AppEnv   string
	Port     string
	Timezone string

	// Storage backend: "sql" (default), "s3", "redis" or "memory"
	StorageBackend string
	GoalsKey       string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3Prefix    string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// Rate limiting of mutating API calls, per client IP
	RateLimit  int
	RateWindow time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		// Application
		AppName:  envString("APP_NAME", "Goal Planner"),
		AppEnv:   envString("APP_ENV", "development"),
		Port:     envString("PORT", "8090"),
		Timezone: envString("TIMEZONE", "Local"),

		// Storage
		StorageBackend: envString("STORAGE_BACKEND", BackendSQL),
		GoalsKey:       envString("GOALS_KEY", "goals"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/goals.db?_pragma=journal_mode(WAL)"),

		// S3 (only read when STORAGE_BACKEND=s3)
		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3Prefix:    envString("S3_PREFIX", ""),

		// Redis (only read when STORAGE_BACKEND=redis)
		RedisAddr:     envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),
		RedisPrefix:   envString("REDIS_PREFIX", "goalplanner:"),

		// Rate limiting
		RateLimit:  envInt("RATE_LIMIT", 60),
		RateWindow: envDuration("RATE_WINDOW", time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

// Validate reports configuration that cannot start the app.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case BackendSQL:
		if c.DBDriver != "sqlite" && c.DBDriver != "pgx" {
			errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or pgx)", c.DBDriver))
		}
		if c.DBConnection == "" {
			errs = append(errs, errors.New("DB_CONNECTION is required"))
		}
	case BackendS3:
		for key, value := range map[string]string{
			"S3_REGION": c.S3Region,
			"S3_BUCKET": c.S3Bucket,
		} {
			if value == "" {
				errs = append(errs, fmt.Errorf("%s is required for the s3 backend", key))
			}
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis backend"))
		}
		if c.RedisDB < 0 {
			errs = append(errs, fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend))
	}

	if c.GoalsKey == "" {
		errs = append(errs, errors.New("GOALS_KEY must not be empty"))
	}

	_, err := c.Location()
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Location resolves Timezone. Calendar dates of the daily and weekly
// planners are computed in this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy safe to hand to templates. Credentials and
// connection strings are cleared.
func (c *Config) Sanitized() *Config {
	clean := *c
	clean.DBConnection = ""
	clean.S3AccessKey = ""
	clean.S3SecretKey = ""
	clean.RedisPassword = ""
	clean.SentryDSN = ""
	return &clean
}
