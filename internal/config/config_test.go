package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "STORAGE_BACKEND", "DB_DRIVER", "GOALS_KEY", "RATE_LIMIT", "RATE_WINDOW", "TIMEZONE", "REDIS_ADDR", "REDIS_PREFIX"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, BackendSQL, cfg.StorageBackend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "goals", cfg.GoalsKey)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "goalplanner:", cfg.RedisPrefix)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("RATE_WINDOW", "soon")

	cfg := Load()

	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			StorageBackend: BackendSQL,
			DBDriver:       "sqlite",
			DBConnection:   "./data/goals.db",
			GoalsKey:       "goals",
			Timezone:       "UTC",
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.DBDriver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "DB_DRIVER")

	cfg = valid()
	cfg.StorageBackend = "dynamodb"
	assert.ErrorContains(t, cfg.Validate(), "STORAGE_BACKEND")

	cfg = valid()
	cfg.StorageBackend = BackendRedis
	assert.ErrorContains(t, cfg.Validate(), "REDIS_ADDR")
	cfg.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
	cfg.RedisDB = -1
	assert.ErrorContains(t, cfg.Validate(), "REDIS_DB")

	cfg = valid()
	cfg.StorageBackend = BackendS3
	err := cfg.Validate()
	assert.ErrorContains(t, err, "S3_REGION")
	assert.ErrorContains(t, err, "S3_BUCKET")

	cfg.S3Region = "eu-central-1"
	cfg.S3Bucket = "goals"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.GoalsKey = ""
	assert.ErrorContains(t, cfg.Validate(), "GOALS_KEY")

	cfg = valid()
	cfg.Timezone = "Mars/Olympus_Mons"
	assert.ErrorContains(t, cfg.Validate(), "TIMEZONE")
}

func TestSanitized(t *testing.T) {
	cfg := &Config{
		AppName:       "Planner",
		DBConnection:  "postgres://user:pass@db/goals",
		S3AccessKey:   "key",
		S3SecretKey:   "secret",
		RedisPassword: "hunter2",
		SentryDSN:     "https://public@sentry.example/1",
	}

	clean := cfg.Sanitized()
	assert.Equal(t, "Planner", clean.AppName)
	assert.Empty(t, clean.DBConnection)
	assert.Empty(t, clean.S3SecretKey)
	assert.Empty(t, clean.SentryDSN)
	assert.Empty(t, clean.RedisPassword)
	assert.Equal(t, "secret", cfg.S3SecretKey, "original untouched")
}
