package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/templui/goalplanner/internal/config"
	"github.com/templui/goalplanner/internal/db"
	"github.com/templui/goalplanner/internal/kv"
	"github.com/templui/goalplanner/internal/markdown"
	"github.com/templui/goalplanner/internal/metrics"
	"github.com/templui/goalplanner/internal/middleware"
	"github.com/templui/goalplanner/internal/repository"
	"github.com/templui/goalplanner/internal/service"
)

type App struct {
	Cfg            *config.Config
	Location       *time.Location
	DB             *sqlx.DB // nil unless the sql backend is in use
	Store          kv.Store
	GoalService    *service.GoalService
	PlannerService *service.PlannerService
	Importer       *service.Importer
	Markdown       *markdown.Parser
	Metrics        *metrics.Metrics
	RateLimiter    *middleware.RateLimiter
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	a := &App{
		Cfg:      cfg,
		Location: loc,
		Markdown: markdown.NewParser(),
		Metrics:  metrics.New(),
	}

	err = a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(a.Store, cfg.GoalsKey)
	journalRepository := repository.NewJournalRepository(a.Store)

	// Services
	a.GoalService = service.NewGoalService(ctx, goalRepository,
		service.WithMutationHook(a.Metrics.GoalMutated),
	)
	a.Metrics.WatchGoals(a.GoalService)
	a.PlannerService = service.NewPlannerService(a.GoalService, journalRepository, loc)
	a.Importer = service.NewImporter(a.GoalService, loc)

	a.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	cfg := a.Cfg

	switch cfg.StorageBackend {
	case config.BackendSQL:
		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			database.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		a.DB = database
		a.Store = kv.NewSQLStore(database)
	case config.BackendS3:
		store, err := kv.NewS3Store(ctx, kv.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		a.Store = store
	case config.BackendRedis:
		store, err := kv.NewRedisStore(ctx, kv.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize redis storage: %w", err)
		}
		a.Store = store
	case config.BackendMemory:
		slog.Warn("using in-memory storage, goals are lost on exit")
		a.Store = kv.NewMemoryStore()
	default:
		return fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}

	slog.Debug("storage ready", "backend", cfg.StorageBackend)
	return nil
}

func (a *App) Close() error {
	if a.RateLimiter != nil {
		a.RateLimiter.Stop()
	}

	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}
