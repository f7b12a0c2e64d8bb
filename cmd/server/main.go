package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/templui/goalplanner/internal/app"
	"github.com/templui/goalplanner/internal/config"
	"github.com/templui/goalplanner/internal/logger"
	"github.com/templui/goalplanner/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg := config.Load()

	flush := logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Environment: cfg.AppEnv,
		SentryDSN:   cfg.SentryDSN,
	})
	defer flush()

	app, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		flush()
		os.Exit(1)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	slog.Info("server configured", "port", cfg.Port, "env", cfg.AppEnv, "backend", cfg.StorageBackend, "url", "http://localhost:"+cfg.Port)

	err = server.ListenAndRun(ctx, server.New(app, ":"+cfg.Port))
	if err != nil {
		slog.Error("server failed", "error", err)
	}
}
