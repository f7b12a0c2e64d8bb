package ctxkeys

import (
	"context"

	"github.com/templui/goalplanner/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	ConfigKey    contextKey = "config"
	RequestIDKey contextKey = "request_id"
)

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
