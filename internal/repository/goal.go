package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/goalplanner/internal/kv"
	"github.com/templui/goalplanner/internal/model"
)

const DefaultGoalsKey = "goals"

// GoalRepository persists the whole goal list as one JSON array under a
// single key. There are no partial updates.
type GoalRepository interface {
	// Load returns the stored goals in insertion order. A missing key or a
	// malformed payload yields an empty list.
	Load(ctx context.Context) []model.Goal
	Save(ctx context.Context, goals []model.Goal) error
}

type goalRepository struct {
	store kv.Store
	key   string
}

func NewGoalRepository(store kv.Store, key string) GoalRepository {
	if key == "" {
		key = DefaultGoalsKey
	}
	return &goalRepository{store: store, key: key}
}

func (r *goalRepository) Load(ctx context.Context) []model.Goal {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []model.Goal{}
	}
	if err != nil {
		slog.Warn("failed to read goals, starting empty", "error", err, "key", r.key)
		return []model.Goal{}
	}

	var goals []model.Goal
	err = json.Unmarshal(data, &goals)
	if err != nil {
		slog.Warn("malformed goals payload, starting empty", "error", err, "key", r.key)
		return []model.Goal{}
	}
	if goals == nil {
		goals = []model.Goal{}
	}

	return goals
}

func (r *goalRepository) Save(ctx context.Context, goals []model.Goal) error {
	if goals == nil {
		goals = []model.Goal{}
	}

	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	err = r.store.Set(ctx, r.key, data)
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}

	return nil
}
