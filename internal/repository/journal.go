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

// JournalRepository stores daily entries under "daily/<date>" and weekly
// reviews under "weekly/<week start>".
type JournalRepository interface {
	DailyEntry(ctx context.Context, date string) *model.DailyEntry
	SaveDailyEntry(ctx context.Context, entry *model.DailyEntry) error
	WeeklyReview(ctx context.Context, weekStart string) *model.WeeklyReview
	SaveWeeklyReview(ctx context.Context, review *model.WeeklyReview) error
}

type journalRepository struct {
	store kv.Store
}

func NewJournalRepository(store kv.Store) JournalRepository {
	return &journalRepository{store: store}
}

func dailyKey(date string) string {
	return "daily/" + date
}

func weeklyKey(weekStart string) string {
	return "weekly/" + weekStart
}

func (r *journalRepository) DailyEntry(ctx context.Context, date string) *model.DailyEntry {
	entry := model.NewDailyEntry(date)
	if !r.read(ctx, dailyKey(date), entry) {
		return model.NewDailyEntry(date)
	}
	entry.Date = date
	return entry
}

func (r *journalRepository) SaveDailyEntry(ctx context.Context, entry *model.DailyEntry) error {
	return r.write(ctx, dailyKey(entry.Date), entry)
}

func (r *journalRepository) WeeklyReview(ctx context.Context, weekStart string) *model.WeeklyReview {
	review := model.NewWeeklyReview(weekStart)
	if !r.read(ctx, weeklyKey(weekStart), review) {
		return model.NewWeeklyReview(weekStart)
	}
	review.WeekStart = weekStart
	if review.Priorities == nil {
		review.Priorities = []string{}
	}
	if review.Achievements == nil {
		review.Achievements = []string{}
	}
	return review
}

func (r *journalRepository) SaveWeeklyReview(ctx context.Context, review *model.WeeklyReview) error {
	return r.write(ctx, weeklyKey(review.WeekStart), review)
}

// read decodes the value under key into dst and reports whether it succeeded.
func (r *journalRepository) read(ctx context.Context, key string, dst any) bool {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return false
	}
	if err != nil {
		slog.Warn("failed to read journal", "error", err, "key", key)
		return false
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		slog.Warn("malformed journal payload", "error", err, "key", key)
		return false
	}
	return true
}

func (r *journalRepository) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	err = r.store.Set(ctx, key, data)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
