package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/repository"
)

// GoalService owns the ordered goal list. It is loaded once at construction
// and written back in full after every mutation.
type GoalService struct {
	mu    sync.Mutex
	repo  repository.GoalRepository
	goals []model.Goal
	now   func() time.Time
	newID func() string
	onMut func(op string)
}

type GoalOption func(*GoalService)

// WithClock replaces time.Now as the source of CreatedAt.
func WithClock(now func() time.Time) GoalOption {
	return func(s *GoalService) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid generation.
func WithIDGenerator(newID func() string) GoalOption {
	return func(s *GoalService) {
		s.newID = newID
	}
}

// WithMutationHook registers fn to be called with "add" or "toggle" after
// every persisted mutation. fn runs with the service lock held and must
// not call back into the service.
func WithMutationHook(fn func(op string)) GoalOption {
	return func(s *GoalService) {
		s.onMut = fn
	}
}

func NewGoalService(ctx context.Context, repo repository.GoalRepository, opts ...GoalOption) *GoalService {
	s := &GoalService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		onMut: func(string) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.goals = repo.Load(ctx)
	slog.Debug("goals loaded", "count", len(s.goals))

	return s
}

// Now returns the service clock.
func (s *GoalService) Now() time.Time {
	return s.now()
}

// Goals returns a copy of the goal list in insertion order.
func (s *GoalService) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.goals)
}

// Add appends a new goal with a fresh ID and the current time as CreatedAt.
// Input is expected to be validated by the caller; titles are not checked
// for uniqueness. The list is only replaced once it has been persisted.
func (s *GoalService) Add(ctx context.Context, input model.GoalInput) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := model.Goal{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Completed:   input.Completed,
		CreatedAt:   s.now(),
	}
	if input.DueDate != nil {
		due := *input.DueDate
		goal.DueDate = &due
	}

	next := append(slices.Clone(s.goals), goal)
	err := s.repo.Save(ctx, next)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to add goal: %w", err)
	}
	s.goals = next
	s.onMut("add")

	slog.Info("goal added", "goal_id", goal.ID, "category", goal.Category, "priority", goal.Priority)
	return goal, nil
}

// ToggleComplete flips the completion flag of the goal with the given ID,
// keeping its position. An unknown ID is a no-op: found is false and
// nothing is written.
func (s *GoalService) ToggleComplete(ctx context.Context, id string) (goal model.Goal, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.goals, func(g model.Goal) bool {
		return g.ID == id
	})
	if idx < 0 {
		slog.Debug("toggle ignored for unknown goal", "goal_id", id)
		return model.Goal{}, false, nil
	}

	next := slices.Clone(s.goals)
	updated := next[idx]
	updated.Completed = !updated.Completed
	next[idx] = updated

	err = s.repo.Save(ctx, next)
	if err != nil {
		return model.Goal{}, true, fmt.Errorf("failed to toggle goal: %w", err)
	}
	s.goals = next
	s.onMut("toggle")

	slog.Info("goal toggled", "goal_id", id, "completed", updated.Completed)
	return updated, true, nil
}
