package service

import (
	"context"
	"fmt"
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/planner"
	"github.com/templui/goalplanner/internal/repository"
	"github.com/templui/goalplanner/internal/stats"
)

// PlannerService builds the overview, daily and weekly views from the
// goal list. Views are recomputed on every call.
type PlannerService struct {
	goals   *GoalService
	journal repository.JournalRepository
	loc     *time.Location
}

func NewPlannerService(goals *GoalService, journal repository.JournalRepository, loc *time.Location) *PlannerService {
	if loc == nil {
		loc = time.Local
	}
	return &PlannerService{
		goals:   goals,
		journal: journal,
		loc:     loc,
	}
}

// Location is where calendar dates are computed.
func (s *PlannerService) Location() *time.Location {
	return s.loc
}

// Today returns the current calendar date.
func (s *PlannerService) Today() time.Time {
	return calendar.Date(s.goals.Now(), s.loc)
}

// CurrentWeek returns the Monday of the current week.
func (s *PlannerService) CurrentWeek() time.Time {
	return calendar.WeekStart(s.goals.Now(), s.loc)
}

func (s *PlannerService) Overview() model.Overview {
	return stats.BuildOverview(s.goals.Goals(), s.goals.Now().In(s.loc))
}

func (s *PlannerService) Daily(ctx context.Context, day time.Time) model.DailySummary {
	day = calendar.Date(day, s.loc)
	goals := planner.GoalsForDay(s.goals.Goals(), day, s.goals.Now())
	date := calendar.Format(day, s.loc)

	return model.DailySummary{
		Date:           date,
		Goals:          goals,
		Completed:      stats.CompletedCount(goals),
		CompletionRate: stats.CompletionRate(goals),
		Journal:        s.journal.DailyEntry(ctx, date),
	}
}

func (s *PlannerService) Weekly(ctx context.Context, weekStart time.Time) model.WeeklySummary {
	weekStart = calendar.Date(weekStart, s.loc)
	goals := planner.GoalsForWeek(s.goals.Goals(), weekStart)
	completed := stats.CompletedCount(goals)
	start := calendar.Format(weekStart, s.loc)

	return model.WeeklySummary{
		WeekStart:      start,
		WeekEnd:        calendar.Format(calendar.WeekEnd(weekStart), s.loc),
		Goals:          goals,
		Completed:      completed,
		Remaining:      len(goals) - completed,
		CompletionRate: stats.CompletionRate(goals),
		Review:         s.journal.WeeklyReview(ctx, start),
	}
}

// AddForDay adds a goal from the daily planner: it is due at the start of day.
func (s *PlannerService) AddForDay(ctx context.Context, input model.GoalInput, day time.Time) (model.Goal, error) {
	due := calendar.Date(day, s.loc)
	input.DueDate = &due
	return s.goals.Add(ctx, input)
}

// AddForWeek adds a goal from the weekly planner. Without an explicit due
// date the goal is due on the last day of the week.
func (s *PlannerService) AddForWeek(ctx context.Context, input model.GoalInput, weekStart time.Time) (model.Goal, error) {
	if input.DueDate == nil {
		due := calendar.WeekEnd(calendar.Date(weekStart, s.loc))
		input.DueDate = &due
	}
	return s.goals.Add(ctx, input)
}

func (s *PlannerService) SaveDailyEntry(ctx context.Context, entry *model.DailyEntry) error {
	entry.UpdatedAt = s.goals.Now()
	err := s.journal.SaveDailyEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to save daily entry: %w", err)
	}
	return nil
}

func (s *PlannerService) SaveWeeklyReview(ctx context.Context, review *model.WeeklyReview) error {
	review.UpdatedAt = s.goals.Now()
	err := s.journal.SaveWeeklyReview(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to save weekly review: %w", err)
	}
	return nil
}
