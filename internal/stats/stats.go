// Package stats computes the aggregates shown by the planner views.
// Every function is pure: inputs are never mutated and every input,
// including an empty slice, yields a defined result.
package stats

import (
	"math"
	"slices"
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
)

// DueSoonDays is the inclusive horizon, in calendar days, of a due-soon goal.
const DueSoonDays = 3

func CompletedCount(goals []model.Goal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n
}

// CompletionRate returns the share of completed goals as a rounded
// percentage in [0, 100]. An empty slice has a rate of 0.
func CompletionRate(goals []model.Goal) int {
	return Percent(CompletedCount(goals), len(goals))
}

// Percent returns part/total*100 rounded half away from zero, or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// CountByCategory counts goals per category. Categories without goals are absent.
func CountByCategory(goals []model.Goal) map[model.Category]int {
	counts := make(map[model.Category]int)
	for _, g := range goals {
		counts[g.Category]++
	}
	return counts
}

// CountByPriority counts goals per priority. Priorities without goals are absent.
func CountByPriority(goals []model.Goal) map[model.Priority]int {
	counts := make(map[model.Priority]int)
	for _, g := range goals {
		counts[g.Priority]++
	}
	return counts
}

// MostRecent returns up to n goals ordered by CreatedAt, newest first.
// Goals created at the same instant keep their original order.
func MostRecent(goals []model.Goal, n int) []model.Goal {
	sorted := slices.Clone(goals)
	slices.SortStableFunc(sorted, func(a, b model.Goal) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(sorted, n)
}

// UpcomingDeadlines returns up to n incomplete goals with a due date,
// earliest deadline first. Equal deadlines keep their original order.
func UpcomingDeadlines(goals []model.Goal, n int) []model.Goal {
	pending := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if !g.Completed && g.DueDate != nil {
			pending = append(pending, g)
		}
	}
	slices.SortStableFunc(pending, func(a, b model.Goal) int {
		return a.DueDate.Compare(*b.DueDate)
	})
	return truncate(pending, n)
}

// Classify returns the urgency of a goal's deadline relative to now.
// Both instants are reduced to calendar dates in now's location first,
// so a goal due today is always due soon with zero days left.
// A goal without a due date is normal.
func Classify(goal model.Goal, now time.Time) model.Deadline {
	if goal.DueDate == nil {
		return model.Deadline{Urgency: model.UrgencyNormal}
	}

	days := calendar.DaysBetween(now, *goal.DueDate, now.Location())
	switch {
	case days < 0:
		return model.Deadline{Urgency: model.UrgencyOverdue, DaysUntilDue: days}
	case days <= DueSoonDays:
		return model.Deadline{Urgency: model.UrgencyDueSoon, DaysUntilDue: days}
	default:
		return model.Deadline{Urgency: model.UrgencyNormal, DaysUntilDue: days}
	}
}

func truncate(goals []model.Goal, n int) []model.Goal {
	if n < 0 {
		n = 0
	}
	if len(goals) > n {
		goals = goals[:n]
	}
	return goals
}
