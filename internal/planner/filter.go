// Package planner selects the goals shown by the daily and weekly planners.
package planner

import (
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
)

// GoalsForDay returns the goals due on day's calendar date, in input order.
// Dates are compared in day's location. Goals without a due date are
// treated as due today; their stored DueDate is left nil.
func GoalsForDay(goals []model.Goal, day, today time.Time) []model.Goal {
	loc := day.Location()
	out := make([]model.Goal, 0)
	for _, g := range goals {
		ref := today
		if g.DueDate != nil {
			ref = *g.DueDate
		}
		if calendar.SameDate(ref, day, loc) {
			out = append(out, g)
		}
	}
	return out
}

// GoalsForWeek returns the goals whose due date lies within
// [weekStart, weekStart+6 days], both ends inclusive, in input order.
// The bounds are compared as full timestamps. Goals without a due date
// never belong to a week.
func GoalsForWeek(goals []model.Goal, weekStart time.Time) []model.Goal {
	weekEnd := calendar.WeekEnd(weekStart)
	out := make([]model.Goal, 0)
	for _, g := range goals {
		if g.DueDate == nil {
			continue
		}
		if g.DueDate.Before(weekStart) || g.DueDate.After(weekEnd) {
			continue
		}
		out = append(out, g)
	}
	return out
}
