package stats

import (
	"fmt"
	"time"

	"github.com/templui/goalplanner/internal/model"
)

const (
	RecentLimit   = 5
	UpcomingLimit = 5
)

// CategoryBreakdown lists the non-empty categories in display order with
// their share of all goals.
func CategoryBreakdown(goals []model.Goal) []model.CategoryCount {
	counts := CountByCategory(goals)
	out := make([]model.CategoryCount, 0, len(counts))
	for _, c := range model.Categories {
		n, ok := counts[c]
		if !ok {
			continue
		}
		out = append(out, model.CategoryCount{Category: c, Count: n, Percent: Percent(n, len(goals))})
	}
	return out
}

// PriorityBreakdown lists the non-empty priorities, highest first.
func PriorityBreakdown(goals []model.Goal) []model.PriorityCount {
	counts := CountByPriority(goals)
	out := make([]model.PriorityCount, 0, len(counts))
	for _, p := range model.Priorities {
		n, ok := counts[p]
		if !ok {
			continue
		}
		out = append(out, model.PriorityCount{Priority: p, Count: n, Percent: Percent(n, len(goals))})
	}
	return out
}

// DeadlineLabel renders a deadline the way the dashboard shows it.
func DeadlineLabel(d model.Deadline) string {
	switch {
	case d.DaysUntilDue < 0:
		return fmt.Sprintf("Overdue by %d days", -d.DaysUntilDue)
	case d.DaysUntilDue == 0:
		return "Due today"
	case d.DaysUntilDue == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", d.DaysUntilDue)
	}
}

// BuildOverview assembles the dashboard aggregates for the full goal list.
func BuildOverview(goals []model.Goal, now time.Time) model.Overview {
	completed := CompletedCount(goals)

	upcoming := UpcomingDeadlines(goals, UpcomingLimit)
	items := make([]model.UpcomingGoal, 0, len(upcoming))
	for _, g := range upcoming {
		d := Classify(g, now)
		items = append(items, model.UpcomingGoal{Goal: g, Deadline: d, Label: DeadlineLabel(d)})
	}

	return model.Overview{
		Total:          len(goals),
		Completed:      completed,
		Pending:        len(goals) - completed,
		CompletionRate: CompletionRate(goals),
		Categories:     CategoryBreakdown(goals),
		Priorities:     PriorityBreakdown(goals),
		Recent:         MostRecent(goals, RecentLimit),
		Upcoming:       items,
	}
}
