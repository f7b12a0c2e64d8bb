package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goalplanner/internal/model"
)

var base = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func at(days int) *time.Time {
	t := base.AddDate(0, 0, days)
	return &t
}

func goal(id string, cat model.Category, pri model.Priority, done bool, created time.Time, due *time.Time) model.Goal {
	return model.Goal{
		ID:        id,
		Title:     "goal " + id,
		Category:  cat,
		Priority:  pri,
		Completed: done,
		CreatedAt: created,
		DueDate:   due,
	}
}

func sample() []model.Goal {
	return []model.Goal{
		goal("a", model.CategoryHealth, model.PriorityHigh, true, base, at(2)),
		goal("b", model.CategoryHealth, model.PriorityLow, false, base.Add(time.Hour), nil),
		goal("c", model.CategoryCareer, model.PriorityMedium, false, base.Add(-time.Hour), at(-1)),
		goal("d", model.CategoryFinance, model.PriorityHigh, false, base, at(10)),
	}
}

func ids(goals []model.Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))
	assert.Equal(t, 0, CompletionRate([]model.Goal{}))
	assert.Equal(t, 25, CompletionRate(sample()))

	thirds := []model.Goal{
		goal("1", model.CategoryHealth, model.PriorityLow, true, base, nil),
		goal("2", model.CategoryHealth, model.PriorityLow, true, base, nil),
		goal("3", model.CategoryHealth, model.PriorityLow, false, base, nil),
	}
	assert.Equal(t, 67, CompletionRate(thirds))

	all := sample()
	for i := range all {
		all[i].Completed = true
	}
	assert.Equal(t, 100, CompletionRate(all))
}

func TestCompletionRate_Bounds(t *testing.T) {
	goals := sample()
	for n := 0; n <= len(goals); n++ {
		rate := CompletionRate(goals[:n])
		assert.GreaterOrEqual(t, rate, 0)
		assert.LessOrEqual(t, rate, 100)
	}
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory(sample())
	assert.Equal(t, map[model.Category]int{
		model.CategoryHealth:  2,
		model.CategoryCareer:  1,
		model.CategoryFinance: 1,
	}, counts)

	_, ok := counts[model.CategoryEducation]
	assert.False(t, ok, "empty categories must be absent")

	assert.Empty(t, CountByCategory(nil))
}

func TestCountByPriority(t *testing.T) {
	assert.Equal(t, map[model.Priority]int{
		model.PriorityHigh:   2,
		model.PriorityMedium: 1,
		model.PriorityLow:    1,
	}, CountByPriority(sample()))
}

func TestCounts_SumToLength(t *testing.T) {
	goals := sample()
	sum := func(m map[string]int) int {
		n := 0
		for _, v := range m {
			n += v
		}
		return n
	}

	byCat := map[string]int{}
	for k, v := range CountByCategory(goals) {
		byCat[string(k)] = v
	}
	byPri := map[string]int{}
	for k, v := range CountByPriority(goals) {
		byPri[string(k)] = v
	}

	assert.Equal(t, len(goals), sum(byCat))
	assert.Equal(t, len(goals), sum(byPri))
}

func TestMostRecent(t *testing.T) {
	goals := sample()

	recent := MostRecent(goals, 3)
	// a and d share CreatedAt; a comes first in the input.
	assert.Equal(t, []string{"b", "a", "d"}, ids(recent))

	again := MostRecent(goals, 3)
	assert.Equal(t, recent, again)

	assert.Len(t, MostRecent(goals, 10), 4)
	assert.Empty(t, MostRecent(goals, 0))
	assert.Empty(t, MostRecent(goals, -1))
	assert.Empty(t, MostRecent(nil, 5))

	// input order untouched
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(goals))
}

func TestMostRecent_SortedDescending(t *testing.T) {
	recent := MostRecent(sample(), 4)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	goals := sample()
	goals = append(goals, goal("e", model.CategoryPersonal, model.PriorityLow, false, base, at(2)))

	upcoming := UpcomingDeadlines(goals, 5)
	// a is completed, b has no due date.
	assert.Equal(t, []string{"c", "e", "d"}, ids(upcoming))

	for _, g := range upcoming {
		assert.False(t, g.Completed)
		require.NotNil(t, g.DueDate)
	}

	assert.Equal(t, []string{"c"}, ids(UpcomingDeadlines(goals, 1)))
	assert.Empty(t, UpcomingDeadlines(nil, 5))
}

func TestUpcomingDeadlines_StableTies(t *testing.T) {
	due := at(4)
	goals := []model.Goal{
		goal("x", model.CategoryHealth, model.PriorityLow, false, base, due),
		goal("y", model.CategoryHealth, model.PriorityLow, false, base, due),
		goal("z", model.CategoryHealth, model.PriorityLow, false, base, due),
	}
	assert.Equal(t, []string{"x", "y", "z"}, ids(UpcomingDeadlines(goals, 3)))
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	due := func(y int, m time.Month, d, h int) model.Goal {
		ts := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
		return model.Goal{DueDate: &ts}
	}

	tests := []struct {
		name    string
		goal    model.Goal
		urgency model.Urgency
		days    int
	}{
		{"due today earlier", due(2024, 1, 10, 0), model.UrgencyDueSoon, 0},
		{"due today later", due(2024, 1, 10, 23), model.UrgencyDueSoon, 0},
		{"yesterday", due(2024, 1, 9, 23), model.UrgencyOverdue, -1},
		{"last week", due(2024, 1, 3, 12), model.UrgencyOverdue, -7},
		{"tomorrow", due(2024, 1, 11, 1), model.UrgencyDueSoon, 1},
		{"three days", due(2024, 1, 13, 9), model.UrgencyDueSoon, 3},
		{"four days", due(2024, 1, 14, 0), model.UrgencyNormal, 4},
		{"no due date", model.Goal{}, model.UrgencyNormal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Classify(tt.goal, now)
			assert.Equal(t, tt.urgency, d.Urgency)
			assert.Equal(t, tt.days, d.DaysUntilDue)
		})
	}
}

func TestClassify_DueExactlyNow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := Classify(model.Goal{DueDate: &now}, now)
	assert.Equal(t, model.UrgencyDueSoon, d.Urgency)
	assert.Equal(t, 0, d.DaysUntilDue)
}

func TestDeadlineLabel(t *testing.T) {
	assert.Equal(t, "Overdue by 2 days", DeadlineLabel(model.Deadline{DaysUntilDue: -2}))
	assert.Equal(t, "Due today", DeadlineLabel(model.Deadline{DaysUntilDue: 0}))
	assert.Equal(t, "Due tomorrow", DeadlineLabel(model.Deadline{DaysUntilDue: 1}))
	assert.Equal(t, "Due in 9 days", DeadlineLabel(model.Deadline{DaysUntilDue: 9}))
}

func TestBuildOverview(t *testing.T) {
	ov := BuildOverview(sample(), base)

	assert.Equal(t, 4, ov.Total)
	assert.Equal(t, 1, ov.Completed)
	assert.Equal(t, 3, ov.Pending)
	assert.Equal(t, 25, ov.CompletionRate)

	assert.Equal(t, []model.CategoryCount{
		{Category: model.CategoryHealth, Count: 2, Percent: 50},
		{Category: model.CategoryCareer, Count: 1, Percent: 25},
		{Category: model.CategoryFinance, Count: 1, Percent: 25},
	}, ov.Categories)

	assert.Equal(t, model.PriorityHigh, ov.Priorities[0].Priority)

	require.Len(t, ov.Upcoming, 2)
	assert.Equal(t, "c", ov.Upcoming[0].Goal.ID)
	assert.Equal(t, model.UrgencyOverdue, ov.Upcoming[0].Deadline.Urgency)
	assert.Equal(t, "Overdue by 1 days", ov.Upcoming[0].Label)
	assert.Equal(t, "Due in 10 days", ov.Upcoming[1].Label)
}

func TestBuildOverview_Empty(t *testing.T) {
	ov := BuildOverview(nil, base)
	assert.Zero(t, ov.Total)
	assert.Zero(t, ov.CompletionRate)
	assert.Empty(t, ov.Categories)
	assert.Empty(t, ov.Recent)
	assert.Empty(t, ov.Upcoming)
}
