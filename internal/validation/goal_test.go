package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goalplanner/internal/model"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Learn Rust"))
	assert.EqualError(t, ValidateTitle(""), "title is required")
	assert.EqualError(t, ValidateTitle("   \t\n"), "title is required")
	assert.Error(t, ValidateTitle(strings.Repeat("x", MaxTitleLength+1)))
}

func TestNormalizeGoalInput(t *testing.T) {
	in, err := NormalizeGoalInput(model.GoalInput{
		Title:       "  Learn Rust ",
		Description: " ownership first\n",
		Category:    model.CategoryPersonal,
		Priority:    model.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "Learn Rust", in.Title)
	assert.Equal(t, "ownership first", in.Description)
}

func TestNormalizeGoalInput_Rejects(t *testing.T) {
	valid := model.GoalInput{Title: "t", Category: model.CategoryCareer, Priority: model.PriorityLow}

	tests := []struct {
		name   string
		mutate func(*model.GoalInput)
		want   string
	}{
		{"blank title", func(in *model.GoalInput) { in.Title = " " }, "title is required"},
		{"bad category", func(in *model.GoalInput) { in.Category = "hobbies" }, `invalid category "hobbies"`},
		{"missing category", func(in *model.GoalInput) { in.Category = "" }, `invalid category ""`},
		{"bad priority", func(in *model.GoalInput) { in.Priority = "urgent" }, `invalid priority "urgent"`},
		{"long description", func(in *model.GoalInput) { in.Description = strings.Repeat("d", MaxDescriptionLength+1) }, "description is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := NormalizeGoalInput(in)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestValidateDailyEntry(t *testing.T) {
	entry := model.NewDailyEntry("2024-01-01")
	assert.NoError(t, ValidateDailyEntry(entry))

	entry.EnergyLevel = 0
	assert.Error(t, ValidateDailyEntry(entry))

	entry.EnergyLevel = 11
	assert.Error(t, ValidateDailyEntry(entry))

	entry.EnergyLevel = 10
	entry.Mood = "meh"
	assert.ErrorContains(t, ValidateDailyEntry(entry), "invalid mood")
}

func TestValidateWeeklyReview_DropsBlankItems(t *testing.T) {
	review := &model.WeeklyReview{
		WeekStart:    "2024-01-01",
		Priorities:   []string{"", " Ship v1 ", "   "},
		Achievements: []string{""},
	}

	require.NoError(t, ValidateWeeklyReview(review))
	assert.Equal(t, []string{"Ship v1"}, review.Priorities)
	assert.Empty(t, review.Achievements)
	assert.NotNil(t, review.Achievements)
}

func TestValidateWeeklyReview_TooManyItems(t *testing.T) {
	items := make([]string, MaxListItems+1)
	for i := range items {
		items[i] = "x"
	}
	assert.Error(t, ValidateWeeklyReview(&model.WeeklyReview{Priorities: items}))
}
