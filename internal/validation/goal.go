package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/templui/goalplanner/internal/model"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxNotesLength       = 10000
	MaxListItems         = 50
)

// ValidateTitle validates a goal title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > MaxTitleLength {
		return fmt.Errorf("title is too long (max %d characters)", MaxTitleLength)
	}

	return nil
}

func ValidateCategory(c model.Category) error {
	if !c.Valid() {
		return fmt.Errorf("invalid category %q", c)
	}
	return nil
}

func ValidatePriority(p model.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("invalid priority %q", p)
	}
	return nil
}

// NormalizeGoalInput trims free text and checks every field a new goal
// needs. It is the form boundary: the store never sees rejected input.
func NormalizeGoalInput(in model.GoalInput) (model.GoalInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	err := ValidateTitle(in.Title)
	if err != nil {
		return in, err
	}

	if len(in.Description) > MaxDescriptionLength {
		return in, fmt.Errorf("description is too long (max %d characters)", MaxDescriptionLength)
	}

	err = ValidateCategory(in.Category)
	if err != nil {
		return in, err
	}

	err = ValidatePriority(in.Priority)
	if err != nil {
		return in, err
	}

	return in, nil
}

// ValidateDailyEntry checks a daily journal entry
func ValidateDailyEntry(entry *model.DailyEntry) error {
	if !entry.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", entry.Mood)
	}

	if entry.EnergyLevel < model.EnergyLevelMin || entry.EnergyLevel > model.EnergyLevelMax {
		return fmt.Errorf("energy level must be between %d and %d", model.EnergyLevelMin, model.EnergyLevelMax)
	}

	if len(entry.Notes) > MaxNotesLength {
		return fmt.Errorf("notes are too long (max %d characters)", MaxNotesLength)
	}

	return nil
}

// ValidateWeeklyReview checks a weekly review. Blank list items are dropped.
func ValidateWeeklyReview(review *model.WeeklyReview) error {
	review.Priorities = compact(review.Priorities)
	review.Achievements = compact(review.Achievements)

	if len(review.Priorities) > MaxListItems || len(review.Achievements) > MaxListItems {
		return fmt.Errorf("too many items (max %d per list)", MaxListItems)
	}

	if len(review.Reflection) > MaxNotesLength {
		return fmt.Errorf("reflection is too long (max %d characters)", MaxNotesLength)
	}

	return nil
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
