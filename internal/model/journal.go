package model

import (
	"time"
)

type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodNeutral   Mood = "neutral"
	MoodPoor      Mood = "poor"
)

var Moods = []Mood{MoodExcellent, MoodGood, MoodNeutral, MoodPoor}

func (m Mood) Valid() bool {
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

const (
	EnergyLevelMin     = 1
	EnergyLevelMax     = 10
	EnergyLevelDefault = 7
)

// DailyEntry is the journal attached to one calendar date of the daily planner.
type DailyEntry struct {
	Date        string    `json:"date"` // YYYY-MM-DD
	Notes       string    `json:"notes"`
	Mood        Mood      `json:"mood"`
	EnergyLevel int       `json:"energyLevel"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDailyEntry returns the entry shown for a date nobody has written yet.
func NewDailyEntry(date string) *DailyEntry {
	return &DailyEntry{
		Date:        date,
		Mood:        MoodGood,
		EnergyLevel: EnergyLevelDefault,
	}
}

// WeeklyReview is the planning sheet attached to one week of the weekly planner.
type WeeklyReview struct {
	WeekStart    string    `json:"weekStart"` // YYYY-MM-DD, a Monday
	Priorities   []string  `json:"priorities"`
	Reflection   string    `json:"reflection"`
	Achievements []string  `json:"achievements"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewWeeklyReview(weekStart string) *WeeklyReview {
	return &WeeklyReview{
		WeekStart:    weekStart,
		Priorities:   []string{},
		Achievements: []string{},
	}
}
