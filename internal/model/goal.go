package model

import (
	"time"
)

type Category string

const (
	CategoryHealth        Category = "health"
	CategoryCareer        Category = "career"
	CategoryPersonal      Category = "personal"
	CategoryFinance       Category = "finance"
	CategoryEducation     Category = "education"
	CategoryRelationships Category = "relationships"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryCareer,
	CategoryPersonal,
	CategoryFinance,
	CategoryEducation,
	CategoryRelationships,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

type Goal struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description,omitempty"`
	Category    Category   `json:"category" yaml:"category"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// HasDueDate reports whether the goal carries a deadline.
func (g Goal) HasDueDate() bool {
	return g.DueDate != nil
}

// GoalInput carries the caller-supplied fields of a new goal.
// ID and CreatedAt are always assigned by the store.
type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
