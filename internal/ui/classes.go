package ui

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/templui/goalplanner/internal/model"
)

const badgeBase = "inline-flex items-center rounded-full px-2 py-0.5 text-xs font-medium bg-gray-100 text-gray-700"

var categoryClasses = map[model.Category]string{
	model.CategoryPersonal:      "bg-blue-100 text-blue-800",
	model.CategoryCareer:        "bg-purple-100 text-purple-800",
	model.CategoryHealth:        "bg-green-100 text-green-800",
	model.CategoryFinance:       "bg-yellow-100 text-yellow-800",
	model.CategoryEducation:     "bg-indigo-100 text-indigo-800",
	model.CategoryRelationships: "bg-pink-100 text-pink-800",
}

var priorityClasses = map[model.Priority]string{
	model.PriorityHigh:   "bg-red-100 text-red-800",
	model.PriorityMedium: "bg-yellow-100 text-yellow-800",
	model.PriorityLow:    "bg-green-100 text-green-800",
}

var urgencyClasses = map[model.Urgency]string{
	model.UrgencyOverdue: "bg-red-600 text-white",
	model.UrgencyDueSoon: "bg-orange-100 text-orange-800",
	model.UrgencyNormal:  "",
}

// Badge merges extra Tailwind classes over the base badge style. Later
// classes win on conflicts.
func Badge(extra ...string) string {
	return twmerge.Merge(append([]string{badgeBase}, extra...)...)
}

func CategoryBadge(c model.Category) string {
	return Badge(categoryClasses[c])
}

func PriorityBadge(p model.Priority) string {
	return Badge(priorityClasses[p])
}

func UrgencyBadge(u model.Urgency) string {
	return Badge(urgencyClasses[u])
}

// Label turns an enum value such as "dueSoon" or "career" into display text.
func Label(value string) string {
	var b strings.Builder
	for i, r := range value {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(b.String())
}
