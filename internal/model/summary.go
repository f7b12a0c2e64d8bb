package model

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "dueSoon"
	UrgencyNormal  Urgency = "normal"
)

// Deadline is the urgency of a goal relative to a reference date.
// DaysUntilDue is negative when the goal is overdue.
type Deadline struct {
	Urgency      Urgency `json:"urgency"`
	DaysUntilDue int     `json:"daysUntilDue"`
}

type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Percent  int      `json:"percent"`
}

type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int      `json:"count"`
	Percent  int      `json:"percent"`
}

type UpcomingGoal struct {
	Goal     Goal     `json:"goal"`
	Deadline Deadline `json:"deadline"`
	Label    string   `json:"label"`
}

// Overview backs the dashboard view.
type Overview struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Pending        int             `json:"pending"`
	CompletionRate int             `json:"completionRate"`
	Categories     []CategoryCount `json:"categories"`
	Priorities     []PriorityCount `json:"priorities"`
	Recent         []Goal          `json:"recent"`
	Upcoming       []UpcomingGoal  `json:"upcoming"`
}

type DailySummary struct {
	Date           string      `json:"date"`
	Goals          []Goal      `json:"goals"`
	Completed      int         `json:"completed"`
	CompletionRate int         `json:"completionRate"`
	Journal        *DailyEntry `json:"journal"`
}

type WeeklySummary struct {
	WeekStart      string        `json:"weekStart"`
	WeekEnd        string        `json:"weekEnd"`
	Goals          []Goal        `json:"goals"`
	Completed      int           `json:"completed"`
	Remaining      int           `json:"remaining"`
	CompletionRate int           `json:"completionRate"`
	Review         *WeeklyReview `json:"review"`
}
