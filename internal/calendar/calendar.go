// Package calendar works with calendar dates rather than instants.
// A date is represented as a time.Time at midnight in its location.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire format of a calendar date.
const Layout = "2006-01-02"

// Date truncates t to midnight of its calendar date in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate reports whether a and b fall on the same calendar date in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from "from" to "to" in loc.
// Sub-day precision is dropped before differencing, so DST shifts never
// produce a fractional day.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// WeekStart returns the Monday of the week containing t. Sunday belongs to
// the week that started six days earlier.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := Date(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the last day of the inclusive seven-day range starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// Parse reads a YYYY-MM-DD date as midnight in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders the calendar date of t in loc.
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}
