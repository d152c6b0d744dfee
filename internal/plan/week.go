// Package plan provides week arithmetic for the meal planner. Plans are
// scoped to a single Monday-to-Sunday week and keyed by the ISO date of that
// week's Monday.
package plan

import "time"

// Days in a plan week, indexed 0=Monday..6=Sunday.
const Days = 7

// WeekStart returns midnight on the Monday of the week containing t, in t's
// location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekKey returns the stable key for the week containing t: the ISO-8601 date
// of that week's Monday, e.g. "2026-02-23".
func WeekKey(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}

// ValidDay reports whether day is a valid plan week-day index.
func ValidDay(day int) bool {
	return day >= 0 && day < Days
}
