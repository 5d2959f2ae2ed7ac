// Package week keys weekly records by the Monday that starts their ISO week.
package week

import "time"

// Monday returns midnight of the Monday beginning the week that contains t, in
// t's location. Sunday belongs to the week that started six days earlier.
func Monday(t time.Time) time.Time {
	day := int(t.Weekday())
	offset := 1
	if day == 0 {
		offset = -6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-day+offset, 0, 0, 0, 0, t.Location())
}

// Of returns Monday(t) as a date-only string.
func Of(t time.Time) string {
	return Monday(t).Format(time.DateOnly)
}

// Valid reports whether s is a date-only string that falls on a Monday.
func Valid(s string) bool {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return false
	}
	return d.Weekday() == time.Monday
}
