// Package dateutil provides calendar-day arithmetic shared by the
// scheduling and streak packages. All dates are UTC midnights.
package dateutil

import "time"

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns day shifted by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from an earlier day to a
// later day. Negative when later precedes earlier.
func DaysBetween(earlier, later time.Time) int {
	return int(DayOf(later).Sub(DayOf(earlier)).Hours() / 24)
}
