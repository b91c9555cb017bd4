package util

import (
	"time"
)

const layout = "2006-01-02"

// NewDate returns the canonical representation of a calendar day:
// midnight UTC. All snapshot dates go through this.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StripTime discards the time-of-day component, keeping the calendar day
// in UTC.
func StripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// DaysBetween returns the whole number of calendar days from start to
// end. Negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(StripTime(end).Sub(StripTime(start)).Hours() / 24)
}

// AbsDayDistance returns the absolute day distance between two dates.
func AbsDayDistance(t1, t2 time.Time) int {
	d := DaysBetween(t1, t2)
	if d < 0 {
		return -d
	}
	return d
}

// MonthsBefore returns the date n calendar months before t, at day
// granularity. time.AddDate normalizes overflow (Mar 31 minus one month
// lands on Mar 3), which matches how the lookback target is defined.
func MonthsBefore(t time.Time, n int) time.Time {
	return StripTime(t).AddDate(0, -n, 0)
}
