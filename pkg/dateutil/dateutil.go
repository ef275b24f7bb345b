package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used by plan files and schedules.
const DateLayout = "2006-01-02"

// ParseDate parses a plan-file calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a date in the plan-file layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameOrBefore reports whether a falls on or before b.
func SameOrBefore(a, b time.Time) bool {
	return !a.After(b)
}

// NextAfter returns the earliest date in dates strictly after the cutoff.
// The second return value is false when no such date exists.
func NextAfter(dates []time.Time, cutoff time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, d := range dates {
		if !d.After(cutoff) {
			continue
		}
		if !found || d.Before(best) {
			best = d
			found = true
		}
	}
	return best, found
}
