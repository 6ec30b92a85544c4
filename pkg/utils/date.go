package utils

import (
	"math"
	"time"
)

// LocalDate shifts a UTC instant by a whole-hour group timezone offset
// and truncates it to the calendar date in that timezone.
func LocalDate(utc time.Time, offsetHours int) time.Time {
	local := utc.UTC().Add(time.Duration(offsetHours) * time.Hour)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates an instant to its calendar date, ignoring timezone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateBefore reports whether a falls strictly before b when both are
// compared as calendar dates.
func DateBefore(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b))
}

// DateAfter reports whether a falls strictly after b when both are
// compared as calendar dates.
func DateAfter(a, b time.Time) bool {
	return DateOnly(a).After(DateOnly(b))
}

// Round2 rounds to two decimal places, matching the quiz score contract.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
