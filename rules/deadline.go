package rules

import (
	"strings"
	"time"
)

// Layouts the backend has been observed to emit for calendar dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDeadline parses a stored deadline string in local time. ok is
// false for empty or unparseable values.
func ParseDeadline(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// BeforeInclusive reports whether now is at or before 23:59:59.999
// local time on the deadline date. A missing or unparseable deadline
// never blocks submission.
//
// The cutoff is deliberately local, not UTC: timezone-naive parsing
// of the date string has historically produced off-by-one gating.
func BeforeInclusive(deadline string, now time.Time) bool {
	parsed, ok := ParseDeadline(deadline)
	if !ok {
		return true
	}
	year, month, day := parsed.Date()
	cutoff := time.Date(year, month, day, 23, 59, 59, 999_000_000, time.Local)
	return !now.After(cutoff)
}
