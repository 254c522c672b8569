package rules

import (
	"testing"
	"time"
)

func TestBeforeInclusiveSameDay(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 59, 59, 0, time.Local)
	if !BeforeInclusive("2024-06-01", now) {
		t.Fatal("23:59:59 on the deadline day must still be allowed")
	}
}

func TestBeforeInclusiveLastMillisecond(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 59, 59, 999_000_000, time.Local)
	if !BeforeInclusive("2024-06-01", now) {
		t.Fatal("the cutoff instant itself is inclusive")
	}
}

func TestBeforeInclusiveNextDay(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 1, 0, time.Local)
	if BeforeInclusive("2024-06-01", now) {
		t.Fatal("one second past midnight is past the deadline")
	}
}

func TestBeforeInclusiveEarlier(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)
	if !BeforeInclusive("2024-06-01", now) {
		t.Fatal("dates before the deadline must pass")
	}
}

func TestBeforeInclusiveMissingDeadline(t *testing.T) {
	now := time.Date(2024, 6, 2, 0, 0, 1, 0, time.Local)
	if !BeforeInclusive("", now) {
		t.Fatal("a missing deadline must not block submission")
	}
	if !BeforeInclusive("not a date", now) {
		t.Fatal("an unparseable deadline must not block submission")
	}
}

func TestParseDeadlineLayouts(t *testing.T) {
	if _, ok := ParseDeadline("2024-06-01"); !ok {
		t.Fatal("calendar date must parse")
	}
	if _, ok := ParseDeadline("2024-06-01T10:30:00"); !ok {
		t.Fatal("datetime without zone must parse")
	}
	if _, ok := ParseDeadline(" 2024-06-01 "); !ok {
		t.Fatal("surrounding whitespace must be tolerated")
	}
	if _, ok := ParseDeadline(""); ok {
		t.Fatal("empty string must not parse")
	}
}
