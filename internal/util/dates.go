package util

import (
	"errors"
	"strings"
	"time"
)

// ParseDateRange turns optional start/end strings into query bounds.
// Accepts RFC3339 timestamps or YYYY-MM-DD dates; a date-only end is
// widened by one day so the whole end day is included (the returned end
// is an exclusive boundary). Reversed bounds are swapped.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	parse := func(s string) (time.Time, bool, bool, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false, false, nil
		}
		if t, e := time.Parse(time.RFC3339, s); e == nil {
			return t, true, false, nil
		}
		if t, e := time.Parse("2006-01-02", s); e == nil {
			return t, true, true, nil
		}
		return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
	}

	var (
		rawStart, rawEnd time.Time
		startOk, endOk   bool
		endDateOnly      bool
	)

	if startStr != nil {
		t, ok, _, e := parse(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		rawStart, startOk = t, ok
	}
	if endStr != nil {
		t, ok, dateOnly, e := parse(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		rawEnd, endOk, endDateOnly = t, ok, dateOnly
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}
	if endOk {
		endExclusive = rawEnd
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1)
		}
		hasEnd = true
	}
	return start, hasStart, endExclusive, hasEnd, nil
}
