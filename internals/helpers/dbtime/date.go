// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"strings"
	"time"
)

// NormalizeDate drops the time-of-day so every per-day table keys on the
// calendar date at midnight UTC. Two writes on the same day must collide
// into one row regardless of the wall clock submitted.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether two instants normalize to the same key.
func SameCalendarDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}

// ParseDateParam accepts "2006-01-02" or a full RFC3339 timestamp and
// returns the normalized date. Empty input means "today".
func ParseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NormalizeDate(time.Now()), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return NormalizeDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}
