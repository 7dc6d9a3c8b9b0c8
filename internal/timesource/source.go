package timesource

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Source reports the current instant.
type Source interface {
	Now() time.Time
}

// System reads the host real-time clock.
type System struct{}

// Now returns the current time from the system clock.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

var (
	_ Source = System{}
	_ Source = Fixed{}
)

// naiveLayouts are accepted for instants without an offset.
//
//nolint:gochecknoglobals // Read-only list of layouts.
var naiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ErrInvalidInstant is returned when a --time value cannot be parsed.
var ErrInvalidInstant = errors.New("invalid instant")

// ParseInstant parses an RFC 3339 timestamp, or a naive date-time interpreted
// in local (UTC when utc is set). An explicit offset in value always wins.
func ParseInstant(value string, utc bool, local *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	loc := local
	if utc {
		loc = time.UTC
	}

	if loc == nil {
		loc = time.Local
	}

	for _, layout := range naiveLayouts {
		wall, err := time.Parse(layout, value)
		if err != nil {
			continue
		}

		t := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, loc)
		if !sameWallClock(t, wall) {
			return time.Time{}, fmt.Errorf("%w %q: wall time does not exist in %s", ErrInvalidInstant, value, loc)
		}

		return t, nil
	}

	return time.Time{}, fmt.Errorf(
		"%w %q: expected RFC 3339 or YYYY-MM-DD HH:MM[:SS]",
		ErrInvalidInstant,
		value,
	)
}

// sameWallClock reports whether t shows the wall time of naive. It fails for
// times skipped by a DST transition, which time.Date normalizes silently.
func sameWallClock(t, naive time.Time) bool {
	return t.Year() == naive.Year() &&
		t.Month() == naive.Month() &&
		t.Day() == naive.Day() &&
		t.Hour() == naive.Hour() &&
		t.Minute() == naive.Minute() &&
		t.Second() == naive.Second()
}
