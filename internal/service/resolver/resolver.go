package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/worldclock/internal/domain/clock"
	"github.com/oshokin/worldclock/internal/logger"
)

// ErrInvalidTimezone is returned for identifiers unknown to the host database.
var ErrInvalidTimezone = errors.New("invalid timezone")

// localIndex marks an InvalidTimezoneError raised for the local zone override.
const localIndex = -1

// InvalidTimezoneError names the rejected identifier and the clock it came from.
type InvalidTimezoneError struct {
	// Index is the zero-based position of the clock in the config, or -1
	// when the local zone override was rejected.
	Index int
	// TZ is the identifier as written by the user.
	TZ string
	// Err is the underlying lookup failure, if any.
	Err error
}

func (e *InvalidTimezoneError) Error() string {
	where := fmt.Sprintf("clock #%d", e.Index+1)
	if e.Index == localIndex {
		where = "local zone"
	}

	if e.Err == nil {
		return fmt.Sprintf("%s %q for %s", ErrInvalidTimezone, e.TZ, where)
	}

	return fmt.Sprintf("%s %q for %s: %v", ErrInvalidTimezone, e.TZ, where, e.Err)
}

// Unwrap exposes ErrInvalidTimezone and the lookup error.
func (e *InvalidTimezoneError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidTimezone}
	}

	return []error{ErrInvalidTimezone, e.Err}
}

// LoadLocal returns the location used for clocks without tz.
// An empty name means the host zone.
func LoadLocal(name string) (*time.Location, error) {
	if name == "" || name == clock.LocalZone {
		return time.Local, nil
	}

	loc, err := loadLocation(name)
	if err != nil {
		return nil, &InvalidTimezoneError{Index: localIndex, TZ: name, Err: err}
	}

	return loc, nil
}

// Resolve maps specs to resolved clocks in the same order.
// Any unknown timezone fails the whole call. A nil local means time.Local.
func Resolve(ctx context.Context, specs []clock.Spec, local *time.Location) ([]clock.Resolved, error) {
	if local == nil {
		local = time.Local
	}

	resolved := make([]clock.Resolved, 0, len(specs))

	for i, spec := range specs {
		zone, loc := clock.LocalZone, local

		if spec.TZ != nil && *spec.TZ != clock.LocalZone {
			var err error
			if loc, err = loadLocation(*spec.TZ); err != nil {
				return nil, &InvalidTimezoneError{Index: i, TZ: *spec.TZ, Err: err}
			}

			zone = *spec.TZ
		}

		r := clock.Resolved{
			Spec:     spec.Clone(),
			Label:    clock.Label(spec, zone),
			Zone:     zone,
			Location: loc,
		}

		logger.DebugKV(ctx, "Resolved clock", "index", i, "label", r.Label, "zone", r.Zone, "location", loc.String())

		resolved = append(resolved, r)
	}

	return resolved, nil
}

// errEmptyTimezone covers the case time.LoadLocation silently maps to UTC.
var errEmptyTimezone = errors.New("timezone identifier is empty")

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, errEmptyTimezone
	}

	return time.LoadLocation(name)
}
