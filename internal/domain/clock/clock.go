package clock

import "time"

// LocalZone is the zone identifier and fallback label of clocks without a timezone.
const LocalZone = "Local"

// Spec is a single clock entry from the configuration file.
type Spec struct {
	// Name is the optional display label, e.g. an emoji or a city.
	Name *string `toml:"name,omitempty"`
	// TZ is the optional IANA timezone identifier. Nil means local time.
	TZ *string `toml:"tz,omitempty"`
}

// NewSpec builds a Spec; empty arguments are treated as absent.
func NewSpec(name, tz string) Spec {
	var spec Spec

	if name != "" {
		spec.Name = &name
	}

	if tz != "" {
		spec.TZ = &tz
	}

	return spec
}

// HasName reports whether the entry sets an explicit label.
func (s Spec) HasName() bool {
	return s.Name != nil
}

// HasTZ reports whether the entry names a timezone.
func (s Spec) HasTZ() bool {
	return s.TZ != nil
}

// Clone returns a deep copy of the spec.
func (s Spec) Clone() Spec {
	var cloned Spec

	if s.Name != nil {
		name := *s.Name
		cloned.Name = &name
	}

	if s.TZ != nil {
		tz := *s.TZ
		cloned.TZ = &tz
	}

	return cloned
}

// Resolved is a Spec bound to its effective timezone.
type Resolved struct {
	// Spec is the entry this clock was resolved from.
	Spec Spec
	// Label is the text printed in front of the time.
	Label string
	// Zone is the IANA identifier, or LocalZone for local clocks.
	Zone string
	// Location converts the captured instant to this clock's wall time.
	Location *time.Location
}

// IsLocal reports whether the clock follows the local zone.
func (r Resolved) IsLocal() bool {
	return r.Zone == LocalZone
}

// Label picks the display label for spec resolved to zone:
// the explicit name if set, otherwise the zone identifier.
func Label(spec Spec, zone string) string {
	if spec.Name != nil {
		return *spec.Name
	}

	if zone == "" {
		return LocalZone
	}

	return zone
}
