// Package clock contains the core domain types of worldclock.
//
// Spec is one configured clock as read from the config file, with optional
// name and timezone. Resolved pairs a Spec with its effective location and
// display label. Both are created once per run and never mutated.
package clock
