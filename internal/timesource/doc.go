// Package timesource provides the instant every clock line is computed from.
//
// The pipeline reads the instant exactly once per run; Fixed lets tests and
// the --time flag pin it.
package timesource
