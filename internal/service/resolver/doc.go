// Package resolver binds configured clocks to timezones from the host
// timezone database.
package resolver
