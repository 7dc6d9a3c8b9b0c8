// Package config loads the worldclock configuration.
//
// The clock list lives in a TOML file (YAML is accepted too, chosen by file
// extension) under ~/.config. Environment overrides are read from WORLDCLOCK_*
// variables. The package only reads; it never creates or edits files.
package config
