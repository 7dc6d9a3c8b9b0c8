// Package output writes rendered clock lines to the terminal.
package output
