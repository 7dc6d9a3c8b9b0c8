// Package worldclock runs the whole program once: load the config, resolve
// every clock, capture one instant, format and print.
//
// Nothing is printed unless every clock resolved successfully.
package worldclock
