// Package logger wraps zap for the worldclock binary.
//
// Diagnostics always go to stderr so that stdout carries nothing but clock
// lines. The package keeps a global sugared logger whose level can be changed
// at runtime, and context helpers (ToContext/FromContext/WithName/WithKV) so
// services can log with scoped fields.
package logger
