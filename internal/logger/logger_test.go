package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got, s)
	}

	got, ok := ParseLogLevel("loud")
	require.False(t, ok)
	require.Equal(t, zapcore.WarnLevel, got)
}

// TestContextLogger checks that named loggers and fields travel through the context.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), New(&buf, zapcore.DebugLevel))
	ctx = WithName(ctx, "worldclock")
	ctx = WithKV(ctx, "path", "/tmp/worldclock.toml")

	DebugKV(ctx, "Loaded configuration", "clocks", 2)

	out := buf.String()
	require.Contains(t, out, "DEBUG")
	require.Contains(t, out, "worldclock")
	require.Contains(t, out, "Loaded configuration")
	require.Contains(t, out, "/tmp/worldclock.toml")
	require.Contains(t, out, `"clocks": 2`)
}

// TestFromContextFallsBackToGlobal ensures an empty context yields the global logger.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, global, FromContext(context.Background()))
}

// TestNewRespectsLevel ensures messages below the level are dropped.
func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := New(&buf, zapcore.WarnLevel)
	l.Info("hidden")
	l.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
