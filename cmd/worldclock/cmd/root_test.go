package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const exampleConfig = `
[[clocks]]
name = "💻"

[[clocks]]
name = "🏠"
tz = "Europe/Berlin"
`

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv("WORLDCLOCK_CONFIG", "")
	t.Setenv("WORLDCLOCK_LOG_LEVEL", "")
	t.Setenv("WORLDCLOCK_LOCAL_TZ", "")
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "worldclock.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// TestRun_PrintsClocks runs the CLI end to end with a pinned instant.
func TestRun_PrintsClocks(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := execute(t,
		"--config", writeConfig(t, exampleConfig),
		"--local-tz", "Asia/Tokyo",
		"--time", "2024-06-01 18:03:33",
		"--utc",
	)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "💻  03:03:33\n🏠  20:03:33\n", stdout)
	require.Empty(t, stderr)
}

// TestRun_MissingConfig exits with 1, prints no clocks and names the file.
func TestRun_MissingConfig(t *testing.T) {
	clearEnv(t)

	missing := filepath.Join(t.TempDir(), "worldclock.toml")

	code, stdout, stderr := execute(t, "--config", missing)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "config file not found")
	require.Contains(t, stderr, missing)
}

// TestRun_InvalidTimezone exits with 1 and names the identifier.
func TestRun_InvalidTimezone(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := execute(t, "--config", writeConfig(t, "[[clocks]]\ntz = \"Nowhere/Fake\"\n"))
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Nowhere/Fake")
}

// TestRun_UTCWithoutTime rejects --utc on its own.
func TestRun_UTCWithoutTime(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := execute(t, "--config", writeConfig(t, exampleConfig), "--utc")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "--utc can only be used with --time")
}

// TestRun_FlagsOverrideInvalidEnvironment ignores bad variables replaced by flags.
func TestRun_FlagsOverrideInvalidEnvironment(t *testing.T) {
	t.Setenv("WORLDCLOCK_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("WORLDCLOCK_LOG_LEVEL", "loud")
	t.Setenv("WORLDCLOCK_LOCAL_TZ", "Nowhere/Fake")

	code, _, stderr := execute(t, "--time", "2024-06-01T18:03:33Z")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "LogLevel")

	code, stdout, stderr := execute(t,
		"--config", writeConfig(t, exampleConfig),
		"--log-level", "error",
		"--local-tz", "UTC",
		"--time", "2024-06-01T18:03:33Z",
	)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "💻  18:03:33\n🏠  20:03:33\n", stdout)
}

// TestRun_EnvironmentConfig reads the config path from WORLDCLOCK_CONFIG.
func TestRun_EnvironmentConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORLDCLOCK_CONFIG", writeConfig(t, exampleConfig))
	t.Setenv("WORLDCLOCK_LOCAL_TZ", "America/New_York")

	code, stdout, stderr := execute(t, "-t", "2024-06-01T18:03:33Z")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "💻  14:03:33\n🏠  20:03:33\n", stdout)
}

// TestRun_DebugLogsResolvedPath writes diagnostics to stderr only.
func TestRun_DebugLogsResolvedPath(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, exampleConfig)

	code, stdout, stderr := execute(t, "-c", path, "--log-level", "debug", "-t", "2024-06-01T18:03:33Z")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "🏠  20:03:33\n")
	require.Contains(t, stderr, "Loaded configuration")
	require.Contains(t, stderr, path)
	require.Contains(t, stderr, "Resolved clock")
	require.NotContains(t, stdout, "Resolved clock")
}

// TestFixedSource covers the --time and --utc combinations.
func TestFixedSource(t *testing.T) {
	t.Parallel()

	src, err := fixedSource("", false, "")
	require.NoError(t, err)
	require.Nil(t, src)

	_, err = fixedSource("", true, "")
	require.ErrorIs(t, err, errUTCWithoutTime)

	src, err = fixedSource("2024-06-01 20:03:33", false, "Europe/Berlin")
	require.NoError(t, err)
	require.True(t, time.Date(2024, time.June, 1, 18, 3, 33, 0, time.UTC).Equal(src.Now()))

	_, err = fixedSource("2024-06-01 20:03:33", false, "Nowhere/Fake")
	require.Error(t, err)

	_, err = fixedSource("soon", false, "")
	require.Error(t, err)
}
