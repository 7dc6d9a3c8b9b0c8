package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/worldclock/internal/config"
	"github.com/oshokin/worldclock/internal/logger"
	"github.com/oshokin/worldclock/internal/service/resolver"
	"github.com/oshokin/worldclock/internal/service/worldclock"
	"github.com/oshokin/worldclock/internal/timesource"
	"github.com/oshokin/worldclock/internal/version"
)

// errUTCWithoutTime is returned when --utc is passed without --time.
var errUTCWithoutTime = errors.New("--utc can only be used with --time")

// rootFlags holds the parsed command-line flags of one invocation.
type rootFlags struct {
	// configPath overrides the config file location.
	configPath string
	// instant pins the displayed instant instead of reading the system clock.
	instant string
	// utc makes a naive --time value UTC instead of local.
	utc bool
	// localZone replaces the host zone for clocks without tz.
	localZone string
	// logLevel controls diagnostics on stderr.
	logLevel string
}

const longDescription = `Print the current time of every clock listed in the configuration file.

The file consists of a series of [[clocks]] tables. Each may set a timezone
with the tz key (see "timedatectl list-timezones") and a custom name. Without
a name the timezone is shown; without a timezone the clock shows local time.

    # Local clock
    [[clocks]]

    [[clocks]]
    tz = "Europe/Berlin"

    [[clocks]]
    name = "Costa Rica"
    tz = "America/Costa_Rica"

The default location is ~/.config/worldclock.toml. Files ending in .yaml or
.yml are read as YAML with the same structure.

Environment: WORLDCLOCK_CONFIG, WORLDCLOCK_LOG_LEVEL, WORLDCLOCK_LOCAL_TZ.
Flags take precedence over the environment.`

// newRootCommand builds the worldclock command with its own flag storage.
func newRootCommand() *cobra.Command {
	flags := new(rootFlags)

	root := &cobra.Command{
		Use:           "worldclock",
		Short:         "Show the current time in multiple time zones.",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClocks(cmd, flags)
		},
	}

	f := root.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "path to config file (default ~/.config/worldclock.toml)")
	f.StringVarP(&flags.instant, "time", "t", "", "show this instant instead of now (RFC 3339 or YYYY-MM-DD HH:MM:SS)")
	f.BoolVarP(&flags.utc, "utc", "u", false, "interpret --time as UTC instead of local time")
	f.StringVar(&flags.localZone, "local-tz", "", "timezone used for clocks without tz (default: host zone)")
	f.StringVar(&flags.logLevel, "log-level", "", "diagnostics level: debug, info, warn or error (default warn)")

	version.AttachCobraVersionCommand(root)

	return root
}

func runClocks(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()

	settings, err := config.LoadSettings(&config.Settings{
		Config:   flags.configPath,
		LogLevel: flags.logLevel,
		LocalTZ:  flags.localZone,
	})
	if err != nil {
		return err
	}

	// Validated above, so the level is always known.
	level, _ := logger.ParseLogLevel(settings.LogLevel)
	logger.SetLevel(level)

	defer logger.Sync(ctx)

	source, err := fixedSource(flags.instant, flags.utc, settings.LocalTZ)
	if err != nil {
		return err
	}

	options := &worldclock.Options{
		ConfigPath: settings.Config,
		LocalZone:  settings.LocalTZ,
	}

	if source != nil {
		options.Source = source
	}

	return worldclock.Run(ctx, options, cmd.OutOrStdout())
}

// fixedSource builds the --time source; nil means the system clock.
func fixedSource(value string, utc bool, zone string) (timesource.Source, error) {
	if value == "" {
		if utc {
			return nil, errUTCWithoutTime
		}

		return nil, nil //nolint:nilnil // No override requested.
	}

	local, err := resolver.LoadLocal(zone)
	if err != nil {
		return nil, err
	}

	instant, err := timesource.ParseInstant(value, utc, local)
	if err != nil {
		return nil, err
	}

	return timesource.Fixed(instant), nil
}

// run executes the CLI with args and returns the process exit code.
// Diagnostics, including the fatal error, go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx = logger.ToContext(ctx, logger.New(stderr, nil))

	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to show clocks", "error", err)
		return 1
	}

	return 0
}

// Execute runs the worldclock CLI and exits with non-zero status on error.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
