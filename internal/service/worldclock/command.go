package worldclock

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/worldclock/internal/config"
	"github.com/oshokin/worldclock/internal/logger"
	"github.com/oshokin/worldclock/internal/service/formatter"
	"github.com/oshokin/worldclock/internal/service/output"
	"github.com/oshokin/worldclock/internal/service/resolver"
	"github.com/oshokin/worldclock/internal/timesource"
)

// Options controls a single worldclock run.
type Options struct {
	// ConfigPath is the config file; empty means ~/.config/worldclock.toml.
	ConfigPath string
	// LocalZone replaces the host zone for clocks without tz when set.
	LocalZone string
	// Source supplies the captured instant; nil means the system clock.
	Source timesource.Source
}

// Run prints one line per configured clock to stdout.
func Run(ctx context.Context, opts *Options, stdout io.Writer) error {
	ctx = logger.WithName(ctx, "worldclock")

	lines, err := Render(ctx, opts)
	if err != nil {
		return err
	}

	return output.Write(stdout, lines)
}

// Render performs every step of Run except printing.
func Render(ctx context.Context, opts *Options) ([]string, error) {
	if opts == nil {
		opts = new(Options)
	}

	path, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("locate configuration: %w", err)
	}

	ctx = logger.WithKV(ctx, "path", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger.DebugKV(ctx, "Loaded configuration", "clocks", len(cfg.Clocks))

	local, err := resolver.LoadLocal(opts.LocalZone)
	if err != nil {
		return nil, fmt.Errorf("resolve local zone: %w", err)
	}

	clocks, err := resolver.Resolve(ctx, cfg.Clocks, local)
	if err != nil {
		return nil, fmt.Errorf("resolve clocks: %w", err)
	}

	source := opts.Source
	if source == nil {
		source = timesource.System{}
	}

	// One read for all clocks so lines never drift apart.
	instant := source.Now()

	logger.DebugKV(ctx, "Captured instant", "instant", instant, "local_zone", local.String())

	return formatter.Format(instant, clocks), nil
}
