package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadSettings.
const EnvPrefix = "WORLDCLOCK"

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// Settings holds run options taken from the environment and command-line flags.
type Settings struct {
	// Config is the config file path (WORLDCLOCK_CONFIG).
	Config string `split_words:"true"`
	// LogLevel is the diagnostics level (WORLDCLOCK_LOG_LEVEL).
	LogLevel string `split_words:"true" default:"warn" validate:"oneof=debug info warn warning error"`
	// LocalTZ replaces the host zone for clocks without tz (WORLDCLOCK_LOCAL_TZ).
	LocalTZ string `split_words:"true" validate:"omitempty,timezone"`
}

// LoadSettings reads WORLDCLOCK_* variables, lets every non-empty field of
// overrides replace its environment value, and validates the result.
// A bad variable is therefore harmless once a flag overrides it.
func LoadSettings(overrides *Settings) (*Settings, error) {
	var settings Settings
	if err := envconfig.Process(EnvPrefix, &settings); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if overrides != nil {
		settings.Config = firstNonEmpty(overrides.Config, settings.Config)
		settings.LogLevel = firstNonEmpty(overrides.LogLevel, settings.LogLevel)
		settings.LocalTZ = firstNonEmpty(overrides.LocalTZ, settings.LocalTZ)
	}

	// envconfig keeps an empty value when the variable is set but blank.
	settings.LogLevel = firstNonEmpty(settings.LogLevel, DefaultLogLevel)

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// ValidateSettings checks field formats.
func ValidateSettings(settings *Settings) error {
	if err := validator.New().Struct(settings); err != nil {
		return fmt.Errorf("invalid settings (flags or %s_* environment): %w", EnvPrefix, err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
