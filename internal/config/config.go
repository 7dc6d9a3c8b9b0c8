package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/oshokin/worldclock/internal/domain/clock"
)

// Config is the decoded configuration file.
type Config struct {
	// Clocks lists the clocks in display order.
	Clocks []clock.Spec `toml:"clocks"`
}

const (
	// DefaultConfigDir is the directory under the home directory holding the config.
	DefaultConfigDir = ".config"
	// DefaultConfigFilename is the default config filename.
	DefaultConfigFilename = "worldclock.toml"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrConfigParse is returned when the config file cannot be decoded.
	ErrConfigParse = errors.New("config file is malformed")
)

// NotFoundError reports the path that was looked up.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfigNotFound, e.Path)
}

// Unwrap makes errors.Is(err, ErrConfigNotFound) work.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// ParseError describes a decoding failure. Line and Column are zero when the
// decoder does not report a position.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s: %s:%d:%d: %v", ErrConfigParse, e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s: %s:%d: %v", ErrConfigParse, e.Path, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", ErrConfigParse, e.Path, e.Err)
}

// Unwrap returns both the sentinel and the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrConfigParse, e.Err}
}

// DefaultPath returns ~/.config/worldclock.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir, DefaultConfigFilename), nil
}

// ResolvePath returns the file Load reads for path: DefaultPath when empty.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return DefaultPath()
	}

	return filepath.Clean(path), nil
}

// Load reads and decodes the config at path; an empty path means DefaultPath.
// Entry order is preserved. Unknown keys are ignored.
func Load(path string) (*Config, error) {
	path, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Decode(path, contents)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode parses contents in the format implied by path's extension.
func Decode(path string, contents []byte) (*Config, error) {
	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := decodeYAML(contents, &cfg); err != nil {
			return nil, yamlParseError(path, err)
		}
	default:
		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return nil, tomlParseError(path, err)
		}
	}

	return &cfg, nil
}

func tomlParseError(path string, err error) *ParseError {
	parseErr := &ParseError{
		Path: path,
		Err:  err,
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		parseErr.Line, parseErr.Column = decodeErr.Position()
	}

	return parseErr
}
