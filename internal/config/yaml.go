package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/worldclock/internal/domain/clock"
)

// yamlConfig mirrors Config for YAML files, where scalars must be type-checked
// by hand: yaml.v3 happily turns 42 or true into a string.
type yamlConfig struct {
	Clocks []yamlClock `yaml:"clocks"`
}

type yamlClock struct {
	Name *yamlString `yaml:"name"`
	TZ   *yamlString `yaml:"tz"`
}

// yamlString accepts only !!str scalars. Null leaves the field unset.
type yamlString string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *yamlString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return &yaml.TypeError{Errors: []string{
			fmt.Sprintf("line %d: cannot use %s value %q as a string", node.Line, node.ShortTag(), node.Value),
		}}
	}

	*s = yamlString(node.Value)

	return nil
}

func (s *yamlString) ptr() *string {
	if s == nil {
		return nil
	}

	value := string(*s)

	return &value
}

// decodeYAML treats an empty document as an empty config.
func decodeYAML(contents []byte, cfg *Config) error {
	if len(bytes.TrimSpace(contents)) == 0 {
		return nil
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return err
	}

	for _, c := range raw.Clocks {
		cfg.Clocks = append(cfg.Clocks, clock.Spec{
			Name: c.Name.ptr(),
			TZ:   c.TZ.ptr(),
		})
	}

	return nil
}

func yamlParseError(path string, err error) *ParseError {
	parseErr := &ParseError{
		Path: path,
		Err:  err,
	}

	// yaml.v3 only reports lines inside the message, e.g. "yaml: line 3: ...".
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		_, _ = fmt.Sscanf(typeErr.Errors[0], "line %d:", &parseErr.Line)
	} else {
		_, _ = fmt.Sscanf(err.Error(), "yaml: line %d:", &parseErr.Line)
	}

	return parseErr
}
