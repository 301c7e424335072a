package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel every configuration violation unwraps to.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError describes a single configuration field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
