package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned when running with missing configuration fields.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidPercentage is returned for a fold percentage outside of [0, 1].
	ErrInvalidPercentage = errors.New("fold percentage must be within [0, 1]")
)

// ConfigError lists all missing configuration fields of a runner.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrInvalidConfig.Error(), strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
