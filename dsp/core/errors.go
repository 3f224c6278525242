package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfiguration is matched by every [*ConfigurationError].
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a construction parameter that is out of range.
// It is raised synchronously and is never retried.
type ConfigurationError struct {
	Param  string
	Value  float64
	Reason string
}

// NewConfigurationError returns a ConfigurationError for param.
func NewConfigurationError(param string, value float64, reason string) *ConfigurationError {
	return &ConfigurationError{Param: param, Value: value, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s=%g %s", ErrConfiguration, e.Param, e.Value, e.Reason)
}

// Unwrap returns [ErrConfiguration].
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// RequireFinite returns a ConfigurationError when value is NaN or ±Inf.
func RequireFinite(param string, value float64) error {
	if !IsFinite(value) {
		return NewConfigurationError(param, value, "must be finite")
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
