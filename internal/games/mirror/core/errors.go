package core

import "fmt"

// ConfigurationError reports invalid lane, catalog or engine parameters.
// It is only ever returned during setup; per-tick operations never fail.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mirror: invalid %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
