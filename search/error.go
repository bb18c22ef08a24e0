package search

import "fmt"

// ConfigError represents an invalid Config field, in the same shape as the
// teacher's meta.ConfigError.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("search: invalid config: %s: %s", e.Field, e.Message)
}
