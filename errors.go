package texatlas

import "errors"

// Sentinel errors for texatlas package.
var (
	// ErrAtlasFull is returned by higher layers when a region cannot be
	// allocated. Allocate itself reports exhaustion with NoRegion.
	ErrAtlasFull = errors.New("texatlas: atlas is full")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "texatlas: invalid config." + e.Field + ": " + e.Reason
}
