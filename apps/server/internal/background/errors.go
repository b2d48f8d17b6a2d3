package background

import "fmt"

// InvalidConfigError is returned when a background configuration is rejected.
type InvalidConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid background config: %s %s", e.Field, e.Reason)
}

// PresetNotFoundError is returned when the requested preset is not configured.
type PresetNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e PresetNotFoundError) Error() string {
	return fmt.Sprintf("background preset %q not found", e.Name)
}
