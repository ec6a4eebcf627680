package simulation

import "fmt"

// ValidationError reports the first out-of-range or missing request field.
// The caller can recover by correcting the named field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports a request that exceeds an engine-imposed limit,
// such as the iteration ceiling.
type ConfigurationError struct {
	Limit  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration limit %s exceeded: %s", e.Limit, e.Reason)
}

// InternalInvariantError signals a position outcome outside [1, fleetSize]
// after clamping. It indicates a mapper bug and must never be corrected
// silently.
type InternalInvariantError struct {
	Position  int
	FleetSize int
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: position %d outside [1, %d]", e.Position, e.FleetSize)
}
