package simulation

// Validate rejects a malformed request before any sampling occurs. It fails
// fast on the first violation and has no side effects.
func Validate(req *SimulationRequest) error {
	if req.IterationCount <= 0 {
		return &ValidationError{Field: "iteration_count", Reason: "must be a positive integer"}
	}
	if req.FleetSize < 1 {
		return &ValidationError{Field: "fleet_size", Reason: "must be at least 1"}
	}
	if req.WindVariationDegrees < 0 {
		return &ValidationError{Field: "wind_variation_degrees", Reason: "must be non-negative"}
	}
	if req.CurrentVariationFraction < 0 {
		return &ValidationError{Field: "current_variation_fraction", Reason: "must be non-negative"}
	}
	return nil
}
