package simulation

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := SimulationRequest{
		IterationCount:           1000,
		WindVariationDegrees:     15,
		CurrentVariationFraction: 0.2,
		FleetSize:                20,
	}

	if err := Validate(&valid); err != nil {
		t.Fatalf("Expected valid request to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *SimulationRequest)
		field  string
	}{
		{"ZeroIterations", func(r *SimulationRequest) { r.IterationCount = 0 }, "iteration_count"},
		{"NegativeIterations", func(r *SimulationRequest) { r.IterationCount = -5 }, "iteration_count"},
		{"ZeroFleet", func(r *SimulationRequest) { r.FleetSize = 0 }, "fleet_size"},
		{"NegativeWind", func(r *SimulationRequest) { r.WindVariationDegrees = -1 }, "wind_variation_degrees"},
		{"NegativeCurrent", func(r *SimulationRequest) { r.CurrentVariationFraction = -0.1 }, "current_variation_fraction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := Validate(&req)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Expected offending field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestValidate_FailsFastOnFirstViolation(t *testing.T) {
	// Both iteration count and fleet size are invalid; the validator must
	// name the first check that failed.
	req := SimulationRequest{IterationCount: 0, FleetSize: 0}
	err := Validate(&req)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if vErr.Field != "iteration_count" {
		t.Errorf("Expected iteration_count to be reported first, got %q", vErr.Field)
	}
}
