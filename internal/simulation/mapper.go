package simulation

import "math"

// Scoring coefficients, expressed in finish positions for a reference 20-boat
// fleet and scaled linearly to the actual fleet size. The exact values are
// tuning constants; the binding contract is that correct tactics improve the
// position in expectation and that the clamp below is never skipped.
const (
	referenceFleetSize = 20.0

	// windWeight converts an adverse wind shift (degrees) into lost positions.
	windWeight = 0.12

	// currentWeight converts current-multiplier deviation from 1.0 into
	// positions.
	currentWeight = 6.0

	// tacticalBonus is the fixed position gain for a correct first-beat call.
	tacticalBonus = 2.0
)

// toPosition converts a sampled scenario into a clamped finish position.
// The score is centered at the fleet midpoint; lower is better. bias shifts
// the score by a posture-specific number of reference positions (0 for the
// baseline). This is the only place in the engine that clamps positions.
func toPosition(sample ScenarioSample, profile BoatPerformanceProfile, fleetSize int, bias float64) int {
	scale := float64(fleetSize) / referenceFleetSize

	score := float64(fleetSize) / 2.0
	score += sample.WindShiftDegrees * windWeight * scale / profile.Upwind
	score += (sample.CurrentMultiplier - 1) * currentWeight * scale / profile.Downwind
	if sample.TacticalCorrectness {
		score -= tacticalBonus * profile.Maneuverability * scale
	}
	score += sample.LuckDelta * scale / profile.Maneuverability
	score += bias * scale

	position := int(math.Round(score))
	if position < 1 {
		position = 1
	}
	if position > fleetSize {
		position = fleetSize
	}
	return position
}
