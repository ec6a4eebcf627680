package simulation

import "sort"

// The closed set of tactical levers the engine attributes variance to.
// Consumers can switch over these exhaustively.
const (
	FactorWindShiftResponse = "Wind Shift Response"
	FactorFirstBeatTack     = "First Beat Tack Choice"
	FactorStartPosition     = "Start Position"
	FactorMarkRoundings     = "Mark Roundings"
	FactorCurrentManagement = "Current Management"
)

// The luck draw bundles everything the model does not resolve individually;
// for attribution purposes it is split between the start (traffic off the
// line) and mark roundings (traffic at the turns).
const (
	luckShareStart = 0.55
	luckShareMarks = 0.45
)

var factorDescriptions = map[string]string{
	FactorWindShiftResponse: "Reading and reacting to oscillating and persistent wind shifts on the beats.",
	FactorFirstBeatTack:     "Picking the correct side of the course on the first upwind leg.",
	FactorStartPosition:     "Clean air and line bias at the gun; traffic exposure in the first minute.",
	FactorMarkRoundings:     "Execution and traffic management at mark roundings.",
	FactorCurrentManagement: "Positioning relative to favorable and adverse current across the course.",
}

// SuccessFactorsFor validates the request and returns its ranked variance
// attribution without running any trials.
func SuccessFactorsFor(req SimulationRequest) ([]SuccessFactor, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	return rankSuccessFactors(&req, req.Profile.normalize()), nil
}

// rankSuccessFactors attributes finish-position variance to the named
// tactical levers. The shares are derived analytically from the same
// coefficients the sampler and mapper use (variance of a uniform(-a, a) draw
// is a²/3, of the Bernoulli tactical bonus b is b²/4), so identical requests
// always produce identical, deterministically ordered output. The list is
// never empty: the tactical and luck terms contribute regardless of the
// requested variation ranges.
func rankSuccessFactors(req *SimulationRequest, profile BoatPerformanceProfile) []SuccessFactor {
	windAmp := req.WindVariationDegrees * windWeight / profile.Upwind
	windVar := windAmp * windAmp / 3

	currentAmp := req.CurrentVariationFraction * currentWeight / profile.Downwind
	currentVar := currentAmp * currentAmp / 3

	tacticalAmp := tacticalBonus * profile.Maneuverability
	tacticalVar := tacticalAmp * tacticalAmp / 4

	luckAmp := luckSigma / profile.Maneuverability
	luckVar := luckAmp * luckAmp

	total := windVar + currentVar + tacticalVar + luckVar

	factors := []SuccessFactor{
		{Name: FactorWindShiftResponse, ImpactFraction: windVar / total},
		{Name: FactorFirstBeatTack, ImpactFraction: tacticalVar / total},
		{Name: FactorStartPosition, ImpactFraction: luckVar * luckShareStart / total},
		{Name: FactorMarkRoundings, ImpactFraction: luckVar * luckShareMarks / total},
		{Name: FactorCurrentManagement, ImpactFraction: currentVar / total},
	}
	for i := range factors {
		factors[i].Description = factorDescriptions[factors[i].Name]
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].ImpactFraction != factors[j].ImpactFraction {
			return factors[i].ImpactFraction > factors[j].ImpactFraction
		}
		return factors[i].Name < factors[j].Name
	})
	return factors
}
