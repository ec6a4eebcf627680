package simulation

// SimulationRequest describes a single Monte-Carlo evaluation of a race
// strategy. All fields are read-only for the engine; no component mutates
// a request after it has been handed in.
type SimulationRequest struct {
	// RaceContextID identifies the strategy under evaluation. It is passed
	// through to the result untouched.
	RaceContextID string `json:"race_context_id,omitempty"`

	IterationCount int `json:"iteration_count"`

	// WindVariationDegrees is the half-width of the symmetric wind-shift
	// sampling range.
	WindVariationDegrees float64 `json:"wind_variation_degrees"`

	// CurrentVariationFraction is the half-width of the symmetric
	// current-multiplier sampling range.
	CurrentVariationFraction float64 `json:"current_variation_fraction"`

	// FleetSize is the number of competitors and bounds valid finish positions.
	FleetSize int `json:"fleet_size"`

	// Profile holds optional boat performance multipliers. Nil means neutral.
	Profile *BoatPerformanceProfile `json:"boat_performance_profile,omitempty"`

	// RngSeed, when set, makes sequential execution bit-reproducible.
	RngSeed *int64 `json:"rng_seed,omitempty"`
}

// BoatPerformanceProfile carries per-boat multipliers. 1.0 is neutral.
type BoatPerformanceProfile struct {
	Upwind          float64 `json:"upwind"`
	Downwind        float64 `json:"downwind"`
	Maneuverability float64 `json:"maneuverability"`
}

// normalize promotes unset (zero or negative) multipliers to neutral so the
// mapper can divide by them safely.
func (p *BoatPerformanceProfile) normalize() BoatPerformanceProfile {
	out := BoatPerformanceProfile{Upwind: 1, Downwind: 1, Maneuverability: 1}
	if p == nil {
		return out
	}
	if p.Upwind > 0 {
		out.Upwind = p.Upwind
	}
	if p.Downwind > 0 {
		out.Downwind = p.Downwind
	}
	if p.Maneuverability > 0 {
		out.Maneuverability = p.Maneuverability
	}
	return out
}

// ScenarioSample is one randomized draw of environment and execution quality.
// It lives for exactly one trial.
type ScenarioSample struct {
	WindShiftDegrees    float64
	CurrentMultiplier   float64
	TacticalCorrectness bool
	LuckDelta           float64
}

// ConfidenceInterval is the empirical 95% interval (2.5th-97.5th percentile)
// of simulated finish positions.
type ConfidenceInterval struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// RiskLevel classifies an alternative strategy's downside exposure.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SuccessFactor attributes a share of finish-position variance to a named
// tactical lever.
type SuccessFactor struct {
	Name           string  `json:"name"`
	ImpactFraction float64 `json:"impact_fraction"`
	Description    string  `json:"description"`
}

// AlternativeStrategy is the outcome of re-running the simulation under a
// named strategic posture.
type AlternativeStrategy struct {
	Name              string    `json:"name"`
	RiskLevel         RiskLevel `json:"risk_level"`
	ExpectedFinish    float64   `json:"expected_finish"`
	PodiumProbability float64   `json:"podium_probability"`
	Description       string    `json:"description"`
}

// SimulationResult is the fully populated output of one engine run. Partial
// results are never returned.
type SimulationResult struct {
	// RunID correlates log lines with this result. It is freshly generated
	// per run and is the only field excluded from the reproducibility
	// guarantee of seeded runs.
	RunID string `json:"run_id"`

	RaceContextID string `json:"race_context_id,omitempty"`

	ExpectedFinish float64 `json:"expected_finish"`
	MedianFinish   float64 `json:"median_finish"`

	// PositionDistribution maps every position 1..FleetSize to its empirical
	// probability. Zero-count positions are present with probability 0.
	PositionDistribution map[int]float64 `json:"position_distribution"`

	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`

	PodiumProbability float64 `json:"podium_probability"`
	WinProbability    float64 `json:"win_probability"`
	TotalIterations   int     `json:"total_iterations"`

	SuccessFactors        []SuccessFactor       `json:"success_factors"`
	AlternativeStrategies []AlternativeStrategy `json:"alternative_strategies"`
}
