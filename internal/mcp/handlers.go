package mcp

import (
	"context"

	"regatta-mcs/internal/simulation"
	"regatta-mcs/internal/visuals"
)

// parseRequest builds a SimulationRequest from raw tool arguments. Missing
// iteration counts fall back to the configured default; range validation is
// the engine's job.
func (s *Server) parseRequest(args map[string]interface{}) simulation.SimulationRequest {
	req := simulation.SimulationRequest{
		RaceContextID:            asString(args["race_context_id"]),
		IterationCount:           asInt(args["iteration_count"]),
		WindVariationDegrees:     asFloat(args["wind_variation_degrees"]),
		CurrentVariationFraction: asFloat(args["current_variation_fraction"]),
		FleetSize:                asInt(args["fleet_size"]),
	}

	if req.IterationCount == 0 {
		req.IterationCount = s.cfg.DefaultIterations
	}

	if hasAny(args, "upwind", "downwind", "maneuverability") {
		req.Profile = &simulation.BoatPerformanceProfile{
			Upwind:          asFloat(args["upwind"]),
			Downwind:        asFloat(args["downwind"]),
			Maneuverability: asFloat(args["maneuverability"]),
		}
	}

	if v, ok := args["rng_seed"]; ok {
		seed := int64(asFloat(v))
		req.RngSeed = &seed
	}

	return req
}

func (s *Server) handleRunSimulation(args map[string]interface{}) (string, error) {
	req := s.parseRequest(args)

	result, err := s.engine.Run(context.Background(), req)
	if err != nil {
		return "", err
	}

	text := formatResult(result)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.PositionDistributionChart(result)
	}
	return text, nil
}

func (s *Server) handleCompareStrategies(args map[string]interface{}) (string, error) {
	req := s.parseRequest(args)

	result, err := s.engine.Run(context.Background(), req)
	if err != nil {
		return "", err
	}

	comparison := map[string]interface{}{
		"baseline": map[string]interface{}{
			"expected_finish":    result.ExpectedFinish,
			"podium_probability": result.PodiumProbability,
			"win_probability":    result.WinProbability,
		},
		"alternatives": result.AlternativeStrategies,
	}

	text := formatResult(comparison)
	if s.cfg.EnableMermaidCharts {
		text += "\n\n" + visuals.StrategyComparisonChart(result)
	}
	return text, nil
}

func (s *Server) handleExplainSuccessFactors(args map[string]interface{}) (string, error) {
	req := s.parseRequest(args)

	factors, err := simulation.SuccessFactorsFor(req)
	if err != nil {
		return "", err
	}
	return formatResult(factors), nil
}
