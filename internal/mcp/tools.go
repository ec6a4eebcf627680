package mcp

func requestProperties() map[string]interface{} {
	return map[string]interface{}{
		"race_context_id":            map[string]interface{}{"type": "string", "description": "Opaque identifier of the strategy under evaluation; echoed back in the result."},
		"iteration_count":            map[string]interface{}{"type": "integer", "description": "Number of Monte-Carlo trials. Defaults to the configured trial count."},
		"wind_variation_degrees":     map[string]interface{}{"type": "number", "description": "Half-width of the symmetric wind-shift sampling range, in degrees."},
		"current_variation_fraction": map[string]interface{}{"type": "number", "description": "Half-width of the symmetric current-multiplier sampling range (e.g. 0.2 for ±20%)."},
		"fleet_size":                 map[string]interface{}{"type": "integer", "description": "Number of competitors; bounds valid finish positions."},
		"upwind":                     map[string]interface{}{"type": "number", "description": "Optional upwind performance multiplier (1.0 = neutral)."},
		"downwind":                   map[string]interface{}{"type": "number", "description": "Optional downwind performance multiplier (1.0 = neutral)."},
		"maneuverability":            map[string]interface{}{"type": "number", "description": "Optional maneuverability multiplier (1.0 = neutral)."},
		"rng_seed":                   map[string]interface{}{"type": "integer", "description": "Optional seed. Seeded runs execute sequentially and are bit-reproducible."},
	}
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "run_race_simulation",
				"description": "Run a Monte-Carlo simulation of a competitor's finishing position under uncertain wind, current and tactical execution. " +
					"Returns the expected finish, median, full position distribution, a 95% confidence interval, win/podium probabilities, " +
					"ranked success factors and alternative-strategy comparisons.\n\n" +
					"STRICT GUARDRAIL: DO NOT estimate finish probabilities or confidence intervals yourself if this tool fails; " +
					"report the error and ask the user to correct the offending parameter.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": requestProperties(),
					"required":   []string{"fleet_size"},
				},
			},
			map[string]interface{}{
				"name": "compare_race_strategies",
				"description": "Evaluate alternative strategic postures (conservative, aggressive, pin-end start) against the baseline strategy. " +
					"Each alternative is a full re-simulation under a modified sampling policy, so its numbers satisfy the same invariants as the baseline.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": requestProperties(),
					"required":   []string{"fleet_size"},
				},
			},
			map[string]interface{}{
				"name": "explain_success_factors",
				"description": "Return the ranked attribution of finish-position variance to tactical levers (wind shift response, first-beat tack choice, " +
					"start position, mark roundings, current management) for the given conditions, without running trials.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": requestProperties(),
					"required":   []string{"fleet_size"},
				},
			},
		},
	}
}
