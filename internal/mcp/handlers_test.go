package mcp

import (
	"encoding/json"
	"testing"

	"regatta-mcs/internal/config"
	"regatta-mcs/internal/simulation"

	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	return NewServer(&config.AppConfig{
		DefaultIterations: 200,
		MaxIterations:     10000,
		Parallelism:       1,
	})
}

func TestHandleRunSimulation(t *testing.T) {
	s := testServer()

	text, err := s.handleRunSimulation(map[string]interface{}{
		"fleet_size": float64(10),
		"rng_seed":   float64(42),
	})
	require.NoError(t, err)

	var result simulation.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))

	require.Equal(t, 200, result.TotalIterations, "expected the configured default trial count")
	require.NotEmpty(t, result.SuccessFactors)
	require.NotEmpty(t, result.AlternativeStrategies)
	require.GreaterOrEqual(t, result.ExpectedFinish, 1.0)
	require.LessOrEqual(t, result.ExpectedFinish, 10.0)
}

func TestHandleRunSimulation_InvalidRequest(t *testing.T) {
	s := testServer()

	_, err := s.handleRunSimulation(map[string]interface{}{
		"fleet_size": float64(0),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "fleet_size")
}

func TestHandleCompareStrategies(t *testing.T) {
	s := testServer()

	text, err := s.handleCompareStrategies(map[string]interface{}{
		"fleet_size":             float64(20),
		"wind_variation_degrees": float64(15),
		"rng_seed":               float64(7),
	})
	require.NoError(t, err)

	var comparison struct {
		Baseline     map[string]float64               `json:"baseline"`
		Alternatives []simulation.AlternativeStrategy `json:"alternatives"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &comparison))
	require.Contains(t, comparison.Baseline, "expected_finish")
	require.NotEmpty(t, comparison.Alternatives)
}

func TestHandleExplainSuccessFactors(t *testing.T) {
	s := testServer()

	text, err := s.handleExplainSuccessFactors(map[string]interface{}{
		"fleet_size":                 float64(20),
		"wind_variation_degrees":     float64(15),
		"current_variation_fraction": 0.2,
	})
	require.NoError(t, err)

	var factors []simulation.SuccessFactor
	require.NoError(t, json.Unmarshal([]byte(text), &factors))
	require.Len(t, factors, 5)
	for i := 1; i < len(factors); i++ {
		require.LessOrEqual(t, factors[i].ImpactFraction, factors[i-1].ImpactFraction)
	}
}

func TestParseRequest_ProfileOnlyWhenProvided(t *testing.T) {
	s := testServer()

	plain := s.parseRequest(map[string]interface{}{"fleet_size": float64(8)})
	require.Nil(t, plain.Profile)

	tuned := s.parseRequest(map[string]interface{}{
		"fleet_size": float64(8),
		"upwind":     1.2,
	})
	require.NotNil(t, tuned.Profile)
	require.Equal(t, 1.2, tuned.Profile.Upwind)
}

func TestCallTool_UnknownTool(t *testing.T) {
	s := testServer()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "no_such_tool",
		"arguments": map[string]interface{}{},
	})
	result, errRes := s.callTool(params)
	require.Nil(t, result)
	require.NotNil(t, errRes)
}
