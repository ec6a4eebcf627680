package visuals

import (
	"os"
	"path/filepath"
	"testing"

	"regatta-mcs/internal/simulation"

	"github.com/stretchr/testify/require"
)

func sampleResult() *simulation.SimulationResult {
	return &simulation.SimulationResult{
		RunID:          "test-run",
		ExpectedFinish: 9.4,
		MedianFinish:   9,
		PositionDistribution: map[int]float64{
			1: 0.0, 2: 0.1, 3: 0.2, 4: 0.4, 5: 0.3,
		},
		ConfidenceInterval: simulation.ConfidenceInterval{Lower: 2, Upper: 5},
		PodiumProbability:  0.3,
		WinProbability:     0.0,
		TotalIterations:    1000,
		SuccessFactors: []simulation.SuccessFactor{
			{Name: "Wind Shift Response", ImpactFraction: 0.27, Description: "Shifts."},
		},
		AlternativeStrategies: []simulation.AlternativeStrategy{
			{Name: "Conservative", RiskLevel: simulation.RiskLow, ExpectedFinish: 10.1, PodiumProbability: 0.1, Description: "Middle."},
		},
	}
}

func TestPositionDistributionChart(t *testing.T) {
	chart := PositionDistributionChart(sampleResult())

	require.Contains(t, chart, "xychart-beta")
	require.Contains(t, chart, "Finish Position Distribution")
	require.Contains(t, chart, "bar [")

	empty := PositionDistributionChart(&simulation.SimulationResult{})
	require.Empty(t, empty)
}

func TestStrategyComparisonChart(t *testing.T) {
	chart := StrategyComparisonChart(sampleResult())

	require.Contains(t, chart, "xychart-beta")
	require.Contains(t, chart, "Conservative")
	require.Contains(t, chart, "Baseline")

	empty := StrategyComparisonChart(&simulation.SimulationResult{})
	require.Empty(t, empty)
}

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTMLReport(sampleResult(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "test-run")
	require.Contains(t, string(content), "Alternative Strategies")
	require.Contains(t, string(content), "Conservative")
}
