package visuals

import (
	"fmt"
	"sort"
	"strings"

	"regatta-mcs/internal/simulation"
)

// PositionDistributionChart creates a Mermaid xychart-beta bar chart of the
// empirical finish-position distribution.
func PositionDistributionChart(result *simulation.SimulationResult) string {
	if len(result.PositionDistribution) == 0 {
		return ""
	}

	positions := make([]int, 0, len(result.PositionDistribution))
	for pos := range result.PositionDistribution {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	var labels []string
	var values []string
	maxProb := 0.0
	for _, pos := range positions {
		p := result.PositionDistribution[pos]
		labels = append(labels, fmt.Sprintf("%d", pos))
		values = append(values, fmt.Sprintf("%.4f", p))
		if p > maxProb {
			maxProb = p
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Finish Position Distribution\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Probability\" 0 --> %.4f\n", maxProb*1.2))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// StrategyComparisonChart creates a Mermaid bar chart comparing the expected
// finish of the baseline against each alternative posture.
func StrategyComparisonChart(result *simulation.SimulationResult) string {
	if len(result.AlternativeStrategies) == 0 {
		return ""
	}

	labels := []string{"\"Baseline\""}
	values := []string{fmt.Sprintf("%.2f", result.ExpectedFinish)}
	maxFinish := result.ExpectedFinish

	for _, alt := range result.AlternativeStrategies {
		labels = append(labels, fmt.Sprintf("%q", alt.Name))
		values = append(values, fmt.Sprintf("%.2f", alt.ExpectedFinish))
		if alt.ExpectedFinish > maxFinish {
			maxFinish = alt.ExpectedFinish
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Expected Finish by Strategy (lower is better)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Expected Finish\" 0 --> %.2f\n", maxFinish*1.2))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
