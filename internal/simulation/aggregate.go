package simulation

import (
	"slices"

	"regatta-mcs/internal/stats"
)

// aggregate turns the raw position list into distributional statistics. It
// fills every SimulationResult field except RunID, RaceContextID,
// SuccessFactors and AlternativeStrategies.
//
// Conventions: the median is the upper median (sorted[n/2]); the confidence
// bounds sit at sorted[floor(0.025*n)] and sorted[floor(0.975*n)]; the
// distribution carries an explicit entry for every position 1..fleetSize,
// zero-count positions included with probability 0. Podium and win
// probabilities are counted directly from the outcomes rather than derived
// from the distribution map, avoiding double rounding.
func aggregate(outcomes []int, fleetSize int) *SimulationResult {
	n := len(outcomes)

	sorted := make([]int, n)
	copy(sorted, outcomes)
	slices.Sort(sorted)

	podiumCutoff := 3
	if fleetSize < podiumCutoff {
		podiumCutoff = fleetSize
	}

	counts := make([]int, fleetSize+1)
	wins := 0
	podiums := 0
	for _, pos := range outcomes {
		counts[pos]++
		if pos == 1 {
			wins++
		}
		if pos <= podiumCutoff {
			podiums++
		}
	}

	distribution := make(map[int]float64, fleetSize)
	for pos := 1; pos <= fleetSize; pos++ {
		distribution[pos] = float64(counts[pos]) / float64(n)
	}

	return &SimulationResult{
		ExpectedFinish:       stats.Mean(outcomes),
		MedianFinish:         stats.UpperMedianSorted(sorted),
		PositionDistribution: distribution,
		ConfidenceInterval: ConfidenceInterval{
			Lower: stats.PercentileSorted(sorted, 0.025),
			Upper: stats.PercentileSorted(sorted, 0.975),
		},
		PodiumProbability: float64(podiums) / float64(n),
		WinProbability:    float64(wins) / float64(n),
		TotalIterations:   n,
	}
}
