package stats

// Mean returns the arithmetic mean of a slice of integers.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// UpperMedianSorted returns the element at index n/2 of an already-sorted
// slice. For even counts this is the upper of the two middle elements, the
// convention used throughout the engine.
func UpperMedianSorted(sorted []int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return float64(sorted[len(sorted)/2])
}

// PercentileSorted returns the element at index floor(q*n) of an
// already-sorted slice, capped at the last element. q is a fraction in [0,1].
func PercentileSorted(sorted []int, q float64) int {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
