package harmony

import "math/rand"

// WeightedInterval picks one of intervals with probability proportional to
// the parallel weights: it builds the cumulative distribution and returns
// the first interval whose cumulative bucket exceeds a single uniform draw.
//
// Mismatched tables, non-positive total weight, or a draw that falls past
// the last bucket (rounding) all return the last interval. Empty tables
// return 0.
func WeightedInterval(intervals, weights []float64, rng *rand.Rand) float64 {
	if len(intervals) == 0 {
		return 0
	}
	last := intervals[len(intervals)-1]
	if len(weights) != len(intervals) {
		return last
	}

	cumulative := Cumulative(weights)
	if cumulative == nil {
		return last
	}
	u := rng.Float64()
	for i, c := range cumulative {
		if c > u {
			return intervals[i]
		}
	}
	return last
}

// Cumulative normalizes weights into a cumulative probability array ending
// at (approximately) 1. It returns nil if any weight is negative or the
// total is not positive.
func Cumulative(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		if w < 0 {
			return nil
		}
		total += w
	}
	if total <= 0 {
		return nil
	}
	out := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += w / total
		out[i] = acc
	}
	return out
}
