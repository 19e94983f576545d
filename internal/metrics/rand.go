package metrics

import (
	"math/rand/v2"
	"time"
)

// Draw helpers for the simulated workload. Integer and duration draws are
// uniform over the half-open interval [min, max), matching the workload
// generators they model; float draws are uniform over [min, max).

// IntBetween returns a uniform int in [min, max).
func IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min)
}

// Int64Between returns a uniform int64 in [min, max).
func Int64Between(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + rand.Int64N(max-min)
}

// FloatBetween returns a uniform float64 in [min, max).
func FloatBetween(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// DurationBetween returns a uniform duration in [min, max).
func DurationBetween(min, max time.Duration) time.Duration {
	return time.Duration(Int64Between(int64(min), int64(max)))
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// Chance reports true with probability p.
func Chance(p float64) bool {
	return rand.Float64() < p
}

// WeightedPick selects an index by cumulative probability thresholds. The
// weights need not sum to one; any remainder falls to the last entry.
func WeightedPick(weights []float64) int {
	x := rand.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x < acc {
			return i
		}
	}
	return len(weights) - 1
}
