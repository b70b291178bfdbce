// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package lsa

// DefaultEnergyThreshold is the share of total singular value mass the
// reduced space must exceed.
const DefaultEnergyThreshold = 0.9

// SelectRank returns the smallest k such that the sum of the first k values
// is strictly greater than threshold times the total. values must be sorted
// in descending order. The result is at least 1 and at most len(values);
// an empty input yields 0.
func SelectRank(values []float64, threshold float64) int {
	if len(values) == 0 {
		return 0
	}

	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return 1
	}

	limit := total * threshold
	var cumulative float64
	for i, v := range values {
		cumulative += v
		if cumulative > limit {
			return i + 1
		}
	}
	return len(values)
}
