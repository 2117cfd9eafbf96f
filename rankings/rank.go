// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rankings

// Strategy assigns 1-indexed ranks to a metric sequence that is
// already sorted descending. The two strategies below are kept as
// separate named functions on purpose: each report's tie discipline is
// part of its contract, and a boolean knob would blur that.
type Strategy func(metrics []float64) []int

// Dense assigns ranks with no gaps after ties: metrics [5,5,3,1]
// produce ranks [1,1,2,3].
func Dense(metrics []float64) []int {
	ranks := make([]int, len(metrics))
	rank := 0
	for i, m := range metrics {
		if i == 0 || m != metrics[i-1] {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}

// Competition assigns standard competition ranks: ties share a rank
// and the next distinct metric skips ahead by the tie-group size, so
// metrics [5,5,3,1] produce ranks [1,1,3,4].
func Competition(metrics []float64) []int {
	ranks := make([]int, len(metrics))
	for i, m := range metrics {
		if i > 0 && m == metrics[i-1] {
			ranks[i] = ranks[i-1]
		} else {
			ranks[i] = i + 1
		}
	}
	return ranks
}
