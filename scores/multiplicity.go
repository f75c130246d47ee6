// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import "math"

// DefaultThresholds are the multiplicity bin thresholds used when
// the caller supplies none.
var DefaultThresholds = []float64{20, 50, 100}

// BinMultiplicity buckets per-observation multiplicity counts into
// marker tiers. With thresholds t1 < t2 < t3 the bins are [0,1],
// (t1,t2], (t2,t3] and (t3,∞), numbered 1 to 4. Boundary counts
// belong to the lower bin. Counts in the gap (1,t1] fall in no bin
// and get bin 0, which draws no cue. A nil thresholds slice selects
// DefaultThresholds.
func BinMultiplicity(counts, thresholds []float64) ([]int, error) {
	t := thresholds
	if t == nil {
		t = DefaultThresholds
	}
	if len(t) != 3 || !(t[0] < t[1] && t[1] < t[2]) {
		return nil, &ArgumentError{Arg: "thresholds", Reason: "want three strictly ascending values"}
	}
	bins := make([]int, len(counts))
	for i, c := range counts {
		switch {
		case c < 0:
			return nil, &ArgumentError{Arg: "multiplicity", Reason: "counts must be non-negative"}
		case c <= 1:
			bins[i] = 1
		case c > t[2]:
			bins[i] = 4
		case c > t[1]:
			bins[i] = 3
		case c > t[0]:
			bins[i] = 2
		}
	}
	return bins, nil
}

// MarkerRadius returns the marker radius in points for a multiplicity
// bin. The radius grows quadratically with the bin so neighboring
// tiers stay distinguishable at a glance.
func MarkerRadius(bin int) float64 {
	return math.Round(0.5 * float64(bin*bin) * math.Pi)
}
