// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import "math"

// symmetricBounds widens an axis range to a zero-centered one: both
// bounds move to ±1.25 times the larger bound magnitude. It keeps
// rotated point labels near the extremes inside the frame and puts
// the zero line mid-plot.
func symmetricBounds(lo, hi float64) (float64, float64) {
	m := math.Max(math.Abs(lo), math.Abs(hi))
	return -1.25 * m, 1.25 * m
}
