// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import "testing"

func TestSymmetricBounds(t *testing.T) {
	tests := []struct {
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{-2, 10, -12.5, 12.5},
		{-10, 2, -12.5, 12.5},
		{-4, 4, -5, 5},
		{1, 8, -10, 10},
		{0, 0, 0, 0},
	}
	for _, test := range tests {
		lo, hi := symmetricBounds(test.lo, test.hi)
		if lo != test.wantLo || hi != test.wantHi {
			t.Errorf("symmetricBounds(%v, %v) = %v, %v, want %v, %v",
				test.lo, test.hi, lo, hi, test.wantLo, test.wantHi)
		}
	}
}
