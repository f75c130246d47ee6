// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"math"
	"testing"
)

// checkSelection checks the invariants every selection must satisfy:
// 0-based, strictly ascending, within range.
func checkSelection(t *testing.T, idx []int, n int) {
	t.Helper()
	for i, x := range idx {
		if x < 0 || x >= n {
			t.Errorf("index %d out of range [0,%d)", x, n)
		}
		if i > 0 && idx[i-1] >= x {
			t.Errorf("indices not strictly ascending: %v", idx)
		}
	}
}

func TestSelectLabelsSparse(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, DenseN} {
		v := make([]float64, n)
		for i := range v {
			v[i] = math.Sin(float64(i))
		}
		idx, font := SelectLabels(v)
		if len(idx) != n {
			t.Errorf("n=%d: selected %d labels, want all %d", n, len(idx), n)
		}
		checkSelection(t, idx, n)
		for i, x := range idx {
			if x != i {
				t.Errorf("n=%d: idx[%d] = %d, want %d", n, i, x, i)
				break
			}
		}
		if font != DefaultLabelFont {
			t.Errorf("n=%d: font = %v, want %v", n, font, DefaultLabelFont)
		}
	}
}

func TestSelectLabelsDense(t *testing.T) {
	for _, n := range []int{DenseN + 1, 40, 100, 500} {
		v := make([]float64, n)
		for i := range v {
			v[i] = math.Sin(float64(i) / 3)
		}
		idx, font := SelectLabels(v)
		// round(n·(1−|DenseN−n|/n)) pins the budget at DenseN
		// for every n past DenseN.
		if len(idx) != DenseN {
			t.Errorf("n=%d: selected %d labels, want %d", n, len(idx), DenseN)
		}
		checkSelection(t, idx, n)
		if font < MinLabelFont || font > MaxLabelFont {
			t.Errorf("n=%d: font %v outside [%v,%v]", n, font, MinLabelFont, MaxLabelFont)
		}
	}
}

func TestSelectLabelsSpikes(t *testing.T) {
	// On a gentle slope with three large spikes, the spikes must
	// rank among the selected labels.
	n := 60
	v := make([]float64, n)
	for i := range v {
		v[i] = 0.01 * float64(i)
	}
	spikes := []int{10, 30, 50}
	for _, s := range spikes {
		v[s] += 5
	}
	idx, _ := SelectLabels(v)
	checkSelection(t, idx, n)
	for _, s := range spikes {
		found := false
		for _, x := range idx {
			if x == s {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("spike at %d not selected: %v", s, idx)
		}
	}
}

// A constant series gives the ranking nothing to work with; the
// selection must still be well formed.
func TestSelectLabelsConstant(t *testing.T) {
	v := make([]float64, 30)
	for i := range v {
		v[i] = 4.2
	}
	idx, _ := SelectLabels(v)
	if len(idx) != DenseN {
		t.Errorf("selected %d labels, want %d", len(idx), DenseN)
	}
	checkSelection(t, idx, len(v))
}

func TestLabelFont(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{26, 16}, // 85 clamped
		{40, 15},
		{100, 11},
	}
	for _, test := range tests {
		if got := labelFont(test.n); got != test.want {
			t.Errorf("labelFont(%d) = %v, want %v", test.n, got, test.want)
		}
	}
}
