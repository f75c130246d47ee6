// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"reflect"
	"testing"
)

func TestBinMultiplicity(t *testing.T) {
	counts := []float64{0, 0.5, 1, 1.5, 20, 20.5, 50, 50.5, 100, 100.5, 1e6}
	want := []int{1, 1, 1, 0, 0, 2, 2, 3, 3, 4, 4}
	bins, err := BinMultiplicity(counts, nil)
	if err != nil {
		t.Fatalf("BinMultiplicity failed: %v", err)
	}
	if !reflect.DeepEqual(bins, want) {
		t.Errorf("BinMultiplicity(%v) = %v, want %v", counts, bins, want)
	}
}

func TestBinMultiplicityThresholds(t *testing.T) {
	bins, err := BinMultiplicity([]float64{2, 3, 4, 5}, []float64{2, 3, 4})
	if err != nil {
		t.Fatalf("BinMultiplicity failed: %v", err)
	}
	if want := []int{0, 2, 3, 4}; !reflect.DeepEqual(bins, want) {
		t.Errorf("got %v, want %v", bins, want)
	}

	for _, bad := range [][]float64{{1, 2}, {3, 2, 1}, {1, 1, 2}, {1, 2, 3, 4}} {
		if _, err := BinMultiplicity([]float64{1}, bad); err == nil {
			t.Errorf("BinMultiplicity accepted thresholds %v", bad)
		}
	}
}

func TestBinMultiplicityNegative(t *testing.T) {
	_, err := BinMultiplicity([]float64{1, -1}, nil)
	if _, ok := err.(*ArgumentError); !ok {
		t.Errorf("BinMultiplicity(-1) = %v, want *ArgumentError", err)
	}
}

func TestMarkerRadius(t *testing.T) {
	want := []float64{2, 6, 14, 25}
	for bin := 1; bin <= 4; bin++ {
		if got := MarkerRadius(bin); got != want[bin-1] {
			t.Errorf("MarkerRadius(%d) = %v, want %v", bin, got, want[bin-1])
		}
	}
}
