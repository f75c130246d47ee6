// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"reflect"
	"testing"
)

func TestNormalizeClasses(t *testing.T) {
	tests := []struct {
		classes []string
		ord     []int
		levels  []string
	}{
		{nil, []int{}, nil},
		{[]string{"a"}, []int{1}, []string{"a"}},
		{[]string{"a", "a", "a"}, []int{1, 1, 1}, []string{"a"}},
		{[]string{"a", "b", "a", "c", "b"}, []int{1, 2, 1, 3, 2}, []string{"a", "b", "c"}},
		{[]string{"2", "1", "2", "3"}, []int{1, 2, 1, 3}, []string{"2", "1", "3"}},
		{[]string{"x", "", "x", ""}, []int{1, 2, 1, 2}, []string{"x", ""}},
	}
	for _, test := range tests {
		ord, levels := NormalizeClasses(test.classes)
		if !reflect.DeepEqual(ord, test.ord) || !reflect.DeepEqual(levels, test.levels) {
			t.Errorf("NormalizeClasses(%q) = %v, %q, want %v, %q", test.classes, ord, levels, test.ord, test.levels)
		}
	}
}

// Permuting repeats without changing the order of first occurrences
// must not change the mapping.
func TestNormalizeClassesStable(t *testing.T) {
	a := []string{"p", "q", "p", "r", "q", "r"}
	b := []string{"p", "q", "q", "r", "p", "r"}
	_, la := NormalizeClasses(a)
	_, lb := NormalizeClasses(b)
	if !reflect.DeepEqual(la, lb) {
		t.Errorf("levels differ: %q vs %q", la, lb)
	}
}

func TestClassColors(t *testing.T) {
	levels := []string{"a", "b", "c"}
	colors, err := classColors(levels, true)
	if err != nil {
		t.Fatalf("classColors failed: %v", err)
	}
	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}
	for i, c := range colors {
		for j := 0; j < i; j++ {
			if c == colors[j] {
				t.Errorf("levels %d and %d share color %v", i, j, c)
			}
		}
	}

	// More levels than palette entries cycles the palette.
	many := make([]string, len(classPalette)+2)
	for i := range many {
		many[i] = string(rune('a' + i))
	}
	colors, err = classColors(many, true)
	if err != nil {
		t.Fatalf("classColors failed: %v", err)
	}
	if colors[len(classPalette)] != colors[0] {
		t.Errorf("palette did not cycle: %v vs %v", colors[len(classPalette)], colors[0])
	}
}

func TestClassColorsNumeric(t *testing.T) {
	colors, err := classColors([]string{"0", "5", "10"}, false)
	if err != nil {
		t.Fatalf("classColors failed: %v", err)
	}
	if colors[0] == colors[2] {
		t.Errorf("gradient endpoints share color %v", colors[0])
	}

	// A single level maps to the gradient midpoint without error.
	if _, err := classColors([]string{"7"}, false); err != nil {
		t.Fatalf("classColors failed on single level: %v", err)
	}

	_, err = classColors([]string{"1", "two"}, false)
	if _, ok := err.(*ArgumentError); !ok {
		t.Errorf("classColors on non-numeric level = %v, want *ArgumentError", err)
	}
}
