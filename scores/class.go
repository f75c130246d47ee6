// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
)

// NormalizeClasses maps class labels to ordinals 1..K in order of
// first appearance. Equal labels share an ordinal, so the mapping
// depends only on the order of first occurrences, not on how often or
// where a label repeats. levels lists the distinct labels in ordinal
// order; levels[ord[i]-1] == classes[i].
func NormalizeClasses(classes []string) (ord []int, levels []string) {
	ord = make([]int, len(classes))
	seen := make(map[string]int)
	for i, c := range classes {
		n, ok := seen[c]
		if !ok {
			levels = append(levels, c)
			n = len(levels)
			seen[c] = n
		}
		ord[i] = n
	}
	return ord, levels
}

// classPalette is the categorical class palette.
var classPalette = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb2, 0xff},
	color.RGBA{0xcc, 0xb9, 0x74, 0xff},
	color.RGBA{0x64, 0xb5, 0xcd, 0xff},
}

// classColors assigns one color per class level. Categorical levels
// cycle through a fixed palette in ordinal order. Numeric levels are
// parsed as floats and spread over the Viridis gradient by value, so
// nearby values get similar colors.
func classColors(levels []string, categorical bool) ([]color.Color, error) {
	colors := make([]color.Color, len(levels))
	if categorical {
		for i := range levels {
			colors[i] = classPalette[i%len(classPalette)]
		}
		return colors, nil
	}
	vals := make([]float64, len(levels))
	for i, l := range levels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, &ArgumentError{Arg: "classes", Reason: fmt.Sprintf("class %q is not numeric", l)}
		}
		vals[i] = v
	}
	min, max := stats.Bounds(vals)
	for i, v := range vals {
		x := 0.5
		if max > min {
			x = (v - min) / (max - min)
		}
		colors[i] = palette.Viridis.Map(x)
	}
	return colors, nil
}
