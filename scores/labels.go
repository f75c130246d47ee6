// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// DenseN is the observation count at which point labels start
	// to crowd. Plots with at most DenseN observations label every
	// point; larger plots label a distinctive subset of about
	// DenseN points.
	DenseN = 25

	// DefaultLabelFont is the label font size in points for sparse
	// plots.
	DefaultLabelFont = 10

	// MinLabelFont and MaxLabelFont clamp the font size used on
	// dense plots.
	MinLabelFont = 8
	MaxLabelFont = 16
)

// SelectLabels picks which elements of v get a text label on a 1-D
// plot and the font size to draw the labels with.
//
// With at most DenseN elements every index is selected. Past that,
// labeling everything produces unreadable overlap, so SelectLabels
// ranks each point by how much it stands out from its neighborhood:
// for offsets 1, 2 and 3 it takes the signed difference to the
// nearer of the two neighbors at that offset, keeps per point only
// the smallest-magnitude of the three contrasts, z-scores the
// contrast columns together with the values themselves, and projects
// the rows onto their dominant direction with a rank-1 SVD. The
// squared projection orders the points and the top
// round(N·(1−|DenseN−N|/N)) of them are kept.
//
// The returned indices are 0-based, strictly ascending and unique.
// Ranking ties keep the earlier index.
func SelectLabels(v []float64) (idx []int, font float64) {
	n := len(v)
	if n <= DenseN {
		idx = make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, DefaultLabelFont
	}

	// Signed contrast against the nearer neighbor at each offset.
	// Elements missing a neighbor on either side keep a zero
	// contrast at that offset.
	contrast := make([][]float64, 3)
	for k := range contrast {
		off := k + 1
		c := make([]float64, n)
		for i := off; i < n-off; i++ {
			c[i] = nearer(v[i]-v[i+off], v[i]-v[i-off])
		}
		contrast[k] = c
	}

	// Per point, only the smallest-magnitude contrast survives, in
	// the column of its offset. Ties go to the shortest offset.
	m := mat.NewDense(n, 4, nil)
	for i := 0; i < n; i++ {
		best := 0
		for k := 1; k < 3; k++ {
			if math.Abs(contrast[k][i]) < math.Abs(contrast[best][i]) {
				best = k
			}
		}
		m.Set(i, best, contrast[best][i])
		m.Set(i, 3, v[i])
	}
	// The first and last point see a one-sided neighborhood, which
	// would let them dominate the projection.
	for j := 0; j < 4; j++ {
		m.Set(0, j, 0)
		m.Set(n-1, j, 0)
	}

	zscore(m)
	u := dominantLeft(m)

	k := int(math.Round(float64(n) * (1 - math.Abs(DenseN-float64(n))/float64(n))))
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return u[order[a]]*u[order[a]] > u[order[b]]*u[order[b]]
	})
	idx = append([]int(nil), order[:k]...)
	sort.Ints(idx)
	return idx, labelFont(n)
}

// nearer returns whichever of a and b is smaller in magnitude,
// preferring a on ties.
func nearer(a, b float64) float64 {
	if math.Abs(b) < math.Abs(a) {
		return b
	}
	return a
}

// zscore centers each column of m and scales it to unit sample
// standard deviation. A constant column (an offset that never wins a
// tie, say) has no deviation to scale by and becomes all zeros.
func zscore(m *mat.Dense) {
	r, c := m.Dims()
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		mu := stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		for i := 0; i < r; i++ {
			if sd == 0 {
				m.Set(i, j, 0)
			} else {
				m.Set(i, j, (col[i]-mu)/sd)
			}
		}
	}
}

// dominantLeft returns the left singular vector of m's largest
// singular value. If the factorization fails to converge, every
// point scores the same and the caller's stable sort keeps input
// order.
func dominantLeft(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return make([]float64, r)
	}
	var u mat.Dense
	svd.UTo(&u)
	// Singular values come out descending, so column 0 is the
	// dominant direction.
	return mat.Col(nil, 0, &u)
}

// labelFont returns the label font size for a dense plot of n
// points. The size shrinks toward DefaultLabelFont as n moves away
// from DenseN and never leaves [MinLabelFont, MaxLabelFont].
func labelFont(n int) float64 {
	f := 75/math.Abs(float64(n)-DenseN) + 10
	if f > MaxLabelFont {
		f = MaxLabelFont
	}
	if f < MinLabelFont {
		f = MinLabelFont
	}
	return f
}
