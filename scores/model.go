// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kind identifies the model family that produced a score matrix. It
// affects only axis naming.
type Kind int

const (
	// KindPCA labels axes "PC" (principal component).
	KindPCA Kind = iota

	// KindPLS labels axes "LV" (latent variable).
	KindPLS

	// KindOther labels axes "PC" like KindPCA.
	KindOther
)

var kindNames = map[Kind]string{KindPCA: "pca", KindPLS: "pls", KindOther: "other"}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if s == n {
			return k, nil
		}
	}
	return 0, &ArgumentError{Arg: "kind", Reason: fmt.Sprintf("unknown model kind %q", s)}
}

func (k Kind) axisPrefix() string {
	if k == KindPLS {
		return "LV"
	}
	return "PC"
}

// Model is a fitted multivariate model as produced by an external
// modeling routine. Matrix columns are aligned: column i of Scores,
// Loadings and Alternate all belong to component Components[i], and
// the matrices may carry more columns than Components selects.
type Model struct {
	// TotalVariance is the total variance of the calibration
	// data, the denominator of the per-component variance
	// percentages shown on axis titles. It must be positive.
	TotalVariance float64

	// Components lists the plotted component numbers, one per
	// used matrix column. The numbers appear in axis titles.
	Components []int

	// Centering and Scaling are the column preprocessing applied
	// to the calibration data, one entry per original variable.
	// Nil means no centering (all zeros) or no scaling (all
	// ones). They are only consulted when projecting a test set.
	Centering []float64
	Scaling   []float64

	// Loadings maps the original variables to components, one row
	// per variable. It is only consulted when projecting a test
	// set.
	Loadings *mat.Dense

	// Scores holds one row per calibration observation.
	Scores *mat.Dense

	// Alternate, if non-nil, is displayed in place of Scores,
	// e.g. cross-validated scores. Variance percentages still
	// come from Scores: they report what the model explained at
	// fitting time.
	Alternate *mat.Dense

	Kind Kind
}

// check validates the model's internal consistency.
func (m *Model) check() error {
	if m == nil {
		return &ArgumentError{Arg: "model", Reason: "missing"}
	}
	if !(m.TotalVariance > 0) {
		return &ArgumentError{Arg: "model", Reason: "total variance must be positive"}
	}
	a := len(m.Components)
	if a == 0 {
		return &ArgumentError{Arg: "model", Reason: "no components selected"}
	}
	if m.Scores == nil {
		return &ArgumentError{Arg: "model", Reason: "missing scores"}
	}
	n, cols := m.Scores.Dims()
	if n == 0 {
		return &ArgumentError{Arg: "model", Reason: "no calibration observations"}
	}
	if cols < a {
		return &DimensionError{Arg: "model scores", Want: fmt.Sprintf("≥%d columns", a), Got: fmt.Sprintf("%d columns", cols)}
	}
	if m.Alternate != nil {
		ar, ac := m.Alternate.Dims()
		if ar != n || ac < a {
			return &DimensionError{Arg: "alternate scores", Want: fmt.Sprintf("%d×≥%d", n, a), Got: fmt.Sprintf("%d×%d", ar, ac)}
		}
	}
	return nil
}

// checkProjection validates the parts of the model a test-set
// projection needs.
func (m *Model) checkProjection() error {
	if m.Loadings == nil {
		return &ArgumentError{Arg: "model", Reason: "missing loadings"}
	}
	vars, cols := m.Loadings.Dims()
	if cols < len(m.Components) {
		return &DimensionError{Arg: "loadings", Want: fmt.Sprintf("≥%d columns", len(m.Components)), Got: fmt.Sprintf("%d columns", cols)}
	}
	if m.Centering != nil && len(m.Centering) != vars {
		return &DimensionError{Arg: "centering", Want: fmt.Sprintf("%d entries", vars), Got: fmt.Sprintf("%d entries", len(m.Centering))}
	}
	if m.Scaling != nil {
		if len(m.Scaling) != vars {
			return &DimensionError{Arg: "scaling", Want: fmt.Sprintf("%d entries", vars), Got: fmt.Sprintf("%d entries", len(m.Scaling))}
		}
		for _, s := range m.Scaling {
			if s == 0 {
				return &ArgumentError{Arg: "model", Reason: "zero scale factor"}
			}
		}
	}
	return nil
}

// ProjectTest projects test observations into the model's score
// space: each row is centered and scaled with the model's
// preprocessing and mapped through the loadings. test has one row
// per observation and one column per original variable; the result
// has one score column per selected component.
func (m *Model) ProjectTest(test *mat.Dense) (*mat.Dense, error) {
	if test == nil {
		return nil, &ArgumentError{Arg: "test", Reason: "missing"}
	}
	if err := m.checkProjection(); err != nil {
		return nil, err
	}
	l, tc := test.Dims()
	vars, _ := m.Loadings.Dims()
	if tc != vars {
		return nil, &DimensionError{Arg: "test", Want: fmt.Sprintf("%d columns", vars), Got: fmt.Sprintf("%d columns", tc)}
	}
	a := len(m.Components)
	pre := mat.NewDense(l, vars, nil)
	for i := 0; i < l; i++ {
		for j := 0; j < vars; j++ {
			x := test.At(i, j)
			if m.Centering != nil {
				x -= m.Centering[j]
			}
			if m.Scaling != nil {
				x /= m.Scaling[j]
			}
			pre.Set(i, j, x)
		}
	}
	proj := mat.NewDense(l, a, nil)
	proj.Mul(pre, m.Loadings.Slice(0, vars, 0, a))
	return proj, nil
}

// VarianceShares returns each plotted component's share of the total
// variance as a fraction, computed from the calibration scores even
// when Alternate scores are displayed.
func (m *Model) VarianceShares() []float64 {
	n, _ := m.Scores.Dims()
	shares := make([]float64, len(m.Components))
	col := make([]float64, n)
	for j := range shares {
		mat.Col(col, j, m.Scores)
		shares[j] = floats.Dot(col, col) / m.TotalVariance
	}
	return shares
}

// axisTitle names the axis for matrix column j, e.g. "PC2 (56%)".
func (m *Model) axisTitle(j int, share float64) string {
	return fmt.Sprintf("%s%d (%d%%)", m.Kind.axisPrefix(), m.Components[j], int(math.Round(100*share)))
}

// AxisTitle names the axis for matrix column j, including the
// component number and its variance share, e.g. "PC2 (56%)".
func (m *Model) AxisTitle(j int) string {
	return m.axisTitle(j, m.VarianceShares()[j])
}
