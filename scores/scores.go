// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scores draws score plots for multivariate calibration
// models.
//
// A score plot shows the observations of a fitted model (principal
// component analysis, partial least squares regression and friends)
// in the model's component space. With one selected component the
// observations are plotted against their index, one figure per
// component; with several, every pair of components becomes a 2-D
// scatter. Test-set observations can be projected into the same
// space and drawn alongside or instead of the calibration set.
//
// The package is backend-agnostic: Plot emits figures through the
// Renderer interface and leaves pixels to the vgplot and echplot
// packages.
package scores

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Params configures a Plot call beyond the model itself. The zero
// value plots calibration scores with default options.
type Params struct {
	// Options are the decoded plot options. See ParseOptions.
	Options Options

	// Title is drawn above every figure.
	Title string

	// Labels annotates observations, one entry per plotted
	// observation. Nil numbers each plotted block independently
	// from 1.
	Labels []string

	// Classes groups observations, one entry per plotted
	// observation; equal strings share a color and a legend
	// entry. Nil groups calibration observations as "1" and test
	// observations as "2".
	Classes []string

	// Multiplicity holds per-observation counts, one entry per
	// plotted observation; nil counts every observation once.
	// Only consulted when Options.Multiplicity is set.
	Multiplicity []float64

	// Thresholds are the multiplicity bin thresholds; nil means
	// DefaultThresholds.
	Thresholds []float64

	// Blur fades the markers of 2-D figures: 0 is opaque, 1
	// invisible.
	Blur float64
}

// Observations is the assembled observation set a plot draws: the
// displayed score block with labels, classes and multiplicity
// resolved to one entry per row.
type Observations struct {
	// Values holds the displayed scores, one row per observation
	// and one column per selected component.
	Values *mat.Dense

	// Labels, Ord and Multiplicity have one entry per row of
	// Values. Ord is the 1-based class ordinal.
	Labels       []string
	Ord          []int
	Multiplicity []float64

	// Levels lists the distinct class labels in ordinal order.
	Levels []string
}

// Assemble resolves which observations a plot of m would draw and
// with what annotations. Alternate scores, if present, replace the
// calibration scores; a non-nil test matrix is projected through the
// model and appended, or plotted alone under Options.TestOnly.
func Assemble(m *Model, test *mat.Dense, p Params) (*Observations, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	a := len(m.Components)

	cal := m.Scores
	if m.Alternate != nil {
		cal = m.Alternate
	}

	var proj *mat.Dense
	if test != nil {
		var err error
		proj, err = m.ProjectTest(test)
		if err != nil {
			return nil, err
		}
	}

	// With nothing to project, "test only" falls back to the
	// calibration scores.
	var blocks []*mat.Dense
	if proj == nil || !p.Options.TestOnly {
		blocks = append(blocks, cal)
	}
	if proj != nil {
		blocks = append(blocks, proj)
	}

	k := 0
	for _, b := range blocks {
		r, _ := b.Dims()
		k += r
	}

	vals := mat.NewDense(k, a, nil)
	row := 0
	for _, b := range blocks {
		r, _ := b.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < a; j++ {
				vals.Set(row, j, b.At(i, j))
			}
			row++
		}
	}

	labels := p.Labels
	if labels == nil {
		labels = make([]string, 0, k)
		for _, b := range blocks {
			r, _ := b.Dims()
			for i := 1; i <= r; i++ {
				labels = append(labels, strconv.Itoa(i))
			}
		}
	} else if len(labels) != k {
		return nil, countErr("labels", k, len(labels))
	}

	classes := p.Classes
	if classes == nil {
		classes = make([]string, 0, k)
		for bi, b := range blocks {
			r, _ := b.Dims()
			name := strconv.Itoa(bi + 1)
			for i := 0; i < r; i++ {
				classes = append(classes, name)
			}
		}
	} else if len(classes) != k {
		return nil, countErr("classes", k, len(classes))
	}

	mult := p.Multiplicity
	if mult == nil {
		mult = make([]float64, k)
		for i := range mult {
			mult[i] = 1
		}
	} else if len(mult) != k {
		return nil, countErr("multiplicity", k, len(mult))
	}

	ord, levels := NormalizeClasses(classes)
	return &Observations{
		Values:       vals,
		Labels:       labels,
		Ord:          ord,
		Multiplicity: mult,
		Levels:       levels,
	}, nil
}

func countErr(arg string, want, got int) error {
	return &DimensionError{
		Arg:  arg,
		Want: fmt.Sprintf("%d entries", want),
		Got:  fmt.Sprintf("%d entries", got),
	}
}

// plotState carries the assembled inputs of one Plot call to the
// per-figure drawing routines.
type plotState struct {
	m      *Model
	p      Params
	obs    *Observations
	colors []color.Color // per class level
	bins   []int         // per row; nil without multiplicity
	shares []float64     // per component
}

// Plot draws the score plot of m on r and returns the emitted
// figures in order. With one selected component, or under
// Options.Bars, it emits one 1-D figure per component; otherwise one
// 2-D scatter per component pair (i,j), i<j, in lexicographic order.
func Plot(r Renderer, m *Model, test *mat.Dense, p Params) ([]Figure, error) {
	if r == nil {
		return nil, &ArgumentError{Arg: "renderer", Reason: "missing"}
	}
	obs, err := Assemble(m, test, p)
	if err != nil {
		return nil, err
	}
	colors, err := classColors(obs.Levels, p.Options.Categorical)
	if err != nil {
		return nil, err
	}

	st := &plotState{m: m, p: p, obs: obs, colors: colors, shares: m.VarianceShares()}
	if p.Options.Multiplicity {
		st.bins, err = BinMultiplicity(obs.Multiplicity, p.Thresholds)
		if err != nil {
			return nil, err
		}
	}

	a := len(m.Components)
	if p.Options.Bars && a > 1 {
		// A grouped bar block needs at least two members per
		// group to keep its orientation.
		counts := make([]int, len(obs.Levels))
		for _, o := range obs.Ord {
			counts[o-1]++
		}
		for li, c := range counts {
			if c == 1 {
				return nil, &ConfigError{Reason: fmt.Sprintf("cannot bar-plot %d components: class %q has a single member", a, obs.Levels[li])}
			}
		}
	}

	var figs []Figure
	if a == 1 || p.Options.Bars {
		for j := 0; j < a; j++ {
			figs = append(figs, plot1D(r, st, j))
		}
	} else {
		for i := 0; i < a; i++ {
			for j := i + 1; j < a; j++ {
				figs = append(figs, plot2D(r, st, i, j))
			}
		}
	}
	return figs, nil
}
