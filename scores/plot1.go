// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"image/color"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// labelAnchor places 1-D labels at this fraction of the point
	// value, between the zero line and the point.
	labelAnchor = 0.75

	// shapeRadius is the fixed marker radius under MultShape.
	shapeRadius = 4
)

// plot1D draws score column dim against the observation index.
func plot1D(r Renderer, st *plotState, dim int) Figure {
	f := r.NewFigure(st.p.Title)
	obs := st.obs
	k, _ := obs.Values.Dims()
	xs := vec.Linspace(1, float64(k), k)
	v := mat.Col(nil, dim, obs.Values)

	// Multiplicity cues sit on the baseline under each point,
	// drawn before the data series.
	if st.bins != nil {
		var mxs, mys []float64
		var markers []Marker
		for i, bin := range st.bins {
			if bin == 0 {
				continue
			}
			m := Marker{Radius: MarkerRadius(bin)}
			if st.p.Options.Mode == MultShape {
				m = Marker{Radius: shapeRadius, Shape: bin - 1}
			}
			mxs = append(mxs, xs[i])
			mys = append(mys, 0)
			markers = append(markers, m)
		}
		f.Points("", color.Gray{0x80}, 0, mxs, mys, markers)
	}

	// One series per class keeps colors and the legend aligned.
	for li, level := range obs.Levels {
		var cxs, cvs []float64
		for i, o := range obs.Ord {
			if o == li+1 {
				cxs = append(cxs, xs[i])
				cvs = append(cvs, v[i])
			}
		}
		if st.p.Options.Bars {
			f.Bars(level, st.colors[li], cxs, cvs)
		} else {
			f.Line(level, st.colors[li], cxs, cvs)
		}
	}

	f.HLine(0)

	idx, font := SelectLabels(v)
	for _, i := range idx {
		sty := TextStyle{Size: font, Rotated: true, AlignRight: v[i] < 0}
		f.Text(xs[i], labelAnchor*v[i], obs.Labels[i], sty)
	}

	f.SetXLabel("Sample")
	f.SetYLabel(st.m.axisTitle(dim, st.shares[dim]))

	// Rotated labels on negative points extend below their
	// anchor; symmetric bounds leave them room.
	if len(idx) > 0 && floats.Min(v) < 0 {
		f.SetYBounds(symmetricBounds(f.YBounds()))
	}
	return f
}
