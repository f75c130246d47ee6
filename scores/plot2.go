// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// plot2D draws score column dj against score column di as a scatter.
func plot2D(r Renderer, st *plotState, di, dj int) Figure {
	f := r.NewFigure(st.p.Title)
	obs := st.obs
	xs := mat.Col(nil, di, obs.Values)
	ys := mat.Col(nil, dj, obs.Values)

	for li, level := range obs.Levels {
		var cxs, cys []float64
		for i, o := range obs.Ord {
			if o == li+1 {
				cxs = append(cxs, xs[i])
				cys = append(cys, ys[i])
			}
		}
		f.Points(level, fade(st.colors[li], st.p.Blur), li, cxs, cys, nil)
	}

	f.HLine(0)
	f.VLine(0)

	for i, l := range obs.Labels {
		f.Text(xs[i], ys[i], l, TextStyle{Size: DefaultLabelFont})
	}

	f.SetXLabel(st.m.axisTitle(di, st.shares[di]))
	f.SetYLabel(st.m.axisTitle(dj, st.shares[dj]))
	return f
}

// fade scales a color's opacity: blur 0 leaves c opaque, blur 1
// erases it.
func fade(c color.Color, blur float64) color.Color {
	if blur <= 0 {
		return c
	}
	if blur > 1 {
		blur = 1
	}
	r, g, b, a := c.RGBA()
	keep := 1 - blur
	return color.RGBA64{
		R: uint16(float64(r) * keep),
		G: uint16(float64(g) * keep),
		B: uint16(float64(b) * keep),
		A: uint16(float64(a) * keep),
	}
}
