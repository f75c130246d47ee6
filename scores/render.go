// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import "image/color"

// A Renderer creates figures on some drawing backend. Plot hands the
// figures back to the caller in emission order; saving or serving
// them is the backend's business.
type Renderer interface {
	NewFigure(title string) Figure
}

// A Figure is one plot surface. Implementations draw in call order,
// so background cues are drawn before the series they sit under.
// An empty series name suppresses the legend entry.
type Figure interface {
	// Line draws a connected series with point markers.
	Line(name string, c color.Color, xs, ys []float64)

	// Bars draws one vertical bar from the baseline to each
	// value.
	Bars(name string, c color.Color, xs, vals []float64)

	// Points draws marker glyphs. shape selects a backend glyph
	// for the whole series. A non-nil markers slice, one entry
	// per point, overrides size and glyph per point.
	Points(name string, c color.Color, shape int, xs, ys []float64, markers []Marker)

	// Text draws s anchored at the data coordinate (x, y).
	Text(x, y float64, s string, sty TextStyle)

	// HLine and VLine draw dashed reference rules across the
	// data extent.
	HLine(y float64)
	VLine(x float64)

	SetXLabel(s string)
	SetYLabel(s string)

	// YBounds reports the y range the drawn data spans.
	// SetYBounds overrides it.
	YBounds() (lo, hi float64)
	SetYBounds(lo, hi float64)
}

// Marker styles a single point of a Points series.
type Marker struct {
	// Radius is the glyph radius in points.
	Radius float64

	// Shape indexes the backend's open glyph set; 0 is a ring.
	Shape int
}

// TextStyle styles one Text call.
type TextStyle struct {
	// Size is the font size in points; 0 means the backend
	// default.
	Size float64

	// Rotated turns the text 90° counterclockwise.
	Rotated bool

	// AlignRight anchors the end of the text at the point
	// instead of the start.
	AlignRight bool
}
