// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgplot renders score figures with gonum.org/v1/plot.
//
// The Renderer collects one plot.Plot per figure; Save and WriteTo
// turn them into SVG, PNG or PDF output.
package vgplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/chemplot/go-scores/scores"
)

// openGlyphs are the marker glyphs, indexed by scores.Marker.Shape.
var openGlyphs = []draw.GlyphDrawer{
	draw.RingGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

// ruleStyle is the line style of zero reference rules.
var ruleStyle = draw.LineStyle{
	Color:  color.Gray{0x80},
	Width:  vg.Points(0.5),
	Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
}

// Renderer creates gonum/plot figures.
type Renderer struct {
	// Width and Height size saved figures. The zero value means
	// 15×10 cm.
	Width, Height vg.Length

	figs []*Figure
}

func New() *Renderer {
	return &Renderer{Width: 15 * vg.Centimeter, Height: 10 * vg.Centimeter}
}

// NewFigure implements scores.Renderer.
func (r *Renderer) NewFigure(title string) scores.Figure {
	p := plot.New()
	p.Title.Text = title
	p.Legend.Top = true
	f := &Figure{Plot: p}
	r.figs = append(r.figs, f)
	return f
}

// Figures returns the created figures in creation order.
func (r *Renderer) Figures() []*Figure {
	return r.figs
}

// Save writes every figure to prefix1.ext, prefix2.ext and so on.
// The extension picks the format, as in plot.Plot.Save.
func (r *Renderer) Save(prefix, ext string) error {
	w, h := r.size()
	for i, f := range r.figs {
		if f.err != nil {
			return f.err
		}
		name := fmt.Sprintf("%s%d.%s", prefix, i+1, ext)
		if err := f.Plot.Save(w, h, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) size() (w, h vg.Length) {
	w, h = r.Width, r.Height
	if w == 0 {
		w = 15 * vg.Centimeter
	}
	if h == 0 {
		h = 10 * vg.Centimeter
	}
	return
}

// Figure is one gonum/plot figure. Plot may be customized further
// before saving.
type Figure struct {
	Plot *plot.Plot

	err error
}

// Err returns the first drawing error, if any.
func (f *Figure) Err() error { return f.err }

func (f *Figure) setErr(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// WriteTo writes the figure to w in the given format ("svg", "png",
// "pdf", ...), sized like Save.
func (f *Figure) WriteTo(w io.Writer, format string, width, height vg.Length) error {
	if f.err != nil {
		return f.err
	}
	wt, err := f.Plot.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func (f *Figure) Line(name string, c color.Color, xs, ys []float64) {
	l, s, err := plotter.NewLinePoints(xyPoints(xs, ys))
	if err != nil {
		f.setErr(err)
		return
	}
	l.LineStyle.Color = c
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2)
	f.Plot.Add(l, s)
	if name != "" {
		f.Plot.Legend.Add(name, l, s)
	}
}

func (f *Figure) Bars(name string, c color.Color, xs, vals []float64) {
	// plotter.BarChart packs bars onto sequential slots, but score
	// bars sit at arbitrary observation indices, so each bar is a
	// thick vertical stem.
	for i := range xs {
		b, err := plotter.NewLine(plotter.XYs{{X: xs[i], Y: 0}, {X: xs[i], Y: vals[i]}})
		if err != nil {
			f.setErr(err)
			return
		}
		b.LineStyle.Color = c
		b.LineStyle.Width = vg.Points(4)
		f.Plot.Add(b)
		if i == 0 && name != "" {
			f.Plot.Legend.Add(name, b)
		}
	}
}

func (f *Figure) Points(name string, c color.Color, shape int, xs, ys []float64, markers []scores.Marker) {
	s, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		f.setErr(err)
		return
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = plotutil.Shape(shape)
	if markers != nil {
		base := s.GlyphStyle
		ms := append([]scores.Marker(nil), markers...)
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			g := base
			g.Radius = vg.Points(ms[i].Radius)
			g.Shape = openGlyphs[ms[i].Shape%len(openGlyphs)]
			return g
		}
	}
	f.Plot.Add(s)
	if name != "" {
		f.Plot.Legend.Add(name, s)
	}
}

func (f *Figure) Text(x, y float64, s string, sty scores.TextStyle) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{s},
	})
	if err != nil {
		f.setErr(err)
		return
	}
	st := &l.TextStyle[0]
	if sty.Size > 0 {
		st.Font.Size = vg.Points(sty.Size)
	}
	if sty.Rotated {
		st.Rotation = math.Pi / 2
	}
	st.XAlign = text.XLeft
	if sty.AlignRight {
		st.XAlign = text.XRight
	}
	st.YAlign = text.YCenter
	f.Plot.Add(l)
}

func (f *Figure) HLine(y float64) {
	// Nothing drawn yet means no extent to rule across.
	if f.Plot.X.Min > f.Plot.X.Max {
		return
	}
	l, err := plotter.NewLine(plotter.XYs{
		{X: f.Plot.X.Min, Y: y},
		{X: f.Plot.X.Max, Y: y},
	})
	if err != nil {
		f.setErr(err)
		return
	}
	l.LineStyle = ruleStyle
	f.Plot.Add(l)
}

func (f *Figure) VLine(x float64) {
	if f.Plot.Y.Min > f.Plot.Y.Max {
		return
	}
	l, err := plotter.NewLine(plotter.XYs{
		{X: x, Y: f.Plot.Y.Min},
		{X: x, Y: f.Plot.Y.Max},
	})
	if err != nil {
		f.setErr(err)
		return
	}
	l.LineStyle = ruleStyle
	f.Plot.Add(l)
}

func (f *Figure) SetXLabel(s string) { f.Plot.X.Label.Text = s }
func (f *Figure) SetYLabel(s string) { f.Plot.Y.Label.Text = s }

func (f *Figure) YBounds() (lo, hi float64) {
	return f.Plot.Y.Min, f.Plot.Y.Max
}

func (f *Figure) SetYBounds(lo, hi float64) {
	f.Plot.Y.Min, f.Plot.Y.Max = lo, hi
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
