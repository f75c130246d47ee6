// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package echplot renders score figures as an interactive HTML page
// with go-echarts.
//
// Each figure becomes one chart on the page. The backend is 2-D
// only: label rotation is ignored and third-axis multiplicity cues
// arrive already degraded to size cues. Series drawn with different
// primitives (bars, lines, markers) are overlapped onto the chart
// created by the first draw call, which keeps background cues behind
// the data series.
package echplot

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/chemplot/go-scores/scores"
)

// symbols are the marker symbols, indexed by scores.Marker.Shape.
var symbols = []string{"circle", "rect", "triangle", "diamond", "roundRect"}

// Renderer collects figures for one HTML page.
type Renderer struct {
	// Theme names the echarts theme; empty means Westeros.
	Theme string

	figs []*Figure
}

func New() *Renderer {
	return &Renderer{Theme: types.ThemeWesteros}
}

// NewFigure implements scores.Renderer.
func (r *Renderer) NewFigure(title string) scores.Figure {
	f := &Figure{
		title: title,
		theme: r.Theme,
		xlo:   math.Inf(1), xhi: math.Inf(-1),
		ylo: math.Inf(1), yhi: math.Inf(-1),
	}
	r.figs = append(r.figs, f)
	return f
}

// Render writes the page with every figure to w.
func (r *Renderer) Render(w io.Writer) error {
	page := components.NewPage()
	for _, f := range r.figs {
		page.AddCharts(f.finish())
	}
	return page.Render(w)
}

// Handler serves the page over HTTP.
func (r *Renderer) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := r.Render(w); err != nil {
		log.Println(err)
	}
}

// Figure buffers draw calls and materializes them as an echarts
// chart when the page renders.
type Figure struct {
	title          string
	theme          string
	xlabel, ylabel string

	line    *charts.Line
	scatter *charts.Scatter
	bar     *charts.Bar
	order   []byte // chart kinds in creation order: 'l', 's', 'b'

	rules  []rule
	labels []textLabel

	xlo, xhi  float64
	ylo, yhi  float64
	blo, bhi  float64
	boundsSet bool
}

type rule struct {
	at       float64
	vertical bool
}

type textLabel struct {
	x, y float64
	s    string
}

func (f *Figure) extend(xs, ys []float64) {
	for _, x := range xs {
		f.xlo = math.Min(f.xlo, x)
		f.xhi = math.Max(f.xhi, x)
	}
	for _, y := range ys {
		f.ylo = math.Min(f.ylo, y)
		f.yhi = math.Max(f.yhi, y)
	}
}

func (f *Figure) ensureLine() *charts.Line {
	if f.line == nil {
		f.line = charts.NewLine()
		f.order = append(f.order, 'l')
	}
	return f.line
}

func (f *Figure) ensureScatter() *charts.Scatter {
	if f.scatter == nil {
		f.scatter = charts.NewScatter()
		f.order = append(f.order, 's')
	}
	return f.scatter
}

func (f *Figure) ensureBar() *charts.Bar {
	if f.bar == nil {
		f.bar = charts.NewBar()
		f.order = append(f.order, 'b')
	}
	return f.bar
}

func (f *Figure) Line(name string, c color.Color, xs, ys []float64) {
	f.extend(xs, ys)
	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}, Symbol: "circle", SymbolSize: 6}
	}
	f.ensureLine().AddSeries(name, data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: hexColor(c)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(c)}),
	)
}

func (f *Figure) Bars(name string, c color.Color, xs, vals []float64) {
	f.extend(xs, vals)
	data := make([]opts.BarData, len(xs))
	for i := range xs {
		data[i] = opts.BarData{Value: []interface{}{xs[i], vals[i]}}
	}
	f.ensureBar().AddSeries(name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(c)}),
	)
}

func (f *Figure) Points(name string, c color.Color, shape int, xs, ys []float64, markers []scores.Marker) {
	f.extend(xs, ys)
	data := make([]opts.ScatterData, len(xs))
	for i := range xs {
		d := opts.ScatterData{
			Value:      []interface{}{xs[i], ys[i]},
			Symbol:     symbols[shape%len(symbols)],
			SymbolSize: 8,
		}
		if markers != nil {
			d.Symbol = symbols[markers[i].Shape%len(symbols)]
			d.SymbolSize = int(2 * markers[i].Radius)
		}
		data[i] = d
	}
	f.ensureScatter().AddSeries(name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(c)}),
	)
}

func (f *Figure) Text(x, y float64, s string, _ scores.TextStyle) {
	f.labels = append(f.labels, textLabel{x, y, s})
}

func (f *Figure) HLine(y float64) { f.rules = append(f.rules, rule{at: y}) }
func (f *Figure) VLine(x float64) { f.rules = append(f.rules, rule{at: x, vertical: true}) }

func (f *Figure) SetXLabel(s string) { f.xlabel = s }
func (f *Figure) SetYLabel(s string) { f.ylabel = s }

func (f *Figure) YBounds() (lo, hi float64) {
	if f.boundsSet {
		return f.blo, f.bhi
	}
	return f.ylo, f.yhi
}

func (f *Figure) SetYBounds(lo, hi float64) {
	f.blo, f.bhi = lo, hi
	f.boundsSet = true
}

// rect returns the embedded RectChart of the chart of the given
// kind.
func (f *Figure) rect(kind byte) *charts.RectChart {
	switch kind {
	case 'l':
		return &f.line.RectChart
	case 's':
		return &f.scatter.RectChart
	default:
		return &f.bar.RectChart
	}
}

// finish flushes buffered rules and labels, merges the charts and
// returns the one to put on the page.
func (f *Figure) finish() components.Charter {
	// An empty figure still needs a chart to land on the page.
	if len(f.order) == 0 {
		f.ensureScatter()
	}

	if len(f.labels) > 0 {
		data := make([]opts.ScatterData, len(f.labels))
		for i, l := range f.labels {
			data[i] = opts.ScatterData{
				Name:       l.s,
				Value:      []interface{}{l.x, l.y},
				SymbolSize: 1,
			}
		}
		f.ensureScatter().AddSeries("", data,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: "{b}",
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#555555"}),
		)
	}

	if f.xlo <= f.xhi {
		for _, ru := range f.rules {
			xy := [2][2]float64{{f.xlo, ru.at}, {f.xhi, ru.at}}
			if ru.vertical {
				lo, hi := f.YBounds()
				xy = [2][2]float64{{ru.at, lo}, {ru.at, hi}}
			}
			data := []opts.LineData{
				{Value: []interface{}{xy[0][0], xy[0][1]}, Symbol: "none"},
				{Value: []interface{}{xy[1][0], xy[1][1]}, Symbol: "none"},
			}
			f.ensureLine().AddSeries("", data,
				charts.WithLineStyleOpts(opts.LineStyle{Color: "#808080", Type: "dashed"}),
			)
		}
	}

	prim := f.rect(f.order[0])
	yAxis := opts.YAxis{Name: f.ylabel, Type: "value", Scale: opts.Bool(true)}
	if f.boundsSet {
		yAxis.Min = f.blo
		yAxis.Max = f.bhi
		yAxis.Scale = nil
	}
	prim.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  f.theme,
			Width:  "700px",
			Height: "480px",
		}),
		charts.WithTitleOpts(opts.Title{Title: f.title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.xlabel, Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(yAxis),
	)
	for _, k := range f.order[1:] {
		switch k {
		case 'l':
			prim.Overlap(f.line)
		case 's':
			prim.Overlap(f.scatter)
		case 'b':
			prim.Overlap(f.bar)
		}
	}
	switch f.order[0] {
	case 'l':
		return f.line
	case 's':
		return f.scatter
	default:
		return f.bar
	}
}

// hexColor formats c as an echarts color string, keeping alpha when
// c is translucent.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
