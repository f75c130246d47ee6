// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgplot

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/chemplot/go-scores/scores"
)

func TestRenderSVG(t *testing.T) {
	m := &scores.Model{
		TotalVariance: 10,
		Components:    []int{1, 2},
		Scores:        mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
	}
	r := New()
	if _, err := scores.Plot(r, m, nil, scores.Params{Title: "demo"}); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	figs := r.Figures()
	if len(figs) != 1 {
		t.Fatalf("got %d figures, want 1", len(figs))
	}
	if err := figs[0].Err(); err != nil {
		t.Fatalf("figure has error: %v", err)
	}
	var buf bytes.Buffer
	w, h := r.size()
	if err := figs[0].WriteTo(&buf, "svg", w, h); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("output does not look like SVG: %.80q…", out)
	}
	if !strings.Contains(out, "demo") {
		t.Errorf("output misses the title")
	}
}

func TestFigureCalls(t *testing.T) {
	r := New()
	f := r.NewFigure("t").(*Figure)
	f.Line("cal", color.RGBA{R: 0xff, A: 0xff}, []float64{1, 2, 3}, []float64{-1, 0, 1})
	f.Bars("", color.RGBA{B: 0xff, A: 0xff}, []float64{1, 2}, []float64{2, -2})
	f.Points("", color.Gray{0x80}, 0,
		[]float64{1, 2}, []float64{-1, 0},
		[]scores.Marker{{Radius: 2}, {Radius: 6, Shape: 1}})
	f.HLine(0)
	f.VLine(0)
	f.Text(1, 0.5, "a", scores.TextStyle{Size: 10, Rotated: true})
	f.Text(2, -0.5, "b", scores.TextStyle{Size: 10, Rotated: true, AlignRight: true})
	f.SetXLabel("Sample")
	f.SetYLabel("PC1 (10%)")

	lo, hi := f.YBounds()
	if lo > -2 || hi < 2 {
		t.Errorf("y bounds = %v, %v, want at least [-2,2]", lo, hi)
	}
	f.SetYBounds(-2.5, 2.5)
	if lo, hi = f.YBounds(); lo != -2.5 || hi != 2.5 {
		t.Errorf("y bounds = %v, %v after SetYBounds", lo, hi)
	}
	if err := f.Err(); err != nil {
		t.Fatalf("figure has error: %v", err)
	}

	var buf bytes.Buffer
	w, h := r.size()
	if err := f.WriteTo(&buf, "svg", w, h); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
}

func TestHLineEmpty(t *testing.T) {
	// A rule on an empty figure has no extent and draws nothing.
	r := New()
	f := r.NewFigure("").(*Figure)
	f.HLine(0)
	f.VLine(0)
	if err := f.Err(); err != nil {
		t.Fatalf("empty rules errored: %v", err)
	}
}
