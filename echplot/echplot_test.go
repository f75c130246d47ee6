// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package echplot

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/chemplot/go-scores/scores"
)

func TestRenderPage(t *testing.T) {
	m := &scores.Model{
		TotalVariance: 10,
		Components:    []int{1, 2},
		Scores:        mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}),
	}
	r := New()
	if _, err := scores.Plot(r, m, nil, scores.Params{Title: "demo page"}); err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<html", "echarts", "demo page", "scatter"} {
		if !strings.Contains(out, want) {
			t.Errorf("page misses %q", want)
		}
	}
}

func TestFigureKinds(t *testing.T) {
	r := New()
	f := r.NewFigure("kinds").(*Figure)
	f.Points("", color.Gray{0x80}, 0,
		[]float64{1, 2}, []float64{1, -1},
		[]scores.Marker{{Radius: 2}, {Radius: 6, Shape: 1}})
	f.Bars("a", color.RGBA{R: 0xff, A: 0xff}, []float64{1, 2}, []float64{1, -1})
	f.Line("b", color.RGBA{B: 0xff, A: 0xff}, []float64{1, 2}, []float64{2, -2})
	f.HLine(0)
	f.Text(1, 0.75, "x1", scores.TextStyle{Size: 10, Rotated: true})
	f.SetXLabel("Sample")
	f.SetYLabel("PC1 (10%)")

	if lo, hi := f.YBounds(); lo != -2 || hi != 2 {
		t.Errorf("y bounds = %v, %v, want -2, 2", lo, hi)
	}
	f.SetYBounds(-2.5, 2.5)
	if lo, hi := f.YBounds(); lo != -2.5 || hi != 2.5 {
		t.Errorf("y bounds = %v, %v after SetYBounds", lo, hi)
	}

	// The first draw call was a scatter, so the merged chart must
	// be the scatter.
	if f.order[0] != 's' {
		t.Fatalf("primary chart is %q, want scatter", f.order[0])
	}
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"bar", "x1", "dashed", "Sample"} {
		if !strings.Contains(out, want) {
			t.Errorf("page misses %q", want)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{0x4c, 0x72, 0xb0, 0xff}, "#4c72b0"},
		{color.Gray{0x80}, "#808080"},
		{color.NRGBA{0x10, 0x20, 0x30, 0x80}, "#10203080"},
	}
	for _, test := range tests {
		if got := hexColor(test.c); got != test.want {
			t.Errorf("hexColor(%v) = %q, want %q", test.c, got, test.want)
		}
	}
}
