// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"

	"github.com/chemplot/go-scores/scores"
)

// printTable writes the observations a plot of m would draw as an
// aligned text table, one row per observation and one score column
// per selected component.
func printTable(w io.Writer, m *scores.Model, test *mat.Dense, p scores.Params) error {
	obs, err := scores.Assemble(m, test, p)
	if err != nil {
		return err
	}

	k, a := obs.Values.Dims()
	nums := make([]int, k)
	classes := make([]string, k)
	for i := 0; i < k; i++ {
		nums[i] = i + 1
		classes[i] = obs.Levels[obs.Ord[i]-1]
	}

	tab := new(table.Builder).
		Add("obs", nums).
		Add("label", obs.Labels).
		Add("class", classes)
	for j := 0; j < a; j++ {
		tab.Add(m.AxisTitle(j), mat.Col(nil, j, obs.Values))
	}
	if p.Options.Multiplicity {
		tab.Add("mult", obs.Multiplicity)
	}

	table.Fprint(w, tab.Done())
	return nil
}
