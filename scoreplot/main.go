// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scoreplot plots the score matrix of a multivariate model.
//
// scoreplot takes a scores file (see package scorefile) holding a
// fitted model and draws one figure per selected component, or one
// per component pair when several components are selected. A test
// matrix can be projected through the model and drawn alongside.
//
// Plot options are given as a binary descriptor, e.g. -opt 10 draws
// bar plots, -opt 01 plots only the projected test set. See
// scores.ParseOptions for the digit assignments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/chemplot/go-scores/echplot"
	"github.com/chemplot/go-scores/scorefile"
	"github.com/chemplot/go-scores/scores"
	"github.com/chemplot/go-scores/vgplot"
)

func main() {
	log.SetPrefix("scoreplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "output `name`: a file name prefix, or the output file for -format html and -table (default: stdout)")
		flagFormat     = flag.String("format", "svg", "output `format`: svg, png, pdf or html")
		flagOpt        = flag.String("opt", "", "binary option `descriptor`")
		flagTest       = flag.String("test", "", "project the test matrix in `file` through the model")
		flagLabels     = flag.String("labels", "", "read observation labels from `file`, one per line")
		flagClasses    = flag.String("classes", "", "read observation classes from `file`, one per line")
		flagMult       = flag.String("mult", "", "read observation multiplicity counts from `file`")
		flagThresholds = flag.String("thresholds", "", "multiplicity bin `thresholds`, e.g. 20,50,100")
		flagTitle      = flag.String("title", "", "figure `title`")
		flagBlur       = flag.Float64("blur", 0, "fade 2-D markers by `alpha` in [0,1]")
		flagTable      = flag.Bool("table", false, "print the plotted observations as a table instead")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [model-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Read the model.
	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	var model *scores.Model
	var err error
	if path == "-" {
		model, err = scorefile.Parse(os.Stdin)
	} else {
		model, err = scorefile.ParseFile(path)
	}
	if err != nil {
		log.Fatal(err)
	}

	opts, err := scores.ParseOptions(*flagOpt)
	if err != nil {
		log.Fatal(err)
	}
	params := scores.Params{
		Options: opts,
		Title:   *flagTitle,
		Blur:    *flagBlur,
	}
	var test *mat.Dense
	if *flagTest != "" {
		test = readMatrix(*flagTest)
	}
	if *flagLabels != "" {
		params.Labels = readStrings(*flagLabels)
	}
	if *flagClasses != "" {
		params.Classes = readStrings(*flagClasses)
	}
	if *flagMult != "" {
		params.Multiplicity = readVector(*flagMult)
	}
	if *flagThresholds != "" {
		params.Thresholds = parseThresholds(*flagThresholds)
	}

	// Output table.
	if *flagTable {
		f := os.Stdout
		if *flagOut != "" {
			f, err = os.Create(*flagOut)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
		}
		if err := printTable(f, model, test, params); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Plot.
	switch *flagFormat {
	case "html":
		r := echplot.New()
		if _, err := scores.Plot(r, model, test, params); err != nil {
			log.Fatal(err)
		}
		f := os.Stdout
		if *flagOut != "" {
			f, err = os.Create(*flagOut)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
		}
		if err := r.Render(f); err != nil {
			log.Fatal(err)
		}
	case "svg", "png", "pdf":
		r := vgplot.New()
		if _, err := scores.Plot(r, model, test, params); err != nil {
			log.Fatal(err)
		}
		prefix := *flagOut
		if prefix == "" {
			prefix = "scores"
		}
		if err := r.Save(prefix, *flagFormat); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown format %q", *flagFormat)
	}
}

func readMatrix(path string) *mat.Dense {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	m, err := scorefile.ParseMatrix(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return m
}

func readVector(path string) []float64 {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	v, err := scorefile.ParseVector(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return v
}

func readStrings(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	ss, err := scorefile.ParseStrings(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return ss
}

func parseThresholds(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			log.Fatalf("bad threshold %q", p)
		}
		out[i] = v
	}
	return out
}
