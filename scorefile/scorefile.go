// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scorefile reads and writes score model files.
//
// A scores file is line oriented. Blank lines and lines starting
// with "#" are ignored. A line of the form "key: value" sets a
// scalar or vector field:
//
//	kind: pls
//	totvar: 12.5
//	components: 1 2
//	center: 0.1 0.2 0.3
//	scale: 1 1 1
//
// A key line without a value opens a matrix section; the following
// data lines hold one whitespace-separated row each, all of the same
// width:
//
//	loadings:
//	0.7 0.1
//	0.5 -0.2
//	0.1 0.9
//	scores:
//	1.2 -0.3
//	0.4 0.8
//
// totvar, components and scores are required; kind defaults to pca.
// The alternate section, if present, holds display scores such as
// cross-validated ones.
package scorefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/chemplot/go-scores/scores"
)

// ParseError reports a malformed line in a scores file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

var keyRe = regexp.MustCompile(`^([a-z]+):(?:[ \t]+(.*))?$`)

// matrixKeys are the keys that open a matrix section.
var matrixKeys = map[string]bool{"loadings": true, "scores": true, "alternate": true}

// Parse parses a scores file from r.
func Parse(r io.Reader) (*scores.Model, error) {
	m := new(scores.Model)
	rows := make(map[string][][]float64)
	width := make(map[string]int)
	seen := make(map[string]bool)
	cur := ""

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if kv := keyRe.FindStringSubmatch(line); kv != nil {
			key, val := kv[1], kv[2]
			if seen[key] {
				return nil, &ParseError{ln, fmt.Sprintf("duplicate key %q", key)}
			}
			seen[key] = true
			cur = ""
			var err error
			switch key {
			case "kind":
				m.Kind, err = scores.ParseKind(val)
			case "totvar":
				m.TotalVariance, err = strconv.ParseFloat(val, 64)
			case "components":
				m.Components, err = parseComponents(val)
			case "center":
				m.Centering, err = parseFloats(strings.Fields(val))
			case "scale":
				m.Scaling, err = parseFloats(strings.Fields(val))
			default:
				if !matrixKeys[key] {
					return nil, &ParseError{ln, fmt.Sprintf("unknown key %q", key)}
				}
				if val != "" {
					return nil, &ParseError{ln, fmt.Sprintf("%s takes a matrix section, not an inline value", key)}
				}
				cur = key
			}
			if err != nil {
				return nil, &ParseError{ln, err.Error()}
			}
			continue
		}

		// Data rows.
		if cur == "" {
			return nil, &ParseError{ln, "data row outside a matrix section"}
		}
		row, err := parseFloats(strings.Fields(line))
		if err != nil {
			return nil, &ParseError{ln, err.Error()}
		}
		if w, ok := width[cur]; ok && w != len(row) {
			return nil, &ParseError{ln, fmt.Sprintf("row has %d values, want %d", len(row), w)}
		}
		width[cur] = len(row)
		rows[cur] = append(rows[cur], row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, key := range []string{"totvar", "components", "scores"} {
		if !seen[key] {
			return nil, fmt.Errorf("missing key %q", key)
		}
	}
	for key := range matrixKeys {
		if seen[key] && len(rows[key]) == 0 {
			return nil, fmt.Errorf("section %q is empty", key)
		}
	}
	m.Loadings = toDense(rows["loadings"], width["loadings"])
	m.Scores = toDense(rows["scores"], width["scores"])
	m.Alternate = toDense(rows["alternate"], width["alternate"])
	return m, nil
}

// ParseFile parses the scores file at path.
func ParseFile(path string) (*scores.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMatrix parses a bare matrix: one whitespace-separated row per
// line, blank lines and "#" comments ignored.
func ParseMatrix(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	width := 0

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseFloats(strings.Fields(line))
		if err != nil {
			return nil, &ParseError{ln, err.Error()}
		}
		if len(rows) > 0 && len(row) != width {
			return nil, &ParseError{ln, fmt.Sprintf("row has %d values, want %d", len(row), width)}
		}
		width = len(row)
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return toDense(rows, width), nil
}

// ParseVector parses a matrix with a single row or a single column
// and returns it as a slice.
func ParseVector(r io.Reader) ([]float64, error) {
	m, err := ParseMatrix(r)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	switch {
	case rows == 1:
		return append([]float64(nil), m.RawRowView(0)...), nil
	case cols == 1:
		return mat.Col(nil, 0, m), nil
	}
	return nil, fmt.Errorf("want a vector, got a %d×%d matrix", rows, cols)
}

// ParseStrings parses one string per line, trimmed, with blank
// lines and "#" comments ignored.
func ParseStrings(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Print writes m to stdout in scores file format.
func Print(m *scores.Model) error {
	return Fprint(os.Stdout, m)
}

// Fprint writes m to w in scores file format. Parse on the output
// yields m again.
func Fprint(w io.Writer, m *scores.Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "kind: %s\n", m.Kind)
	fmt.Fprintf(bw, "totvar: %s\n", ftoa(m.TotalVariance))
	fmt.Fprintf(bw, "components:")
	for _, c := range m.Components {
		fmt.Fprintf(bw, " %d", c)
	}
	fmt.Fprintln(bw)
	if m.Centering != nil {
		fmt.Fprintf(bw, "center:%s\n", floatsLine(m.Centering))
	}
	if m.Scaling != nil {
		fmt.Fprintf(bw, "scale:%s\n", floatsLine(m.Scaling))
	}
	fprintMat(bw, "loadings", m.Loadings)
	fprintMat(bw, "scores", m.Scores)
	fprintMat(bw, "alternate", m.Alternate)
	return bw.Flush()
}

func fprintMat(w io.Writer, name string, d *mat.Dense) {
	if d == nil {
		return
	}
	fmt.Fprintf(w, "%s:\n", name)
	r, _ := d.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%s\n", strings.TrimPrefix(floatsLine(d.RawRowView(i)), " "))
	}
}

func parseComponents(val string) ([]int, error) {
	fields := strings.Fields(val)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no components listed")
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad component %q", f)
		}
		out[i] = n
	}
	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func toDense(rows [][]float64, width int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	d := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d
}

func floatsLine(vs []float64) string {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteByte(' ')
		sb.WriteString(ftoa(v))
	}
	return sb.String()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
