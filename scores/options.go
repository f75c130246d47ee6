// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

// MultiplicityMode selects how multiplicity bins are encoded on a
// plot.
type MultiplicityMode int

const (
	// MultSize scales the marker radius by bin.
	MultSize MultiplicityMode = iota

	// MultShape varies the marker glyph by bin.
	MultShape

	// MultZ places the bin on a third axis. Backends without a
	// third axis fall back to MultSize.
	MultZ

	// MultSizeZ combines MultSize and MultZ.
	MultSizeZ
)

// Options is the decoded form of an option descriptor.
//
// A descriptor is a string of binary digits, read left to right:
//
//	1. draw one bar plot per component instead of line or scatter plots
//	2. plot only the projected test observations
//	3. treat class labels as numeric values instead of categories
//	4. encode per-observation multiplicity counts
//	5,6. multiplicity sub-mode, read as a two-digit binary number:
//	     00 size, 01 shape, 10 third axis, 11 size and third axis
//
// Missing digits are zero. Digits 5 and 6 are only read when digit 4
// is set. Callers holding a numeric descriptor convert it with
// strconv.Itoa first, so that each printed decimal digit is one
// option digit.
type Options struct {
	// Bars selects one bar plot per component.
	Bars bool

	// TestOnly restricts the plot to projected test observations.
	TestOnly bool

	// Categorical reports whether class labels are arbitrary
	// categories. It is the inverse of the third descriptor
	// digit: a zero digit (the default) means categorical
	// grouping, a one digit means the labels are numeric values
	// colored on a gradient.
	Categorical bool

	// Multiplicity enables multiplicity cues, styled by Mode.
	Multiplicity bool
	Mode         MultiplicityMode
}

// ParseOptions decodes an option descriptor. Descriptors shorter
// than five digits (six once the multiplicity digit is set) are
// padded with zeros on the right.
func ParseOptions(desc string) (Options, error) {
	s := desc
	for len(s) < 5 {
		s += "0"
	}
	if s[3] == '1' && len(s) < 6 {
		s += "0"
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return Options{}, &OptionError{Desc: desc, Pos: i + 1}
		}
	}
	o := Options{
		Bars:         s[0] == '1',
		TestOnly:     s[1] == '1',
		Categorical:  s[2] == '0',
		Multiplicity: s[3] == '1',
	}
	if o.Multiplicity {
		o.Mode = MultiplicityMode(2*int(s[4]-'0') + int(s[5]-'0'))
	}
	return o, nil
}

// Descriptor re-encodes o as a descriptor string. ParseOptions on
// the result yields o again.
func (o Options) Descriptor() string {
	set := func(b byte, on bool) byte {
		if on {
			return '1'
		}
		return b
	}
	d := []byte{'0', '0', '0', '0', '0'}
	d[0] = set(d[0], o.Bars)
	d[1] = set(d[1], o.TestOnly)
	d[2] = set(d[2], !o.Categorical)
	d[3] = set(d[3], o.Multiplicity)
	if o.Multiplicity {
		d = append(d, '0')
		d[4] = set(d[4], o.Mode&2 != 0)
		d[5] = set(d[5], o.Mode&1 != 0)
	}
	return string(d)
}
