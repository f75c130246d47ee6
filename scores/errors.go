// Copyright 2026 The Chemplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scores

import "fmt"

// ArgumentError reports a required argument that is missing or
// unusable as given.
type ArgumentError struct {
	// Arg names the offending argument.
	Arg string

	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s: %s", e.Arg, e.Reason)
}

// DimensionError reports an input whose shape disagrees with the
// shape implied by the other inputs.
type DimensionError struct {
	// Arg names the offending argument.
	Arg string

	// Want and Got describe the expected and actual shapes.
	Want, Got string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("argument %s: want %s, got %s", e.Arg, e.Want, e.Got)
}

// OptionError reports an option descriptor digit outside {0,1}.
type OptionError struct {
	// Desc is the descriptor as given, before padding.
	Desc string

	// Pos is the 1-based position of the bad digit.
	Pos int
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option descriptor %q: digit %d is not 0 or 1", e.Desc, e.Pos)
}

// ConfigError reports an option combination the requested plot shape
// cannot satisfy.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }
