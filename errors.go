// seehuhn.de/go/fontprep - prepare glyph outlines for font compilation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontprep

import (
	"errors"
	"fmt"
	"strings"
)

// Errors which abort a run.
var (
	// ErrMissingGlyph indicates a component reference to a glyph which
	// does not exist in the master.
	ErrMissingGlyph = errors.New("component refers to missing glyph")

	// ErrCycle indicates a glyph which directly or indirectly refers to
	// itself.
	ErrCycle = errors.New("cyclic component reference")

	// ErrTooDeep indicates components nested deeper than the configured
	// limit.
	ErrTooDeep = errors.New("components nested too deeply")
)

// ComponentError describes a broken component reference graph.
type ComponentError struct {
	Master string
	Glyph  string

	// Chain lists the glyph names from Glyph down to the offending
	// reference.
	Chain []string

	Err error
}

func (e *ComponentError) Error() string {
	msg := fmt.Sprintf("master %q: glyph %q: %v", e.Master, e.Glyph, e.Err)
	if len(e.Chain) > 1 {
		msg += " (" + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// OverlapError records a glyph for which overlap removal failed.
type OverlapError struct {
	Master string
	Glyph  string
	Err    error
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("master %q: glyph %q: remove overlap: %v", e.Master, e.Glyph, e.Err)
}

func (e *OverlapError) Unwrap() error {
	return e.Err
}
