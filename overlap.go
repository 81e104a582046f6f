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
	"seehuhn.de/go/geom/path"
)

// An OverlapRemover computes the boolean union of a set of contours, using
// the nonzero winding rule. The result must fill the same area as the input
// without self-intersections or overlapping contours.
//
// Implementations must not modify the input contours.
type OverlapRemover interface {
	RemoveOverlaps(contours []*path.Data) ([]*path.Data, error)
}

// OverlapRemoverFunc adapts a function to the [OverlapRemover] interface.
type OverlapRemoverFunc func(contours []*path.Data) ([]*path.Data, error)

// RemoveOverlaps calls f(contours).
func (f OverlapRemoverFunc) RemoveOverlaps(contours []*path.Data) ([]*path.Data, error) {
	return f(contours)
}

// OverlapTarget identifies a glyph scheduled for overlap removal.
type OverlapTarget struct {
	Master *Master
	Glyph  *Glyph
}

// ResolveOverlaps replaces the contours of every target glyph by their
// boolean union, as computed by r.
//
// Failures are recorded in diag as [*OverlapError] and the affected glyph
// keeps its contours; the remaining targets are still processed. The
// glyphs must not have components: these are not seen by r.
// If diag is nil, failures are only logged.
func ResolveOverlaps(targets []OverlapTarget, r OverlapRemover, diag *Diagnostics) {
	if diag == nil {
		diag = &Diagnostics{}
	}
	for _, t := range targets {
		res, err := r.RemoveOverlaps(t.Glyph.Contours)
		if err != nil {
			diag.overlapFailed(&OverlapError{
				Master: t.Master.Name,
				Glyph:  t.Glyph.Name,
				Err:    err,
			})
			continue
		}
		t.Glyph.Contours = res
	}
}
