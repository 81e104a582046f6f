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

// Package union removes overlaps from glyph outlines.
//
// [Vector] computes the union with path boolean operations on the exact
// outline and is the default used by fontprep.
//
// [Remover] rasterises the contours instead: they are filled with the
// nonzero winding rule on a fine grid, the boundary of the filled cells is
// traced, and the resulting polygons are simplified. Curves are replaced by
// polygons whose corners lie within the configured tolerance of the true
// outline. Features narrower than the tolerance may be lost, so Remover is
// mainly useful to cross-check other implementations.
package union

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Default values for the fields of [Remover].
const (
	DefaultResolution = 2
	DefaultTolerance  = 0.75
	DefaultMaxCells   = 1 << 24
)

var (
	// ErrNonFinite is returned for contours with NaN or infinite
	// coordinates.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrTooLarge is returned if the grid would exceed MaxCells.
	ErrTooLarge = errors.New("outline too large")
)

// Remover computes an approximate union of glyph contours on a grid.
// A Remover is safe for
// concurrent use, but must not be copied after first use.
type Remover struct {
	// Resolution is the number of grid cells per font unit.
	Resolution float64

	// Tolerance is the maximal distance, in font units, by which the
	// simplified outline may deviate from the traced grid boundary.
	Tolerance float64

	// MaxCells limits the size of the grid.
	MaxCells int

	pool sync.Pool // *rasterizer
}

// New returns a Remover with default settings.
func New() *Remover {
	return &Remover{
		Resolution: DefaultResolution,
		Tolerance:  DefaultTolerance,
		MaxCells:   DefaultMaxCells,
	}
}

// RemoveOverlaps returns contours which fill the same area as the given
// contours under the nonzero winding rule, without overlaps. Outer contours
// of the result run counter-clockwise and holes run clockwise.
// The input is not modified.
func (u *Remover) RemoveOverlaps(contours []*path.Data) ([]*path.Data, error) {
	res := u.resolution()

	bbox, ok, err := bounds(contours)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	// one cell of margin on every side keeps the boundary inside the grid
	fw := math.Ceil((bbox.URx-bbox.LLx)*res) + 2
	fh := math.Ceil((bbox.URy-bbox.LLy)*res) + 2
	maxCells := u.MaxCells
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if fw*fh > float64(maxCells) {
		return nil, fmt.Errorf("%w: %gx%g cells", ErrTooLarge, fw, fh)
	}
	width, height := int(fw), int(fh)

	ctm := matrix.Matrix{res, 0, 0, res, 1 - res*bbox.LLx, 1 - res*bbox.LLy}
	clip := rect.Rect{URx: fw, URy: fh}

	r, _ := u.pool.Get().(*rasterizer)
	if r == nil {
		r = newRasterizer(clip)
	}
	r.reset(clip, ctm)

	mask := newCellMask(width, height)
	r.Fill(contours, fillNonZero, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c >= 0.5 {
				mask.set(xMin+i, y)
			}
		}
	})
	u.pool.Put(r)

	var out []*path.Data
	for _, loop := range traceLoops(mask) {
		loop = removeCollinear(loop)
		pts := make([]vec.Vec2, len(loop))
		for i, p := range loop {
			pts[i] = vec.Vec2{
				X: float64(p.x-1)/res + bbox.LLx,
				Y: float64(p.y-1)/res + bbox.LLy,
			}
		}
		pts = simplifyLoop(pts, u.Tolerance)
		if len(pts) < 3 || polygonArea(pts) == 0 {
			continue
		}

		c := (&path.Data{}).MoveTo(pts[0])
		for _, p := range pts[1:] {
			c = c.LineTo(p)
		}
		out = append(out, c.Close())
	}
	return out, nil
}

func (u *Remover) resolution() float64 {
	if u.Resolution > 0 && !math.IsInf(u.Resolution, 0) {
		return u.Resolution
	}
	return DefaultResolution
}

// bounds returns the bounding box of all coordinates, including control
// points.
func bounds(contours []*path.Data) (rect.Rect, bool, error) {
	var bbox rect.Rect
	first := true
	for _, c := range contours {
		for _, p := range c.Coords {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return rect.Rect{}, false, fmt.Errorf("%w: (%g, %g)", ErrNonFinite, p.X, p.Y)
			}
			if first {
				bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			bbox.LLx = min(bbox.LLx, p.X)
			bbox.LLy = min(bbox.LLy, p.Y)
			bbox.URx = max(bbox.URx, p.X)
			bbox.URy = max(bbox.URy, p.Y)
		}
	}
	return bbox, !first, nil
}
