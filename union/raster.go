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

package union

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in grid coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// rasterizer computes the fraction of each grid cell covered by a filled
// path. Buffers grow as needed and are reused between calls.
//
// A rasterizer is not safe for concurrent use.
type rasterizer struct {
	// CTM maps glyph coordinates to grid coordinates. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in grid coordinates. Coordinates must be
	// integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in grid cells.
	Flatness float64

	// smallPathThreshold is the maximum bounding box area (in cells) for
	// which 2D buffers are used (approach A). Larger paths use an active
	// edge list (approach B).
	smallPathThreshold int

	cover       []float32 // signed vertical extent of edges per cell; reused as output
	area        []float32 // horizontal position weighting per cell
	edges       []edge
	activeIdx   []int  // indices of active edges (approach B)
	rowHasEdges []bool // per-row flag (approach A)

	edgeBBoxFirst bool
	edgeXMin      float64
	edgeXMax      float64
	edgeYMin      float64
	edgeYMax      float64
}

func newRasterizer(clip rect.Rect) *rasterizer {
	return &rasterizer{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// reset prepares the rasterizer for a new grid, keeping buffer capacity.
func (r *rasterizer) reset(clip rect.Rect, ctm matrix.Matrix) {
	r.CTM = ctm
	r.Clip = clip
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
}

// transformLinear applies the 2×2 part of the CTM, for tolerance checks.
func (r *rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic emits line segments approximating a quadratic Bézier
// curve from p0 to p2 with control point p1.
func (r *rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// error vector e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic emits line segments approximating a cubic Bézier curve.
// The number of segments follows Wang's formula.
func (r *rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// fillRule identifies which fill rule to apply.
type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// Fill computes the coverage of the contours under the given fill rule.
// The contours are treated as one compound path. The emit callback receives
// the coverage row by row; its slice argument is valid only during the call.
func (r *rasterizer) Fill(contours []*path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(contours)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectEdges builds the edge list for all contours and returns the grid
// bounding box of the edges, clamped to the clip rectangle. Open subpaths
// are closed implicitly.
func (r *rasterizer) collectEdges(contours []*path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	for _, p := range contours {
		var current, start vec.Vec2
		open := false
		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				if open && current != start {
					r.addEdge(current, start)
				}
				current = p.Coords[coordIdx]
				start = current
				open = true
				coordIdx++

			case path.CmdLineTo:
				r.addEdge(current, p.Coords[coordIdx])
				current = p.Coords[coordIdx]
				coordIdx++

			case path.CmdQuadTo:
				r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addEdge)
				current = p.Coords[coordIdx+1]
				coordIdx += 2

			case path.CmdCubeTo:
				r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addEdge)
				current = p.Coords[coordIdx+2]
				coordIdx += 3

			case path.CmdClose:
				if current != start {
					r.addEdge(current, start)
				}
				current = start
				open = false
			}
		}
		if open && current != start {
			r.addEdge(current, start)
		}
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a segment to grid coordinates and records it.
func (r *rasterizer) addEdge(p0, p1 vec.Vec2) {
	x0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	y0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	x1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	y1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	// horizontal edges do not contribute
	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeXMin, r.edgeXMax = min(x0, x1), max(x0, x1)
		r.edgeYMin, r.edgeYMax = min(y0, y1), max(y0, y1)
		r.edgeBBoxFirst = false
	} else {
		r.edgeXMin = min(r.edgeXMin, x0, x1)
		r.edgeXMax = max(r.edgeXMax, x0, x1)
		r.edgeYMin = min(r.edgeYMin, y0, y1)
		r.edgeYMax = max(r.edgeYMax, y0, y1)
	}
}

// Coverage accumulation:
//
// For each cell two values are tracked. cover is the signed vertical extent
// of the edges crossing the cell, area weights this by the horizontal
// position of the crossing:
//
//	cover = sign * dy
//	area  = cover * (1 - xFrac)
//
// The integration step turns these into coverage:
//
//	coverage = accumulated_cover + area[i]
//	accumulated_cover += cover[i]

// accumulateEdge adds the contribution of e within row y to the buffers,
// which are indexed by x - bboxXMin. Edges spanning several columns are
// split at column boundaries.
func (r *rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	// +1 for downward edges, -1 for upward edges
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yA := e.y0 + dydx*(float64(pix)-e.x0)
		yB := e.y0 + dydx*(float64(pix+1)-e.x0)
		segYMin := max(min(yA, yB), yTop)
		segYMax := min(max(yA, yB), yBot)
		if segYMax <= segYMin {
			continue
		}

		v := sign * float32(segYMax-segYMin)
		yMid := (segYMin + segYMax) / 2
		xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)

		if pix < bboxXMin {
			cover[0] += v
			area[0] += v
		} else if pix < bboxXMax {
			idx := pix - bboxXMin
			cover[idx] += v
			area[idx] += v * float32(1-xFrac)
		}
	}
}

// accumulateInColumn handles an edge segment within a single column.
func accumulateInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	v := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		cover[0] += v
		area[0] += v
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
	idx := pix - bboxXMin
	cover[idx] += v
	area[idx] += v * float32(1-xFrac)
}

// integrate converts the accumulated cover and area values of one row to
// coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == fillNonZero {
			cover[i] = min(raw, 1)
		} else {
			mod := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-mod)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall uses 2D buffers covering the whole bounding box (approach A).
func (r *rasterizer) fillSmall(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		eyMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		eyMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := eyMin; y < eyMax; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLarge uses one row of buffers and an active edge list (approach B).
func (r *rasterizer) fillLarge(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// edge is finished, swap-remove it
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in grid cells.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the bounding box area (in cells) below which
	// approach A is used.
	smallPathThreshold = 65536
)
