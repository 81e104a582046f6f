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

package testcases

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/outline"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// All shapes use font units with the y axis pointing up. Outer contours run
// counter-clockwise, counters run clockwise.

// rectangle returns a counter-clockwise rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// circle builds a counter-clockwise circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)). // top-right quadrant
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// ellipse builds a counter-clockwise ellipse from four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// The base glyphs below are shared by several cases. Each call returns a
// new glyph.

// letterA is a triangle with a triangular counter.
func letterA() *fontprep.Glyph {
	outer := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(600, 0)).
		LineTo(pt(300, 700)).
		Close()
	counter := (&path.Data{}).
		MoveTo(pt(200, 150)).
		LineTo(pt(300, 450)).
		LineTo(pt(400, 150)).
		Close()
	return glyph("A", outer, counter)
}

// letterO is an elliptic ring.
func letterO() *fontprep.Glyph {
	return glyph("O",
		ellipse(350, 350, 330, 360),
		outline.Reverse(ellipse(350, 350, 230, 270)))
}

// letterN is an arch on two stems, using quadratic curves.
func letterN() *fontprep.Glyph {
	shape := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(100, 0)).
		LineTo(pt(100, 350)).
		QuadTo(pt(100, 420), pt(250, 420)).
		QuadTo(pt(400, 420), pt(400, 350)).
		LineTo(pt(400, 0)).
		LineTo(pt(500, 0)).
		LineTo(pt(500, 380)).
		QuadTo(pt(500, 520), pt(250, 520)).
		QuadTo(pt(0, 520), pt(0, 380)).
		Close()
	return glyph("n", shape)
}

// acute is a slanted wedge.
func acute() *fontprep.Glyph {
	wedge := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(60, 0)).
		QuadTo(pt(150, 100), pt(180, 200)).
		LineTo(pt(100, 200)).
		Close()
	return glyph("acute", wedge)
}

// dotaccent is a round dot.
func dotaccent() *fontprep.Glyph {
	return glyph("dotaccent", circle(50, 50, 50))
}

// comma is a dot with a tail.
func comma() *fontprep.Glyph {
	shape := (&path.Data{}).
		MoveTo(pt(40, -150)).
		QuadTo(pt(140, -60), pt(140, 40)).
		CubeTo(pt(140, 100), pt(110, 130), pt(70, 130)).
		CubeTo(pt(30, 130), pt(0, 100), pt(0, 60)).
		CubeTo(pt(0, 20), pt(30, -10), pt(80, 0)).
		QuadTo(pt(70, -80), pt(10, -120)).
		Close()
	return glyph("comma", shape)
}

// parenleft is a crescent.
func parenleft() *fontprep.Glyph {
	shape := (&path.Data{}).
		MoveTo(pt(220, -200)).
		LineTo(pt(280, -170)).
		CubeTo(pt(150, -50), pt(120, 100), pt(120, 250)).
		CubeTo(pt(120, 400), pt(150, 550), pt(280, 670)).
		LineTo(pt(220, 700)).
		CubeTo(pt(70, 570), pt(20, 410), pt(20, 250)).
		CubeTo(pt(20, 90), pt(70, -70), pt(220, -200)).
		Close()
	return glyph("parenleft", shape)
}

// cedilla is a hook below the baseline. The outline is written clockwise
// and reversed.
func cedilla() *fontprep.Glyph {
	shape := (&path.Data{}).
		MoveTo(pt(60, 20)).
		LineTo(pt(100, -60)).
		QuadTo(pt(200, -80), pt(200, -150)).
		QuadTo(pt(200, -240), pt(40, -240)).
		LineTo(pt(40, -200)).
		QuadTo(pt(130, -200), pt(130, -150)).
		QuadTo(pt(130, -110), pt(60, -100)).
		LineTo(pt(20, 20)).
		Close()
	return glyph("cedilla", outline.Reverse(shape))
}

// letterC is an open ring, drawn from straight segments. The outline is
// written clockwise and reversed.
func letterC() *fontprep.Glyph {
	shape := (&path.Data{}).
		MoveTo(pt(550, 100)).
		LineTo(pt(400, 0)).
		LineTo(pt(150, 0)).
		LineTo(pt(0, 150)).
		LineTo(pt(0, 550)).
		LineTo(pt(150, 700)).
		LineTo(pt(400, 700)).
		LineTo(pt(550, 600)).
		LineTo(pt(480, 540)).
		LineTo(pt(380, 600)).
		LineTo(pt(200, 600)).
		LineTo(pt(100, 500)).
		LineTo(pt(100, 200)).
		LineTo(pt(200, 100)).
		LineTo(pt(380, 100)).
		LineTo(pt(480, 160)).
		Close()
	return glyph("C", outline.Reverse(shape))
}
