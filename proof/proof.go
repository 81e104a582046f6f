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

// Package proof renders glyphs of a master for visual inspection.
//
// [WritePDF] draws all glyphs of a master on a single PDF page, and
// [RenderGlyph] rasterises one glyph into an alpha mask. Only the literal
// contours of a glyph are drawn, so components show up only after
// decomposition. Contours are filled with the nonzero winding rule, which
// is how font rasterisers fill glyphs.
package proof

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/outline"
)

// Options describe the layout of a proof. All lengths are in font units.
// Zero fields are replaced by their defaults.
type Options struct {
	// CellSize is the width of the grid cell reserved for one glyph.
	// The default is 1000.
	CellSize float64

	// Columns is the number of glyphs per row of a PDF proof.
	// The default is 8.
	Columns int

	// Ascent and Descent give the vertical extent of a cell, relative to
	// the baseline. The defaults are 900 and -250.
	Ascent, Descent float64
}

func (o *Options) withDefaults() Options {
	res := Options{
		CellSize: 1000,
		Columns:  8,
		Ascent:   900,
		Descent:  -250,
	}
	if o == nil {
		return res
	}
	if o.CellSize > 0 {
		res.CellSize = o.CellSize
	}
	if o.Columns > 0 {
		res.Columns = o.Columns
	}
	if o.Ascent != 0 || o.Descent != 0 {
		res.Ascent, res.Descent = o.Ascent, o.Descent
	}
	if res.Ascent <= res.Descent {
		res.Ascent, res.Descent = 900, -250
	}
	return res
}

// RenderGlyph rasterises the contours of g into a size×size alpha mask.
// The vertical range from Descent to Ascent fills the image and the glyph
// is centred horizontally.
func RenderGlyph(g *fontprep.Glyph, size int, opt *Options) *image.Alpha {
	o := opt.withDefaults()
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 || len(g.Contours) == 0 {
		return dst
	}

	s := float64(size) / (o.Ascent - o.Descent)
	dx := float64(size) / 2
	if bbox, ok := bounds(g.Contours); ok {
		dx -= (bbox.LLx + bbox.URx) / 2 * s
	}
	// font units to pixels, with y pointing down
	m := matrix.Matrix{s, 0, 0, -s, dx, o.Ascent * s}

	r := vector.NewRasterizer(size, size)
	for _, c := range g.Contours {
		drawVector(r, outline.Transform(c, m))
	}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// WritePNG writes the output of [RenderGlyph] as a PNG image.
func WritePNG(w io.Writer, g *fontprep.Glyph, size int, opt *Options) error {
	return png.Encode(w, RenderGlyph(g, size, opt))
}

func drawVector(r *vector.Rasterizer, c *path.Data) {
	k := 0
	open := false
	for _, cmd := range c.Cmds {
		pts := c.Coords[k : k+outline.CoordCount(cmd)]
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
		k += len(pts)
	}
	if open {
		r.ClosePath()
	}
}

// bounds returns the bounding box of all points, including control points.
func bounds(contours []*path.Data) (rect.Rect, bool) {
	var bbox rect.Rect
	first := true
	for _, c := range contours {
		for _, p := range c.Coords {
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
	return bbox, !first
}

// cellOrigin returns the position of the glyph origin of cell i, for a
// grid with the given number of rows.
func (o *Options) cellOrigin(i, rows int) vec.Vec2 {
	col := i % o.Columns
	row := i / o.Columns
	return vec.Vec2{
		X: float64(col)*o.CellSize + o.CellSize/10,
		Y: float64(rows-1-row)*(o.Ascent-o.Descent) - o.Descent,
	}
}
