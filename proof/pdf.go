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

package proof

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/outline"
)

// cellPoints is the width of a glyph cell on the page, in PDF points.
const cellPoints = 72

// WritePDF draws the glyphs of m on a single page and writes the result to
// fname. Glyphs are laid out on a grid in master order, with the baseline
// of every cell drawn as a thin grey line.
func WritePDF(fname string, m *fontprep.Master, opt *Options) error {
	o := opt.withDefaults()

	n := max(m.Len(), 1)
	rows := (n + o.Columns - 1) / o.Columns
	cols := min(n, o.Columns)
	cellHeight := o.Ascent - o.Descent

	s := cellPoints / o.CellSize
	paper := &pdf.Rectangle{
		URx: float64(cols) * o.CellSize * s,
		URy: float64(rows) * cellHeight * s,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// font units to points
	page.Transform(matrix.Scale(s, s))

	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.5 / s)
	for row := range rows {
		y := float64(rows-1-row)*cellHeight - o.Descent
		page.MoveTo(0, y)
		page.LineTo(float64(cols)*o.CellSize, y)
	}
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	drawn := false
	for i, g := range m.Glyphs() {
		origin := o.cellOrigin(i, rows)
		shift := matrix.Matrix{1, 0, 0, 1, origin.X, origin.Y}
		for _, c := range g.Contours {
			for cmd, pts := range outline.Transform(c, shift).Iter().ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			drawn = true
		}
	}
	if drawn {
		// glyph cells are disjoint
		page.Fill()
	}

	return page.Close()
}
