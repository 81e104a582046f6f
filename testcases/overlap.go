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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fontprep"
)

var overlapCases = []Case{
	{
		// literal contours crossing each other
		Name: "contours",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0, oslash()),
			}
		},
	},
	{
		// the directive forces decomposition of a trivial composite
		Name: "composite",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterC(),
					cedilla(),
					withNotes(composite("Ccedilla",
						ref("C", matrix.Identity),
						ref("cedilla", offset(230, 0))),
						"!post:removeoverlap"),
					withNotes(composite("C.alt", ref("C", offset(20, 0))),
						"!post:RemoveOverlap"),
				),
			}
		},
	},
	{
		Name: "unknown_directive",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					withNotes(oslash(), "drawn by hand", "!post:removeoverlap !post:smoothcurves")),
			}
		},
	},
	{
		Name: "two_masters",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0, oslash()),
				master("Italic", italicAngle, oslash()),
			}
		},
	},
}

// oslash is a ring crossed by a bar, with the removeoverlap directive.
func oslash() *fontprep.Glyph {
	bar := (&path.Data{}).
		MoveTo(pt(-20, -40)).
		LineTo(pt(60, -40)).
		LineTo(pt(720, 740)).
		LineTo(pt(640, 740)).
		Close()
	g := letterO()
	g.Name = "Oslash"
	g.Contours = append(g.Contours, bar)
	return withNotes(g, "!post:removeoverlap")
}
