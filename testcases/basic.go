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

var basicCases = []Case{
	{
		// no components at all
		Name: "plain",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0, letterA(), letterO(), letterN()),
			}
		},
	},
	{
		// a single component moved sideways stays a reference
		Name: "offset_only",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					composite("A.alt", ref("A", offset(40, 0))),
					composite("A.raised", ref("A", offset(0, 100)))),
			}
		},
	},
	{
		Name: "accented",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					acute(),
					composite("Aacute",
						ref("A", matrix.Identity),
						ref("acute", offset(250, 720)))),
			}
		},
	},
	{
		// two composites sharing the same base glyph
		Name: "shared_base",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					acute(),
					dotaccent(),
					composite("Aacute",
						ref("A", matrix.Identity),
						ref("acute", offset(250, 720))),
					composite("Adotaccent",
						ref("A", matrix.Identity),
						ref("dotaccent", offset(250, 750)))),
			}
		},
	},
	{
		Name: "scaled",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					dotaccent(),
					composite("bullet", ref("dotaccent", matrix.Matrix{2, 0, 0, 2, 100, 200}))),
			}
		},
	},
	{
		// literal contours come before component geometry
		Name: "contours_and_components",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					dotaccent(),
					composite("colon",
						ref("dotaccent", offset(0, 0)),
						ref("dotaccent", offset(0, 400))),
					&fontprep.Glyph{
						Name:     "exclam",
						Contours: []*path.Data{rectangle(20, 250, 80, 700)},
						Components: []fontprep.Component{
							ref("dotaccent", matrix.Matrix{0.8, 0, 0, 0.8, 10, 0}),
						},
					}),
			}
		},
	},
}
