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

	"seehuhn.de/go/fontprep"
)

var invalidCases = []Case{
	{
		Name: "missing_base",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					composite("Aacute",
						ref("A", matrix.Identity),
						ref("acute", offset(250, 720)))),
			}
		},
		Err: fontprep.ErrMissingGlyph,
	},
	{
		// a trivial composite is never decomposed, but its reference
		// must still resolve
		Name: "missing_base_trivial",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					composite("A.alt", ref("missing", offset(10, 0)))),
			}
		},
		Err: fontprep.ErrMissingGlyph,
	},
	{
		// the broken glyph is in the second master only
		Name: "missing_in_one_master",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					acute(),
					composite("Aacute",
						ref("A", matrix.Identity),
						ref("acute", offset(250, 720)))),
				master("Bold", 0,
					letterA(),
					composite("Aacute",
						ref("A", matrix.Identity),
						ref("acute.bold", offset(250, 720)))),
			}
		},
		Err: fontprep.ErrMissingGlyph,
	},
	{
		Name: "cycle",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					composite("a", ref("b", matrix.Matrix{0.5, 0, 0, 0.5, 0, 0})),
					composite("b", ref("c", matrix.Matrix{0.5, 0, 0, 0.5, 0, 0})),
					composite("c", ref("a", matrix.Matrix{0.5, 0, 0, 0.5, 0, 0}))),
			}
		},
		Err: fontprep.ErrCycle,
	},
	{
		Name: "self_reference",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					composite("a", ref("a", matrix.Matrix{2, 0, 0, 2, 0, 0}))),
			}
		},
		Err: fontprep.ErrCycle,
	},
	{
		Name: "too_deep",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0, dotChain(fontprep.DefaultMaxDepth+5)...),
			}
		},
		Err: fontprep.ErrTooDeep,
	},
}
