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
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontprep"
)

var nestedCases = []Case{
	{
		// dieresis is itself a composite
		Name: "two_level",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					dotaccent(),
					composite("dieresis",
						ref("dotaccent", matrix.Identity),
						ref("dotaccent", offset(150, 0))),
					composite("Adieresis",
						ref("A", matrix.Identity),
						ref("dieresis", offset(200, 720)))),
			}
		},
	},
	{
		// transforms along the chain must be composed, not added
		Name: "scaled_chain",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					dotaccent(),
					composite("dot.small", ref("dotaccent", matrix.Matrix{0.5, 0, 0, 0.5, 10, 20})),
					composite("dot.tiny", ref("dot.small", matrix.Matrix{0.5, 0, 0.25, 0.5, 30, 40})),
					composite("dots",
						ref("dotaccent", matrix.Identity),
						ref("dot.small", offset(150, 0)),
						ref("dot.tiny", offset(250, 0)))),
			}
		},
	},
	{
		Name: "deep",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0, dotChain(8)...),
			}
		},
	},
}

// dotChain returns a dot followed by n glyphs, each of which shrinks the
// previous one.
func dotChain(n int) []*fontprep.Glyph {
	res := []*fontprep.Glyph{dotaccent()}
	prev := "dotaccent"
	for i := range n {
		name := fmt.Sprintf("dot.level%d", i+1)
		res = append(res, composite(name, ref(prev, matrix.Matrix{0.9, 0, 0, 0.9, 5, 5})))
		prev = name
	}
	return res
}
