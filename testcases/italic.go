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
	"seehuhn.de/go/fontprep"
)

// italicAngle is the slant of the italic fixtures, in degrees.
const italicAngle = -12

var italicCases = []Case{
	{
		// a vertical offset only matters in italic masters, but the glyph
		// is decomposed in every master
		Name: "vertical_offset",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					comma(),
					composite("quoteright", ref("comma", offset(0, 550)))),
				master("Italic", italicAngle,
					comma(),
					composite("quoteright", ref("comma", offset(115, 550)))),
			}
		},
	},
	{
		// horizontal offsets are harmless everywhere
		Name: "horizontal_offset",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					comma(),
					composite("comma.alt", ref("comma", offset(30, 0)))),
				master("Italic", italicAngle,
					comma(),
					composite("comma.alt", ref("comma", offset(30, 0)))),
			}
		},
	},
}
