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

var mirrorCases = []Case{
	{
		// horizontal mirror, determinant -1
		Name: "flip_x",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					parenleft(),
					composite("parenright", ref("parenleft", matrix.Matrix{-1, 0, 0, 1, 300, 0}))),
			}
		},
	},
	{
		// vertical mirror, determinant -1
		Name: "flip_y",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					comma(),
					composite("quotereversed", ref("comma", matrix.Matrix{1, 0, 0, -1, 0, 600}))),
			}
		},
	},
	{
		// half turn, determinant +1
		Name: "rotate",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterN(),
					composite("u", ref("n", matrix.Matrix{-1, 0, 0, -1, 500, 520}))),
			}
		},
	},
	{
		// a mirror of a mirror draws in the original direction
		Name: "double_mirror",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					parenleft(),
					composite("parenright", ref("parenleft", matrix.Matrix{-1, 0, 0, 1, 300, 0})),
					composite("parenleft.alt", ref("parenright", matrix.Matrix{-1, 0, 0, 1, 300, 0}))),
			}
		},
	},
	{
		// mirrored accent on an unmirrored base
		Name: "mixed",
		Masters: func() []*fontprep.Master {
			return []*fontprep.Master{
				master("Regular", 0,
					letterA(),
					acute(),
					composite("Agrave",
						ref("A", matrix.Identity),
						ref("acute", matrix.Matrix{-1, 0, 0, 1, 350, 720}))),
			}
		},
	},
}
