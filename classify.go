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

package fontprep

// IsNonTrivial reports whether the components of g must be decomposed
// before the glyph can be compiled.
//
// Glyphs without components are trivial, glyphs with two or more components
// are not. A single component is trivial only if its transform is a pure
// offset. If yAxisIsNonTrivial is set, which is the case for italic
// masters, a vertical offset also makes the component non-trivial.
func IsNonTrivial(g *Glyph, yAxisIsNonTrivial bool) bool {
	switch len(g.Components) {
	case 0:
		return false
	case 1:
		// handled below
	default:
		return true
	}

	m := g.Components[0].Transform
	if m[0] != 1 || m[1] != 0 || m[2] != 0 || m[3] != 1 {
		return true
	}
	return yAxisIsNonTrivial && m[5] != 0
}
