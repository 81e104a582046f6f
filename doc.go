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

// Package fontprep prepares the glyph outlines of font masters for binary
// font compilation.
//
// Font sources store many glyphs as composites, i.e. as references to other
// glyphs placed with an affine transform. Interpolation and overlap removal
// cannot work on nested, transformed references, so some composites must be
// decomposed first: the referenced outlines are copied into the glyph,
// transformed, and the references are removed.
//
// A [Pipeline] runs in three steps over a set of masters:
//
//  1. Scan decides which glyphs need decomposition (see [IsNonTrivial]) and
//     which glyphs carry a "!post:removeoverlap" directive in their notes
//     (see [ParseDirectives]).
//  2. Flatten decomposes the selected glyphs in all masters (see [Decompose]).
//  3. Resolve overlaps replaces the contours of the flagged glyphs by their
//     boolean union (see [ResolveOverlaps]).
//
// Dangling or cyclic component references abort the run before any master
// is modified. Unknown directives and failed overlap removals are collected
// in [Diagnostics] and do not stop the run.
package fontprep
