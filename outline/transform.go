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

// Package outline implements the affine transform algebra and the contour
// operations used when glyph outlines are copied between glyphs.
//
// Transforms use the coefficient order of font sources and PDF:
//
//	[xScale xyScale yxScale yScale xOffset yOffset]
//
// which maps a point (x, y) to
//
//	x' = xScale*x + yxScale*y + xOffset
//	y' = xyScale*x + yScale*y + yOffset
package outline

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Sign is the sign of a transform's determinant.
type Sign int8

// Possible determinant signs.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	default:
		return "positive"
	}
}

// Compose returns the transform which is equivalent to applying inner first
// and then outer.
func Compose(outer, inner matrix.Matrix) matrix.Matrix {
	return inner.Mul(outer)
}

// Determinant returns xScale*yScale - xyScale*yxScale.
func Determinant(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// DeterminantSign reports whether m preserves orientation (Positive),
// mirrors the coordinate system (Negative), or is singular (Zero).
// Mirroring transforms reverse the winding direction of contours.
func DeterminantSign(m matrix.Matrix) Sign {
	det := Determinant(m)
	switch {
	case det < 0:
		return Negative
	case det > 0:
		return Positive
	default:
		return Zero
	}
}

// Apply maps the point v through m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}
