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

package union

import (
	"seehuhn.de/go/geom/vec"
)

// simplifyLoop reduces the number of corners of a closed polygon with the
// Douglas-Peucker algorithm. No removed corner is further than tol from
// the result.
func simplifyLoop(pts []vec.Vec2, tol float64) []vec.Vec2 {
	n := len(pts)
	if n <= 3 || tol <= 0 {
		return pts
	}

	// split the loop at the corner furthest from the first one
	far, farDist := 0, -1.0
	for i, p := range pts {
		if d := p.Sub(pts[0]).Length(); d > farDist {
			far, farDist = i, d
		}
	}
	if far == 0 {
		return pts[:1]
	}

	first := simplifyPolyline(pts[:far+1], tol)
	second := make([]vec.Vec2, 0, n-far+1)
	second = append(second, pts[far:]...)
	second = append(second, pts[0])
	second = simplifyPolyline(second, tol)

	res := make([]vec.Vec2, 0, len(first)+len(second)-2)
	res = append(res, first...)
	res = append(res, second[1:len(second)-1]...)
	return res
}

// simplifyPolyline applies the Douglas-Peucker algorithm to an open
// polyline. The end points are always kept.
func simplifyPolyline(pts []vec.Vec2, tol float64) []vec.Vec2 {
	n := len(pts)
	if n < 3 {
		return pts
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true
	stack := [][2]int{{0, n - 1}}
	for len(stack) > 0 {
		a, b := stack[len(stack)-1][0], stack[len(stack)-1][1]
		stack = stack[:len(stack)-1]
		if b-a < 2 {
			continue
		}

		idx, dMax := -1, 0.0
		for i := a + 1; i < b; i++ {
			if d := segmentDist(pts[i], pts[a], pts[b]); d > dMax {
				idx, dMax = i, d
			}
		}
		if dMax > tol {
			keep[idx] = true
			stack = append(stack, [2]int{a, idx}, [2]int{idx, b})
		}
	}

	res := make([]vec.Vec2, 0, n)
	for i, p := range pts {
		if keep[i] {
			res = append(res, p)
		}
	}
	return res
}

// segmentDist returns the distance of p from the segment a–b.
func segmentDist(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return ap.Length()
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// polygonArea returns the signed area of a closed polygon.
func polygonArea(pts []vec.Vec2) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - p.Y*q.X
	}
	return sum / 2
}
