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

package outline

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// CoordCount returns the number of coordinates consumed by cmd.
func CoordCount(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Clone returns a deep copy of c.
func Clone(c *path.Data) *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(c.Cmds),
		Coords: slices.Clone(c.Coords),
	}
}

// Transform returns a new path where every on-curve and off-curve point of
// c has been mapped through m. The commands are unchanged.
func Transform(c *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   slices.Clone(c.Cmds),
		Coords: make([]vec.Vec2, len(c.Coords)),
	}
	for i, p := range c.Coords {
		res.Coords[i] = Apply(m, p)
	}
	return res
}

// Reverse returns a copy of c where the point order of every subpath is
// reversed. Each subpath starts at its former end point, visits the former
// control points in reverse order, and stays closed if it was closed.
// Reversing a contour flips its winding direction.
func Reverse(c *path.Data) *path.Data {
	res := &path.Data{
		Cmds:   make([]path.Command, 0, len(c.Cmds)),
		Coords: make([]vec.Vec2, 0, len(c.Coords)),
	}

	coordIdx := 0
	for i := 0; i < len(c.Cmds); {
		if c.Cmds[i] != path.CmdMoveTo {
			// stray drawing command without a start point
			coordIdx += CoordCount(c.Cmds[i])
			i++
			continue
		}

		// find the extent of this subpath
		startCmd, startCoord := i, coordIdx
		coordIdx++
		i++
		closed := false
		for i < len(c.Cmds) && c.Cmds[i] != path.CmdMoveTo {
			if c.Cmds[i] == path.CmdClose {
				closed = true
				i++
				break
			}
			coordIdx += CoordCount(c.Cmds[i])
			i++
		}

		// Reversing the coordinate list and the order of the drawing
		// commands regroups the control points of every segment correctly.
		res.Cmds = append(res.Cmds, path.CmdMoveTo)
		for j := i - 1; j > startCmd; j-- {
			if c.Cmds[j] != path.CmdClose {
				res.Cmds = append(res.Cmds, c.Cmds[j])
			}
		}
		if closed {
			res.Cmds = append(res.Cmds, path.CmdClose)
		}
		for j := coordIdx - 1; j >= startCoord; j-- {
			res.Coords = append(res.Coords, c.Coords[j])
		}
	}
	return res
}

// SignedArea returns the area enclosed by the control polygon of c, summed
// over all subpaths. The result is positive for counter-clockwise contours
// in a coordinate system where y points up.
func SignedArea(c *path.Data) float64 {
	var area float64
	var start, prev vec.Vec2
	open := false
	coordIdx := 0
	for _, cmd := range c.Cmds {
		n := CoordCount(cmd)
		switch cmd {
		case path.CmdMoveTo:
			if open {
				area += cross(prev, start)
			}
			start = c.Coords[coordIdx]
			prev = start
			open = true
		case path.CmdClose:
			if open {
				area += cross(prev, start)
				prev = start
				open = false
			}
		default:
			for _, p := range c.Coords[coordIdx : coordIdx+n] {
				area += cross(prev, p)
				prev = p
			}
		}
		coordIdx += n
	}
	if open {
		area += cross(prev, start)
	}
	return area / 2
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Split returns one path per subpath of p. Drawing commands which appear
// before the first MoveTo are dropped.
func Split(p *path.Data) []*path.Data {
	var res []*path.Data
	var cur *path.Data
	coordIdx := 0
	for _, cmd := range p.Cmds {
		n := CoordCount(cmd)
		if cmd == path.CmdMoveTo {
			cur = &path.Data{}
			res = append(res, cur)
		}
		if cur != nil {
			cur.Cmds = append(cur.Cmds, cmd)
			cur.Coords = append(cur.Coords, p.Coords[coordIdx:coordIdx+n]...)
		}
		coordIdx += n
	}
	return res
}

// Join concatenates the given contours into a single path.
func Join(contours []*path.Data) *path.Data {
	res := &path.Data{}
	for _, c := range contours {
		res.Cmds = append(res.Cmds, c.Cmds...)
		res.Coords = append(res.Coords, c.Coords...)
	}
	return res
}
