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
	"errors"
	"fmt"

	"github.com/tdewolff/canvas"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrBoolean is returned if the path boolean operation fails.
var ErrBoolean = errors.New("path boolean operation failed")

// Vector computes the union of glyph contours with path boolean operations
// on the outline itself, using github.com/tdewolff/canvas. Unlike
// [Remover] it works without a grid, so narrow features and glyphs of any
// size are kept.
//
// A Vector has no state and is safe for concurrent use.
type Vector struct{}

// NewVector returns a Vector.
func NewVector() *Vector {
	return &Vector{}
}

// RemoveOverlaps returns contours which fill the same area as the given
// contours under the nonzero winding rule, without overlaps or
// self-intersections. Outer contours of the result run counter-clockwise and
// holes run clockwise. The input is not modified.
func (*Vector) RemoveOverlaps(contours []*path.Data) (out []*path.Data, err error) {
	if _, ok, err := bounds(contours); err != nil || !ok {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrBoolean, r)
		}
	}()

	p := toCanvas(contours)
	settled := p.Settle(canvas.NonZero)
	return fromCanvas(settled.ReplaceArcs()), nil
}

func toCanvas(contours []*path.Data) *canvas.Path {
	p := &canvas.Path{}
	for _, c := range contours {
		k := 0
		for _, cmd := range c.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				p.MoveTo(c.Coords[k].X, c.Coords[k].Y)
				k++
			case path.CmdLineTo:
				p.LineTo(c.Coords[k].X, c.Coords[k].Y)
				k++
			case path.CmdQuadTo:
				cp, end := c.Coords[k], c.Coords[k+1]
				p.QuadTo(cp.X, cp.Y, end.X, end.Y)
				k += 2
			case path.CmdCubeTo:
				cp1, cp2, end := c.Coords[k], c.Coords[k+1], c.Coords[k+2]
				p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
				k += 3
			case path.CmdClose:
				p.Close()
			}
		}
		// filling treats every subpath as closed
		if len(c.Cmds) > 0 && c.Cmds[len(c.Cmds)-1] != path.CmdClose {
			p.Close()
		}
	}
	return p
}

func fromCanvas(p *canvas.Path) []*path.Data {
	var out []*path.Data
	var cur *path.Data
	flush := func() {
		// a start point and at most one segment enclose no area
		if cur != nil && len(cur.Coords) >= 3 {
			out = append(out, cur)
		}
		cur = nil
	}

	for s := p.Scanner(); s.Scan(); {
		end := toVec(s.End())
		switch s.Cmd() {
		case canvas.MoveToCmd:
			flush()
			cur = (&path.Data{}).MoveTo(end)
		case canvas.LineToCmd:
			cur = cur.LineTo(end)
		case canvas.QuadToCmd:
			cur = cur.QuadTo(toVec(s.CP1()), end)
		case canvas.CubeToCmd:
			cur = cur.CubeTo(toVec(s.CP1()), toVec(s.CP2()), end)
		case canvas.CloseCmd:
			cur = cur.Close()
			flush()
		}
	}
	flush()
	return out
}

func toVec(p canvas.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
