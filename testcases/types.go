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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep"
)

// Case is a set of font masters exercising one aspect of glyph
// preparation.
type Case struct {
	Name string // lowercase a-z and _ only

	// Masters returns a fresh copy of the masters on every call, since
	// processing modifies them in place.
	Masters func() []*fontprep.Master

	// Err is the error processing is expected to fail with, or nil.
	Err error
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// offset returns a transform which only moves the outline.
func offset(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

// glyph returns a simple glyph with the given contours.
func glyph(name string, contours ...*path.Data) *fontprep.Glyph {
	return &fontprep.Glyph{Name: name, Contours: contours}
}

// composite returns a glyph built from components.
func composite(name string, comps ...fontprep.Component) *fontprep.Glyph {
	return &fontprep.Glyph{Name: name, Components: comps}
}

// ref returns a component reference.
func ref(base string, m matrix.Matrix) fontprep.Component {
	return fontprep.Component{Base: base, Transform: m}
}

// withNotes attaches notes to g and returns g.
func withNotes(g *fontprep.Glyph, notes ...string) *fontprep.Glyph {
	g.Notes = append(g.Notes, notes...)
	return g
}

// master collects glyphs into a master. Fixture glyph names are unique, so
// Add cannot fail.
func master(name string, italicAngle float64, glyphs ...*fontprep.Glyph) *fontprep.Master {
	m := fontprep.NewMaster(name)
	m.ItalicAngle = italicAngle
	m.Italic = fontprep.IsItalicAngle(italicAngle)
	for _, g := range glyphs {
		if err := m.Add(g); err != nil {
			panic(err)
		}
	}
	return m
}
