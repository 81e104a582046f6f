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

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fontprep/outline"
)

// Component places another glyph of the same master into a glyph.
type Component struct {
	// Base is the name of the referenced glyph.
	Base string

	// Transform maps the coordinates of the base glyph into the
	// coordinates of the referencing glyph.
	Transform matrix.Matrix
}

// Glyph is a named outline within a [Master].
type Glyph struct {
	Name string

	// Contours holds the literal outline. Each path.Data holds one
	// subpath.
	Contours []*path.Data

	// Components lists references to other glyphs, in drawing order.
	Components []Component

	// Notes holds free text attached to the glyph by the font designer.
	// Post-processing directives are read from here.
	Notes []string
}

// Note returns all notes of the glyph, separated by newlines.
func (g *Glyph) Note() string {
	return strings.Join(g.Notes, "\n")
}

// IsComposite reports whether the glyph has component references.
func (g *Glyph) IsComposite() bool {
	return len(g.Components) > 0
}

// Clone returns a deep copy of g.
func (g *Glyph) Clone() *Glyph {
	res := &Glyph{
		Name:       g.Name,
		Components: slices.Clone(g.Components),
		Notes:      slices.Clone(g.Notes),
	}
	if g.Contours != nil {
		res.Contours = make([]*path.Data, len(g.Contours))
		for i, c := range g.Contours {
			res.Contours[i] = outline.Clone(c)
		}
	}
	return res
}

// Master is one point in the design space of a font: a collection of glyphs
// sharing one coordinate system.
//
// Glyphs are kept in insertion order and can be looked up by name.
// Components refer to other glyphs of the same master by name only, so a
// base glyph can be shared by any number of composites.
type Master struct {
	Name        string
	Weight      float64
	ItalicAngle float64

	// Italic selects the stricter rule for single-component glyphs, see
	// [IsNonTrivial].
	Italic bool

	glyphs []*Glyph
	index  map[string]int
}

// NewMaster returns an empty master with the given name.
func NewMaster(name string) *Master {
	return &Master{
		Name:  name,
		index: make(map[string]int),
	}
}

// Add appends a glyph to the master. Glyph names must be unique within a
// master.
func (m *Master) Add(g *Glyph) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, dup := m.index[g.Name]; dup {
		return fmt.Errorf("master %q: duplicate glyph %q", m.Name, g.Name)
	}
	m.index[g.Name] = len(m.glyphs)
	m.glyphs = append(m.glyphs, g)
	return nil
}

// Glyph returns the glyph with the given name.
func (m *Master) Glyph(name string) (*Glyph, bool) {
	idx, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.glyphs[idx], true
}

// Glyphs returns the glyphs of the master in insertion order.
// The returned slice must not be modified.
func (m *Master) Glyphs() []*Glyph {
	return m.glyphs
}

// Len returns the number of glyphs in the master.
func (m *Master) Len() int {
	return len(m.glyphs)
}

// Clone returns a deep copy of m.
func (m *Master) Clone() *Master {
	res := NewMaster(m.Name)
	res.Weight = m.Weight
	res.ItalicAngle = m.ItalicAngle
	res.Italic = m.Italic
	for _, g := range m.glyphs {
		res.index[g.Name] = len(res.glyphs)
		res.glyphs = append(res.glyphs, g.Clone())
	}
	return res
}

// IsItalicAngle reports whether a master with the given slant angle (in
// degrees) should be treated as italic.
func IsItalicAngle(angle float64) bool {
	return angle != 0 && !math.IsNaN(angle) && !math.IsInf(angle, 0)
}
