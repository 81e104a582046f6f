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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fontprep/outline"
)

// DefaultMaxDepth is the default limit for the nesting depth of components.
const DefaultMaxDepth = 64

// Decompose replaces the components of every selected glyph by literal
// contours. Glyphs without components are left unchanged.
//
// The contours of a decomposed glyph are its own contours, followed by the
// geometry of each component in order. For each component, nested
// components are resolved first and the base glyph's own contours are
// drawn last. Transforms along a chain of references are composed, and
// contours drawn through a mirroring transform are reversed so that their
// fill is preserved.
//
// All references in all masters are checked before any glyph is changed,
// whether or not the glyph is selected. If a component refers to a missing
// glyph, a [*ComponentError] wrapping [ErrMissingGlyph] is returned and no
// master is modified. The same holds if a selected glyph refers back to one
// of its ancestors or nests components more than [DefaultMaxDepth] levels
// deep.
//
// A nil selector selects no glyphs.
func Decompose(masters []*Master, selector func(*Glyph) bool) error {
	return decompose(masters, selector, DefaultMaxDepth)
}

func decompose(masters []*Master, selector func(*Glyph) bool, maxDepth int) error {
	if err := checkReferences(masters); err != nil {
		return err
	}
	if selector == nil {
		return nil
	}

	selected := make([][]*Glyph, len(masters))
	for i, m := range masters {
		c := &graphChecker{
			master:   m,
			maxDepth: maxDepth,
			heights:  make(map[string]int),
			active:   make(map[string]bool),
		}
		for _, g := range m.glyphs {
			if len(g.Components) == 0 || !selector(g) {
				continue
			}
			if err := c.check(g); err != nil {
				return err
			}
			selected[i] = append(selected[i], g)
		}
	}

	for i, m := range masters {
		f := flattener{master: m}

		// Compute everything before changing anything, so that glyphs
		// referenced by other selected glyphs are read in their original
		// form.
		contours := make([][]*path.Data, len(selected[i]))
		for j, g := range selected[i] {
			contours[j] = f.flatten(g)
		}
		for j, g := range selected[i] {
			g.Contours = contours[j]
			g.Components = nil
		}

		if len(selected[i]) > 0 {
			Logger().Debug("decomposed glyphs", "master", m.Name, "count", len(selected[i]))
		}
	}
	return nil
}

// checkReferences verifies that every component in every master refers to a
// glyph of the same master.
func checkReferences(masters []*Master) error {
	for _, m := range masters {
		for _, g := range m.glyphs {
			for _, comp := range g.Components {
				if _, ok := m.Glyph(comp.Base); !ok {
					return &ComponentError{
						Master: m.Name,
						Glyph:  g.Name,
						Chain:  []string{g.Name, comp.Base},
						Err:    ErrMissingGlyph,
					}
				}
			}
		}
	}
	return nil
}

// graphChecker verifies the component graph below a glyph.
type graphChecker struct {
	master   *Master
	maxDepth int

	heights map[string]int  // nesting depth below already verified glyphs
	active  map[string]bool // glyphs on the current walk
}

func (c *graphChecker) check(g *Glyph) error {
	h, err := c.visit(g, []string{g.Name})
	if err != nil {
		return err
	}
	if h > c.maxDepth {
		return &ComponentError{
			Master: c.master.Name,
			Glyph:  g.Name,
			Chain:  []string{g.Name},
			Err:    ErrTooDeep,
		}
	}
	return nil
}

// visit returns the nesting depth of the components below g.
// The chain starts with the glyph being checked and ends with g.
func (c *graphChecker) visit(g *Glyph, chain []string) (int, error) {
	if h, ok := c.heights[g.Name]; ok {
		return h, nil
	}
	if len(chain)-1 > c.maxDepth {
		return 0, c.fail(chain, ErrTooDeep)
	}

	c.active[g.Name] = true
	defer delete(c.active, g.Name)

	h := 0
	for _, comp := range g.Components {
		next := append(chain[:len(chain):len(chain)], comp.Base)
		if c.active[comp.Base] {
			return 0, c.fail(next, ErrCycle)
		}
		base, ok := c.master.Glyph(comp.Base)
		if !ok {
			return 0, c.fail(next, ErrMissingGlyph)
		}
		bh, err := c.visit(base, next)
		if err != nil {
			return 0, err
		}
		h = max(h, bh+1)
	}
	c.heights[g.Name] = h
	return h, nil
}

func (c *graphChecker) fail(chain []string, err error) error {
	return &ComponentError{
		Master: c.master.Name,
		Glyph:  chain[0],
		Chain:  chain,
		Err:    err,
	}
}

// flattener copies component outlines into a glyph. The component graph
// must have been verified by a graphChecker.
type flattener struct {
	master *Master
}

func (f *flattener) flatten(g *Glyph) []*path.Data {
	res := make([]*path.Data, len(g.Contours), len(g.Contours)+len(g.Components))
	copy(res, g.Contours)
	return f.appendComponents(res, g.Components, matrix.Identity)
}

func (f *flattener) appendComponents(dst []*path.Data, comps []Component, acc matrix.Matrix) []*path.Data {
	for _, comp := range comps {
		base, _ := f.master.Glyph(comp.Base)
		t := outline.Compose(acc, comp.Transform)

		dst = f.appendComponents(dst, base.Components, t)

		mirrored := outline.DeterminantSign(t) == outline.Negative
		for _, c := range base.Contours {
			tc := outline.Transform(c, t)
			if mirrored {
				tc = outline.Reverse(tc)
			}
			dst = append(dst, tc)
		}
	}
	return dst
}
