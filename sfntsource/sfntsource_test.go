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

package sfntsource

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fontprep/outline"
)

func TestLoadGoRegular(t *testing.T) {
	m, err := Load(goregular.TTF, &Options{Name: "Go Regular", Weight: 400})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "Go Regular" || m.Weight != 400 || m.Italic {
		t.Errorf("unexpected master fields: %q %g %t", m.Name, m.Weight, m.Italic)
	}
	if m.Len() < 100 {
		t.Errorf("only %d glyphs loaded", m.Len())
	}

	seen := make(map[string]bool)
	for _, g := range m.Glyphs() {
		if seen[g.Name] {
			t.Errorf("duplicate glyph name %q", g.Name)
		}
		seen[g.Name] = true
		if g.IsComposite() {
			t.Errorf("glyph %q has components", g.Name)
		}
		if len(g.Notes) > 0 {
			t.Errorf("glyph %q has notes", g.Name)
		}
		for _, c := range g.Contours {
			if len(c.Cmds) == 0 || c.Cmds[0] != path.CmdMoveTo || c.Cmds[len(c.Cmds)-1] != path.CmdClose {
				t.Fatalf("glyph %q: contour is not a closed subpath", g.Name)
			}
		}
	}
}

func TestLetterO(t *testing.T) {
	m, err := Load(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	name, err := GlyphName(goregular.TTF, 'O')
	if err != nil {
		t.Fatal(err)
	}
	g, ok := m.Glyph(name)
	if !ok {
		t.Fatalf("glyph %q not found", name)
	}
	if len(g.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(g.Contours))
	}

	a0 := outline.SignedArea(g.Contours[0])
	a1 := outline.SignedArea(g.Contours[1])
	if a0*a1 >= 0 {
		t.Errorf("contour areas %g and %g do not have opposite signs", a0, a1)
	}

	// the letter sits on the baseline, not below it
	var maxY float64
	for _, c := range g.Contours {
		for _, p := range c.Coords {
			maxY = max(maxY, p.Y)
		}
	}
	if maxY < 500 {
		t.Errorf("top of O at %g, expected cap height in font units", maxY)
	}
}

func TestItalicOption(t *testing.T) {
	m, err := Load(goregular.TTF, &Options{ItalicAngle: -10})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Italic {
		t.Error("master with italic angle is not italic")
	}
}

func TestGlyphNameMissing(t *testing.T) {
	// plane 16 is reserved for private use
	if _, err := GlyphName(goregular.TTF, '\U0010FFFD'); err == nil {
		t.Error("expected an error")
	}
}

func TestParseError(t *testing.T) {
	if _, err := Load([]byte("not a font"), nil); err == nil {
		t.Error("expected an error")
	}
}
