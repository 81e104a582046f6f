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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func square(x, y, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + size, Y: y}).
		LineTo(vec.Vec2{X: x + size, Y: y + size}).
		LineTo(vec.Vec2{X: x, Y: y + size}).
		Close()
}

func TestMasterAdd(t *testing.T) {
	m := NewMaster("Regular")
	for _, name := range []string{"b", "a", "c"} {
		if err := m.Add(&Glyph{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Add(&Glyph{Name: "a"}); err == nil {
		t.Error("duplicate glyph accepted")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	var names []string
	for _, g := range m.Glyphs() {
		names = append(names, g.Name)
	}
	if got := strings.Join(names, ","); got != "b,a,c" {
		t.Errorf("insertion order lost: %s", got)
	}

	if _, ok := m.Glyph("x"); ok {
		t.Error("found nonexistent glyph")
	}
}

func TestZeroMaster(t *testing.T) {
	var m Master
	if err := m.Add(&Glyph{Name: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Glyph("a"); !ok {
		t.Error("glyph not found")
	}
}

func TestMasterClone(t *testing.T) {
	m := NewMaster("Bold")
	m.Weight = 700
	g := &Glyph{
		Name:       "a",
		Contours:   []*path.Data{square(0, 0, 10)},
		Components: []Component{{Base: "b", Transform: matrix.Identity}},
		Notes:      []string{"note"},
	}
	if err := m.Add(g); err != nil {
		t.Fatal(err)
	}

	c := m.Clone()
	cg, ok := c.Glyph("a")
	if !ok || cg == g {
		t.Fatal("glyph not cloned")
	}
	if c.Weight != 700 || c.Name != "Bold" {
		t.Errorf("metadata not copied: %+v", c)
	}

	cg.Contours[0].Coords[0] = vec.Vec2{X: 99, Y: 99}
	cg.Components[0].Base = "z"
	cg.Notes[0] = "changed"
	if g.Contours[0].Coords[0] != (vec.Vec2{}) {
		t.Error("contour shared with clone")
	}
	if g.Components[0].Base != "b" {
		t.Error("components shared with clone")
	}
	if g.Notes[0] != "note" {
		t.Error("notes shared with clone")
	}

	if err := c.Add(&Glyph{Name: "new"}); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 1 {
		t.Error("clone shares the glyph list")
	}
}

func TestNote(t *testing.T) {
	g := &Glyph{Notes: []string{"one", "!post:removeoverlap"}}
	if got := g.Note(); got != "one\n!post:removeoverlap" {
		t.Errorf("Note() = %q", got)
	}
	if g.IsComposite() {
		t.Error("glyph without components is composite")
	}
}

func TestDiagnostics(t *testing.T) {
	d := &Diagnostics{}
	if !d.Empty() || d.Err() != nil {
		t.Fatal("new diagnostics not empty")
	}

	cause := errors.New("boom")
	d.warnDirective("Regular", "a", "foo")
	d.overlapFailed(&OverlapError{Master: "Bold", Glyph: "b", Err: cause})

	if d.Empty() {
		t.Error("diagnostics empty")
	}
	if !errors.Is(d.Err(), cause) {
		t.Errorf("Err() = %v", d.Err())
	}
	var oe *OverlapError
	if !errors.As(d.Err(), &oe) || oe.Glyph != "b" {
		t.Errorf("Err() does not wrap *OverlapError: %v", d.Err())
	}

	msgs := d.Messages()
	if len(msgs) != 2 ||
		!strings.HasPrefix(msgs[0], "warning: ") || !strings.Contains(msgs[0], `"foo"`) ||
		!strings.HasPrefix(msgs[1], "error: ") || !strings.Contains(msgs[1], "boom") {
		t.Errorf("unexpected messages %q", msgs)
	}
}

func TestComponentErrorMessage(t *testing.T) {
	err := &ComponentError{
		Master: "Regular",
		Glyph:  "a",
		Chain:  []string{"a", "b", "a"},
		Err:    ErrCycle,
	}
	want := `master "Regular": glyph "a": cyclic component reference (a -> b -> a)`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(err, ErrCycle) {
		t.Error("ErrCycle not wrapped")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	d := &Diagnostics{}
	d.warnDirective("Regular", "a", "foo")
	if !strings.Contains(buf.String(), "unknown directive") {
		t.Errorf("warning not logged: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is not silent")
	}
}
