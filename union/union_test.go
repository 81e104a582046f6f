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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep/outline"
)

func TestOverlappingSquares(t *testing.T) {
	in := []*path.Data{
		square(0, 0, 10, 10),
		square(5, 5, 15, 15),
	}
	out, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}
	if a := outline.SignedArea(out[0]); math.Abs(a-175) > 1e-9 {
		t.Errorf("area = %g, want 175", a)
	}
	if n := len(out[0].Coords); n != 8 {
		t.Errorf("got %d corners, want 8", n)
	}
}

func TestHoleIsKept(t *testing.T) {
	hole := outline.Reverse(square(10, 10, 20, 20))
	in := []*path.Data{square(0, 0, 30, 30), hole}

	out, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d contours, want 2", len(out))
	}

	var areas []float64
	for _, c := range out {
		areas = append(areas, outline.SignedArea(c))
	}
	slices.Sort(areas)
	if math.Abs(areas[0]+100) > 1e-9 || math.Abs(areas[1]-900) > 1e-9 {
		t.Errorf("areas = %v, want [-100 900]", areas)
	}
}

func TestDisjoint(t *testing.T) {
	in := []*path.Data{
		square(0, 0, 10, 10),
		square(20, 0, 30, 10),
	}
	out, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d contours, want 2", len(out))
	}
	for i, c := range out {
		if a := outline.SignedArea(c); math.Abs(a-100) > 1e-9 {
			t.Errorf("contour %d: area = %g, want 100", i, a)
		}
	}
}

func TestClockwiseInput(t *testing.T) {
	// nonzero fill does not depend on the direction of a lone contour
	in := []*path.Data{outline.Reverse(square(0, 0, 10, 10))}
	out, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}
	if a := outline.SignedArea(out[0]); math.Abs(a-100) > 1e-9 {
		t.Errorf("area = %g, want 100", a)
	}
}

func TestCurvedInput(t *testing.T) {
	in := []*path.Data{
		circle(0, 0, 100, false),
		circle(80, 0, 100, false),
	}
	out, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}

	// area of two overlapping discs of radius 100 at distance 80
	r, d := 100.0, 80.0
	lens := 2*r*r*math.Acos(d/(2*r)) - d/2*math.Sqrt(4*r*r-d*d)
	want := 2*math.Pi*r*r - lens
	got := outline.SignedArea(out[0])
	if math.Abs(got-want)/want > 0.01 {
		t.Errorf("area = %g, want %g", got, want)
	}
	for _, cmd := range out[0].Cmds {
		if cmd == path.CmdCubeTo || cmd == path.CmdQuadTo {
			t.Fatal("unexpected curve in output")
		}
	}
}

func TestInputUnchanged(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)
	aCopy := outline.Clone(a)
	if _, err := New().RemoveOverlaps([]*path.Data{a, b}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Coords, aCopy.Coords) || !slices.Equal(a.Cmds, aCopy.Cmds) {
		t.Error("input contour was modified")
	}
}

func TestEmpty(t *testing.T) {
	out, err := New().RemoveOverlaps(nil)
	if err != nil || out != nil {
		t.Errorf("got %v, %v; want nil, nil", out, err)
	}
	out, err = New().RemoveOverlaps([]*path.Data{{}})
	if err != nil || out != nil {
		t.Errorf("got %v, %v; want nil, nil", out, err)
	}
}

func TestNonFinite(t *testing.T) {
	bad := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: math.NaN(), Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		Close()
	_, err := New().RemoveOverlaps([]*path.Data{bad})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
}

func TestTooLarge(t *testing.T) {
	u := &Remover{Resolution: 1, MaxCells: 100}
	_, err := u.RemoveOverlaps([]*path.Data{square(0, 0, 50, 50)})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
}

func TestZeroValueRemover(t *testing.T) {
	var u Remover
	out, err := u.RemoveOverlaps([]*path.Data{square(0, 0, 10, 10)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || math.Abs(outline.SignedArea(out[0])-100) > 1e-9 {
		t.Errorf("unexpected result %v", out)
	}
}

func TestSimplifyLoop(t *testing.T) {
	// a square with extra points along its sides
	var pts []vec.Vec2
	for i := range 10 {
		pts = append(pts, vec.Vec2{X: float64(i), Y: 0})
	}
	for i := range 10 {
		pts = append(pts, vec.Vec2{X: 10, Y: float64(i)})
	}
	for i := range 10 {
		pts = append(pts, vec.Vec2{X: float64(10 - i), Y: 10})
	}
	for i := range 10 {
		pts = append(pts, vec.Vec2{X: 0, Y: float64(10 - i)})
	}
	got := simplifyLoop(pts, 0.5)
	if len(got) != 4 {
		t.Errorf("got %d corners, want 4: %v", len(got), got)
	}
	if a := polygonArea(got); a != 100 {
		t.Errorf("area = %g, want 100", a)
	}
}
