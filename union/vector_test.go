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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep/outline"
)

// filledArea measures the area covered by the contours under the nonzero
// rule, by rasterising them in the box [-200, 200]x[-200, 200].
func filledArea(contours []*path.Data) float64 {
	clip := rect.Rect{URx: 400, URy: 400}
	r := newRasterizer(clip)
	r.reset(clip, matrix.Matrix{1, 0, 0, 1, 200, 200})
	var area float64
	r.Fill(contours, fillNonZero, func(_, _ int, coverage []float32) {
		for _, c := range coverage {
			area += float64(c)
		}
	})
	return area
}

func TestVectorOverlappingSquares(t *testing.T) {
	in := []*path.Data{
		square(0, 0, 10, 10),
		square(5, 5, 15, 15),
	}
	out, err := NewVector().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}
	if a := outline.SignedArea(out[0]); math.Abs(a-175) > 1e-6 {
		t.Errorf("area = %g, want 175", a)
	}
}

func TestVectorDisjoint(t *testing.T) {
	in := []*path.Data{
		square(0, 0, 10, 10),
		outline.Reverse(square(20, 0, 30, 10)),
	}
	out, err := NewVector().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d contours, want 2", len(out))
	}
	for i, c := range out {
		if a := outline.SignedArea(c); math.Abs(a-100) > 1e-6 {
			t.Errorf("contour %d: area = %g, want 100", i, a)
		}
	}
}

// A narrow counter close to the outer edge must survive as a separate
// contour which stays inside the outline.
func TestVectorHairlineHole(t *testing.T) {
	hole := outline.Reverse(square(1, 10, 1.3, 90))
	in := []*path.Data{square(0, 0, 100, 100), hole}

	out, err := NewVector().RemoveOverlaps(in)
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
	if math.Abs(areas[0]+24) > 1e-6 || math.Abs(areas[1]-10000) > 1e-6 {
		t.Errorf("areas = %v, want [-24 10000]", areas)
	}

	for _, c := range out {
		if outline.SignedArea(c) > 0 {
			continue
		}
		for _, p := range c.Coords {
			if p.X <= 0 || p.X >= 100 || p.Y <= 0 || p.Y >= 100 {
				t.Errorf("hole point %v outside the outer contour", p)
			}
		}
	}
}

func TestVectorSelfIntersecting(t *testing.T) {
	// a bow tie: both lobes are filled under the nonzero rule
	bowTie := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		Close()
	out, err := NewVector().RemoveOverlaps([]*path.Data{bowTie})
	if err != nil {
		t.Fatal(err)
	}
	var total float64
	for _, c := range out {
		a := outline.SignedArea(c)
		if a <= 0 {
			t.Errorf("lobe with area %g", a)
		}
		total += a
	}
	if math.Abs(total-50) > 1e-6 {
		t.Errorf("total area = %g, want 50", total)
	}
}

// The exact union and the raster union must cover the same area, up to the
// raster tolerance.
func TestVectorMatchesRaster(t *testing.T) {
	in := []*path.Data{
		circle(0, 0, 100, false),
		circle(80, 0, 100, false),
	}
	exact, err := NewVector().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	approx, err := New().RemoveOverlaps(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(exact) != 1 || len(approx) != 1 {
		t.Fatalf("got %d and %d contours, want 1 each", len(exact), len(approx))
	}

	r, d := 100.0, 80.0
	lens := 2*r*r*math.Acos(d/(2*r)) - d/2*math.Sqrt(4*r*r-d*d)
	want := 2*math.Pi*r*r - lens

	for name, c := range map[string][]*path.Data{"vector": exact, "raster": approx} {
		got := filledArea(c)
		if math.Abs(got-want)/want > 0.01 {
			t.Errorf("%s: area = %g, want %g", name, got, want)
		}
	}
	if a, b := filledArea(exact), filledArea(approx); math.Abs(a-b)/a > 0.01 {
		t.Errorf("vector and raster areas differ: %g vs %g", a, b)
	}
}

func TestVectorInputUnchanged(t *testing.T) {
	a := circle(0, 0, 50, false)
	b := square(0, 0, 80, 80)
	aCopy := outline.Clone(a)
	if _, err := NewVector().RemoveOverlaps([]*path.Data{a, b}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Coords, aCopy.Coords) || !slices.Equal(a.Cmds, aCopy.Cmds) {
		t.Error("input contour was modified")
	}
}

func TestVectorEmptyAndNonFinite(t *testing.T) {
	out, err := NewVector().RemoveOverlaps(nil)
	if err != nil || out != nil {
		t.Errorf("got %v, %v; want nil, nil", out, err)
	}

	bad := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: math.Inf(1), Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		Close()
	if _, err := NewVector().RemoveOverlaps([]*path.Data{bad}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
}
