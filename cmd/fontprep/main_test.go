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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/internal/workpool"
	"seehuhn.de/go/fontprep/masterfile"
	"seehuhn.de/go/fontprep/testcases"
)

func TestLoadAndWrite(t *testing.T) {
	dir := t.TempDir()

	var fnames []string
	for _, m := range testcases.All["italic"][0].Masters() {
		fname := filepath.Join(dir, m.Name+".json")
		if err := masterfile.WriteFile(fname, m); err != nil {
			t.Fatal(err)
		}
		fnames = append(fnames, fname)
	}
	ttf := filepath.Join(dir, "GoRegular.ttf")
	if err := os.WriteFile(ttf, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	fnames = append(fnames, ttf)

	pool := workpool.New(2)
	defer pool.Close()

	masters, err := loadAll(pool, fnames)
	if err != nil {
		t.Fatal(err)
	}
	if len(masters) != 3 || masters[2].Name != "GoRegular" {
		t.Fatalf("unexpected masters %v", masters)
	}

	if _, err := fontprep.Run(masters[:2]); err != nil {
		t.Fatal(err)
	}

	out := &writer{
		dir:      filepath.Join(dir, "out"),
		pngNames: []string{"quoteright"},
		pngSize:  32,
	}
	if err := out.writeAll(pool, masters[:2]); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Regular.json", "Italic.json", "Italic_quoteright.png"} {
		if _, err := os.Stat(filepath.Join(out.dir, name)); err != nil {
			t.Error(err)
		}
	}

	again, err := masterfile.ReadFile(filepath.Join(out.dir, "Regular.json"))
	if err != nil {
		t.Fatal(err)
	}
	g, _ := again.Glyph("quoteright")
	if g.IsComposite() {
		t.Error("quoteright was not decomposed in the upright master")
	}
}

func TestDuplicateMasters(t *testing.T) {
	dir := t.TempDir()
	m := testcases.All["basic"][0].Masters()[0]
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	for _, fname := range []string{a, b} {
		if err := masterfile.WriteFile(fname, m); err != nil {
			t.Fatal(err)
		}
	}

	pool := workpool.New(1)
	defer pool.Close()
	if _, err := loadAll(pool, []string{a, b}); err == nil {
		t.Error("duplicate master names not detected")
	}
}

func TestCollidingOutputNames(t *testing.T) {
	dir := t.TempDir()
	var fnames []string
	for i, name := range []string{"Bold Italic", "Bold_Italic"} {
		m := testcases.All["basic"][0].Masters()[0]
		m.Name = name
		fname := filepath.Join(dir, fmt.Sprintf("m%d.json", i))
		if err := masterfile.WriteFile(fname, m); err != nil {
			t.Fatal(err)
		}
		fnames = append(fnames, fname)
	}

	pool := workpool.New(1)
	defer pool.Close()
	_, err := loadAll(pool, fnames)
	if err == nil || !strings.Contains(err.Error(), "Bold_Italic.json") {
		t.Errorf("colliding output names not detected: %v", err)
	}
}

func TestMissingPNGGlyph(t *testing.T) {
	m := testcases.All["basic"][0].Masters()[0]
	w := &writer{dir: t.TempDir(), pngNames: []string{"nosuchglyph"}, pngSize: 16}
	if err := w.write(m); err == nil {
		t.Error("missing glyph not reported")
	}
}

func TestFileName(t *testing.T) {
	if got := fileName("Bold Italic/Alt"); got != "Bold_Italic_Alt" {
		t.Errorf("got %q", got)
	}
}
