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

// Package sfntsource builds font masters from TrueType and OpenType files.
//
// Outlines are read in font units with the y axis pointing up. SFNT
// composite glyphs are returned already flattened by the parser, so the
// resulting glyphs have contours only.
package sfntsource

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep"
)

// Options control how a font file is turned into a master.
type Options struct {
	// Name is the master name. If empty, the full font name from the
	// "name" table is used.
	Name string

	Weight float64

	// ItalicAngle is the slant in degrees. A nonzero value marks the
	// master as italic.
	ItalicAngle float64
}

// Load parses a TrueType or OpenType font and returns a master holding one
// glyph per glyph index. A nil opt is the same as the zero Options.
func Load(data []byte, opt *Options) (*fontprep.Master, error) {
	if opt == nil {
		opt = &Options{}
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sfntsource: %w", err)
	}

	var buf sfnt.Buffer
	name := opt.Name
	if name == "" {
		name, err = f.Name(&buf, sfnt.NameIDFull)
		if err != nil {
			name = "Regular"
		}
	}

	m := fontprep.NewMaster(name)
	m.Weight = opt.Weight
	m.ItalicAngle = opt.ItalicAngle
	m.Italic = fontprep.IsItalicAngle(opt.ItalicAngle)

	names := glyphNames(f, &buf)
	ppem := fixed.Int26_6(f.UnitsPerEm()) << 6
	for gid, gname := range names {
		g := &fontprep.Glyph{Name: gname}
		segs, err := f.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
		switch {
		case errors.Is(err, sfnt.ErrColoredGlyph):
			fontprep.Logger().Debug("colored glyph without outline",
				"master", name, "glyph", gname)
		case err != nil:
			return nil, fmt.Errorf("sfntsource: glyph %d (%s): %w", gid, gname, err)
		default:
			g.Contours = convertSegments(segs)
		}
		if err := m.Add(g); err != nil {
			return nil, fmt.Errorf("sfntsource: %w", err)
		}
	}

	fontprep.Logger().Debug("font loaded", "master", name, "glyphs", m.Len())
	return m, nil
}

// GlyphName returns the name which [Load] assigns to the glyph mapped to r.
func GlyphName(data []byte, r rune) (string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("sfntsource: %w", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return "", fmt.Errorf("sfntsource: %w", err)
	}
	if gid == 0 {
		return "", fmt.Errorf("sfntsource: no glyph for %q", r)
	}
	return glyphNames(f, &buf)[gid], nil
}

// glyphNames returns a unique name for every glyph index. Glyphs without a
// usable name in the "post" table are called gidNNNNN.
func glyphNames(f *sfnt.Font, buf *sfnt.Buffer) []string {
	n := f.NumGlyphs()
	names := make([]string, n)
	seen := make(map[string]bool, n)
	for gid := range n {
		name, err := f.GlyphName(buf, sfnt.GlyphIndex(gid))
		if err != nil || name == "" || seen[name] {
			name = fmt.Sprintf("gid%05d", gid)
		}
		for seen[name] {
			name += "_"
		}
		seen[name] = true
		names[gid] = name
	}
	return names
}

// convertSegments turns the parser output into closed contours. The parser
// uses a y-down coordinate system, which is flipped here.
func convertSegments(segs sfnt.Segments) []*path.Data {
	var res []*path.Data
	var cur *path.Data
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if cur != nil {
				res = append(res, cur.Close())
			}
			cur = (&path.Data{}).MoveTo(toVec(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			cur.LineTo(toVec(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cur.QuadTo(toVec(s.Args[0]), toVec(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			cur.CubeTo(toVec(s.Args[0]), toVec(s.Args[1]), toVec(s.Args[2]))
		}
	}
	if cur != nil {
		res = append(res, cur.Close())
	}
	return res
}

func toVec(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{
		X: float64(p.X) / 64,
		Y: -float64(p.Y) / 64,
	}
}
