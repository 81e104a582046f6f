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

// Package masterfile reads and writes font masters as JSON.
//
// A file holds one master:
//
//	{
//	  "name": "Bold", "weight": 700, "italicAngle": -12, "italic": true,
//	  "glyphs": [{
//	    "name": "Aacute",
//	    "notes": ["!post:removeoverlap"],
//	    "contours": [[
//	      {"cmd": "moveto", "pts": [[0, 0]]},
//	      {"cmd": "lineto", "pts": [[100, 0]]},
//	      {"cmd": "closepath"}
//	    ]],
//	    "components": [{"base": "A", "transform": [1, 0, 0, 1, 0, 0]}]
//	  }]
//	}
//
// The commands are moveto, lineto, quadto, curveto and closepath.
// If "italic" is absent, it is derived from the italic angle.
package masterfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/outline"
)

type fileMaster struct {
	Name        string      `json:"name"`
	Weight      float64     `json:"weight,omitempty"`
	ItalicAngle float64     `json:"italicAngle,omitempty"`
	Italic      *bool       `json:"italic,omitempty"`
	Glyphs      []fileGlyph `json:"glyphs"`
}

type fileGlyph struct {
	Name       string          `json:"name"`
	Notes      []string        `json:"notes,omitempty"`
	Contours   [][]fileSegment `json:"contours,omitempty"`
	Components []fileComponent `json:"components,omitempty"`
}

type fileSegment struct {
	Cmd string       `json:"cmd"`
	Pts [][2]float64 `json:"pts,omitempty"`
}

type fileComponent struct {
	Base      string    `json:"base"`
	Transform []float64 `json:"transform"`
}

var cmdNames = map[path.Command]string{
	path.CmdMoveTo: "moveto",
	path.CmdLineTo: "lineto",
	path.CmdQuadTo: "quadto",
	path.CmdCubeTo: "curveto",
	path.CmdClose:  "closepath",
}

var cmdByName = map[string]path.Command{
	"moveto":    path.CmdMoveTo,
	"lineto":    path.CmdLineTo,
	"quadto":    path.CmdQuadTo,
	"curveto":   path.CmdCubeTo,
	"closepath": path.CmdClose,
}

// Read decodes a master from r.
func Read(r io.Reader) (*fontprep.Master, error) {
	var fm fileMaster
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fm); err != nil {
		return nil, fmt.Errorf("masterfile: %w", err)
	}

	m := fontprep.NewMaster(fm.Name)
	m.Weight = fm.Weight
	m.ItalicAngle = fm.ItalicAngle
	if fm.Italic != nil {
		m.Italic = *fm.Italic
	} else {
		m.Italic = fontprep.IsItalicAngle(fm.ItalicAngle)
	}

	for _, fg := range fm.Glyphs {
		g, err := decodeGlyph(fg)
		if err != nil {
			return nil, fmt.Errorf("masterfile: glyph %q: %w", fg.Name, err)
		}
		if err := m.Add(g); err != nil {
			return nil, fmt.Errorf("masterfile: %w", err)
		}
	}
	return m, nil
}

// ReadFile reads a master from the named file.
func ReadFile(fname string) (*fontprep.Master, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	m, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return m, nil
}

func decodeGlyph(fg fileGlyph) (*fontprep.Glyph, error) {
	if fg.Name == "" {
		return nil, errors.New("missing glyph name")
	}
	g := &fontprep.Glyph{
		Name:  fg.Name,
		Notes: fg.Notes,
	}
	for i, fc := range fg.Contours {
		c, err := decodeContour(fc)
		if err != nil {
			return nil, fmt.Errorf("contour %d: %w", i, err)
		}
		// a contour with several subpaths becomes several contours
		g.Contours = append(g.Contours, outline.Split(c)...)
	}
	for i, fc := range fg.Components {
		if fc.Base == "" {
			return nil, fmt.Errorf("component %d: missing base name", i)
		}
		if len(fc.Transform) != 6 {
			return nil, fmt.Errorf("component %d: transform has %d numbers, want 6",
				i, len(fc.Transform))
		}
		var t matrix.Matrix
		copy(t[:], fc.Transform)
		g.Components = append(g.Components, fontprep.Component{Base: fc.Base, Transform: t})
	}
	return g, nil
}

func decodeContour(segs []fileSegment) (*path.Data, error) {
	c := &path.Data{}
	for i, s := range segs {
		cmd, ok := cmdByName[s.Cmd]
		if !ok {
			return nil, fmt.Errorf("unknown command %q", s.Cmd)
		}
		if i == 0 && cmd != path.CmdMoveTo {
			return nil, fmt.Errorf("contour starts with %q", s.Cmd)
		}
		if want := outline.CoordCount(cmd); len(s.Pts) != want {
			return nil, fmt.Errorf("%s: got %d points, want %d", s.Cmd, len(s.Pts), want)
		}
		c.Cmds = append(c.Cmds, cmd)
		for _, p := range s.Pts {
			c.Coords = append(c.Coords, vec.Vec2{X: p[0], Y: p[1]})
		}
	}
	return c, nil
}

// Write encodes m as indented JSON.
func Write(w io.Writer, m *fontprep.Master) error {
	italic := m.Italic
	fm := fileMaster{
		Name:        m.Name,
		Weight:      m.Weight,
		ItalicAngle: m.ItalicAngle,
		Italic:      &italic,
		Glyphs:      make([]fileGlyph, 0, m.Len()),
	}
	for _, g := range m.Glyphs() {
		fg := fileGlyph{
			Name:  g.Name,
			Notes: g.Notes,
		}
		for _, c := range g.Contours {
			fg.Contours = append(fg.Contours, encodeContour(c))
		}
		for _, comp := range g.Components {
			fg.Components = append(fg.Components, fileComponent{
				Base:      comp.Base,
				Transform: comp.Transform[:],
			})
		}
		fm.Glyphs = append(fm.Glyphs, fg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&fm)
}

// WriteFile writes m to the named file, replacing any existing file.
func WriteFile(fname string, m *fontprep.Master) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(fd, m)
}

func encodeContour(c *path.Data) []fileSegment {
	segs := make([]fileSegment, 0, len(c.Cmds))
	k := 0
	for _, cmd := range c.Cmds {
		n := outline.CoordCount(cmd)
		s := fileSegment{Cmd: cmdNames[cmd]}
		for _, p := range c.Coords[k : k+n] {
			s.Pts = append(s.Pts, [2]float64{p.X, p.Y})
		}
		k += n
		segs = append(segs, s)
	}
	return segs
}
