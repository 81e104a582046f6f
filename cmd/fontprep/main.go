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

// Command fontprep decomposes composite glyphs and removes overlaps in a
// set of font masters.
//
// Usage:
//
//	fontprep [flags] master.json|font.ttf ...
//
// All masters given on the command line are processed together, so that
// a glyph decomposed in one master is decomposed in all of them. The
// processed masters are written as JSON files to the output directory.
//
// TrueType and OpenType files are imported with their composite glyphs
// already flattened and without glyph notes, so only JSON masters carry
// components and post-processing directives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/internal/workpool"
	"seehuhn.de/go/fontprep/masterfile"
	"seehuhn.de/go/fontprep/proof"
	"seehuhn.de/go/fontprep/sfntsource"
	"seehuhn.de/go/fontprep/union"
)

func main() {
	var (
		outDir     = flag.String("o", "out", "output directory")
		writePDF   = flag.Bool("pdf", false, "write a PDF proof for every master")
		pngGlyphs  = flag.String("png", "", "comma-separated glyph names to render as PNG")
		pngSize    = flag.Int("png-size", 256, "size of PNG proofs in pixels")
		workers    = flag.Int("workers", 0, "number of parallel workers (0 means GOMAXPROCS)")
		strict     = flag.Bool("strict", false, "fail if overlap removal fails for any glyph")
		verbose    = flag.Bool("v", false, "log debug messages")
		raster     = flag.Bool("raster", false, "remove overlaps on a grid instead of with path boolean operations")
		resolution = flag.Float64("resolution", union.DefaultResolution, "grid cells per font unit, with -raster")
		tolerance  = flag.Float64("tolerance", union.DefaultTolerance, "simplification tolerance in font units, with -raster")
		maxDepth   = flag.Int("max-depth", fontprep.DefaultMaxDepth, "maximal component nesting depth")
	)
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: %s [flags] master.json|font.ttf ...\n", os.Args[0])
		fmt.Fprintln(out, "Composite glyphs in .ttf/.otf inputs arrive flattened and without notes;")
		fmt.Fprintln(out, "use JSON masters to decompose components or apply !post: directives.")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fontprep.SetLogger(logger)

	pool := workpool.New(*workers)
	defer pool.Close()

	masters, err := loadAll(pool, flag.Args())
	if err != nil {
		logger.Error("cannot load masters", "error", err)
		os.Exit(1)
	}

	var remover fontprep.OverlapRemover = union.NewVector()
	if *raster {
		remover = &union.Remover{
			Resolution: *resolution,
			Tolerance:  *tolerance,
			MaxCells:   union.DefaultMaxCells,
		}
	}
	report, err := fontprep.Run(masters,
		fontprep.WithOverlapRemover(remover),
		fontprep.WithMaxDepth(*maxDepth))
	if err != nil {
		logger.Error("processing failed", "error", err)
		os.Exit(1)
	}
	logger.Info("processed masters",
		"masters", len(masters),
		"decomposed", len(report.WorkSets.Decompose),
		"overlaps", len(report.WorkSets.Overlap),
		"warnings", len(report.Diagnostics.Warnings),
		"errors", len(report.Diagnostics.Errors))

	var pngNames []string
	if *pngGlyphs != "" {
		pngNames = strings.Split(*pngGlyphs, ",")
	}
	out := &writer{
		dir:      *outDir,
		pdf:      *writePDF,
		pngNames: pngNames,
		pngSize:  *pngSize,
	}
	if err := out.writeAll(pool, masters); err != nil {
		logger.Error("cannot write output", "error", err)
		os.Exit(1)
	}

	if *strict && len(report.Diagnostics.Errors) > 0 {
		logger.Error("overlap removal failed", "error", report.Diagnostics.Err())
		os.Exit(2)
	}
}

// loadAll reads the input files in parallel. The masters are returned in
// command line order.
func loadAll(pool *workpool.Pool, fnames []string) ([]*fontprep.Master, error) {
	masters := make([]*fontprep.Master, len(fnames))
	jobs := make([]func() error, len(fnames))
	for i, fname := range fnames {
		jobs[i] = func() error {
			m, err := load(fname)
			masters[i] = m
			return err
		}
	}
	if err := pool.Run(jobs); err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	outputs := make(map[string]string)
	for i, m := range masters {
		if prev, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%s and %s both contain master %q", prev, fnames[i], m.Name)
		}
		seen[m.Name] = fnames[i]

		// distinct master names can map to the same file
		out := fileName(m.Name)
		if prev, dup := outputs[out]; dup {
			return nil, fmt.Errorf("masters %q and %q would both be written to %s.json", prev, m.Name, out)
		}
		outputs[out] = m.Name
	}
	return masters, nil
}

func load(fname string) (*fontprep.Master, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".ttf", ".otf":
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
		m, err := sfntsource.Load(data, &sfntsource.Options{Name: name})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return m, nil
	default:
		return masterfile.ReadFile(fname)
	}
}

type writer struct {
	dir      string
	pdf      bool
	pngNames []string
	pngSize  int
}

// writeAll writes the output files of all masters in parallel.
func (w *writer) writeAll(pool *workpool.Pool, masters []*fontprep.Master) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	jobs := make([]func() error, len(masters))
	for i, m := range masters {
		jobs[i] = func() error { return w.write(m) }
	}
	return pool.Run(jobs)
}

func (w *writer) write(m *fontprep.Master) error {
	base := filepath.Join(w.dir, fileName(m.Name))
	if err := masterfile.WriteFile(base+".json", m); err != nil {
		return err
	}
	if w.pdf {
		if err := proof.WritePDF(base+".pdf", m, nil); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
	}

	var errs []error
	for _, name := range w.pngNames {
		g, ok := m.Glyph(name)
		if !ok {
			errs = append(errs, fmt.Errorf("master %q: %w: %q", m.Name, fontprep.ErrMissingGlyph, name))
			continue
		}
		if err := writePNG(base+"_"+fileName(name)+".png", g, w.pngSize); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func writePNG(fname string, g *fontprep.Glyph, size int) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return proof.WritePNG(fd, g, size, nil)
}

// fileName turns a master or glyph name into a file name component.
func fileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, s)
}
