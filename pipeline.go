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
	"maps"
	"slices"
)

// WorkSets holds the outcome of the scan phase.
type WorkSets struct {
	// Decompose holds the names of the glyphs to decompose. A name applies
	// to the glyph of that name in every master, which keeps the masters
	// compatible for interpolation.
	Decompose map[string]bool

	// Overlap lists the glyphs whose overlaps are removed after
	// decomposition.
	Overlap []OverlapTarget
}

// DecomposeNames returns the decompose set in sorted order.
func (w *WorkSets) DecomposeNames() []string {
	return slices.Sorted(maps.Keys(w.Decompose))
}

// Report describes a completed run.
type Report struct {
	WorkSets    *WorkSets
	Diagnostics *Diagnostics
}

// Pipeline decomposes composite glyphs and removes overlaps where glyph
// notes ask for it. A Pipeline holds configuration only and can be used for
// any number of runs. The masters of a run must not be modified
// concurrently.
type Pipeline struct {
	opts options
}

// New returns a pipeline with the given options applied.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// Scan determines which glyphs need decomposition and which need overlap
// removal. The masters are not modified.
//
// A glyph name enters the decompose set if the glyph is non-trivial in any
// master (see [IsNonTrivial]; italic masters use the stricter rule), or if
// the glyph carries a directive that needs literal contours while it still
// has components.
func (p *Pipeline) Scan(masters []*Master) (*WorkSets, *Diagnostics) {
	ws := &WorkSets{Decompose: make(map[string]bool)}
	diag := &Diagnostics{}

	for _, m := range masters {
		for _, g := range m.glyphs {
			set, unknown := ParseDirectives(g.Note())
			for _, token := range unknown {
				diag.warnDirective(m.Name, g.Name, token)
			}

			if IsNonTrivial(g, m.Italic) {
				ws.Decompose[g.Name] = true
			}
			if set.Has(RemoveOverlap) {
				ws.Overlap = append(ws.Overlap, OverlapTarget{Master: m, Glyph: g})
			}
			if set.NeedsOutline() && g.IsComposite() {
				ws.Decompose[g.Name] = true
			}
		}
	}

	Logger().Debug("scan complete",
		"masters", len(masters),
		"decompose", len(ws.Decompose),
		"overlap", len(ws.Overlap),
		"warnings", len(diag.Warnings))
	return ws, diag
}

// Run processes the masters in place: scan, decompose, then remove
// overlaps.
//
// A broken component graph aborts the run with a [*ComponentError] before
// any master is modified. Overlap removal failures do not abort the run;
// they are returned in the report, together with warnings about unknown
// directives.
func (p *Pipeline) Run(masters []*Master) (*Report, error) {
	ws, diag := p.Scan(masters)

	selector := func(g *Glyph) bool { return ws.Decompose[g.Name] }
	if err := decompose(masters, selector, p.opts.maxDepth); err != nil {
		return nil, err
	}

	if len(ws.Overlap) > 0 {
		ResolveOverlaps(ws.Overlap, p.opts.remover, diag)
		Logger().Debug("overlaps resolved",
			"glyphs", len(ws.Overlap),
			"failed", len(diag.Errors))
	}

	return &Report{WorkSets: ws, Diagnostics: diag}, nil
}

// Run processes the masters with a pipeline using the given options.
// See [Pipeline.Run].
func Run(masters []*Master, opts ...Option) (*Report, error) {
	return New(opts...).Run(masters)
}
