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

import "seehuhn.de/go/fontprep/union"

// Option configures a [Pipeline].
//
// Example:
//
//	p := fontprep.New(
//	    fontprep.WithOverlapRemover(myRemover),
//	    fontprep.WithMaxDepth(16),
//	)
type Option func(*options)

type options struct {
	remover  OverlapRemover
	maxDepth int
}

func defaultOptions() options {
	return options{
		remover:  union.NewVector(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithOverlapRemover sets the boolean union implementation used for glyphs
// carrying the "removeoverlap" directive. The default is [union.Vector].
func WithOverlapRemover(r OverlapRemover) Option {
	return func(o *options) {
		if r != nil {
			o.remover = r
		}
	}
}

// WithMaxDepth limits how deeply components may be nested. Deeper nesting
// aborts the run with [ErrTooDeep]. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
