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
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Directive is a post-processing instruction attached to a glyph.
//
// Directives are written into glyph notes as "!post:<token>".
type Directive uint8

// The known directives. New directives need a constant here and an entry
// in directiveTable.
const (
	// RemoveOverlap replaces the glyph outline by the boolean union of its
	// contours.
	RemoveOverlap Directive = iota

	numDirectives
)

type directiveInfo struct {
	token string

	// needsOutline is set for directives which operate on literal contours.
	// Glyphs carrying such a directive are decomposed first.
	needsOutline bool
}

var directiveTable = [numDirectives]directiveInfo{
	RemoveOverlap: {token: "removeoverlap", needsOutline: true},
}

func (d Directive) String() string {
	if d < numDirectives {
		return directiveTable[d].token
	}
	return "Directive(" + strconv.Itoa(int(d)) + ")"
}

// NeedsOutline reports whether the directive operates on literal contours
// and thus requires the glyph to be decomposed before it is applied.
func (d Directive) NeedsOutline() bool {
	return d < numDirectives && directiveTable[d].needsOutline
}

// lookupDirective maps a lower-case token to a directive.
func lookupDirective(token string) (Directive, bool) {
	for d := range numDirectives {
		if directiveTable[d].token == token {
			return d, true
		}
	}
	return 0, false
}

// DirectiveSet is a set of directives.
type DirectiveSet uint32

// Has reports whether d is in the set.
func (s DirectiveSet) Has(d Directive) bool {
	return s&(1<<d) != 0
}

// Add returns the set with d added.
func (s DirectiveSet) Add(d Directive) DirectiveSet {
	return s | 1<<d
}

// Len returns the number of directives in the set.
func (s DirectiveSet) Len() int {
	n := 0
	for d := range numDirectives {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// NeedsOutline reports whether any directive in the set operates on literal
// contours.
func (s DirectiveSet) NeedsOutline() bool {
	for d := range numDirectives {
		if s.Has(d) && d.NeedsOutline() {
			return true
		}
	}
	return false
}

func (s DirectiveSet) String() string {
	var parts []string
	for d := range numDirectives {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var directivePattern = regexp.MustCompile(`(?i)!post:(\S+)`)

// ParseDirectives extracts the directives from the note text of a glyph.
// Every occurrence of "!post:<token>" is considered, where the token extends
// up to the next whitespace. Tokens are matched case-insensitively.
//
// Tokens which do not name a known directive are returned in lower case
// as unknown, in the order they appear.
func ParseDirectives(note string) (set DirectiveSet, unknown []string) {
	if note == "" {
		return 0, nil
	}
	lower := cases.Lower(language.Und)
	for _, m := range directivePattern.FindAllStringSubmatch(note, -1) {
		token := lower.String(m[1])
		if d, ok := lookupDirective(token); ok {
			set = set.Add(d)
		} else {
			unknown = append(unknown, token)
		}
	}
	return set, unknown
}
