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
	"errors"
	"fmt"
)

// DirectiveWarning records an unknown directive token in a glyph note.
type DirectiveWarning struct {
	Master string
	Glyph  string
	Token  string
}

func (w DirectiveWarning) String() string {
	return fmt.Sprintf("master %q: glyph %q: unknown directive %q", w.Master, w.Glyph, w.Token)
}

// Diagnostics collects the problems of a run which did not stop it.
type Diagnostics struct {
	Warnings []DirectiveWarning
	Errors   []*OverlapError
}

func (d *Diagnostics) warnDirective(master, glyph, token string) {
	w := DirectiveWarning{Master: master, Glyph: glyph, Token: token}
	d.Warnings = append(d.Warnings, w)
	Logger().Warn("unknown directive", "master", master, "glyph", glyph, "token", token)
}

func (d *Diagnostics) overlapFailed(e *OverlapError) {
	d.Errors = append(d.Errors, e)
	Logger().Warn("overlap removal failed", "master", e.Master, "glyph", e.Glyph, "error", e.Err)
}

// Empty reports whether no warnings or errors were recorded.
func (d *Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Errors) == 0
}

// Err returns the recorded errors joined into one, or nil. Warnings are not
// included.
func (d *Diagnostics) Err() error {
	if len(d.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(d.Errors))
	for i, e := range d.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Messages returns all warnings and errors as text, warnings first.
func (d *Diagnostics) Messages() []string {
	res := make([]string, 0, len(d.Warnings)+len(d.Errors))
	for _, w := range d.Warnings {
		res = append(res, "warning: "+w.String())
	}
	for _, e := range d.Errors {
		res = append(res, "error: "+e.Error())
	}
	return res
}
