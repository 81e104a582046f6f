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

// Command genpdf writes proof sheets for all test cases, showing every
// master before and after processing. If Ghostscript is installed, the
// proofs are also rendered to PNG.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/fontprep"
	"seehuhn.de/go/fontprep/proof"
	"seehuhn.de/go/fontprep/testcases"
)

const proofDir = "testdata/proofs"

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}
	gs, _ := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Err != nil {
				continue
			}
			name := category + "_" + tc.Name

			before := tc.Masters()
			after := tc.Masters()
			if _, err := fontprep.Run(after); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			for i := range before {
				base := name + "_" + strings.ToLower(before[i].Name)
				for suffix, m := range map[string]*fontprep.Master{
					"before": before[i],
					"after":  after[i],
				} {
					pdfPath := filepath.Join(proofDir, base+"_"+suffix+".pdf")
					if err := proof.WritePDF(pdfPath, m, nil); err != nil {
						panic(fmt.Errorf("%s: %w", name, err))
					}
					if gs == "" {
						continue
					}
					pngPath := strings.TrimSuffix(pdfPath, ".pdf") + ".png"
					if err := renderPNG(gs, pdfPath, pngPath); err != nil {
						panic(fmt.Errorf("%s: %w", name, err))
					}
				}
			}
		}
	}
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
