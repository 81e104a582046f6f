// Command export writes the test case masters as JSON files, one file per
// master, for use with the fontprep command.
// Run from the fontprep module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/fontprep/masterfile"
	"seehuhn.de/go/fontprep/testcases"
)

const outDir = "testdata/masters"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, m := range tc.Masters() {
				name := category + "_" + tc.Name + "_" + fileName(m.Name) + ".json"
				if err := masterfile.WriteFile(filepath.Join(outDir, name), m); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// fileName turns a master name into a file name component.
func fileName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
