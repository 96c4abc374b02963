// seehuhn.de/go/lines - integer line rasterization
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

// Command genpdf writes one PDF contact sheet per test case category, showing
// each rendered case next to its reference image.
// Run from the module root directory.
package main

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
	"seehuhn.de/go/lines/internal/sheet"
	"seehuhn.de/go/lines/testcases"
)

const (
	refDir = "testdata/reference"
	outDir = "debug"
)

func main() {
	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		var cases []sheet.Case
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			img, err := lines.RenderCase(tc)
			if err != nil {
				panic(err)
			}
			cases = append(cases, sheet.Case{Name: name, Image: img})

			// Show the reference next to the rendered image, if present.
			ref, err := hdr.ReadFile(filepath.Join(refDir, name+".png"))
			if err == nil {
				cases = append(cases, sheet.Case{Name: name + " (reference)", Image: ref})
			} else if !os.IsNotExist(err) {
				panic(err)
			}
		}

		pdfPath := filepath.Join(outDir, category+".pdf")
		if err := writePDF(pdfPath, cases); err != nil {
			panic(fmt.Errorf("%s: %w", category, err))
		}
	}
}

func writePDF(pdfPath string, cases []sheet.Case) error {
	fd, err := os.Create(pdfPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	err = sheet.Write(w, cases, sheet.Options{PixelSize: 2})
	if err == nil {
		err = w.Flush()
	}
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}
