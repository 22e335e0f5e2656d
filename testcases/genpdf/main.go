// seehuhn.de/go/tangram - a tangram layout engine
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

// Command genpdf writes a PDF and a PNG file for every test case, for
// visual inspection.  The PDF files can be rendered by an independent
// viewer and compared with the PNG files side by side.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tangram"
	"seehuhn.de/go/tangram/paint"
	"seehuhn.de/go/tangram/testcases"
)

const outDir = "testdata/figures"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	f, err := tangram.Layout(tangram.StandardShapes(), tc.Rules())
	if err != nil {
		return err
	}

	// 1 point = 1 pixel at 72 DPI
	size := float64(min(tc.Width, tc.Height))
	err = paint.WritePDF(filepath.Join(outDir, name+".pdf"), f, size, tc.Extent())
	if err != nil {
		return err
	}

	c := paint.NewCanvas(tc.Width, tc.Height, tc.Extent())
	c.Draw(f)
	out, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	err = c.WritePNG(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
