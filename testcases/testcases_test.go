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

package testcases

import (
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/tangram"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCases(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				if !validName.MatchString(tc.Name) {
					t.Errorf("invalid name %q", tc.Name)
				}
				if seen[name] {
					t.Errorf("duplicate name %q", name)
				}
				seen[name] = true

				f, err := tangram.Layout(tangram.StandardShapes(), tc.Rules())
				if err != nil {
					t.Fatal(err)
				}
				if err := tangram.Inspect(f, 1e-6*tc.Scale).Err(1e-4 * tc.Scale); err != nil {
					t.Error(err)
				}

				// the figure fits into the view
				extent := tc.Extent()
				for p := range tangram.Piece(tangram.NumPieces) {
					for _, pt := range f.Outline(p) {
						if math.Abs(pt.X) >= extent || math.Abs(pt.Y) >= extent {
							t.Errorf("%s reaches %v, extent %g", p, pt, extent)
						}
					}
				}
			})
		}
	}
}
