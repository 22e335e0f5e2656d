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

// Command export writes the layouts of all test cases to JSON, for
// comparison with other renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/tangram"
	"seehuhn.de/go/tangram/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/layouts.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string          `json:"name"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Extent float64         `json:"extent"`
	Scale  float64         `json:"scale"`
	Tilt   float64         `json:"tilt"`
	Pieces []jsonPlacement `json:"pieces"`
}

type jsonPlacement struct {
	Piece     string          `json:"piece"`
	Kind      string          `json:"kind"`
	Transform [16]float64     `json:"transform"`
	Color     [4]float64      `json:"color"`
	Outline   [][2]float64    `json:"outline"`
	Triangles [][3][2]float64 `json:"triangles"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	f, err := tangram.Layout(tangram.StandardShapes(), tc.Rules())
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Extent: tc.Extent(),
		Scale:  tc.Scale,
		Tilt:   tc.Tilt,
	}
	for p := range tangram.Piece(tangram.NumPieces) {
		pl := f.Placements[p]
		jp := jsonPlacement{
			Piece:     p.String(),
			Kind:      pl.Kind.String(),
			Transform: pl.Transform,
			Color:     pl.Color,
		}
		for _, pt := range f.Outline(p) {
			jp.Outline = append(jp.Outline, [2]float64{pt.X, pt.Y})
		}
		g := f.Geometry(p)
		for i := range g.NumTriangles() {
			var tri [3][2]float64
			for k, pt := range g.TriangleAt(i) {
				q := pl.Transform.Apply(pt)
				tri[k] = [2]float64{q.X, q.Y}
			}
			jp.Triangles = append(jp.Triangles, tri)
		}
		jtc.Pieces = append(jtc.Pieces, jp)
	}
	return jtc, nil
}
