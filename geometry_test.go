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

package tangram

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestStandardShapes(t *testing.T) {
	s := StandardShapes()
	cases := []struct {
		kind      PieceKind
		side      float64
		area      float64
		triangles int
	}{
		{Triangle, 1, 0.5, 1},
		{Square, 1, 1, 2},
		{Parallelogram, 1, 1, 2},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			side, err := s.SideLength(c.kind)
			if err != nil {
				t.Fatal(err)
			}
			if !near(side, c.side, 1e-15) {
				t.Errorf("side length %g, want %g", side, c.side)
			}

			g, err := s.Geometry(c.kind)
			if err != nil {
				t.Fatal(err)
			}
			if g.Kind() != c.kind {
				t.Errorf("kind %s", g.Kind())
			}
			if got := toPolygon(g.Points()).Area(); !near(got, c.area, 1e-12) {
				t.Errorf("area %g, want %g", got, c.area)
			}
			if g.NumTriangles() != c.triangles {
				t.Errorf("%d triangles, want %d", g.NumTriangles(), c.triangles)
			}

			// the triangulation covers the polygon exactly
			var sum float64
			for i := range g.NumTriangles() {
				tri := g.TriangleAt(i)
				sum += toPolygon(tri[:]).Area()
			}
			if !near(sum, c.area, 1e-12) {
				t.Errorf("triangles cover %g, want %g", sum, c.area)
			}

			// all shapes are centred at the origin
			var centre vec.Vec2
			for _, p := range g.Points() {
				centre = centre.Add(p)
			}
			if c.kind != Triangle && !nearVec(centre, vec.Vec2{}, 1e-15) {
				t.Errorf("vertex mean %v, want origin", centre)
			}
		})
	}

	// the parallelogram base is √2
	g, _ := s.Geometry(Parallelogram)
	pts := g.Points()
	if base := pts[1].Sub(pts[0]).Length(); !near(base, math.Sqrt2, 1e-15) {
		t.Errorf("parallelogram base %g, want √2", base)
	}
}

func TestShapesInvalidKind(t *testing.T) {
	s := StandardShapes()
	for _, k := range []PieceKind{-1, numKinds, 42} {
		_, err := s.Geometry(k)
		var invalid *InvalidKindError
		if !errors.As(err, &invalid) || invalid.Kind != k {
			t.Errorf("Geometry(%d): got %v", k, err)
		}
		_, err = s.SideLength(k)
		if !errors.As(err, &invalid) {
			t.Errorf("SideLength(%d): got %v", k, err)
		}
	}
}

func TestNewShapeGeometry(t *testing.T) {
	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	quad := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	cases := []struct {
		name    string
		kind    PieceKind
		points  []vec.Vec2
		indices []uint8
		ok      bool
	}{
		{"triangle", Triangle, tri, []uint8{0, 1, 2}, true},
		{"square", Square, quad, []uint8{0, 1, 2, 0, 2, 3}, true},
		{"parallelogram", Parallelogram, quad, []uint8{0, 1, 2, 0, 2, 3}, true},
		{"too_few_points", Square, tri, []uint8{0, 1, 2, 0, 2, 3}, false},
		{"too_many_indices", Triangle, tri, []uint8{0, 1, 2, 0}, false},
		{"index_out_of_range", Triangle, tri, []uint8{0, 1, 3}, false},
		{"not_finite", Triangle, []vec.Vec2{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 0, Y: 1}}, []uint8{0, 1, 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewShapeGeometry(c.kind, c.points, c.indices)
			if c.ok {
				if err != nil {
					t.Fatal(err)
				}
				if g.Kind() != c.kind {
					t.Errorf("kind %s, want %s", g.Kind(), c.kind)
				}
				return
			}
			var malformed *MalformedGeometryError
			if !errors.As(err, &malformed) {
				t.Fatalf("got %v, want MalformedGeometryError", err)
			}
			if malformed.Kind != c.kind {
				t.Errorf("error kind %s, want %s", malformed.Kind, c.kind)
			}
		})
	}

	_, err := NewShapeGeometry(PieceKind(5), tri, []uint8{0, 1, 2})
	var invalid *InvalidKindError
	if !errors.As(err, &invalid) {
		t.Errorf("invalid kind: got %v", err)
	}
}

func TestShapeGeometryCopies(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	idx := []uint8{0, 1, 2}
	g, err := NewShapeGeometry(Triangle, pts, idx)
	if err != nil {
		t.Fatal(err)
	}

	pts[1].X = 100
	idx[0] = 2
	if g.SideLength() != 2 {
		t.Errorf("geometry shares the caller's points")
	}
	if g.Indices()[0] != 0 {
		t.Errorf("geometry shares the caller's indices")
	}

	out := g.Points()
	out[1].X = 100
	if g.SideLength() != 2 {
		t.Errorf("Points exposes internal storage")
	}
}

func TestNewShapes(t *testing.T) {
	std := StandardShapes()
	tri, _ := std.Geometry(Triangle)
	sq, _ := std.Geometry(Square)
	par, _ := std.Geometry(Parallelogram)

	if _, err := NewShapes(par, tri, sq); err != nil {
		t.Errorf("any order: %v", err)
	}
	if _, err := NewShapes(tri, sq); err == nil {
		t.Error("missing parallelogram accepted")
	}
	if _, err := NewShapes(tri, sq, par, sq); err == nil {
		t.Error("duplicate square accepted")
	}
	if _, err := NewShapes(tri, nil, par); err == nil {
		t.Error("nil geometry accepted")
	}
}
