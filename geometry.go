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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// ShapeGeometry is the object-space polygon of one piece kind.
// The order of the points defines the winding, the indices group the
// points into triangles for rasterisation.
//
// A ShapeGeometry is immutable and safe for concurrent use.
type ShapeGeometry struct {
	kind    PieceKind
	points  []vec.Vec2
	indices []uint8
}

// NewShapeGeometry validates the points and indices against the topology
// of kind and returns the new geometry.  The slices are copied.
func NewShapeGeometry(kind PieceKind, points []vec.Vec2, indices []uint8) (*ShapeGeometry, error) {
	nPoints, nIndices, err := kind.topology()
	if err != nil {
		return nil, err
	}
	if len(points) != nPoints {
		return nil, &MalformedGeometryError{
			Kind:   kind,
			Reason: fmt.Sprintf("%d points, expected %d", len(points), nPoints),
		}
	}
	if len(indices) != nIndices {
		return nil, &MalformedGeometryError{
			Kind:   kind,
			Reason: fmt.Sprintf("%d indices, expected %d", len(indices), nIndices),
		}
	}
	for i, idx := range indices {
		if int(idx) >= nPoints {
			return nil, &MalformedGeometryError{
				Kind:   kind,
				Reason: fmt.Sprintf("index %d refers to point %d", i, idx),
			}
		}
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, &MalformedGeometryError{
				Kind:   kind,
				Reason: fmt.Sprintf("point %d is not finite", i),
			}
		}
	}

	return &ShapeGeometry{
		kind:    kind,
		points:  slices.Clone(points),
		indices: slices.Clone(indices),
	}, nil
}

// Kind returns the piece kind the geometry describes.
func (g *ShapeGeometry) Kind() PieceKind {
	return g.kind
}

// Points returns a copy of the object-space points.
func (g *ShapeGeometry) Points() []vec.Vec2 {
	return slices.Clone(g.points)
}

// Indices returns a copy of the triangle indices.
func (g *ShapeGeometry) Indices() []uint8 {
	return slices.Clone(g.indices)
}

// NumTriangles returns the number of triangles in the triangulation.
func (g *ShapeGeometry) NumTriangles() int {
	return len(g.indices) / 3
}

// TriangleAt returns the three points of triangle i of the triangulation.
func (g *ShapeGeometry) TriangleAt(i int) [3]vec.Vec2 {
	return [3]vec.Vec2{
		g.points[g.indices[3*i]],
		g.points[g.indices[3*i+1]],
		g.points[g.indices[3*i+2]],
	}
}

// SideLength returns the characteristic side length: the distance between
// points 0 and 1 for triangles and squares, and between points 0 and 3 for
// the parallelogram.
func (g *ShapeGeometry) SideLength() float64 {
	from, to, _ := g.kind.referencePoints() // kind was checked on construction
	return g.points[to].Sub(g.points[from]).Length()
}

// Shapes holds one geometry for each piece kind.
// Shapes is immutable and safe for concurrent use.
type Shapes struct {
	byKind [numKinds]*ShapeGeometry
}

// NewShapes collects the given geometries.  Exactly one geometry for each
// piece kind is required.
func NewShapes(geoms ...*ShapeGeometry) (*Shapes, error) {
	s := &Shapes{}
	for _, g := range geoms {
		if g == nil {
			return nil, fmt.Errorf("tangram: nil geometry")
		}
		if s.byKind[g.kind] != nil {
			return nil, fmt.Errorf("tangram: duplicate %s geometry", g.kind)
		}
		s.byKind[g.kind] = g
	}
	for k, g := range s.byKind {
		if g == nil {
			return nil, fmt.Errorf("tangram: missing %s geometry", PieceKind(k))
		}
	}
	return s, nil
}

// Geometry returns the geometry of kind k.
func (s *Shapes) Geometry(k PieceKind) (*ShapeGeometry, error) {
	if k < 0 || k >= numKinds {
		return nil, &InvalidKindError{Kind: k}
	}
	return s.byKind[k], nil
}

// SideLength returns the characteristic side length of kind k.
func (s *Shapes) SideLength(k PieceKind) (float64, error) {
	g, err := s.Geometry(k)
	if err != nil {
		return 0, err
	}
	return g.SideLength(), nil
}

var (
	sqrt2over4  = math.Sqrt2 / 4
	sqrt2over4b = 3 * math.Sqrt2 / 4
)

// StandardShapes returns the base polygons of the tangram, all centred at
// the origin:
//   - a right isosceles triangle with legs of length 1, its centroid at the
//     origin,
//   - a unit square,
//   - a parallelogram with base √2 and slanted sides of length 1.
func StandardShapes() *Shapes {
	tri := &ShapeGeometry{
		kind: Triangle,
		points: []vec.Vec2{
			{X: -1.0 / 3, Y: -1.0 / 3},
			{X: 2.0 / 3, Y: -1.0 / 3},
			{X: -1.0 / 3, Y: 2.0 / 3},
		},
		indices: []uint8{0, 1, 2},
	}
	sq := &ShapeGeometry{
		kind: Square,
		points: []vec.Vec2{
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: -0.5},
			{X: 0.5, Y: 0.5},
			{X: -0.5, Y: 0.5},
		},
		indices: []uint8{0, 1, 2, 0, 2, 3},
	}
	par := &ShapeGeometry{
		kind: Parallelogram,
		points: []vec.Vec2{
			{X: -sqrt2over4, Y: -sqrt2over4},
			{X: sqrt2over4b, Y: -sqrt2over4},
			{X: sqrt2over4, Y: sqrt2over4},
			{X: -sqrt2over4b, Y: sqrt2over4},
		},
		indices: []uint8{0, 1, 2, 0, 2, 3},
	}
	return &Shapes{byKind: [numKinds]*ShapeGeometry{tri, sq, par}}
}
