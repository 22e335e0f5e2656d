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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Placement describes where one piece goes in the assembled figure.
type Placement struct {
	Piece Piece
	Kind  PieceKind

	// Offset is the translation of the piece centre, before the global
	// tilt is applied.
	Offset vec.Vec2

	// Angle is the rotation about the z-axis, in degrees.
	Angle float64

	// Scale is the uniform scale factor applied in object space.
	Scale float64

	// Transform is tilt · translate(Offset) · rotate(Angle) · scale(Scale).
	Transform Transform

	Color RGBA
}

// Measures holds the lengths derived while laying out a figure.
// All lengths are in layout units, before the global tilt.
type Measures struct {
	SquareSide     float64 // S
	SquareDiagonal float64 // D = S·√2

	Large  TriangleMeasures // the two large triangles
	Small  TriangleMeasures // the two small triangles
	Medium TriangleMeasures // the medium triangle

	ParallelogramSide   float64 // P
	ParallelogramHeight float64 // P·sin 45°
}

// TriangleMeasures describes a right isosceles triangle.
type TriangleMeasures struct {
	Side             float64 // length of the legs
	Hypotenuse       float64
	Height           float64 // distance from the right angle to the hypotenuse
	Centroid         float64 // centroid offset along each leg
	CentroidDiagonal float64 // distance from the right angle to the centroid
}

// Figure is a laid out tangram.
type Figure struct {
	// Placements lists the pieces in drawing order.
	Placements [NumPieces]Placement

	Measures Measures

	Scale float64 // global scale
	Tilt  float64 // global tilt in degrees

	shapes *Shapes
}

// Geometry returns the object-space geometry of piece p, or nil if p is
// not one of the seven pieces.
func (f *Figure) Geometry(p Piece) *ShapeGeometry {
	if p < 0 || p >= NumPieces {
		return nil
	}
	return f.shapes.byKind[p.Kind()]
}

// Outline returns the corners of piece p in the assembled figure, in the
// winding order of its geometry.  Outline returns nil if p is not one of
// the seven pieces.
func (f *Figure) Outline(p Piece) []vec.Vec2 {
	g := f.Geometry(p)
	if g == nil {
		return nil
	}
	t := f.Placements[p].Transform
	res := make([]vec.Vec2, len(g.points))
	for i, pt := range g.points {
		res[i] = t.Apply(pt)
	}
	return res
}

// pieceOrientation lists the fixed rotation (degrees) and the scale,
// relative to the global scale, of every piece.
var pieceOrientation = [NumPieces]struct{ angle, scale float64 }{
	MagentaTriangle:     {0, 1},
	CyanTriangle:        {135, 0.5},
	BlueTriangle:        {-135, 1},
	PurpleTriangle:      {180, 1 / math.Sqrt2},
	RedTriangle:         {-135, 0.5},
	GreenSquare:         {45, 0.5},
	OrangeParallelogram: {0, 0.5},
}

// Layout derives the placement of all seven pieces.
//
// The square is centred at the origin.  Every other piece is positioned
// relative to a piece placed before it, so that the pieces touch along
// their edges without gaps or overlaps.  If the rules lead to a
// non-positive or non-finite length, a *DegenerateLayoutError is returned
// and no figure is produced.
//
// Layout has no side effects; the same inputs always give the same result.
func Layout(shapes *Shapes, rules *ProportionRules) (*Figure, error) {
	var in struct {
		square, small, medium, parallelogram, scale, tilt float64
	}
	for _, r := range []struct {
		name string
		dst  *float64
	}{
		{RatioSquare, &in.square},
		{RatioSmallTriangle, &in.small},
		{RatioMediumTriangle, &in.medium},
		{RatioParallelogram, &in.parallelogram},
		{RatioGlobalScale, &in.scale},
		{RatioGlobalTilt, &in.tilt},
	} {
		v, err := rules.Ratio(r.name)
		if err != nil {
			return nil, err
		}
		*r.dst = v
	}

	sqSide, err := shapes.SideLength(Square)
	if err != nil {
		return nil, err
	}
	triSide, err := shapes.SideLength(Triangle)
	if err != nil {
		return nil, err
	}
	parSide, err := shapes.SideLength(Parallelogram)
	if err != nil {
		return nil, err
	}

	d := &deriver{}
	d.positive("global scale", in.scale)
	if math.IsNaN(in.tilt) || math.IsInf(in.tilt, 0) {
		return nil, &DegenerateLayoutError{Quantity: "global tilt", Value: in.tilt}
	}

	var m Measures
	m.SquareSide = d.positive("square side", in.square*in.scale*sqSide)
	m.SquareDiagonal = d.sqrt("square diagonal", 2*m.SquareSide*m.SquareSide)
	m.Large = d.triangle("large triangle", in.scale*triSide)
	m.Small = d.triangle("small triangle", in.small*m.Large.Side)
	m.Medium = d.triangle("medium triangle", in.medium*m.Large.Side)
	m.ParallelogramSide = d.positive("parallelogram side", parSide*in.scale*in.parallelogram)
	m.ParallelogramHeight = d.positive("parallelogram height",
		m.ParallelogramSide*math.Sin(45*math.Pi/180))
	if d.err != nil {
		return nil, d.err
	}

	D := m.SquareDiagonal
	T, H, h, c, cd := m.Large.Side, m.Large.Hypotenuse, m.Large.Height, m.Large.Centroid, m.Large.CentroidDiagonal
	H2, h2, cd2 := m.Small.Hypotenuse, m.Small.Height, m.Small.CentroidDiagonal
	T4, c4 := m.Medium.Side, m.Medium.Centroid
	hp := m.ParallelogramHeight

	var offset [NumPieces]vec.Vec2

	// The square sits at the origin and anchors the figure.
	offset[GreenSquare] = vec.Vec2{}

	// The hypotenuse of the magenta triangle runs along the lower left
	// side of the square.
	offset[MagentaTriangle] = vec.Vec2{
		X: -(D/2 - c),
		Y: -(T - c),
	}

	// The cyan triangle covers the upper left side of the square.
	offset[CyanTriangle] = offset[MagentaTriangle].Add(vec.Vec2{
		X: -(c - (h2 - cd2)),
		Y: T + (H2/2 - c),
	})

	// The blue triangle hangs off the lower right side of the square.
	offset[BlueTriangle] = vec.Vec2{
		X: H / 2,
		Y: -(D/2 - (h - cd)),
	}

	// The purple triangle rests on the top corner of the square, against
	// the cyan triangle.
	offset[PurpleTriangle] = vec.Vec2{
		X: -c4,
		Y: (T4 - c4) + D/2,
	}

	// The red triangle leans against the left leg of the purple one.
	offset[RedTriangle] = offset[PurpleTriangle].Add(vec.Vec2{
		X: -(T4 - c4),
		Y: -(h2 - (c4 + (h2 - cd2))),
	})

	// The parallelogram hangs below the lower leg of the magenta triangle.
	offset[OrangeParallelogram] = offset[MagentaTriangle].Add(vec.Vec2{
		X: T - c/2,
		Y: -(c + hp/2),
	})

	f := &Figure{
		Measures: m,
		Scale:    in.scale,
		Tilt:     in.tilt,
		shapes:   shapes,
	}
	tilt := rotationZ(in.tilt)
	for p := range Piece(NumPieces) {
		o := pieceOrientation[p]
		scale := o.scale * in.scale
		pl := Placement{
			Piece:  p,
			Kind:   p.Kind(),
			Offset: offset[p],
			Angle:  o.angle,
			Scale:  scale,
			Transform: compose(
				tilt,
				translation(offset[p].X, offset[p].Y),
				rotationZ(o.angle),
				scaling(scale),
			),
			Color: p.Color(),
		}
		if !pl.Transform.IsFinite() {
			return nil, &DegenerateLayoutError{Quantity: p.String() + " transform", Value: math.NaN()}
		}
		f.Placements[p] = pl
	}
	return f, nil
}

// deriver computes lengths and remembers the first degenerate one.
type deriver struct {
	err error
}

func (d *deriver) positive(name string, v float64) float64 {
	if d.err == nil && !(v > 0 && !math.IsInf(v, 1)) {
		d.err = &DegenerateLayoutError{Quantity: name, Value: v}
	}
	return v
}

func (d *deriver) sqrt(name string, v float64) float64 {
	if d.err == nil && !(v >= 0) {
		d.err = &DegenerateLayoutError{Quantity: name + " (square root argument)", Value: v}
		return 0
	}
	return d.positive(name, math.Sqrt(v))
}

// triangle derives the measures of a right isosceles triangle with legs of
// the given length.
func (d *deriver) triangle(name string, side float64) TriangleMeasures {
	var t TriangleMeasures
	t.Side = d.positive(name+" side", side)
	t.Hypotenuse = d.sqrt(name+" hypotenuse", 2*side*side)
	t.Height = d.sqrt(name+" height", side*side-(t.Hypotenuse/2)*(t.Hypotenuse/2))
	t.Centroid = d.positive(name+" centroid", side/3)
	t.CentroidDiagonal = d.sqrt(name+" centroid diagonal", 2*t.Centroid*t.Centroid)
	return t
}
