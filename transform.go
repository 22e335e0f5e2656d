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

	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform is a 4×4 homogeneous matrix in row-major order, acting on
// column vectors (x, y, z, 1).
type Transform [16]float64

// IdentityTransform is the transform which leaves every point unchanged.
var IdentityTransform = Transform{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// At returns the entry in row i and column j.
func (t Transform) At(i, j int) float64 {
	return t[4*i+j]
}

// Apply maps the point v (with z = 0) and returns its x and y coordinates.
func (t Transform) Apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t[0]*v.X + t[1]*v.Y + t[3],
		Y: t[4]*v.X + t[5]*v.Y + t[7],
	}
}

// Affine returns the part of t which acts on the xy-plane, in the
// [a b c d e f] convention of PDF, where x' = a·x + c·y + e and
// y' = b·x + d·y + f.
func (t Transform) Affine() matrix.Matrix {
	return matrix.Matrix{t[0], t[4], t[1], t[5], t[3], t[7]}
}

// IsFinite reports whether all entries of t are finite.
func (t Transform) IsFinite() bool {
	for _, x := range t {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func translation(x, y float64) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// rotationZ returns a rotation by deg degrees about the z-axis.
func rotationZ(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat.NewDense(4, 4, []float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// scaling scales x and y uniformly and leaves z unchanged.
func scaling(f float64) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// compose returns the product of the factors, in the given order.
// The right-most factor is applied to a point first.
func compose(factors ...*mat.Dense) Transform {
	id := IdentityTransform
	acc := mat.NewDense(4, 4, id[:])
	for _, f := range factors {
		var next mat.Dense
		next.Mul(acc, f)
		acc = &next
	}

	var t Transform
	for i := range 4 {
		for j := range 4 {
			t[4*i+j] = acc.At(i, j)
		}
	}
	return t
}
