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

// Package polygon measures how the boundaries of two convex polygons meet:
// their distance and the length of boundary they share.
package polygon

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// cross returns the z-component of (a-o)×(b-o).
func cross(o, a, b vec.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// Distance returns the smallest distance between the boundaries of the
// polygons p and q.  For polygons which do not overlap this is the gap
// between them; touching polygons have distance zero up to rounding.
func Distance(p, q []vec.Vec2) float64 {
	best := math.Inf(1)
	for _, pair := range [2][2][]vec.Vec2{{p, q}, {q, p}} {
		from, to := pair[0], pair[1]
		for _, v := range from {
			for i := range to {
				j := (i + 1) % len(to)
				best = min(best, SegmentDistance(v, to[i], to[j]))
			}
		}
	}
	return best
}

// SharedBoundary returns the total length along which the edges of p and q
// run on top of each other, within tolerance tol.
func SharedBoundary(p, q []vec.Vec2, tol float64) float64 {
	var total float64
	for i := range p {
		a0, a1 := p[i], p[(i+1)%len(p)]
		ab := a1.Sub(a0)
		l := ab.Length()
		if l == 0 {
			continue
		}
		u := ab.Mul(1 / l)
		for j := range q {
			b0, b1 := q[j], q[(j+1)%len(q)]
			if math.Abs(cross(a0, a1, b0))/l > tol || math.Abs(cross(a0, a1, b1))/l > tol {
				continue
			}
			t0 := b0.Sub(a0).Dot(u)
			t1 := b1.Sub(a0).Dot(u)
			lo := max(0, min(t0, t1))
			hi := min(l, max(t0, t1))
			if hi > lo {
				total += hi - lo
			}
		}
	}
	return total
}
