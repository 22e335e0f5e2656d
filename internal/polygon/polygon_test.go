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

package polygon

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func square(x, y, size float64) []vec.Vec2 {
	return []vec.Vec2{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}
	cases := []struct {
		p    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 2, Y: 3}, 3},
		{vec.Vec2{X: -3, Y: 4}, 5},
		{vec.Vec2{X: 7, Y: -4}, 5},
		{vec.Vec2{X: 1, Y: 0}, 0},
	}
	for _, c := range cases {
		if got := SegmentDistance(c.p, a, b); got != c.want {
			t.Errorf("%v: distance %g, want %g", c.p, got, c.want)
		}
	}
	if got := SegmentDistance(vec.Vec2{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment: %g", got)
	}
}

func TestDistance(t *testing.T) {
	p := square(0, 0, 1)
	cases := []struct {
		name string
		q    []vec.Vec2
		want float64
	}{
		{"apart", square(3, 0, 1), 2},
		{"edge", square(1, 0, 1), 0},
		{"corner", square(1, 1, 1), 0},
		{"diagonal", square(2, 2, 1), math.Sqrt2},
	}
	for _, c := range cases {
		if got := Distance(p, c.q); math.Abs(got-c.want) > 1e-15 {
			t.Errorf("%s: distance %g, want %g", c.name, got, c.want)
		}
	}
}

func TestSharedBoundary(t *testing.T) {
	p := square(0, 0, 1)
	cases := []struct {
		name string
		q    []vec.Vec2
		want float64
	}{
		{"full_edge", square(1, 0, 1), 1},
		{"half_edge", square(1, 0.5, 1), 0.5},
		{"corner", square(1, 1, 1), 0},
		{"apart", square(1.1, 0, 1), 0},
		{"small_big", square(1, -1, 3), 1},
	}
	for _, c := range cases {
		got := SharedBoundary(p, c.q, 1e-9)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: shared %g, want %g", c.name, got, c.want)
		}
		if back := SharedBoundary(c.q, p, 1e-9); math.Abs(back-got) > 1e-12 {
			t.Errorf("%s: not symmetric, %g vs %g", c.name, got, back)
		}
	}
}
