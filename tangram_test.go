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
	"testing"
)

func TestPieceKinds(t *testing.T) {
	want := map[Piece]PieceKind{
		MagentaTriangle:     Triangle,
		CyanTriangle:        Triangle,
		BlueTriangle:        Triangle,
		PurpleTriangle:      Triangle,
		RedTriangle:         Triangle,
		GreenSquare:         Square,
		OrangeParallelogram: Parallelogram,
	}
	for p, k := range want {
		if p.Kind() != k {
			t.Errorf("%s: kind %s, want %s", p, p.Kind(), k)
		}
	}
}

func TestPieceColours(t *testing.T) {
	seen := map[RGBA]Piece{}
	for p := range Piece(NumPieces) {
		c := p.Color()
		if c[3] != 1 {
			t.Errorf("%s is not opaque", p)
		}
		for _, v := range c {
			if v < 0 || v > 1 {
				t.Errorf("%s: component %g out of range", p, v)
			}
		}
		if q, dup := seen[c]; dup {
			t.Errorf("%s and %s share a colour", p, q)
		}
		seen[c] = p
	}
	if (Piece(-1)).Color() != (RGBA{}) {
		t.Error("invalid piece has a colour")
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Triangle.String(), "triangle"},
		{Parallelogram.String(), "parallelogram"},
		{PieceKind(9).String(), "PieceKind(9)"},
		{GreenSquare.String(), "green square"},
		{Piece(7).String(), "Piece(7)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestKindTopology(t *testing.T) {
	for k := range numKinds {
		if _, _, err := PieceKind(k).topology(); err != nil {
			t.Errorf("%s: %v", PieceKind(k), err)
		}
		if _, _, err := PieceKind(k).referencePoints(); err != nil {
			t.Errorf("%s: %v", PieceKind(k), err)
		}
	}
	_, _, err := PieceKind(numKinds).referencePoints()
	var invalid *InvalidKindError
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want InvalidKindError", err)
	}
}
