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
	"fmt"

	"github.com/ctessum/geom"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tangram/internal/polygon"
)

// Contact describes how two placed pieces meet.
type Contact struct {
	A, B Piece

	// Shared is the length along which the boundaries of A and B coincide.
	Shared float64

	// Gap is the distance between the boundaries of A and B.  It is zero,
	// up to rounding, when the pieces touch.
	Gap float64

	// Overlap is the area covered by both pieces.
	Overlap float64
}

func (c Contact) String() string {
	return fmt.Sprintf("%s / %s: shared %.6f, gap %.2g, overlap %.2g",
		c.A, c.B, c.Shared, c.Gap, c.Overlap)
}

// Anchors lists the anchoring steps of the layout: every piece, except the
// square, together with the piece it was positioned against.
//
// Magenta/cyan and square/purple meet at a single vertex, so these two
// links have a gap of zero but no shared edge.
var Anchors = [NumPieces - 1][2]Piece{
	{GreenSquare, MagentaTriangle},
	{MagentaTriangle, CyanTriangle},
	{GreenSquare, BlueTriangle},
	{GreenSquare, PurpleTriangle},
	{PurpleTriangle, RedTriangle},
	{MagentaTriangle, OrangeParallelogram},
}

// Report collects the contacts between all pairs of pieces of a figure.
type Report struct {
	// Pairs holds one entry for every unordered pair of pieces, A < B.
	Pairs []Contact

	// Area is the total area of the pieces.
	Area float64
}

// Inspect measures how the pieces of f fit together.
// Shared edges are detected with tolerance tol.
func Inspect(f *Figure, tol float64) *Report {
	r := &Report{}
	var outline [NumPieces][]vec.Vec2
	var poly [NumPieces]geom.Polygon
	for p := range Piece(NumPieces) {
		outline[p] = f.Outline(p)
		poly[p] = toPolygon(outline[p])
		r.Area += poly[p].Area()
	}
	for a := range Piece(NumPieces) {
		for b := a + 1; b < NumPieces; b++ {
			r.Pairs = append(r.Pairs, Contact{
				A:       a,
				B:       b,
				Shared:  polygon.SharedBoundary(outline[a], outline[b], tol),
				Gap:     polygon.Distance(outline[a], outline[b]),
				Overlap: poly[a].Intersection(poly[b]).Area(),
			})
		}
	}
	return r
}

// Contact returns the entry for the pieces a and b.
func (r *Report) Contact(a, b Piece) Contact {
	if a > b {
		a, b = b, a
	}
	for _, c := range r.Pairs {
		if c.A == a && c.B == b {
			return c
		}
	}
	return Contact{A: a, B: b}
}

// Links returns the contacts along the anchoring steps of the layout.
func (r *Report) Links() []Contact {
	res := make([]Contact, len(Anchors))
	for i, l := range Anchors {
		res[i] = r.Contact(l[0], l[1])
	}
	return res
}

// Err checks that every anchoring step joins touching pieces (gap at most
// tol) and that no two pieces overlap by more than tol².
func (r *Report) Err(tol float64) error {
	var errs []error
	for _, c := range r.Links() {
		if c.Gap > tol {
			errs = append(errs, fmt.Errorf("%s and %s do not touch: gap %g", c.A, c.B, c.Gap))
		}
	}
	for _, c := range r.Pairs {
		if c.Overlap > tol*tol {
			errs = append(errs, fmt.Errorf("%s and %s overlap: area %g", c.A, c.B, c.Overlap))
		}
	}
	return errors.Join(errs...)
}

// toPolygon converts a piece outline into a single ring polygon.
func toPolygon(outline []vec.Vec2) geom.Polygon {
	ring := make([]geom.Point, len(outline))
	for i, v := range outline {
		ring[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return geom.Polygon{ring}
}
