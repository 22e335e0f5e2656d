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

// Package tangram computes the placement of the seven tangram pieces which
// assemble the "dragon" silhouette.
//
// The three base polygons are described by [ShapeGeometry] values, the
// proportions between the pieces by [ProportionRules].  [Layout] derives a
// rotation, a uniform scale and a translation for every piece, walking
// edge to edge from the square at the origin, and composes them with a
// global tilt into a 4×4 transform which can be handed to a renderer
// unchanged.
package tangram

import "fmt"

// PieceKind identifies one of the three base polygons.
type PieceKind int

// These are the supported piece kinds.
const (
	Triangle PieceKind = iota
	Square
	Parallelogram

	numKinds = 3
)

func (k PieceKind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Parallelogram:
		return "parallelogram"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
}

// topology returns the number of points and indices a geometry of kind k
// must have.
func (k PieceKind) topology() (points, indices int, err error) {
	switch k {
	case Triangle:
		return 3, 3, nil
	case Square, Parallelogram:
		return 4, 6, nil
	default:
		return 0, 0, &InvalidKindError{Kind: k}
	}
}

// referencePoints returns the indices of the two points whose distance is
// the characteristic side length of kind k.
func (k PieceKind) referencePoints() (from, to int, err error) {
	switch k {
	case Triangle, Square:
		return 0, 1, nil
	case Parallelogram:
		return 0, 3, nil
	default:
		return 0, 0, &InvalidKindError{Kind: k}
	}
}

// Piece identifies one of the seven physical pieces.  The numeric order
// of the constants is the drawing order.
type Piece int

// The seven pieces, named after their colours.
const (
	MagentaTriangle Piece = iota
	CyanTriangle
	BlueTriangle
	PurpleTriangle
	RedTriangle
	GreenSquare
	OrangeParallelogram

	// NumPieces is the number of pieces in a tangram.
	NumPieces = 7
)

var pieceNames = [NumPieces]string{
	"magenta triangle",
	"cyan triangle",
	"blue triangle",
	"purple triangle",
	"red triangle",
	"green square",
	"orange parallelogram",
}

func (p Piece) String() string {
	if p < 0 || p >= NumPieces {
		return fmt.Sprintf("Piece(%d)", int(p))
	}
	return pieceNames[p]
}

// Kind returns the base polygon of the piece.
func (p Piece) Kind() PieceKind {
	switch p {
	case GreenSquare:
		return Square
	case OrangeParallelogram:
		return Parallelogram
	default:
		return Triangle
	}
}

// Color returns the fill colour of the piece.
func (p Piece) Color() RGBA {
	switch p {
	case MagentaTriangle:
		return RGBA{1, 0, 1, 1}
	case CyanTriangle:
		return RGBA{0, 1, 1, 1}
	case BlueTriangle:
		return RGBA{0.3, 0.6, 1, 1}
	case PurpleTriangle:
		return RGBA{0.5, 0, 0.5, 1}
	case RedTriangle:
		return RGBA{1, 0, 0, 1}
	case GreenSquare:
		return RGBA{0, 0.7, 0, 1}
	case OrangeParallelogram:
		return RGBA{1, 0.5, 0, 1}
	default:
		return RGBA{}
	}
}

// RGBA is a non-premultiplied colour with components in the range [0, 1],
// in the layout expected by a shader colour uniform.
type RGBA [4]float64
