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

import "fmt"

// InvalidKindError is returned when a PieceKind is not one of Triangle,
// Square or Parallelogram.
type InvalidKindError struct {
	Kind PieceKind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("tangram: invalid piece kind %d", int(e.Kind))
}

// MalformedGeometryError is returned when the points or indices of a
// geometry do not match the topology of its kind.
type MalformedGeometryError struct {
	Kind   PieceKind
	Reason string
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("tangram: malformed %s geometry: %s", e.Kind, e.Reason)
}

// UnknownRatioError is returned for a ratio name which is not part of the
// proportion table, and for a table which lacks a required ratio.
type UnknownRatioError struct {
	Name    string
	Missing bool
}

func (e *UnknownRatioError) Error() string {
	if e.Missing {
		return fmt.Sprintf("tangram: ratio %q missing from proportion table", e.Name)
	}
	return fmt.Sprintf("tangram: unknown ratio %q", e.Name)
}

// DegenerateLayoutError is returned when a derived quantity of the layout
// would be non-positive or not finite.
type DegenerateLayoutError struct {
	Quantity string
	Value    float64
}

func (e *DegenerateLayoutError) Error() string {
	return fmt.Sprintf("tangram: degenerate layout: %s = %g", e.Quantity, e.Value)
}
