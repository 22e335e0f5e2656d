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

package paint

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/tangram"
	"seehuhn.de/go/tangram/raster"
)

// CoverageMap holds per-pixel coverage, summed over the pieces of a figure.
// Pixels are stored in row-major order.  Where pieces overlap, values
// exceed 1.
type CoverageMap struct {
	Width, Height int
	Pix           []float32

	// PixelSize is the side length of one pixel in layout units.
	PixelSize float64
}

// Coverage rasterises every piece of f onto a width×height grid with the
// same view as [NewCanvas] and adds up the coverage values.
func Coverage(f *tangram.Figure, width, height int, extent float64) *CoverageMap {
	m := &CoverageMap{
		Width:     width,
		Height:    height,
		Pix:       make([]float32, width*height),
		PixelSize: 2 * extent / float64(min(width, height)),
	}

	r := raster.NewRasteriser(clipRect(width, height))
	view := View(width, height, extent)
	var p path.Data
	for piece := range tangram.Piece(tangram.NumPieces) {
		pieceGeometryPath(&p, f.Geometry(piece), f.Placements[piece].Transform)
		r.Reset(clipRect(width, height))
		r.CTM = view
		r.FillNonZero(&p, func(y, xMin int, coverage []float32) {
			row := m.Pix[y*width+xMin:]
			for i, c := range coverage {
				row[i] += c
			}
		})
	}
	return m
}

// Max returns the largest value of the map.
func (m *CoverageMap) Max() float32 {
	var res float32
	for _, v := range m.Pix {
		res = max(res, v)
	}
	return res
}

// Area returns the covered area in layout units.
func (m *CoverageMap) Area() float64 {
	var sum float64
	for _, v := range m.Pix {
		sum += float64(v)
	}
	return sum * m.PixelSize * m.PixelSize
}
