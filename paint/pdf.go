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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"

	"seehuhn.de/go/tangram"
)

// WritePDF writes f as a single page PDF file of size×size points.  The
// page shows the layout coordinates from -extent to extent.  Pieces are
// filled in their RGB colours.
func WritePDF(filename string, f *tangram.Figure, size, extent float64) error {
	if !(size > 0) || !(extent > 0) {
		return fmt.Errorf("paint: invalid PDF size %g / extent %g", size, extent)
	}

	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	drawPDF(page.Builder, f, size, extent)
	return page.Close()
}

// drawPDF appends the content stream for f to b.
func drawPDF(b *builder.Builder, f *tangram.Figure, size, extent float64) {
	b.SetFillColor(color.DeviceGray(1))
	b.Rectangle(0, 0, size, size)
	b.Fill()

	// PDF user space already has the y-axis pointing up
	k := size / (2 * extent)
	b.Transform(matrix.Matrix{k, 0, 0, k, size / 2, size / 2})

	for p := range tangram.Piece(tangram.NumPieces) {
		c := f.Placements[p].Color
		b.SetFillColor(color.DeviceRGB{c[0], c[1], c[2]})
		for i, pt := range f.Outline(p) {
			if i == 0 {
				b.MoveTo(pt.X, pt.Y)
			} else {
				b.LineTo(pt.X, pt.Y)
			}
		}
		b.ClosePath()
		b.Fill()
	}
}
