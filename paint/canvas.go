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

// Package paint draws laid out tangram figures into images and PDF files.
//
// The painter consumes the placements produced by [tangram.Layout] as a
// renderer would: for every piece it takes the triangulated geometry of
// the piece kind, maps it with the piece transform and fills it with the
// piece colour.  Transforms are used exactly as given.
package paint

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tangram"
	"seehuhn.de/go/tangram/raster"
)

// Canvas is an RGBA image which figures can be drawn into.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ras  *raster.Rasteriser
	view matrix.Matrix
	path path.Data
}

// NewCanvas allocates a white canvas of the given size in pixels.  The
// largest centred square of the canvas shows the layout coordinates from
// -extent to extent in both directions, with the y-axis pointing up.
func NewCanvas(width, height int, extent float64) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Canvas{
		img:  img,
		ras:  raster.NewRasteriser(clipRect(width, height)),
		view: View(width, height, extent),
	}
}

// View returns the device transform used by a canvas of the given size.
func View(width, height int, extent float64) matrix.Matrix {
	k := float64(min(width, height)) / (2 * extent)
	return matrix.Matrix{k, 0, 0, -k, float64(width) / 2, float64(height) / 2}
}

func clipRect(width, height int) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
}

// Image returns the canvas image.  The image is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Draw paints all pieces of f, in drawing order.
func (c *Canvas) Draw(f *tangram.Figure) {
	for p := range tangram.Piece(tangram.NumPieces) {
		c.DrawPiece(f, p)
	}
}

// DrawPiece paints a single piece of f.  Invalid pieces are ignored.
func (c *Canvas) DrawPiece(f *tangram.Figure, p tangram.Piece) {
	g := f.Geometry(p)
	if g == nil {
		return
	}
	pl := f.Placements[p]
	pieceGeometryPath(&c.path, g, pl.Transform)

	src := pl.Color
	c.ras.Reset(clipRect(c.img.Rect.Dx(), c.img.Rect.Dy()))
	c.ras.CTM = c.view
	c.ras.FillNonZero(&c.path, func(y, xMin int, coverage []float32) {
		row := c.img.Pix[y*c.img.Stride+4*xMin:]
		for i, cov := range coverage {
			blend(row[4*i:4*i+4], src, float64(cov))
		}
	})
}

// blend composites the colour src with coverage cov over the premultiplied
// pixel dst.
func blend(dst []uint8, src tangram.RGBA, cov float64) {
	a := src[3] * cov
	if a <= 0 {
		return
	}
	for k := range 3 {
		v := src[k]*a*255 + float64(dst[k])*(1-a)
		dst[k] = uint8(math.Round(min(v, 255)))
	}
	v := a*255 + float64(dst[3])*(1-a)
	dst[3] = uint8(math.Round(min(v, 255)))
}

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// pieceGeometryPath stores in p the triangles of g, mapped by t.  All
// triangles of a geometry share its orientation, so filling p with the
// nonzero rule gives the union of the triangles without seams.
func pieceGeometryPath(p *path.Data, g *tangram.ShapeGeometry, t tangram.Transform) {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	for i := range g.NumTriangles() {
		tri := g.TriangleAt(i)
		p.Cmds = append(p.Cmds, path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
		p.Coords = append(p.Coords, t.Apply(tri[0]), t.Apply(tri[1]), t.Apply(tri[2]))
	}
}
