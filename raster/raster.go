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

// Package raster converts polygonal paths into anti-aliased pixel coverage.
//
// Coverage is the exact fraction of each pixel covered by the path, so that
// two pieces which share an edge add up to full coverage along the seam.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x-coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser fills paths and reports the resulting coverage row by row.
// Internal buffers grow as needed and are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised using full 2D buffers.  Larger paths use an active edge
	// list and one scanline of buffer.
	denseLimit int

	cover     []float32 // signed vertical extent per pixel, reused as output
	area      []float32 // coverage contribution inside the pixel
	edges     []edge
	active    []int     // indices into edges
	rowLo     []int     // per row: leftmost pixel touched by an edge
	rowHi     []int     // per row: rightmost pixel touched by an edge
	crossings []float64 // y values where an edge crosses a pixel column

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasteriser returns a Rasteriser with the identity CTM and the given
// clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		denseLimit: denseLimit,
	}
}

// Reset restores the CTM and sets a new clip rectangle.  Buffer capacity
// is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowLo = r.rowLo[:0]
	r.rowHi = r.rowHi[:0]
	r.crossings = r.crossings[:0]
}

// Emitter receives the coverage of row y, starting at pixel column xMin.
// The slice is only valid during the call.
type Emitter func(y, xMin int, coverage []float32)

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit Emitter) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit Emitter) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p *path.Data, integrate func(cover, area []float32), emit Emitter) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, integrate, emit)
	} else {
		r.fillSparse(xMin, xMax, yMin, yMax, integrate, emit)
	}
}

// collectEdges transforms the path to device space and records its
// non-horizontal edges.  The returned pixel range is clamped to the clip
// rectangle.
//
// Curves are replaced by the straight line to their end point.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(cur, p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(cur, p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// open subpaths are closed implicitly, as for filling in PDF
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge records the segment from p0 to p1, given in user space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// Every edge adds to two per-pixel accumulators:
//
//	cover: the signed height of the part of the edge inside the pixel column
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// Scanning a row from left to right, the coverage of pixel i is the sum of
// cover over all pixels left of i, plus area[i].  Because every piece of an
// edge inside a pixel is a straight line, using its midpoint for the
// weight gives the exact area.

// accumulate adds the contribution of e to scanline y.  The buffers are
// indexed by x - xMin.  Contributions left of the buffer are folded into
// the first pixel, those right of it are dropped.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	pixLo := int(math.Floor(min(xa, xb)))
	pixHi := int(math.Floor(max(xa, xb)))

	switch {
	case pixHi < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLo >= xMax:
		return
	case pixLo == pixHi:
		r.addPiece(e, yTop, yBot, sign, cover, area, xMin, xMax)
		return
	}

	// split the edge where it crosses pixel column boundaries
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLo + 1; x <= pixHi; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		r.addPiece(e, r.crossings[i], r.crossings[i+1], sign, cover, area, xMin, xMax)
	}
}

// addPiece adds the part of e between heights y0 and y1, which must lie
// within a single pixel.
func (r *Rasteriser) addPiece(e *edge, y0, y1 float64, sign float32, cover, area []float32, xMin, xMax int) {
	if y1 <= y0 {
		return
	}
	c := sign * float32(y1-y0)
	xMid := e.xAt((y0 + y1) / 2)
	pix := int(math.Floor(xMid))
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		frac := xMid - float64(pix)
		cover[pix-xMin] += c
		area[pix-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated values of one row into coverage
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated values of one row into coverage
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a row.
// It returns nil if the row is empty.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// midColumn returns the pixel column, relative to xMin, in which e passes
// through the middle of its extent within scanline y.
func midColumn(e *edge, y, xMin, xMax int) (int, bool) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return 0, false
	}
	x := int(math.Floor(e.xAt((yTop + yBot) / 2)))
	x = min(max(x, xMin), xMax-1)
	return x - xMin, true
}

// fillDense rasterises the whole bounding box at once, using 2D buffers.
func (r *Rasteriser) fillDense(xMin, xMax, yMin, yMax int, integrate func(cover, area []float32), emit Emitter) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowLo = slices.Grow(r.rowLo[:0], height)[:height]
	r.rowHi = slices.Grow(r.rowHi[:0], height)[:height]
	for i := range height {
		r.rowLo[i] = width
		r.rowHi[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.yMin())), yMin)
		last := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			lo := row * width
			r.accumulate(e, y, r.cover[lo:lo+width], r.area[lo:lo+width], xMin, xMax)
			if x, ok := midColumn(e, y, xMin, xMax); ok {
				r.rowLo[row] = min(r.rowLo[row], x)
				r.rowHi[row] = max(r.rowHi[row], x)
			}
		}
	}

	for row := range height {
		if r.rowHi[row] < 0 {
			continue
		}
		lo := row * width
		coverage := r.cover[lo : lo+width]
		integrate(coverage, r.area[lo:lo+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillSparse rasterises one scanline at a time, keeping a list of the
// edges which intersect the current line.
func (r *Rasteriser) fillSparse(xMin, xMax, yMin, yMax int, integrate func(cover, area []float32), emit Emitter) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		for next < len(r.edges) && r.edges[next].yMin() < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if _, ok := midColumn(e, y, xMin, xMax); ok {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// denseLimit is the default for Rasteriser.denseLimit.
	denseLimit = 65536

	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, of an edge which contributes to coverage.
	horizontalEdgeThreshold = 1e-10
)
