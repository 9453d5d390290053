// seehuhn.de/go/shapes - synthetic image datasets of simple shapes
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

// Package raster converts filled polygons into anti-aliased pixel
// coverage.
//
// Coverage is the fraction of a pixel's area which lies inside the polygon,
// from 0 (outside) to 1 (inside), using the nonzero winding rule. It is
// delivered one scanline at a time to a callback, which typically blends a
// fill color into an image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage values for pixels xMin, xMin+1, ... of
// scanline y. The coverage slice is only valid for the duration of the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer computes coverage values for filled polygons.
// Internal buffers are reused between calls and only ever grow, so that a
// Rasterizer which is used for many polygons of similar size does not
// allocate.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip is the device-space output region.
	// The coordinates must be integers.
	Clip rect.Rect

	// polygons with a bounding box of fewer pixels than this use
	// fillSmall, all others use fillLarge
	smallPathThreshold int

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	rowXMin   []int
	rowXMax   []int
	crossings []float64

	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer which writes to the given clip
// rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:               clip,
		smallPathThreshold: smallPathThreshold,
	}
}

// FillPolygon computes the coverage of the closed polygon with the given
// vertices and passes the non-zero parts of every scanline to emit.
// Self-intersecting polygons are filled using the nonzero winding rule.
func (r *Rasterizer) FillPolygon(vertices []vec.Vec2, emit EmitFunc) {
	if len(vertices) < 3 {
		return
	}
	xMin, xMax, yMin, yMax, ok := r.collectEdges(vertices)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges converts the polygon into edges. The returned bounding box
// is clipped to r.Clip.
func (r *Rasterizer) collectEdges(vertices []vec.Vec2) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	prev := vertices[len(vertices)-1]
	for _, v := range vertices {
		r.addEdge(prev, v)
		prev = v
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge appends the segment a-b to the edge list. Horizontal edges do
// not contribute to coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// The coverage of a scanline is found by accumulating, for every pixel,
//
//	cover: the signed vertical extent of all edge pieces inside the pixel
//	       column (positive for downward edges)
//	area:  cover weighted by the fraction of the pixel to the right of
//	       the edge piece
//
// and then integrating from left to right: the coverage of pixel i is the
// sum of cover over all pixels left of i, plus area[i].

// accumulate adds the part of e which lies in scanline y to cover and
// area. The buffers are indexed by x-xMin. Edge pieces left of the
// buffer are added to the first pixel; pieces right of it are dropped.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	eyMin, eyMax := e.yRange()
	top := max(float64(y), eyMin)
	bot := min(float64(y+1), eyMax)
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xl, xr := e.xAt(top), e.xAt(bot)
	if xl > xr {
		xl, xr = xr, xl
	}
	pl := int(math.Floor(xl))
	pr := int(math.Floor(xr))

	if pr < xMin {
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	}
	if pl >= xMax {
		return
	}
	if pl == pr {
		r.addPiece(e, top, bot, sign, cover, area, xMin, xMax)
		return
	}

	// split the edge where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], top, bot)
	dydx := 1 / e.dxdy
	for x := pl + 1; x <= pr; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		r.addPiece(e, r.crossings[i-1], r.crossings[i], sign, cover, area, xMin, xMax)
	}
}

// addPiece accumulates the part of e between heights top and bot.
// This part must lie within a single pixel column.
func (r *Rasterizer) addPiece(e *edge, top, bot float64, sign float32, cover, area []float32, xMin, xMax int) {
	if bot <= top {
		return
	}
	c := sign * float32(bot-top)
	xm := e.xAt((top + bot) / 2)
	pix := int(math.Floor(xm))
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-(xm-float64(pix)))
	}
}

// integrate turns the accumulated cover and area values into nonzero
// coverage, in place in cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero values, together with its offset. If all values are zero,
// nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// markRow records that the edge e touches the given row of the small-path
// buffer, and widens the row's x-range to include the edge.
func (r *Rasterizer) markRow(e *edge, y, row, xMin, xMax int) {
	eyMin, eyMax := e.yRange()
	top := max(float64(y), eyMin)
	bot := min(float64(y+1), eyMax)
	x := int(math.Floor(e.xAt((top + bot) / 2)))
	x = min(max(x, xMin), xMax-1) - xMin
	r.rowXMin[row] = min(r.rowXMin[row], x)
	r.rowXMax[row] = max(r.rowXMax[row], x)
}

// fillSmall rasterizes the polygon using one buffer for the whole
// bounding box, processing edge by edge.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowXMin = slices.Grow(r.rowXMin[:0], height)[:height]
	r.rowXMax = slices.Grow(r.rowXMax[:0], height)[:height]
	for i := range height {
		r.rowXMin[i] = width
		r.rowXMax[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		eyMin, eyMax := e.yRange()
		from := max(int(math.Floor(eyMin)), yMin)
		to := min(int(math.Floor(eyMax))+1, yMax)
		for y := from; y < to; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.markRow(e, y, row, xMin, xMax)
		}
	}

	for row := range height {
		if r.rowXMax[row] < 0 {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLarge rasterizes the polygon scanline by scanline, using an active
// edge list and buffers for a single row.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) {
			if eyMin, _ := r.edges[next].yRange(); eyMin >= yBot {
				break
			}
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
			eyMin, eyMax := e.yRange()
			if eyMax <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if min(yBot, eyMax) > max(yTop, eyMin) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

const (
	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the bounding box area, in pixels, from which
	// on fillLarge is used instead of fillSmall.
	smallPathThreshold = 65536
)
