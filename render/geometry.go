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

package render

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/raster"
)

// Geometry maps normalized sample values to pixel coordinates on the
// enlarged canvas, and color values to RGB colors.
// A Geometry is immutable and can be shared between goroutines.
type Geometry struct {
	enlarged          float64
	sizeLow, sizeHigh float64
	high, low         color.RGBA
}

// NewGeometry returns the mapping for the given configuration.
// Missing configuration values are replaced by their defaults.
func NewGeometry(cfg *Config) (*Geometry, error) {
	c := cfg.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	_, high, low, err := c.colors()
	if err != nil {
		return nil, err
	}
	lo, hi := c.sizeRange()
	return &Geometry{
		enlarged: float64(c.CanvasSize * c.AntiAlias),
		sizeLow:  lo,
		sizeHigh: hi,
		high:     high,
		low:      low,
	}, nil
}

// CanvasWidth returns the width of the enlarged canvas in pixels.
func (g *Geometry) CanvasWidth() float64 {
	return g.enlarged
}

// Width returns the width of a shape of the given size.
//
// The size is first mapped linearly onto the range [SizeLow, SizeHigh] of
// relative areas. The width is the square root of this area, so that the
// area of a shape grows linearly with its size.
func (g *Geometry) Width(size float64) float64 {
	area := g.sizeLow + (g.sizeHigh-g.sizeLow)*size
	return math.Sqrt(area) * g.enlarged
}

// Radius returns the circumradius of a shape of the given size.
// A square with this circumradius is exactly Width(size) wide.
func (g *Geometry) Radius(size float64) float64 {
	return g.Width(size) * math.Sqrt2 / 2
}

// MaxOffset returns the margin kept free at each side of the canvas.
// This is half the width of the largest possible shape.
func (g *Geometry) MaxOffset() float64 {
	return g.Width(1) / 2
}

// Center maps normalized coordinates to the shape center on the enlarged
// canvas. The map is the same affine transformation for all samples: it
// does not depend on the size of the shape.
func (g *Geometry) Center(x, y float64) vec.Vec2 {
	off := g.MaxOffset()
	extent := g.enlarged - 2*off
	return vec.Vec2{
		X: extent*x + off,
		Y: extent*y + off,
	}
}

// Color interpolates linearly between the two sample colors.
// Value 1 gives SampleColor, value 0 gives SampleColor2. Channel values
// are truncated towards zero.
func (g *Geometry) Color(v float64) color.RGBA {
	mix := func(hi, lo uint8) uint8 {
		x := float64(hi)*v + float64(lo)*(1-v)
		return uint8(min(max(math.Trunc(x), 0), 255))
	}
	return color.RGBA{
		R: mix(g.high.R, g.low.R),
		G: mix(g.high.G, g.low.G),
		B: mix(g.high.B, g.low.B),
		A: 0xFF,
	}
}

// Polygon returns the vertices of the shape described by s, in
// enlarged canvas coordinates.
func (g *Geometry) Polygon(s shapes.SampleConfig) []vec.Vec2 {
	return raster.RegularPolygon(g.Center(s.X, s.Y), g.Radius(s.Size), s.Shape.Sides(), 0)
}
