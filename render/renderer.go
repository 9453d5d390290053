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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/raster"
)

// Renderer draws sample descriptions.
//
// A Renderer owns a canvas which is reused for every call to Render. It is
// not safe for concurrent use; use one Renderer per goroutine.
type Renderer struct {
	cfg        Config
	geom       *Geometry
	background color.RGBA
	canvas     *canvas
	rast       *raster.Rasterizer
}

// New returns a Renderer for the given configuration.
// Missing configuration values are replaced by their defaults; a nil
// configuration gives the default renderer. Invalid values, including
// malformed colors, are reported here rather than at render time.
func New(cfg *Config) (*Renderer, error) {
	c := cfg.WithDefaults()
	geom, err := NewGeometry(&c)
	if err != nil {
		return nil, err
	}
	bg, _, _, err := c.colors()
	if err != nil {
		return nil, err
	}

	size := c.CanvasSize * c.AntiAlias
	clip := rect.Rect{URx: float64(size), URy: float64(size)}
	return &Renderer{
		cfg:        c,
		geom:       geom,
		background: bg,
		canvas:     newCanvas(size, bg),
		rast:       raster.NewRasterizer(clip),
	}, nil
}

// Config returns the configuration of the renderer, with all defaults
// filled in.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Geometry returns the coordinate and color mapping used by the renderer.
func (r *Renderer) Geometry() *Geometry {
	return r.geom
}

// Background returns the parsed background color.
func (r *Renderer) Background() color.RGBA {
	return r.background
}

// Render draws the sample into a new CanvasSize×CanvasSize image.
func (r *Renderer) Render(s shapes.SampleConfig) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, r.cfg.CanvasSize, r.cfg.CanvasSize))
	if err := r.RenderInto(dst, s); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderInto draws the sample into dst, which must be a
// CanvasSize×CanvasSize image. On error, dst is not modified.
func (r *Renderer) RenderInto(dst *image.RGBA, s shapes.SampleConfig) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if b := dst.Bounds(); b.Dx() != r.cfg.CanvasSize || b.Dy() != r.cfg.CanvasSize {
		return fmt.Errorf("render: destination is %dx%d, want %dx%d",
			b.Dx(), b.Dy(), r.cfg.CanvasSize, r.cfg.CanvasSize)
	}

	r.canvas.reset()
	r.rast.FillPolygon(r.geom.Polygon(s), r.canvas.paint(r.geom.Color(s.Color)))
	downscale(dst, r.canvas.img)
	return nil
}
