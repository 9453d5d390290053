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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// lanczos is the Lanczos resampling kernel with a lobes.
func lanczos(a float64) func(t float64) float64 {
	return func(t float64) float64 {
		t = math.Abs(t)
		switch {
		case t < 1e-12:
			return 1
		case t >= a:
			return 0
		}
		pt := math.Pi * t
		return a * math.Sin(pt) * math.Sin(pt/a) / (pt * pt)
	}
}

// Lanczos3 is a high quality downscaling filter with support 3.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos(3)}

// downscale resamples src onto the whole of dst, replacing the contents
// of dst.
func downscale(dst *image.RGBA, src *image.RGBA) {
	Lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// canvas is a reusable drawing surface with a fixed background.
type canvas struct {
	img        *image.RGBA
	background []uint8
}

func newCanvas(size int, bg color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	background := make([]uint8, len(img.Pix))
	copy(background, img.Pix)
	return &canvas{img: img, background: background}
}

// reset restores the background without allocating.
func (c *canvas) reset() {
	copy(c.img.Pix, c.background)
}

// paint returns a coverage callback which blends col into the canvas.
func (c *canvas) paint(col color.RGBA) func(y, xMin int, coverage []float32) {
	src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	return func(y, xMin int, coverage []float32) {
		row := c.img.Pix[c.img.PixOffset(xMin, y):]
		for i, a := range coverage {
			px := row[4*i : 4*i+3]
			if a >= 1 {
				px[0], px[1], px[2] = col.R, col.G, col.B
				continue
			}
			for k := range px {
				px[k] = uint8(float32(px[k])*(1-a) + src[k]*a + 0.5)
			}
		}
	}
}
