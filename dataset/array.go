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

package dataset

import (
	"image"
	"image/color"
)

// ImageArray holds N square RGB images in a single buffer.
// Pixel values are stored in (image, row, column, channel) order, i.e. the
// array has shape (N, Height, Width, 3).
type ImageArray struct {
	N      int
	Height int
	Width  int
	Pix    []uint8
}

// NewImageArray allocates an array for n images of the given size.
func NewImageArray(n, height, width int) *ImageArray {
	return &ImageArray{
		N:      n,
		Height: height,
		Width:  width,
		Pix:    make([]uint8, n*height*width*3),
	}
}

// Shape returns the dimensions of the array.
func (a *ImageArray) Shape() [4]int {
	return [4]int{a.N, a.Height, a.Width, 3}
}

func (a *ImageArray) stride() int {
	return a.Height * a.Width * 3
}

// Set copies the RGB channels of img into slot i.
// The image must have the array's width and height.
func (a *ImageArray) Set(i int, img *image.RGBA) {
	dst := a.Pix[i*a.stride() : (i+1)*a.stride()]
	b := img.Bounds()
	k := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := range b.Dx() {
			copy(dst[k:k+3], row[4*x:4*x+3])
			k += 3
		}
	}
}

// Image returns a copy of image i.
func (a *ImageArray) Image(i int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Width, a.Height))
	src := a.Pix[i*a.stride() : (i+1)*a.stride()]
	for j := range a.Width * a.Height {
		copy(img.Pix[4*j:4*j+3], src[3*j:3*j+3])
		img.Pix[4*j+3] = 0xFF
	}
	return img
}

// At returns the color of pixel (x, y) in image i.
func (a *ImageArray) At(i, x, y int) color.RGBA {
	k := i*a.stride() + (y*a.Width+x)*3
	return color.RGBA{R: a.Pix[k], G: a.Pix[k+1], B: a.Pix[k+2], A: 0xFF}
}
