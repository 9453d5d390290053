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

// Package testcases contains named rendering examples which are shared
// between tests, benchmarks and the reference generators in the
// subdirectories.
package testcases

import (
	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/render"
)

// TestCase defines a single rendering example.
type TestCase struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Render render.Config       // canvas settings (zero fields take defaults)
	Sample shapes.SampleConfig // the shape to draw
}

// sample is a helper to create a SampleConfig.
func sample(s shapes.Shape, x, y, size, col float64) shapes.SampleConfig {
	return shapes.SampleConfig{X: x, Y: y, Size: size, Shape: s, Color: col}
}

// bound is a helper to set the optional size bounds of a render.Config.
func bound(v float64) *float64 {
	return &v
}
