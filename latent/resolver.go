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

package latent

import (
	"seehuhn.de/go/shapes"
)

// Defaults holds resolver-level default values. Nil fields fall back to
// the built-in defaults of the shapes package.
type Defaults struct {
	X     *float64
	Y     *float64
	Size  *float64
	Color *float64
	Shape *shapes.Shape
}

// Resolver turns factor values into complete sample descriptions.
// A Resolver is immutable and can be shared between goroutines.
type Resolver struct {
	x, y, size, color float64
	shape             shapes.Shape
}

// NewResolver returns a resolver which uses the given defaults for all
// factors missing from its input.
func NewResolver(d Defaults) *Resolver {
	return &Resolver{
		x:     valueOr(d.X, shapes.DefaultCoordinate),
		y:     valueOr(d.Y, shapes.DefaultCoordinate),
		size:  valueOr(d.Size, shapes.DefaultSize),
		color: valueOr(d.Color, shapes.DefaultColor),
		shape: valueOr(d.Shape, shapes.DefaultShape),
	}
}

// Generate returns the sample description for the given factor values.
// Values present in v always take precedence, including zero values.
// Factors missing from v are set to the resolver defaults.
func (r *Resolver) Generate(v Values) shapes.SampleConfig {
	s := shapes.SampleConfig{
		X:     r.x,
		Y:     r.y,
		Size:  r.size,
		Color: r.color,
		Shape: r.shape,
	}
	for i, f := range v.keys {
		x := v.vals[i]
		switch f {
		case shapes.FactorX:
			s.X = x
		case shapes.FactorY:
			s.Y = x
		case shapes.FactorSize:
			s.Size = x
		case shapes.FactorColor:
			s.Color = x
		}
	}
	return s
}

// Shape returns the polygon variant used for all samples.
func (r *Resolver) Shape() shapes.Shape {
	return r.shape
}

func valueOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}
