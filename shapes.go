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

// Package shapes defines the sample descriptions used to generate synthetic
// image datasets of single, flat-colored regular polygons.
//
// A sample is parameterized by a small set of factors of variation
// (position, size, color) plus a polygon shape. The subpackages turn random
// latent vectors into such descriptions ([seehuhn.de/go/shapes/latent]),
// render them into anti-aliased images ([seehuhn.de/go/shapes/render]) and
// assemble whole datasets ([seehuhn.de/go/shapes/dataset]).
package shapes

//go:generate go run ./testcases/export

import (
	"fmt"
	"math"
	"strings"
)

// Factor names one axis of variation which a latent dimension can be
// mapped onto.
type Factor string

// The factors of variation.
const (
	FactorX     Factor = "x"
	FactorY     Factor = "y"
	FactorColor Factor = "color"
	FactorSize  Factor = "size"
)

// AllowedFactors lists all factors which may appear in a factor schema.
var AllowedFactors = []Factor{FactorX, FactorY, FactorColor, FactorSize}

// IsValid reports whether f is one of the allowed factors.
func (f Factor) IsValid() bool {
	switch f {
	case FactorX, FactorY, FactorColor, FactorSize:
		return true
	}
	return false
}

func (f Factor) String() string {
	return string(f)
}

// Shape is a regular polygon variant.
// The numeric value of a Shape is its number of sides.
type Shape int

// The supported polygon variants.
const (
	Triangle Shape = 3
	Square   Shape = 4
	Pentagon Shape = 5
	Hexagon  Shape = 6

	// Circle is approximated by a regular polygon with many sides.
	Circle Shape = 64
)

var shapeNames = map[Shape]string{
	Triangle: "triangle",
	Square:   "square",
	Pentagon: "pentagon",
	Hexagon:  "hexagon",
	Circle:   "circle",
}

// Sides returns the number of sides of the polygon.
func (s Shape) Sides() int {
	return int(s)
}

// IsValid reports whether s is one of the supported variants.
func (s Shape) IsValid() bool {
	_, ok := shapeNames[s]
	return ok
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a shape name like "square" into a Shape.
// Names are case-insensitive.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == key {
			return s, nil
		}
	}
	return 0, &ConfigurationError{Field: "shape", Value: name, Err: ErrUnknownShape}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &ConfigurationError{Field: "shape", Value: s.String(), Err: ErrUnknownShape}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Default values for the fields of a SampleConfig.
const (
	DefaultCoordinate = 0.5
	DefaultSize       = 0.2
	DefaultShape      = Square
	DefaultColor      = 1.0
)

// SampleConfig is a fully resolved description of one sample.
//
// X, Y and Size are normalized to the range [0, 1]. Color is a scalar in
// [0, 1] which selects a color between the two endpoint colors of the
// renderer: 1 gives the first sample color, 0 gives the second one.
type SampleConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Shape Shape   `json:"shape"`
	Color float64 `json:"color"`
}

// Validate checks that all numeric fields are finite and that the shape is
// one of the supported variants.
func (s SampleConfig) Validate() error {
	fields := []struct {
		f Factor
		v float64
	}{
		{FactorX, s.X},
		{FactorY, s.Y},
		{FactorSize, s.Size},
		{FactorColor, s.Color},
	}
	for _, fv := range fields {
		if math.IsNaN(fv.v) || math.IsInf(fv.v, 0) {
			return &ValidationError{Kind: InvalidValue, Factor: fv.f, Err: ErrNotFinite}
		}
	}
	if !s.Shape.IsValid() {
		return &ValidationError{Kind: InvalidValue, Factor: "shape", Err: ErrUnknownShape}
	}
	return nil
}
