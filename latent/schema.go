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
	"slices"

	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/shapes"
)

// Schema is an ordered list of active factors.
// The order determines which column of a latent matrix is mapped onto which
// factor. A Schema is immutable and can be shared between goroutines.
type Schema struct {
	factors []shapes.Factor
}

// NewSchema validates the factor names and returns the corresponding
// schema. Every name must be one of [shapes.AllowedFactors], and no name
// may appear twice.
func NewSchema(names []string) (*Schema, error) {
	available := slices.Clone(shapes.AllowedFactors)
	factors := make([]shapes.Factor, 0, len(names))
	for _, name := range names {
		f := shapes.Factor(name)
		if !f.IsValid() {
			return nil, &shapes.ValidationError{Kind: shapes.UnknownFactor, Factor: f}
		}
		idx := slices.Index(available, f)
		if idx < 0 {
			return nil, &shapes.ValidationError{Kind: shapes.DuplicateFactor, Factor: f}
		}
		available = slices.Delete(available, idx, idx+1)
		factors = append(factors, f)
	}
	return &Schema{factors: factors}, nil
}

// Len returns the number of active factors.
func (s *Schema) Len() int {
	return len(s.factors)
}

// Factors returns the active factors in schema order.
func (s *Schema) Factors() []shapes.Factor {
	return slices.Clone(s.factors)
}

// FromList maps a latent vector onto the factors of the schema.
// The length of values must equal the length of the schema.
func (s *Schema) FromList(values []float64) (Values, error) {
	if len(values) != len(s.factors) {
		return Values{}, &shapes.ShapeMismatchError{Want: len(s.factors), Got: len(values)}
	}
	return Values{
		keys: s.factors,
		vals: slices.Clone(values),
	}, nil
}

// FromRow maps row i of a latent matrix onto the factors of the schema.
func (s *Schema) FromRow(m mat.Matrix, i int) (Values, error) {
	_, c := m.Dims()
	row := make([]float64, c)
	for j := range c {
		row[j] = m.At(i, j)
	}
	return s.FromList(row)
}

// Values maps factors to sampled values.
// Iteration order is the order in which the factors were inserted.
type Values struct {
	keys []shapes.Factor
	vals []float64
}

// NewValues returns an empty mapping.
func NewValues() Values {
	return Values{}
}

// Set assigns a value to a factor. A new factor is appended at the end of
// the insertion order.
func (v *Values) Set(f shapes.Factor, x float64) {
	if idx := slices.Index(v.keys, f); idx >= 0 {
		v.vals[idx] = x
		return
	}
	v.keys = append(slices.Clip(v.keys), f)
	v.vals = append(v.vals, x)
}

// Get returns the value for f, and whether f is present.
func (v Values) Get(f shapes.Factor) (float64, bool) {
	idx := slices.Index(v.keys, f)
	if idx < 0 {
		return 0, false
	}
	return v.vals[idx], true
}

// Keys returns the factors in insertion order.
func (v Values) Keys() []shapes.Factor {
	return slices.Clone(v.keys)
}

// Len returns the number of factors in the mapping.
func (v Values) Len() int {
	return len(v.keys)
}
