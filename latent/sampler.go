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

// Package latent draws latent vectors and turns them into sample
// descriptions.
//
// A [Sampler] draws a matrix of raw latent values, one row per sample and
// one column per active factor. A [Schema] names the columns, and a
// [Resolver] fills in the factors which are not part of the schema.
package latent

import (
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"seehuhn.de/go/shapes"
)

// Distribution family names understood by NewSampler.
const (
	Uniform = "uniform"
	Beta    = "beta"
)

// DistributionConfig selects a distribution family and its parameters.
//
// For "uniform" the parameters are either empty (the unit interval) or
// [min, max]. For "beta" the parameters are [alpha, beta].
type DistributionConfig struct {
	Type   string    `yaml:"type" json:"type"`
	Params []float64 `yaml:"params" json:"params"`
}

// rander is implemented by the gonum univariate distributions.
type rander interface {
	Rand() float64
}

// Sampler draws independent samples from a fixed distribution.
// The Sampler holds no state apart from the distribution parameters and
// the random source passed to NewSampler; seeding is the caller's job.
type Sampler struct {
	dist rander
	desc string
}

// NewSampler returns a sampler for the given distribution.
// If cfg is nil, the uniform distribution on [0, 1] is used.
// If src is nil, the global random source is used.
func NewSampler(cfg *DistributionConfig, src rand.Source) (*Sampler, error) {
	if cfg == nil {
		cfg = &DistributionConfig{Type: Uniform}
	}

	badParams := func() error {
		return &shapes.ConfigurationError{
			Field: "distribution.params",
			Value: formatParams(cfg.Params),
			Err:   shapes.ErrBadParameters,
		}
	}

	s := &Sampler{}
	switch cfg.Type {
	case Uniform:
		lo, hi := 0.0, 1.0
		switch len(cfg.Params) {
		case 0:
			// unit interval
		case 2:
			lo, hi = cfg.Params[0], cfg.Params[1]
			if !(lo < hi) {
				return nil, badParams()
			}
		default:
			return nil, badParams()
		}
		s.dist = distuv.Uniform{Min: lo, Max: hi, Src: src}
		s.desc = "uniform(" + formatParams([]float64{lo, hi}) + ")"
	case Beta:
		if len(cfg.Params) != 2 || !(cfg.Params[0] > 0) || !(cfg.Params[1] > 0) {
			return nil, badParams()
		}
		s.dist = distuv.Beta{Alpha: cfg.Params[0], Beta: cfg.Params[1], Src: src}
		s.desc = "beta(" + formatParams(cfg.Params) + ")"
	default:
		return nil, &shapes.ConfigurationError{
			Field: "distribution.type",
			Value: cfg.Type,
			Err:   shapes.ErrUnknownDistribution,
		}
	}
	return s, nil
}

// Sample returns a rows×cols matrix of independent draws.
func (s *Sampler) Sample(rows, cols int) *mat.Dense {
	if rows <= 0 || cols <= 0 {
		return &mat.Dense{}
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = s.dist.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

func (s *Sampler) String() string {
	return s.desc
}

func formatParams(params []float64) string {
	var buf []byte
	for i, p := range params {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendFloat(buf, p, 'g', -1, 64)
	}
	return string(buf)
}
