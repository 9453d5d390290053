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

// Package dataset generates datasets of rendered shapes together with the
// latent vectors which produced them.
package dataset

import (
	"context"
	"image"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/latent"
	"seehuhn.de/go/shapes/render"
)

// Config describes a dataset.
type Config struct {
	// Factors lists the factors of variation, in latent column order.
	Factors []string

	// Render configures the canvas. Nil gives the default renderer.
	Render *render.Config

	// Distribution selects the latent distribution. Nil means uniform on
	// [0, 1].
	Distribution *latent.DistributionConfig

	// Defaults are used for all factors which are not listed in Factors.
	Defaults latent.Defaults
}

// Option modifies a Generator.
type Option func(*Generator)

// WithSource sets the random source for the latent distribution.
func WithSource(src rand.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithWorkers sets the number of goroutines used for rendering.
// Every worker uses its own Renderer.
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = max(n, 1) }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// Generator draws latent vectors and renders the corresponding images.
//
// The generator remembers the latest latent matrix, so that samples can be
// regenerated or latents can be supplied externally with SetLatents. A
// Generator is not safe for concurrent use.
type Generator struct {
	schema    *latent.Schema
	sampler   *latent.Sampler
	resolver  *latent.Resolver
	renderCfg render.Config
	renderer  *render.Renderer

	src     rand.Source
	workers int
	logger  *zap.Logger

	latents *mat.Dense
	n       int // rows of latents; kept separately since d may be 0
}

// New validates the configuration and returns a Generator.
// All configuration errors are reported here.
func New(cfg Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	var err error
	g.schema, err = latent.NewSchema(cfg.Factors)
	if err != nil {
		return nil, err
	}
	g.sampler, err = latent.NewSampler(cfg.Distribution, g.src)
	if err != nil {
		return nil, err
	}
	g.renderer, err = render.New(cfg.Render)
	if err != nil {
		return nil, err
	}
	g.renderCfg = g.renderer.Config()
	g.resolver = latent.NewResolver(cfg.Defaults)

	g.logger.Debug("dataset generator ready",
		zap.Stringers("factors", g.schema.Factors()),
		zap.Stringer("distribution", g.sampler),
		zap.Int("canvas_size", g.renderCfg.CanvasSize),
		zap.Int("anti_alias", g.renderCfg.AntiAlias),
		zap.Stringer("shape", g.resolver.Shape()),
		zap.Int("workers", g.workers))
	return g, nil
}

// Schema returns the factor schema of the dataset.
func (g *Generator) Schema() *latent.Schema {
	return g.schema
}

// RenderConfig returns the canvas configuration, with defaults filled in.
func (g *Generator) RenderConfig() render.Config {
	return g.renderCfg
}

// Generate draws n latent vectors and renders the corresponding images.
// Image i belongs to row i of the latent matrix.
func (g *Generator) Generate(ctx context.Context, n int) (*ImageArray, *mat.Dense, error) {
	g.latents = g.GenerateLatents(n)
	g.n = max(n, 0)
	images, err := g.GenerateSamples(ctx)
	if err != nil {
		return nil, nil, err
	}
	return images, g.latents, nil
}

// GenerateLatents draws an n×d latent matrix, where d is the number of
// active factors. The matrix is not stored in the generator.
func (g *Generator) GenerateLatents(n int) *mat.Dense {
	m := g.sampler.Sample(n, g.schema.Len())
	g.logger.Debug("latents drawn", zap.Int("n", n), zap.Int("d", g.schema.Len()))
	return m
}

// SetLatents replaces the stored latent matrix with a copy of m. The number
// of columns must equal the number of active factors.
func (g *Generator) SetLatents(m *mat.Dense) error {
	r, c := 0, 0
	if m != nil && !m.IsEmpty() {
		r, c = m.Dims()
	}
	if c != g.schema.Len() {
		return &shapes.ShapeMismatchError{Want: g.schema.Len(), Got: c}
	}
	if r > 0 {
		m = mat.DenseCopyOf(m)
	}
	g.latents = m
	g.n = r
	return nil
}

// Latents returns the stored latent matrix, or nil if none has been set.
func (g *Generator) Latents() *mat.Dense {
	return g.latents
}

// SampleConfigs resolves every row of the stored latent matrix into a
// sample description.
func (g *Generator) SampleConfigs() ([]shapes.SampleConfig, error) {
	n := g.rows()
	res := make([]shapes.SampleConfig, n)
	for i := range n {
		s, err := g.sample(i)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

// GenerateSamples renders one image for every row of the stored latent
// matrix. If any sample fails, no images are returned.
func (g *Generator) GenerateSamples(ctx context.Context) (*ImageArray, error) {
	n := g.rows()
	size := g.renderCfg.CanvasSize
	images := NewImageArray(n, size, size)
	start := time.Now()

	workers := min(g.workers, max(n, 1))
	if workers == 1 {
		if err := g.renderRange(ctx, g.renderer, images, 0, 1); err != nil {
			return nil, err
		}
	} else {
		eg, ctx := errgroup.WithContext(ctx)
		for w := range workers {
			eg.Go(func() error {
				r, err := render.New(&g.renderCfg)
				if err != nil {
					return err
				}
				return g.renderRange(ctx, r, images, w, workers)
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	g.logger.Debug("samples rendered",
		zap.Int("n", n),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)))
	return images, nil
}

// renderRange renders the samples first, first+step, first+2*step, ...
// into images, using r.
func (g *Generator) renderRange(ctx context.Context, r *render.Renderer, images *ImageArray, first, step int) error {
	size := g.renderCfg.CanvasSize
	scratch := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := first; i < images.N; i += step {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := g.sample(i)
		if err != nil {
			return err
		}
		if err := r.RenderInto(scratch, s); err != nil {
			return err
		}
		images.Set(i, scratch)
	}
	return nil
}

func (g *Generator) sample(i int) (shapes.SampleConfig, error) {
	v := latent.NewValues()
	if g.schema.Len() > 0 {
		var err error
		v, err = g.schema.FromRow(g.latents, i)
		if err != nil {
			return shapes.SampleConfig{}, err
		}
	}
	return g.resolver.Generate(v), nil
}

func (g *Generator) rows() int {
	return g.n
}
