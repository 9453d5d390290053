package dataset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/latent"
	"seehuhn.de/go/shapes/render"
)

func TestGenerateShape(t *testing.T) {
	g, err := New(Config{Factors: []string{"x", "y"}},
		WithSource(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}

	images, latents, err := g.Generate(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}

	r, c := latents.Dims()
	if r != 5 || c != 2 {
		t.Errorf("latents are %dx%d, want 5x2", r, c)
	}
	for i := range r {
		for j := range c {
			if v := latents.At(i, j); v < 0 || v > 1 {
				t.Errorf("latent[%d,%d] = %g outside [0, 1]", i, j, v)
			}
		}
	}
	if d := cmp.Diff([4]int{5, 64, 64, 3}, images.Shape()); d != "" {
		t.Errorf("image array shape (-want +got):\n%s", d)
	}
	if len(images.Pix) != 5*64*64*3 {
		t.Errorf("len(Pix) = %d", len(images.Pix))
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	cfg := Config{
		Factors:      []string{"size", "color", "x"},
		Distribution: &latent.DistributionConfig{Type: latent.Beta, Params: []float64{2, 5}},
		Render:       &render.Config{CanvasSize: 32},
	}

	run := func(workers int) (*ImageArray, *mat.Dense) {
		g, err := New(cfg, WithSource(rand.NewPCG(7, 7)), WithWorkers(workers))
		if err != nil {
			t.Fatal(err)
		}
		images, latents, err := g.Generate(context.Background(), 13)
		if err != nil {
			t.Fatal(err)
		}
		return images, latents
	}

	seqImages, seqLatents := run(1)
	parImages, parLatents := run(4)

	if !mat.Equal(seqLatents, parLatents) {
		t.Error("latents differ between runs with the same seed")
	}
	if !bytes.Equal(seqImages.Pix, parImages.Pix) {
		t.Error("parallel images differ from sequential images")
	}
}

func TestSetLatentsMismatch(t *testing.T) {
	g, err := New(Config{Factors: []string{"x", "y"}})
	if err != nil {
		t.Fatal(err)
	}
	err = g.SetLatents(mat.NewDense(4, 3, nil))
	var mErr *shapes.ShapeMismatchError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
	if mErr.Want != 2 || mErr.Got != 3 {
		t.Errorf("got Want=%d Got=%d, want 2 and 3", mErr.Want, mErr.Got)
	}
}

func TestSetLatentsCopies(t *testing.T) {
	g, err := New(Config{Factors: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	m := mat.NewDense(2, 1, []float64{0.25, 0.75})
	if err := g.SetLatents(m); err != nil {
		t.Fatal(err)
	}
	m.Set(0, 0, 1)

	configs, err := g.SampleConfigs()
	if err != nil {
		t.Fatal(err)
	}
	if configs[0].X != 0.25 {
		t.Errorf("X = %g after changing the caller's matrix, want 0.25", configs[0].X)
	}
}

// Samples generated from explicit latents must equal direct renderings of
// the resolved sample descriptions.
func TestSetLatents(t *testing.T) {
	size := 0.0
	g, err := New(Config{
		Factors:  []string{"x", "color"},
		Render:   &render.Config{CanvasSize: 24},
		Defaults: latent.Defaults{Size: &size},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := mat.NewDense(3, 2, []float64{
		0, 1,
		0.5, 0.5,
		1, 0,
	})
	if err := g.SetLatents(m); err != nil {
		t.Fatal(err)
	}

	configs, err := g.SampleConfigs()
	if err != nil {
		t.Fatal(err)
	}
	want := []shapes.SampleConfig{
		{X: 0, Y: 0.5, Size: 0, Shape: shapes.Square, Color: 1},
		{X: 0.5, Y: 0.5, Size: 0, Shape: shapes.Square, Color: 0.5},
		{X: 1, Y: 0.5, Size: 0, Shape: shapes.Square, Color: 0},
	}
	if d := cmp.Diff(want, configs); d != "" {
		t.Fatalf("sample configs (-want +got):\n%s", d)
	}

	images, err := g.GenerateSamples(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	r, err := render.New(&render.Config{CanvasSize: 24})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range want {
		img, err := r.Render(s)
		if err != nil {
			t.Fatal(err)
		}
		for y := range 24 {
			for x := range 24 {
				got := images.At(i, x, y)
				exp := img.RGBAAt(x, y)
				if got.R != exp.R || got.G != exp.G || got.B != exp.B {
					t.Fatalf("sample %d: pixel (%d,%d) = %v, want %v", i, x, y, got, exp)
				}
			}
		}
	}
}

func TestNoFactors(t *testing.T) {
	g, err := New(Config{Render: &render.Config{CanvasSize: 16}})
	if err != nil {
		t.Fatal(err)
	}
	images, _, err := g.Generate(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if images.N != 3 {
		t.Fatalf("got %d images, want 3", images.N)
	}
	stride := 16 * 16 * 3
	first := images.Pix[:stride]
	for i := 1; i < 3; i++ {
		if !bytes.Equal(first, images.Pix[i*stride:(i+1)*stride]) {
			t.Errorf("image %d differs from image 0", i)
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	g, err := New(Config{Factors: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	images, _, err := g.Generate(ctx, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if images != nil {
		t.Error("expected no images after cancellation")
	}
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want any
	}{
		{"unknown factor", Config{Factors: []string{"x", "rotation"}}, &shapes.ValidationError{}},
		{"duplicate factor", Config{Factors: []string{"x", "x"}}, &shapes.ValidationError{}},
		{"bad distribution", Config{Distribution: &latent.DistributionConfig{Type: "gamma"}}, &shapes.ConfigurationError{}},
		{"bad color", Config{Render: &render.Config{SampleColor: "#12345"}}, &shapes.ConfigurationError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.cfg)
			switch c.want.(type) {
			case *shapes.ValidationError:
				var target *shapes.ValidationError
				if !errors.As(err, &target) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			case *shapes.ConfigurationError:
				var target *shapes.ConfigurationError
				if !errors.As(err, &target) {
					t.Errorf("expected ConfigurationError, got %v", err)
				}
			}
		})
	}
}

func TestImageArray(t *testing.T) {
	a := NewImageArray(2, 3, 4)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	a.Set(1, img)

	if d := cmp.Diff(img.Pix, a.Image(1).Pix); d != "" {
		t.Errorf("image round trip (-want +got):\n%s", d)
	}
	if got, want := a.At(1, 2, 1), img.RGBAAt(2, 1); got != want {
		t.Errorf("At(1, 2, 1) = %v, want %v", got, want)
	}
	for _, v := range a.Pix[:3*4*3] {
		if v != 0 {
			t.Fatal("slot 0 was modified")
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	g, err := New(Config{Factors: []string{"x", "y", "size", "color"}},
		WithSource(rand.NewPCG(1, 1)), WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	for b.Loop() {
		if _, _, err := g.Generate(ctx, 64); err != nil {
			b.Fatal(err)
		}
	}
}
