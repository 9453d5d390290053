package latent

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/shapes"
)

func TestResolverBuiltinDefaults(t *testing.T) {
	r := NewResolver(Defaults{})
	got := r.Generate(NewValues())
	want := shapes.SampleConfig{
		X:     shapes.DefaultCoordinate,
		Y:     shapes.DefaultCoordinate,
		Size:  shapes.DefaultSize,
		Shape: shapes.DefaultShape,
		Color: shapes.DefaultColor,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected sample (-want +got):\n%s", diff)
	}
}

func TestResolverCustomDefaults(t *testing.T) {
	size := 0.7
	tri := shapes.Triangle
	r := NewResolver(Defaults{Size: &size, Shape: &tri})

	s, err := NewSchema([]string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.FromList([]float64{0.1, 0.9})
	if err != nil {
		t.Fatal(err)
	}
	got := r.Generate(v)
	want := shapes.SampleConfig{X: 0.1, Y: 0.9, Size: 0.7, Shape: shapes.Triangle, Color: shapes.DefaultColor}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected sample (-want +got):\n%s", diff)
	}
}

func TestResolverExplicitZeroWins(t *testing.T) {
	one := 1.0
	r := NewResolver(Defaults{X: &one, Y: &one, Size: &one, Color: &one})

	s, err := NewSchema([]string{"color", "size", "x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.FromList([]float64{0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	got := r.Generate(v)
	want := shapes.SampleConfig{Shape: shapes.DefaultShape}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults overrode explicit zeros (-want +got):\n%s", diff)
	}
}

func TestResolverIdempotent(t *testing.T) {
	r := NewResolver(Defaults{})
	s, err := NewSchema([]string{"size", "x"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.FromList([]float64{0.3, 0.6})
	if err != nil {
		t.Fatal(err)
	}
	a := r.Generate(v)
	b := r.Generate(v)
	if a != b {
		t.Errorf("Generate not idempotent: %+v != %+v", a, b)
	}
	if x, _ := v.Get(shapes.FactorSize); x != 0.3 {
		t.Errorf("input modified: size = %g", x)
	}
	if v.Len() != 2 {
		t.Errorf("input modified: %d keys", v.Len())
	}
}
