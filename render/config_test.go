package render

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/shapes"
)

func TestWithDefaults(t *testing.T) {
	var nilCfg *Config
	want := Config{
		CanvasSize:      DefaultCanvasSize,
		BackgroundColor: DefaultBackgroundColor,
		AntiAlias:       DefaultAntiAlias,
		SampleColor:     DefaultSampleColor,
		SampleColor2:    DefaultSampleColor2,
		SizeLow:         ptr(DefaultSizeLow),
		SizeHigh:        ptr(DefaultSizeHigh),
	}
	if diff := cmp.Diff(want, nilCfg.WithDefaults()); diff != "" {
		t.Errorf("nil config (-want +got):\n%s", diff)
	}

	partial := &Config{CanvasSize: 32, SampleColor: "green", SizeLow: ptr(0)}
	got := partial.WithDefaults()
	want.CanvasSize = 32
	want.SampleColor = "green"
	want.SizeLow = ptr(0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("partial config (-want +got):\n%s", diff)
	}
	if partial.AntiAlias != 0 || partial.SizeHigh != nil {
		t.Error("WithDefaults modified its receiver")
	}
}

// TestSizeBoundsSeparately checks that each area bound falls back to its
// own default when only the other one is given.
func TestSizeBoundsSeparately(t *testing.T) {
	cases := []struct {
		cfg    Config
		lo, hi float64
	}{
		{Config{SizeLow: ptr(0.01)}, 0.01, DefaultSizeHigh},
		{Config{SizeHigh: ptr(0.05)}, DefaultSizeLow, 0.05},
		{Config{SizeLow: ptr(0), SizeHigh: ptr(0.3)}, 0, 0.3},
	}
	for _, c := range cases {
		full := c.cfg.WithDefaults()
		if *full.SizeLow != c.lo || *full.SizeHigh != c.hi {
			t.Errorf("%v/%v: got bounds [%g, %g], want [%g, %g]",
				c.cfg.SizeLow, c.cfg.SizeHigh, *full.SizeLow, *full.SizeHigh, c.lo, c.hi)
		}

		g, err := NewGeometry(&c.cfg)
		if err != nil {
			t.Errorf("[%g, %g]: %v", c.lo, c.hi, err)
			continue
		}
		if w, want := g.Width(0), math.Sqrt(c.lo)*g.CanvasWidth(); math.Abs(w-want) > 1e-9 {
			t.Errorf("[%g, %g]: Width(0) = %g, want %g", c.lo, c.hi, w, want)
		}
		if w, want := g.Width(1), math.Sqrt(c.hi)*g.CanvasWidth(); math.Abs(w-want) > 1e-9 {
			t.Errorf("[%g, %g]: Width(1) = %g, want %g", c.lo, c.hi, w, want)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		cfg   Config
		field string
		cause error
	}{
		{Config{CanvasSize: -1}, "canvas_size", shapes.ErrOutOfRange},
		{Config{AntiAlias: -2}, "anti_alias", shapes.ErrOutOfRange},
		{Config{SizeLow: ptr(0.5), SizeHigh: ptr(0.2)}, "size_high", shapes.ErrOutOfRange},
		{Config{SizeLow: ptr(-0.1), SizeHigh: ptr(0.2)}, "size_low", shapes.ErrOutOfRange},
		{Config{SizeHigh: ptr(1.5)}, "size_high", shapes.ErrOutOfRange},
		{Config{SizeLow: ptr(0.5)}, "size_high", shapes.ErrOutOfRange},
		{Config{SizeHigh: ptr(0)}, "size_high", shapes.ErrOutOfRange},
		{Config{BackgroundColor: "nope"}, "background_color", shapes.ErrBadColor},
		{Config{SampleColor: "#zzz"}, "sample_color", shapes.ErrBadColor},
		{Config{SampleColor2: "rgb()"}, "sample_color_2", shapes.ErrBadColor},
	}
	for _, c := range cases {
		_, err := New(&c.cfg)
		var cfgErr *shapes.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%+v: expected ConfigurationError, got %v", c.cfg, err)
			continue
		}
		if cfgErr.Field != c.field || !errors.Is(err, c.cause) {
			t.Errorf("%+v: got %v", c.cfg, err)
		}
	}
}
