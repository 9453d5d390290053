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

// Package render turns sample descriptions into anti-aliased images.
//
// A [Renderer] draws a regular polygon onto a canvas which is AntiAlias
// times larger than the output in each direction, and then scales the
// canvas down with a Lanczos filter. The downscale removes the jagged
// polygon edges.
package render

//go:generate go run ../testcases/genpdf

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/shapes"
)

// Default values for the fields of Config.
const (
	DefaultCanvasSize      = 64
	DefaultBackgroundColor = "white"
	DefaultAntiAlias       = 2
	DefaultSampleColor     = "red"
	DefaultSampleColor2    = "blue"

	// With these bounds, shape widths range from 15% to 35% of the canvas
	// width.
	DefaultSizeLow  = 0.15 * 0.15
	DefaultSizeHigh = 0.35 * 0.35
)

// Config describes the canvas and the mapping from sample values to
// pixels. Zero values and unset bounds are replaced by the defaults above.
type Config struct {
	// CanvasSize is the width and height of the output images in pixels.
	CanvasSize int `yaml:"canvas_size" json:"canvas_size"`

	// BackgroundColor is the color of the canvas outside the shape.
	BackgroundColor string `yaml:"background_color" json:"background_color"`

	// AntiAlias is the super-sampling factor.
	AntiAlias int `yaml:"anti_alias" json:"anti_alias"`

	// SampleColor is used for color value 1, SampleColor2 for color value
	// 0. Values in between are interpolated linearly.
	SampleColor  string `yaml:"sample_color" json:"sample_color"`
	SampleColor2 string `yaml:"sample_color_2" json:"sample_color_2"`

	// SizeLow and SizeHigh give the range of shape areas, relative to the
	// canvas area, for size values 0 and 1. Each unset bound takes its
	// default; an explicit 0 is kept.
	SizeLow  *float64 `yaml:"size_low" json:"size_low,omitempty"`
	SizeHigh *float64 `yaml:"size_high" json:"size_high,omitempty"`
}

// WithDefaults returns a copy of the configuration where all missing
// values are filled in. A nil receiver gives the default configuration.
func (c *Config) WithDefaults() Config {
	var res Config
	if c != nil {
		res = *c
	}
	if res.CanvasSize == 0 {
		res.CanvasSize = DefaultCanvasSize
	}
	if res.BackgroundColor == "" {
		res.BackgroundColor = DefaultBackgroundColor
	}
	if res.AntiAlias == 0 {
		res.AntiAlias = DefaultAntiAlias
	}
	if res.SampleColor == "" {
		res.SampleColor = DefaultSampleColor
	}
	if res.SampleColor2 == "" {
		res.SampleColor2 = DefaultSampleColor2
	}
	lo, hi := res.sizeRange()
	res.SizeLow, res.SizeHigh = &lo, &hi
	return res
}

// Validate checks a configuration where defaults have already been filled
// in. Malformed color specifications are reported as well.
func (c *Config) Validate() error {
	if c.CanvasSize <= 0 {
		return outOfRange("canvas_size", c.CanvasSize)
	}
	if c.AntiAlias <= 0 {
		return outOfRange("anti_alias", c.AntiAlias)
	}
	lo, hi := c.sizeRange()
	if !(lo >= 0 && lo <= 1) {
		return outOfRange("size_low", lo)
	}
	if !(hi > 0 && hi <= 1 && hi >= lo) {
		return outOfRange("size_high", hi)
	}
	_, _, _, err := c.colors()
	return err
}

// sizeRange returns the area bounds, using the defaults for unset values.
func (c *Config) sizeRange() (lo, hi float64) {
	lo, hi = DefaultSizeLow, DefaultSizeHigh
	if c.SizeLow != nil {
		lo = *c.SizeLow
	}
	if c.SizeHigh != nil {
		hi = *c.SizeHigh
	}
	return lo, hi
}

// colors parses the three color specifications of the configuration.
func (c *Config) colors() (bg, high, low color.RGBA, err error) {
	bg, err = ParseColor(c.BackgroundColor)
	if err != nil {
		return bg, high, low, withField(err, "background_color")
	}
	high, err = ParseColor(c.SampleColor)
	if err != nil {
		return bg, high, low, withField(err, "sample_color")
	}
	low, err = ParseColor(c.SampleColor2)
	if err != nil {
		return bg, high, low, withField(err, "sample_color_2")
	}
	return bg, high, low, nil
}

func outOfRange(field string, value any) error {
	return &shapes.ConfigurationError{
		Field: field,
		Value: fmt.Sprint(value),
		Err:   shapes.ErrOutOfRange,
	}
}

func withField(err error, field string) error {
	if cfgErr, ok := err.(*shapes.ConfigurationError); ok {
		cfgErr.Field = field
	}
	return err
}
