package testcases

import (
	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/render"
)

var shapeCases = []TestCase{
	{Name: "triangle", Sample: sample(shapes.Triangle, 0.5, 0.5, 0.5, 1)},
	{Name: "square", Sample: sample(shapes.Square, 0.5, 0.5, 0.5, 1)},
	{Name: "pentagon", Sample: sample(shapes.Pentagon, 0.5, 0.5, 0.5, 1)},
	{Name: "hexagon", Sample: sample(shapes.Hexagon, 0.5, 0.5, 0.5, 1)},
	{Name: "circle", Sample: sample(shapes.Circle, 0.5, 0.5, 0.5, 1)},
}

// The largest shape in every corner touches the canvas border but is not
// clipped.
var positionCases = []TestCase{
	{Name: "top_left", Sample: sample(shapes.Square, 0, 0, 1, 1)},
	{Name: "top_right", Sample: sample(shapes.Square, 1, 0, 1, 1)},
	{Name: "bottom_left", Sample: sample(shapes.Square, 0, 1, 1, 1)},
	{Name: "bottom_right", Sample: sample(shapes.Square, 1, 1, 1, 1)},
	{Name: "off_center", Sample: sample(shapes.Hexagon, 0.25, 0.7, 0.3, 1)},
}

var sizeCases = []TestCase{
	{Name: "square_min", Sample: sample(shapes.Square, 0.5, 0.5, 0, 1)},
	{Name: "square_max", Sample: sample(shapes.Square, 0.5, 0.5, 1, 1)},
	{Name: "circle_min", Sample: sample(shapes.Circle, 0.5, 0.5, 0, 1)},
	{Name: "circle_max", Sample: sample(shapes.Circle, 0.5, 0.5, 1, 1)},
	{
		Name:   "low_bound_only",
		Render: render.Config{SizeLow: bound(0.06)},
		Sample: sample(shapes.Hexagon, 0.5, 0.5, 0, 1),
	},
	{
		Name:   "wide_range",
		Render: render.Config{SizeLow: bound(0.01), SizeHigh: bound(0.25)},
		Sample: sample(shapes.Pentagon, 0.5, 0.5, 0.8, 1),
	},
}

var colorCases = []TestCase{
	{Name: "endpoint_high", Sample: sample(shapes.Square, 0.5, 0.5, 0.5, 1)},
	{Name: "endpoint_low", Sample: sample(shapes.Square, 0.5, 0.5, 0.5, 0)},
	{Name: "midpoint", Sample: sample(shapes.Square, 0.5, 0.5, 0.5, 0.5)},
	{
		Name: "custom_colors",
		Render: render.Config{
			BackgroundColor: "black",
			SampleColor:     "#ff8000",
			SampleColor2:    "rgb(10, 20, 30)",
		},
		Sample: sample(shapes.Circle, 0.5, 0.5, 0.5, 0.25),
	},
}

var canvasCases = []TestCase{
	{
		Name:   "small_aa4",
		Render: render.Config{CanvasSize: 32, AntiAlias: 4},
		Sample: sample(shapes.Triangle, 0.4, 0.6, 0.7, 1),
	},
	{
		Name:   "large_aa1",
		Render: render.Config{CanvasSize: 128, AntiAlias: 1},
		Sample: sample(shapes.Hexagon, 0.6, 0.4, 0.7, 1),
	},
	{
		Name:   "gray_background",
		Render: render.Config{CanvasSize: 48, BackgroundColor: "#808080"},
		Sample: sample(shapes.Pentagon, 0.5, 0.5, 1, 0.5),
	},
}
