package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestRegularPolygonCircumcircle(t *testing.T) {
	center := vec.Vec2{X: 40, Y: 30}
	for sides := 3; sides <= 12; sides++ {
		pts := RegularPolygon(center, 17, sides, 0)
		if len(pts) != sides {
			t.Fatalf("%d sides: got %d vertices", sides, len(pts))
		}
		for _, p := range pts {
			if d := p.Sub(center).Length(); math.Abs(d-17) > 1e-9 {
				t.Errorf("%d sides: vertex %v at distance %g", sides, p, d)
			}
		}
		// the bottom edge is horizontal
		if math.Abs(pts[0].Y-pts[sides-1].Y) > 1e-9 && math.Abs(pts[0].Y-pts[1].Y) > 1e-9 {
			t.Errorf("%d sides: no horizontal edge at the first vertex", sides)
		}
	}
}

// TestSquareWidth checks that a square with circumradius w·√2/2 is axis
// aligned and exactly w wide.
func TestSquareWidth(t *testing.T) {
	const w = 26.0
	center := vec.Vec2{X: 64, Y: 64}
	pts := RegularPolygon(center, w*math.Sqrt2/2, 4, 0)

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}
	if math.Abs(xMax-xMin-w) > 1e-9 || math.Abs(yMax-yMin-w) > 1e-9 {
		t.Errorf("bounding box %gx%g, want %gx%g", xMax-xMin, yMax-yMin, w, w)
	}
	// first vertex is the bottom left corner
	if math.Abs(pts[0].X-(center.X-w/2)) > 1e-9 || math.Abs(pts[0].Y-(center.Y+w/2)) > 1e-9 {
		t.Errorf("first vertex %v is not the bottom left corner", pts[0])
	}
}

func TestTriangleRestsOnBase(t *testing.T) {
	pts := RegularPolygon(vec.Vec2{}, 1, 3, 0)
	// with a downward y-axis, the apex has the smallest y value
	if !(pts[2].Y < pts[0].Y) || math.Abs(pts[0].Y-pts[1].Y) > 1e-12 {
		t.Errorf("unexpected triangle orientation: %v", pts)
	}
}

func TestRegularPolygonDegenerate(t *testing.T) {
	if pts := RegularPolygon(vec.Vec2{}, 1, 2, 0); pts != nil {
		t.Errorf("expected nil for 2 sides, got %v", pts)
	}
}
