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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// RegularPolygon returns the vertices of a regular polygon with the given
// number of sides, inscribed in the circle of the given radius around
// center. Coordinates use a downward pointing y-axis.
//
// The first vertex is the left end of the bottom edge, so that the polygon
// rests on a horizontal side. Vertices follow in counter-clockwise order on
// screen. The rotation, in degrees, turns the polygon counter-clockwise.
func RegularPolygon(center vec.Vec2, radius float64, sides int, rotation float64) []vec.Vec2 {
	if sides < 3 {
		return nil
	}
	step := 360 / float64(sides)
	angle := 270 - step/2 + rotation
	pts := make([]vec.Vec2, sides)
	for i := range pts {
		phi := angle * math.Pi / 180
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y - radius*math.Sin(phi),
		}
		angle += step
	}
	return pts
}
