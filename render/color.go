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

package render

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/shapes"
)

// ParseColor converts a color specification into an opaque RGB color.
//
// The following forms are understood:
//   - SVG 1.1 color names like "white" or "darkorange" (case-insensitive)
//   - hexadecimal colors "#rgb" and "#rrggbb"
//   - functional notation "rgb(r, g, b)" with integer channels 0-255
func ParseColor(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	bad := &shapes.ConfigurationError{Field: "color", Value: spec, Err: shapes.ErrBadColor}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:], bad)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, bad
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return color.RGBA{}, bad
			}
			ch[i] = uint8(v)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xFF}, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, bad
}

func parseHex(h string, bad error) (color.RGBA, error) {
	switch len(h) {
	case 3:
		// "#abc" is short for "#aabbcc"
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
		// pass
	default:
		return color.RGBA{}, bad
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, bad
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
