// seehuhn.de/go/flowlines - generative flow-field line art
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
	"image/color"
	"math"

	"seehuhn.de/go/flowlines"
)

// RGB converts an HSBA color to RGB components in [0, 1], ignoring
// alpha.
func RGB(c flowlines.HSBA) (r, g, b float64) {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := min(max(c.S/100, 0), 1)
	v := min(max(c.B/100, 0), 1)

	chroma := v * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := v - chroma
	return r + m, g + m, b + m
}

// NRGBA converts an HSBA color to a color.NRGBA, combining the
// color's own alpha with the given ink opacity (both in [0, 255]).
func NRGBA(c flowlines.HSBA, opacity float64) color.NRGBA {
	r, g, b := RGB(c)
	a := c.A / 255 * opacity / 255
	a = min(max(a, 0), 1)
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
