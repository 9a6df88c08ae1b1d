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

package flowlines

import "seehuhn.de/go/geom/vec"

// HSBA is a color in hue/saturation/brightness/alpha form.
// Hue is in degrees [0, 360); saturation and brightness are
// percentages [0, 100]; alpha is [0, 255].
type HSBA struct {
	H, S, B, A float64
}

// TipShape selects the brush tip geometry.
type TipShape int

const (
	// TipRound is the standard round tip.
	TipRound TipShape = iota

	// TipEllipse is a small elliptical tip.
	TipEllipse

	// TipRectangle is an elongated rectangular tip.
	TipRectangle
)

func (t TipShape) String() string {
	switch t {
	case TipRound:
		return "round"
	case TipEllipse:
		return "ellipse"
	case TipRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// RotationMode selects how the brush tip is rotated along the
// stroke.
type RotationMode int

const (
	// RotationFollow orients the tip along the stroke direction.
	RotationFollow RotationMode = iota

	// RotationNone keeps the tip in a fixed orientation.
	RotationNone
)

func (m RotationMode) String() string {
	switch m {
	case RotationFollow:
		return "follow"
	case RotationNone:
		return "none"
	default:
		return "unknown"
	}
}

// Style is the resolved appearance of one stroke. It is a plain
// immutable record; the brush-texture simulation that consumes it
// lives in the renderer, not here.
type Style struct {
	// Width is the nominal stroke width in canvas units.
	Width float64

	// Color is the stroke color.
	Color HSBA

	// Vibration is the random jitter amplitude of the brush.
	Vibration float64

	// Pressure holds the two control values of the pressure curve.
	Pressure [2]float64

	// PressureRange is the range the pressure curve maps into.
	PressureRange [2]float64

	// Definition and Quality are brush texture knobs.
	Definition float64
	Quality    float64

	// Opacity is the ink opacity in [0, 255].
	Opacity float64

	// Tip selects the brush tip geometry.
	Tip TipShape

	// TipRatio is the ellipse-to-rectangle elongation of a custom
	// tip. Only meaningful when Tip is not TipRound.
	TipRatio float64

	// Rotation selects the tip rotation mode.
	Rotation RotationMode
}

// Stroke is one placed, styled curve. Segments are disjoint
// polylines in the canvas-centered frame; every segment has at
// least two points.
type Stroke struct {
	Segments [][]vec.Vec2
	Style    Style
}
