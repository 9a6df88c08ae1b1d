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

// Params is the full parameter vector for one render pass.
// All seven taste controls are continuous values in [0, 1].
// A Params value is immutable for the duration of a pass; the core
// never validates ranges (that is the caller's job).
type Params struct {
	// Oiliness controls dash segmentation. Below 0.7 strokes are
	// broken into keep/drop runs; at 0.7 and above they stay solid.
	Oiliness float64

	// SoupLevel controls how wet the ink looks: it drives dryness,
	// vibration, definition, quality, and opacity.
	SoupLevel float64

	// Salt controls waveform roughness (sine vs. triangle blend),
	// the pressure curve, and the brush tip selection.
	Salt float64

	// Sweet controls perpendicular oscillation. At 0.1 and below the
	// path is left alone; above that both frequency and amplitude
	// grow with the value.
	Sweet float64

	// Acidity controls per-stroke hue variance.
	Acidity float64

	// Spice selects the base hue, from 240° (0) down to 0° (1).
	Spice float64

	// Temperature drives stroke width, saturation, and brightness.
	Temperature float64

	// NumLines is the target number of strokes per pass.
	NumLines int

	// LineLength is the maximum stroke length in canvas units.
	LineLength float64

	// StepSize is the base integration step in canvas units.
	StepSize float64

	// Resolution is the noise-sampling increment per grid cell.
	Resolution float64

	// ShowField enables the debug overlay of field directions.
	ShowField bool

	// Background is the canvas background color. The core never
	// reads it; it is passed through to renderers.
	Background HSBA
}

// DefaultParams returns the standard parameter vector.
func DefaultParams() Params {
	return Params{
		Oiliness:    0.4,
		SoupLevel:   0.8,
		Salt:        0.8,
		Sweet:       0.2,
		Acidity:     0.5,
		Spice:       0.9,
		Temperature: 0.7,
		NumLines:    100,
		LineLength:  2000,
		StepSize:    6,
		Resolution:  0.001,
		Background:  HSBA{H: 45, S: 8, B: 96, A: 255},
	}
}

// remap linearly maps v from [inLo, inHi] to [outLo, outHi],
// clamping v to the input range first. outLo > outHi is allowed and
// inverts the mapping.
func remap(v, inLo, inHi, outLo, outHi float64) float64 {
	if v < inLo {
		v = inLo
	} else if v > inHi {
		v = inHi
	}
	t := (v - inLo) / (inHi - inLo)
	return outLo + t*(outHi-outLo)
}
