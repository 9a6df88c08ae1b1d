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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// stylize turns a raw integrator path into a styled stroke. The
// stages run in fixed order: dash segmentation, perpendicular
// oscillation, splitting into renderable segments, and style
// resolution. A stroke with no segments means the path was not
// usable.
func (r *Renderer) stylize(raw []vec.Vec2) Stroke {
	pts := r.applyDash(raw)
	pts = r.applyWave(pts)
	return Stroke{
		Segments: splitSegments(pts),
		Style:    resolveStyle(r.Params, r.rng),
	}
}

// applyDash breaks the path into keep/drop runs to simulate a dry,
// broken line. At oiliness 0.7 and above the path passes through
// unchanged. Lower oiliness gives shorter keep runs and longer
// gaps. The result may alias an internal buffer.
func (r *Renderer) applyDash(pts []vec.Vec2) []vec.Vec2 {
	oil := r.Params.Oiliness
	if oil >= 0.7 {
		return pts
	}

	keep := int(math.Floor(remap(oil, 0, 0.7, 5, 20)))
	drop := int(math.Floor(remap(oil, 0, 0.7, 3, 0)))

	r.dashed = r.dashed[:0]
	for i := 0; i < len(pts); {
		for k := 0; k < keep && i < len(pts); k++ {
			r.dashed = append(r.dashed, pts[i])
			i++
		}
		i += drop
	}
	return r.dashed
}

// applyWave displaces each point along the local perpendicular,
// following a waveform that blends a sine with a triangle wave.
// Sweet drives both frequency and amplitude; salt blends towards
// the rougher triangle shape. At sweet 0.1 and below the path
// passes through unchanged. The result may alias an internal
// buffer; tangents are always taken from the input points.
func (r *Renderer) applyWave(pts []vec.Vec2) []vec.Vec2 {
	sweet := r.Params.Sweet
	if sweet <= 0.1 || len(pts) < 2 {
		return pts
	}

	freq := remap(sweet, 0, 1, 0.5, 3)
	amp := 4 * remap(sweet, 0, 1, 0, 3)
	salt := r.Params.Salt

	n := len(pts)
	r.waved = r.waved[:0]
	for i, p := range pts {
		prev := pts[max(i-1, 0)]
		next := pts[min(i+1, n-1)]
		d := next.Sub(prev)
		length := d.Length()
		if length < zeroLengthThreshold {
			r.waved = append(r.waved, p)
			continue
		}
		tangent := d.Mul(1 / length)
		perp := vec.Vec2{X: -tangent.Y, Y: tangent.X}

		t := float64(i) / float64(n-1)
		phase := t * 2 * math.Pi * freq
		s := math.Sin(phase)
		tri := 2 / math.Pi * math.Asin(s)
		w := (1-salt)*s + salt*tri

		r.waved = append(r.waved, p.Add(perp.Mul(w*amp)))
	}
	return r.waved
}

// splitSegments re-walks the point list and closes the current
// segment whenever consecutive points are more than segmentGap
// apart. Segments with fewer than two points are discarded. The
// returned segments own their points.
func splitSegments(pts []vec.Vec2) [][]vec.Vec2 {
	if len(pts) < 2 {
		return nil
	}

	var segments [][]vec.Vec2
	cur := make([]vec.Vec2, 0, len(pts))
	cur = append(cur, pts[0])
	for _, p := range pts[1:] {
		if p.Sub(cur[len(cur)-1]).Length() > segmentGap {
			if len(cur) >= 2 {
				segments = append(segments, cur)
				cur = make([]vec.Vec2, 0, len(pts))
			} else {
				cur = cur[:0]
			}
			cur = append(cur, p)
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) >= 2 {
		segments = append(segments, cur)
	}
	return segments
}

// baseHue maps spice to the base hue in degrees, before the acidity
// jitter: 240° at 0, down to 0° at 1.
func baseHue(spice float64) float64 {
	return remap(spice, 0, 1, 240, 0)
}

// resolveStyle derives the stroke appearance from the parameter
// vector. It is independent of the path shape; the only randomness
// is the per-stroke hue jitter.
func resolveStyle(p Params, rng randSource) Style {
	hueVariance := remap(p.Acidity, 0, 1, 15, 30)
	hue := baseHue(p.Spice) + (rng.Float64()*2-1)*hueVariance
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	dryness := remap(p.SoupLevel, 0, 1, 0.8, 0)

	style := Style{
		Width: 10 * remap(p.Temperature, 0, 1, 1, 2),
		Color: HSBA{
			H: hue,
			S: remap(p.Temperature, 0, 1, 20, 80),
			B: remap(p.Temperature, 0, 1, 100, 95),
			A: 85,
		},
		Vibration: remap(dryness, 0, 0.8, 0.5, 2.5),
		Pressure: [2]float64{
			remap(p.Salt, 0, 1, 0.35, 3),
			remap(p.Salt, 0, 1, 0.25, 0.5),
		},
		PressureRange: [2]float64{0.8, 1},
		Definition:    remap(p.SoupLevel, 0, 1, 0.25, 0.85),
		Quality:       remap(p.SoupLevel, 0, 1, 0.5, 2.5),
		Opacity:       remap(p.SoupLevel, 0, 1, 50, 220),
		Tip:           TipRound,
		Rotation:      RotationFollow,
	}

	if p.Salt > 0.4 {
		ratio := remap(p.Salt, 0.4, 1, 0.5, 1.5)
		style.TipRatio = ratio
		// With the mapping above the ratio never falls below 0.5,
		// so the ellipse tip cannot currently be selected. The
		// branch is kept as documented.
		if ratio < tipEllipseMaxRatio {
			style.Tip = TipEllipse
		} else {
			style.Tip = TipRectangle
		}
	}
	if p.Salt > 0.5 {
		style.Rotation = RotationNone
	}

	return style
}

const (
	// segmentGap is the maximum distance between consecutive points
	// within one renderable segment.
	segmentGap = 10

	// tipEllipseMaxRatio is the tip ratio below which the ellipse
	// tip is selected.
	tipEllipseMaxRatio = 0.3

	// zeroLengthThreshold is the minimum tangent length for
	// oscillation displacement.
	zeroLengthThreshold = 1e-10
)
