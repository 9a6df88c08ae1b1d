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

// Package raster is a simple software renderer for styled strokes.
//
// Each stroke segment is drawn as a filled outline polygon: the
// polyline is offset along its local normals by half the stroke
// width, scaled by the style's pressure curve and jittered by its
// vibration amount. Texture knobs (definition, quality, tip shape)
// are not simulated; this package is a preview, not a brush engine.
package raster

import (
	"image"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"

	"seehuhn.de/go/flowlines"
	"seehuhn.de/go/geom/vec"
)

// Canvas renders strokes into an RGBA image. Create one instance
// and reuse it; the rasterizer and outline buffers are reused
// across strokes. Not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	vr  *vector.Rasterizer

	width, height int

	left  []vec.Vec2 // outline buffer, +N side
	right []vec.Vec2 // outline buffer, -N side
}

// NewCanvas returns a Canvas of the given pixel size, filled with
// the background color.
func NewCanvas(width, height int, bg flowlines.HSBA) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		vr:     vector.NewRasterizer(width, height),
		width:  width,
		height: height,
	}
	c.Clear(bg)
	return c
}

// Image returns the canvas image. The Canvas keeps drawing into the
// same image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear(bg flowlines.HSBA) {
	col := NRGBA(bg, 255)
	col.A = 255
	for y := range c.height {
		row := c.img.Pix[y*c.img.Stride:]
		for x := range c.width {
			row[x*4+0] = col.R
			row[x*4+1] = col.G
			row[x*4+2] = col.B
			row[x*4+3] = 255
		}
	}
}

// DrawStrokes renders all strokes in order. Stroke coordinates are
// in the canvas-centered frame; the image origin is the top-left
// corner. The vibration jitter is seeded per stroke, so drawing the
// same strokes twice gives the same pixels.
func (c *Canvas) DrawStrokes(strokes []flowlines.Stroke) {
	for i, s := range strokes {
		rng := rand.New(rand.NewPCG(jitterSeed, uint64(i)))
		col := NRGBA(s.Style.Color, s.Style.Opacity)
		src := image.NewUniform(col)
		for _, seg := range s.Segments {
			c.drawSegment(seg, &s.Style, rng, src)
		}
	}
}

// DrawTicks renders field overlay segments as thin dark lines.
func (c *Canvas) DrawTicks(ticks []flowlines.Segment) {
	src := image.NewUniform(NRGBA(flowlines.HSBA{B: 30, A: 255}, 160))
	for _, tick := range ticks {
		pts := []vec.Vec2{tick.A, tick.B}
		style := flowlines.Style{
			Width:         1,
			PressureRange: [2]float64{1, 1},
			Pressure:      [2]float64{1, 1},
		}
		c.drawSegment(pts, &style, nil, src)
	}
}

// drawSegment builds the outline polygon for one polyline and fills
// it. rng may be nil to disable jitter.
func (c *Canvas) drawSegment(pts []vec.Vec2, style *flowlines.Style, rng *rand.Rand, src image.Image) {
	n := len(pts)
	if n < 2 {
		return
	}

	c.left = c.left[:0]
	c.right = c.right[:0]

	for i, p := range pts {
		prev := pts[max(i-1, 0)]
		next := pts[min(i+1, n-1)]
		d := next.Sub(prev)
		length := d.Length()
		if length < 1e-10 {
			continue
		}
		tangent := d.Mul(1 / length)
		normal := vec.Vec2{X: -tangent.Y, Y: tangent.X}

		t := float64(i) / float64(n-1)
		hw := style.Width / 2 * pressureAt(t, style)
		if rng != nil {
			hw += (rng.Float64()*2 - 1) * style.Vibration / 2
		}
		hw = max(hw, minHalfWidth)

		c.left = append(c.left, p.Add(normal.Mul(hw)))
		c.right = append(c.right, p.Sub(normal.Mul(hw)))
	}
	if len(c.left) < 2 {
		return
	}

	// Fill the closed outline: +N side forward, -N side backward.
	c.vr.Reset(c.width, c.height)
	c.moveTo(c.left[0])
	for _, p := range c.left[1:] {
		c.lineTo(p)
	}
	for i := len(c.right) - 1; i >= 0; i-- {
		c.lineTo(c.right[i])
	}
	c.vr.ClosePath()
	c.vr.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// moveTo and lineTo convert canvas-centered coordinates to device
// pixels. This is the only place the two frames meet.
func (c *Canvas) moveTo(p vec.Vec2) {
	c.vr.MoveTo(float32(p.X+float64(c.width)/2), float32(p.Y+float64(c.height)/2))
}

func (c *Canvas) lineTo(p vec.Vec2) {
	c.vr.LineTo(float32(p.X+float64(c.width)/2), float32(p.Y+float64(c.height)/2))
}

// pressureAt evaluates the pressure curve at normalized position t.
// Pressure[0] sharpens the bell, Pressure[1] lifts its floor; the
// result selects a point within the style's pressure range.
func pressureAt(t float64, style *flowlines.Style) float64 {
	a := style.Pressure[0]
	floor := min(max(style.Pressure[1], 0), 1)

	bell := math.Pow(math.Sin(math.Pi*t), a)
	u := floor + (1-floor)*bell

	lo, hi := style.PressureRange[0], style.PressureRange[1]
	return lo + (hi-lo)*u
}

const (
	// jitterSeed seeds the per-stroke vibration RNG.
	jitterSeed = 0x666c6f77 // "flow"

	// minHalfWidth keeps jittered outlines from collapsing.
	minHalfWidth = 0.1
)
