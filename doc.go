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

// Package flowlines generates parametric line art: a coherent-noise
// flow field steers curved strokes across the canvas, and a handful
// of taste controls (oiliness, soup level, salt, sweet, acidity,
// spice, temperature) shape each stroke's dashing, waviness, and
// brush style.
//
// The output of a pass is a list of [Stroke] values: polylines in a
// canvas-centered coordinate frame plus a resolved [Style] record.
// Turning strokes into pixels is the job of a renderer such as
// [seehuhn.de/go/flowlines/raster]; the core never touches pixels.
//
// Given the same canvas size, parameters, and seed, a pass is fully
// deterministic.
package flowlines
