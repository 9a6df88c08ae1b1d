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

// Package scenes holds named, reproducible render configurations
// used by tests, benchmarks, and the export tools.
package scenes

import "seehuhn.de/go/flowlines"

// Scene is one reproducible render configuration.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  float64
	Height float64
	Seed   uint64
	Params flowlines.Params
}

// Render executes the scene and returns its strokes.
func (s Scene) Render() []flowlines.Stroke {
	r := flowlines.NewRenderer(s.Width, s.Height, s.Params, s.Seed)
	return r.Render()
}
