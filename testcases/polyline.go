// seehuhn.de/go/lines - integer line rasterization
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

package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lines/hdr"
)

var polylineCases = []TestCase{
	{
		Name:       "triangle",
		Width:      32,
		Height:     32,
		Background: hdr.White,
		Ops: []Operation{
			Polyline{
				Path:  polygon(true, pt(2, 2), pt(29, 9), pt(12, 29)),
				Color: hdr.Blue,
			},
		},
	},
	{
		Name:       "zigzag",
		Width:      19,
		Height:     16,
		Background: hdr.White,
		Ops: []Operation{
			Polyline{
				Path:  polygon(false, pt(1, 1), pt(5, 14), pt(9, 1), pt(13, 14), pt(17, 1)),
				Color: hdr.Red,
			},
		},
	},
	{
		Name:       "scaled_square",
		Width:      32,
		Height:     32,
		Background: hdr.White,
		Ops: []Operation{
			Polyline{
				Path:  polygon(true, pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)),
				CTM:   matrix.Matrix{2.5, 0, 0, 2.5, 3, 3},
				Color: hdr.Green,
			},
		},
	},
	{
		Name:       "rotated_square",
		Width:      32,
		Height:     32,
		Background: hdr.White,
		Ops: []Operation{
			Polyline{
				Path:  polygon(true, pt(-8, -8), pt(8, -8), pt(8, 8), pt(-8, 8)),
				CTM:   matrix.Matrix{0.8, 0.6, -0.6, 0.8, 16, 16},
				Color: hdr.Purple,
			},
		},
	},
	{
		Name:       "two_subpaths",
		Width:      24,
		Height:     12,
		Background: hdr.White,
		Ops: []Operation{
			Polyline{
				Path: concat(
					polygon(false, pt(1, 1), pt(10, 10)),
					polygon(true, pt(22, 1), pt(13, 10), pt(13, 1)),
				),
				Color: hdr.Maroon,
			},
		},
	},
	{
		Name:       "flipped",
		Width:      20,
		Height:     20,
		Background: hdr.Silver,
		Ops: []Operation{
			Polyline{
				Path:  polygon(false, pt(0, 0), pt(19, 7), pt(5, 19)),
				CTM:   matrix.Matrix{1, 0, 0, -1, 0, 19},
				Color: hdr.Teal,
			},
			Segment{X0: 0, Y0: 0, X1: 19, Y1: 19, Color: hdr.Black},
		},
	},
}
