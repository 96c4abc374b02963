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

import "seehuhn.de/go/lines/hdr"

// multiCases draw several segments into the same image. Later segments
// overwrite earlier ones.
var multiCases = []TestCase{
	{
		Name:       "star",
		Width:      21,
		Height:     21,
		Background: hdr.Silver,
		Ops: []Operation{
			Segment{X0: 10, Y0: 10, X1: 0, Y1: 0, Color: hdr.Red},
			Segment{X0: 10, Y0: 10, X1: 10, Y1: 0, Color: hdr.Green},
			Segment{X0: 10, Y0: 10, X1: 20, Y1: 0, Color: hdr.Blue},
			Segment{X0: 10, Y0: 10, X1: 20, Y1: 10, Color: hdr.Maroon},
			Segment{X0: 10, Y0: 10, X1: 20, Y1: 20, Color: hdr.Teal},
			Segment{X0: 10, Y0: 10, X1: 10, Y1: 20, Color: hdr.Purple},
			Segment{X0: 10, Y0: 10, X1: 0, Y1: 20, Color: hdr.Olive},
			Segment{X0: 10, Y0: 10, X1: 0, Y1: 10, Color: hdr.Navy},
		},
	},
	{
		Name:       "fan",
		Width:      21,
		Height:     11,
		Background: hdr.White,
		Ops: []Operation{
			Segment{X0: 0, Y0: 10, X1: 20, Y1: 0, Color: hdr.Black},
			Segment{X0: 0, Y0: 10, X1: 20, Y1: 3, Color: hdr.Red},
			Segment{X0: 0, Y0: 10, X1: 20, Y1: 7, Color: hdr.Blue},
			Segment{X0: 0, Y0: 10, X1: 7, Y1: 0, Color: hdr.Green},
			Segment{X0: 0, Y0: 10, X1: 13, Y1: 0, Color: hdr.Fuchsia},
		},
	},
	{
		Name:       "overdraw",
		Width:      9,
		Height:     9,
		Background: hdr.White,
		Ops: []Operation{
			Segment{X0: 0, Y0: 0, X1: 8, Y1: 8, Color: hdr.Red},
			Segment{X0: 8, Y0: 0, X1: 0, Y1: 8, Color: hdr.Blue},
		},
	},
	{
		Name:       "there_and_back",
		Width:      12,
		Height:     7,
		Background: hdr.White,
		Ops: []Operation{
			Segment{X0: 0, Y0: 0, X1: 11, Y1: 4, Color: hdr.Red},
			Segment{X0: 11, Y0: 4, X1: 0, Y1: 0, Color: hdr.Green},
		},
	},
	{
		Name:       "grid",
		Width:      13,
		Height:     13,
		Background: hdr.Black,
		Ops: []Operation{
			Segment{X0: 0, Y0: 0, X1: 12, Y1: 0, Color: hdr.Gray},
			Segment{X0: 0, Y0: 6, X1: 12, Y1: 6, Color: hdr.Gray},
			Segment{X0: 0, Y0: 12, X1: 12, Y1: 12, Color: hdr.Gray},
			Segment{X0: 0, Y0: 0, X1: 0, Y1: 12, Color: hdr.Yellow},
			Segment{X0: 6, Y0: 0, X1: 6, Y1: 12, Color: hdr.Yellow},
			Segment{X0: 12, Y0: 0, X1: 12, Y1: 12, Color: hdr.Yellow},
		},
	},
}
