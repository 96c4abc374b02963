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

// borderCases draw along and across the edges of the image, including
// images which are only one pixel wide or high.
var borderCases = []TestCase{
	borderCase("single_pixel", 1, 1, 0, 0, 0, 0),
	borderCase("row", 9, 1, 8, 0, 0, 0),
	borderCase("column", 1, 9, 0, 0, 0, 8),
	borderCase("edge_top", 16, 8, 0, 0, 15, 0),
	borderCase("edge_bottom", 16, 8, 15, 7, 0, 7),
	borderCase("edge_left", 16, 8, 0, 7, 0, 0),
	borderCase("edge_right", 16, 8, 15, 0, 15, 7),
	borderCase("corner_to_corner", 16, 8, 15, 7, 0, 0),
	borderCase("anti_corner", 16, 8, 0, 7, 15, 0),
	borderCase("wide_shallow", 64, 4, 0, 0, 63, 3),
	borderCase("tall_steep", 4, 64, 3, 0, 0, 63),
	borderCase("two_rows", 7, 2, 0, 1, 6, 0),
}

func borderCase(name string, w, h, x0, y0, x1, y1 int) TestCase {
	return TestCase{
		Name:       name,
		Width:      w,
		Height:     h,
		Background: hdr.White,
		Ops: []Operation{
			Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: hdr.Navy},
		},
	}
}
