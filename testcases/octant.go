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
	"fmt"

	"seehuhn.de/go/lines/hdr"
)

// octantEnds are end points for long lines from the center of a 33×33
// image, two per octant, going clockwise from east.
var octantEnds = [][2]int{
	{32, 20}, {32, 28},
	{28, 32}, {20, 32},
	{12, 32}, {4, 32},
	{0, 28}, {0, 20},
	{0, 12}, {0, 4},
	{4, 0}, {12, 0},
	{20, 0}, {28, 0},
	{32, 4}, {32, 12},
}

var octantCases = makeOctantCases()

func makeOctantCases() []TestCase {
	var cases []TestCase
	for _, end := range octantEnds {
		cases = append(cases, octantCase(
			fmt.Sprintf("to_%d_%d", end[0], end[1]),
			16, 16, end[0], end[1]))
	}

	// full length lines, given in both orders
	cases = append(cases,
		octantCase("span_shallow", 0, 10, 32, 13),
		octantCase("span_shallow_reversed", 32, 13, 0, 10),
		octantCase("span_steep", 7, 0, 10, 32),
		octantCase("span_steep_reversed", 10, 32, 7, 0),
		octantCase("span_diagonal", 0, 32, 32, 0),
		octantCase("span_odd", 1, 2, 30, 31),
	)
	return cases
}

func octantCase(name string, x0, y0, x1, y1 int) TestCase {
	return TestCase{
		Name:       name,
		Width:      33,
		Height:     33,
		Background: hdr.White,
		Ops: []Operation{
			Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: hdr.Black},
		},
	}
}
