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

// centerCases draws from the middle of an 11×11 image to every pixel of the
// image, covering all eight octants and the axis-aligned and diagonal
// directions.
var centerCases = makeCenterCases()

func makeCenterCases() []TestCase {
	var cases []TestCase
	for x := range 11 {
		for y := range 11 {
			cases = append(cases, TestCase{
				Name:       fmt.Sprintf("end_%d_%d", x, y),
				Width:      11,
				Height:     11,
				Background: hdr.Silver,
				Ops: []Operation{
					Segment{X0: 5, Y0: 5, X1: x, Y1: y, Color: hdr.Red},
				},
			})
		}
	}
	return cases
}
