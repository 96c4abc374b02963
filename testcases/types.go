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

// Package testcases lists the drawing tests which are checked against
// reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines/hdr"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // canvas width in pixels
	Height     int         // canvas height in pixels
	Background hdr.RGB     // initial color of every pixel
	Ops        []Operation // drawing operations, applied in order
}

// Operation is a drawing operation.
type Operation interface {
	isOperation()
}

// Segment draws a single line segment.
type Segment struct {
	X0, Y0 int
	X1, Y1 int
	Color  hdr.RGB
}

func (Segment) isOperation() {}

// Polyline draws the segments of a polygonal path.
type Polyline struct {
	Path  path.Path
	CTM   matrix.Matrix // transformation matrix (zero-value means no transform)
	Color hdr.RGB
}

func (Polyline) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a path through the given points.
// If closed is true, the path is closed at the end.
func polygon(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
