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

package lines

import (
	"fmt"
	"iter"

	"seehuhn.de/go/lines/hdr"
)

// RasterizeLineSegment sets every pixel on the digital line from (x0, y0)
// to (x1, y1), including both endpoints, to c. No other pixels are changed.
// The set of pixels does not depend on the order of the two endpoints.
//
// The image must be non-empty and both endpoints must lie inside the image.
// RasterizeLineSegment panics if these conditions are violated.
func RasterizeLineSegment(img *hdr.Image, x0, y0, x1, y1 int, c hdr.RGB) {
	if img.IsEmpty() {
		panic("lines: cannot draw into an empty image")
	}
	for _, p := range [2][2]int{{x0, y0}, {x1, y1}} {
		if !img.IsXY(p[0], p[1]) {
			panic(fmt.Sprintf("lines: point (%d, %d) outside %dx%d image",
				p[0], p[1], img.Width(), img.Height()))
		}
	}

	for x, y := range Pixels(x0, y0, x1, y1) {
		img.SetPixel(x, y, c)
	}
}

// Pixels iterates over the pixels of the digital line from (x0, y0) to
// (x1, y1). The pixels are visited in order of increasing coordinate along
// the dominant axis, so that both orders of the endpoints give the same
// sequence. Each pixel is visited exactly once.
//
// Along the dominant axis the line advances by one pixel per step. The
// coordinate on the minor axis is the exact value rounded to the nearest
// integer, with ties rounded towards the end of the traversal.
func Pixels(x0, y0, x1, y1 int) iter.Seq2[int, int] {
	switch {
	case y0 == y1:
		// horizontal, including the single pixel case
		return func(yield func(int, int) bool) {
			for x := min(x0, x1); x <= max(x0, x1); x++ {
				if !yield(x, y0) {
					return
				}
			}
		}
	case x0 == x1:
		return func(yield func(int, int) bool) {
			for y := min(y0, y1); y <= max(y0, y1); y++ {
				if !yield(x0, y) {
					return
				}
			}
		}
	}
	return newSegment(x0, y0, x1, y1).all
}

// segment is a line segment in canonical traversal form. The traversal
// starts at (u0, v0) in (major, minor) coordinates and takes major+1 steps,
// increasing u by one each time.
type segment struct {
	u0, v0 int  // start point
	major  int  // extent along the dominant axis, > 0
	minor  int  // extent along the minor axis, >= 0
	step   int  // direction of the minor axis, +1 or -1
	steep  bool // true if y is the dominant axis
}

func newSegment(x0, y0, x1, y1 int) segment {
	dx, dy := abs(x1-x0), abs(y1-y0)

	s := segment{steep: dy > dx}
	if s.steep {
		x0, y0, x1, y1 = y0, x0, y1, x1
		dx, dy = dy, dx
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	s.u0, s.v0 = x0, y0
	s.major, s.minor = dx, dy
	s.step = 1
	if y1 < y0 {
		s.step = -1
	}
	return s
}

// all yields the pixels of the segment in traversal order.
//
// Before the test in step i, d equals 2*major times the distance (along the
// minor axis, in the direction of travel) by which the exact line at step
// i+1 lies beyond the midpoint between the two candidate pixels.  Both
// increments are even multiples of the extents, so d stays integral.
func (s segment) all(yield func(x, y int) bool) {
	d := 2*s.minor - s.major
	v := s.v0
	for i := range s.major + 1 {
		u := s.u0 + i
		x, y := u, v
		if s.steep {
			x, y = v, u
		}
		if !yield(x, y) {
			return
		}

		if d >= 0 {
			v += s.step
			d -= 2 * s.major
		}
		d += 2 * s.minor
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
