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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines/hdr"
)

var (
	// ErrCurve is returned by [Hairliner.Draw] for paths which contain
	// Bézier curves.
	ErrCurve = errors.New("curves are not supported")

	// ErrOutsideImage is returned by [Hairliner.Draw] if a vertex of the
	// path lies outside the image after transformation.
	ErrOutsideImage = errors.New("vertex outside image")
)

// pixel is a point in device space, rounded to integer pixel coordinates.
type pixel struct {
	x, y int
}

// Hairliner draws polygonal paths as one-pixel wide lines.
//
// Create one instance and reuse it for multiple paths. A Hairliner is not
// safe for concurrent use.
type Hairliner struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Internal buffers (reused across calls)
	segs []pixel // endpoint pairs of the segments to draw
}

// NewHairliner returns a Hairliner with the identity transformation.
func NewHairliner() *Hairliner {
	return &Hairliner{
		CTM: matrix.Identity,
	}
}

// Draw draws every segment of the path p into img, using color c.
//
// Vertices are mapped to device space using the CTM and then rounded to
// the nearest pixel. Each LineTo draws one segment, ClosePath draws the
// segment back to the start of the subpath. A subpath consisting of a single
// MoveTo draws nothing.
//
// Draw returns ErrCurve if the path contains curves, and ErrOutsideImage if
// any transformed vertex lies outside img. In both cases img is not
// modified.
func (h *Hairliner) Draw(img *hdr.Image, p path.Path, c hdr.RGB) error {
	if err := h.collectSegments(img, p); err != nil {
		return err
	}
	for i := 0; i+1 < len(h.segs); i += 2 {
		a, b := h.segs[i], h.segs[i+1]
		RasterizeLineSegment(img, a.x, a.y, b.x, b.y, c)
	}
	return nil
}

// collectSegments walks the path, transforms to device space, and fills
// h.segs with pairs of segment endpoints.
func (h *Hairliner) collectSegments(img *hdr.Image, p path.Path) error {
	h.segs = h.segs[:0]

	var current pixel // current point (device space)
	var subpath pixel // subpath start (device space)
	started := false  // LineTo before the first MoveTo is ignored

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			q, err := h.toDevice(img, pts[0])
			if err != nil {
				return err
			}
			current = q
			subpath = q
			started = true

		case path.CmdLineTo:
			q, err := h.toDevice(img, pts[0])
			if err != nil {
				return err
			}
			if started {
				h.segs = append(h.segs, current, q)
			}
			current = q

		case path.CmdQuadTo, path.CmdCubeTo:
			return ErrCurve

		case path.CmdClose:
			if started && current != subpath {
				h.segs = append(h.segs, current, subpath)
			}
			current = subpath
		}
	}
	return nil
}

// toDevice transforms a point from user space to device space and rounds
// it to the nearest pixel.
func (h *Hairliner) toDevice(img *hdr.Image, p vec.Vec2) (pixel, error) {
	dx := h.CTM[0]*p.X + h.CTM[2]*p.Y + h.CTM[4]
	dy := h.CTM[1]*p.X + h.CTM[3]*p.Y + h.CTM[5]

	fx, fy := math.Floor(dx+0.5), math.Floor(dy+0.5)
	if !(fx >= 0 && fx < float64(img.Width()) && fy >= 0 && fy < float64(img.Height())) {
		return pixel{}, fmt.Errorf("%w: (%g, %g) maps to (%g, %g)",
			ErrOutsideImage, p.X, p.Y, dx, dy)
	}
	return pixel{x: int(fx), y: int(fy)}, nil
}
