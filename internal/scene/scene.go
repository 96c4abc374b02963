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

// Package scene reads line drawings from YAML files.
//
// A scene gives the image size, a background color, and lists of segments
// and polylines:
//
//	width: 32
//	height: 16
//	background: silver
//	segments:
//	  - {from: [0, 0], to: [31, 15], color: red}
//	polylines:
//	  - points: [[1, 1], [10, 1], [10, 10]]
//	    closed: true
//	    color: "#0000ff"
//	    scale: 1
//	    offset: [0, 0]
//
// Colors are HTML color names or hex values.  The background defaults to
// white and line colors default to black.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
)

// ErrInvalid is returned for scenes which are well-formed YAML but cannot
// be drawn.
var ErrInvalid = errors.New("invalid scene")

// Scene describes a line drawing.
type Scene struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background string     `yaml:"background"`
	Segments   []Segment  `yaml:"segments"`
	Polylines  []Polyline `yaml:"polylines"`
}

// Segment is a straight line between two pixel centers.
type Segment struct {
	From  []int  `yaml:"from"`
	To    []int  `yaml:"to"`
	Color string `yaml:"color"`
}

// Polyline is a sequence of connected segments.  The points are mapped to
// pixel coordinates by scaling with Scale and then adding Offset.
type Polyline struct {
	Points [][]float64 `yaml:"points"`
	Closed bool        `yaml:"closed"`
	Color  string      `yaml:"color"`
	Scale  float64     `yaml:"scale"`  // zero means 1
	Offset []float64   `yaml:"offset"` // optional
}

// Load reads and validates a scene file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the scene can be drawn.  Polyline vertices are only
// checked when the scene is rendered.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	if _, err := parseColor(s.Background, hdr.White); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}

	for i, seg := range s.Segments {
		if _, err := parseColor(seg.Color, hdr.Black); err != nil {
			return fmt.Errorf("%w: segment %d: %w", ErrInvalid, i, err)
		}
		for _, p := range [][]int{seg.From, seg.To} {
			if len(p) != 2 {
				return fmt.Errorf("%w: segment %d: need two coordinates, got %v",
					ErrInvalid, i, p)
			}
			if p[0] < 0 || p[0] >= s.Width || p[1] < 0 || p[1] >= s.Height {
				return fmt.Errorf("%w: segment %d: point %v outside %dx%d image",
					ErrInvalid, i, p, s.Width, s.Height)
			}
		}
	}

	for i, pl := range s.Polylines {
		if _, err := parseColor(pl.Color, hdr.Black); err != nil {
			return fmt.Errorf("%w: polyline %d: %w", ErrInvalid, i, err)
		}
		if len(pl.Points) < 2 {
			return fmt.Errorf("%w: polyline %d: need at least two points", ErrInvalid, i)
		}
		for _, p := range pl.Points {
			if len(p) != 2 || !isFinite(p[0]) || !isFinite(p[1]) {
				return fmt.Errorf("%w: polyline %d: bad point %v", ErrInvalid, i, p)
			}
		}
		if pl.Scale < 0 || !isFinite(pl.Scale) {
			return fmt.Errorf("%w: polyline %d: bad scale %g", ErrInvalid, i, pl.Scale)
		}
		if pl.Offset != nil && (len(pl.Offset) != 2 || !isFinite(pl.Offset[0]) || !isFinite(pl.Offset[1])) {
			return fmt.Errorf("%w: polyline %d: bad offset %v", ErrInvalid, i, pl.Offset)
		}
	}
	return nil
}

// Render draws the scene into a new image.  Segments are drawn first, in
// order, followed by the polylines.
func (s *Scene) Render() (*hdr.Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bg, _ := parseColor(s.Background, hdr.White)
	img := hdr.New(s.Width, s.Height, bg)

	for _, seg := range s.Segments {
		c, _ := parseColor(seg.Color, hdr.Black)
		lines.RasterizeLineSegment(img, seg.From[0], seg.From[1], seg.To[0], seg.To[1], c)
	}

	h := lines.NewHairliner()
	for i, pl := range s.Polylines {
		c, _ := parseColor(pl.Color, hdr.Black)
		h.CTM = pl.ctm()
		if err := h.Draw(img, pl.path(), c); err != nil {
			return nil, fmt.Errorf("polyline %d: %w", i, err)
		}
	}

	lines.Logger().Debug("rendered scene",
		"width", s.Width,
		"height", s.Height,
		"segments", len(s.Segments),
		"polylines", len(s.Polylines))

	return img, nil
}

func (pl *Polyline) ctm() matrix.Matrix {
	scale := pl.Scale
	if scale == 0 {
		scale = 1
	}
	var dx, dy float64
	if len(pl.Offset) == 2 {
		dx, dy = pl.Offset[0], pl.Offset[1]
	}
	return matrix.Matrix{scale, 0, 0, scale, dx, dy}
}

func (pl *Polyline) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, p := range pl.Points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			buf[0] = vec.Vec2{X: p[0], Y: p[1]}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		if pl.Closed {
			yield(path.CmdClose, nil)
		}
	}
}

func parseColor(s string, def hdr.RGB) (hdr.RGB, error) {
	if s == "" {
		return def, nil
	}
	return hdr.ParseColor(s)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
