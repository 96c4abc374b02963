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

package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
)

const example = `
width: 32
height: 16
background: silver
segments:
  - {from: [0, 0], to: [31, 15], color: red}
polylines:
  - points: [[1, 1], [10, 1], [10, 10]]
    closed: true
    color: "#0000ff"
    scale: 1
    offset: [0, 0]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(example))
	require.NoError(t, err)

	assert.Equal(t, 32, s.Width)
	assert.Equal(t, 16, s.Height)
	assert.Equal(t, "silver", s.Background)
	require.Len(t, s.Segments, 1)
	assert.Equal(t, []int{0, 0}, s.Segments[0].From)
	assert.Equal(t, []int{31, 15}, s.Segments[0].To)
	require.Len(t, s.Polylines, 1)
	assert.True(t, s.Polylines[0].Closed)
	assert.Len(t, s.Polylines[0].Points, 3)
}

func TestRender(t *testing.T) {
	s, err := Parse([]byte(example))
	require.NoError(t, err)

	got, err := s.Render()
	require.NoError(t, err)

	want := hdr.New(32, 16, hdr.Silver)
	lines.RasterizeLineSegment(want, 0, 0, 31, 15, hdr.Red)
	lines.RasterizeLineSegment(want, 1, 1, 10, 1, hdr.Blue)
	lines.RasterizeLineSegment(want, 10, 1, 10, 10, hdr.Blue)
	lines.RasterizeLineSegment(want, 10, 10, 1, 1, hdr.Blue)

	assert.True(t, got.Equal(want), "rendered scene differs")
}

func TestRenderDefaults(t *testing.T) {
	s, err := Parse([]byte("width: 5\nheight: 3\nsegments:\n  - {from: [0, 1], to: [4, 1]}\n"))
	require.NoError(t, err)

	got, err := s.Render()
	require.NoError(t, err)

	for y := range 3 {
		for x := range 5 {
			want := hdr.White
			if y == 1 {
				want = hdr.Black
			}
			assert.Equal(t, want, got.Pixel(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderScaled(t *testing.T) {
	s, err := Parse([]byte(`
width: 20
height: 20
polylines:
  - points: [[0, 0], [3, 1]]
    scale: 4
    offset: [2, 3]
`))
	require.NoError(t, err)

	got, err := s.Render()
	require.NoError(t, err)

	want := hdr.New(20, 20, hdr.White)
	lines.RasterizeLineSegment(want, 2, 3, 14, 7, hdr.Black)
	assert.True(t, got.Equal(want))
}

// TestRenderOrder checks that later segments paint over earlier ones and
// polylines paint over segments.
func TestRenderOrder(t *testing.T) {
	s, err := Parse([]byte(`
width: 3
height: 1
segments:
  - {from: [0, 0], to: [2, 0], color: red}
  - {from: [1, 0], to: [2, 0], color: lime}
polylines:
  - points: [[2, 0], [2, 0]]
    color: blue
`))
	require.NoError(t, err)

	got, err := s.Render()
	require.NoError(t, err)

	assert.Equal(t, hdr.Red, got.Pixel(0, 0))
	assert.Equal(t, hdr.Lime, got.Pixel(1, 0))
	assert.Equal(t, hdr.Blue, got.Pixel(2, 0))
}

func TestRenderOutside(t *testing.T) {
	s, err := Parse([]byte(`
width: 10
height: 10
polylines:
  - points: [[1, 1], [5, 5]]
    scale: 3
`))
	require.NoError(t, err)

	_, err = s.Render()
	assert.ErrorIs(t, err, lines.ErrOutsideImage)
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"zero width":      "width: 0\nheight: 4\n",
		"negative height": "width: 4\nheight: -1\n",
		"background":      "width: 4\nheight: 4\nbackground: mauve\n",
		"segment color":   "width: 4\nheight: 4\nsegments:\n  - {from: [0, 0], to: [1, 1], color: '#12'}\n",
		"short point":     "width: 4\nheight: 4\nsegments:\n  - {from: [0], to: [1, 1]}\n",
		"long point":      "width: 4\nheight: 4\nsegments:\n  - {from: [0, 0, 0], to: [1, 1]}\n",
		"segment outside": "width: 4\nheight: 4\nsegments:\n  - {from: [0, 0], to: [4, 1]}\n",
		"single point":    "width: 4\nheight: 4\npolylines:\n  - points: [[1, 1]]\n",
		"bad polyline pt": "width: 4\nheight: 4\npolylines:\n  - points: [[1, 1], [2]]\n",
		"negative scale":  "width: 4\nheight: 4\npolylines:\n  - points: [[1, 1], [2, 2]]\n    scale: -1\n",
		"bad offset":      "width: 4\nheight: 4\npolylines:\n  - points: [[1, 1], [2, 2]]\n    offset: [1]\n",
		"polyline color":  "width: 4\nheight: 4\npolylines:\n  - points: [[1, 1], [2, 2]]\n    color: nope\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("width: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(example), 0o644))

	s, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 32, s.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
