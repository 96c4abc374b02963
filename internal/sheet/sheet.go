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

// Package sheet lays out rendered line drawings on a PDF page.
//
// Every pixel of an image is drawn as a filled square, so that the
// individual pixels remain visible at any zoom level.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lines/hdr"
)

// Case is one image on the sheet.
type Case struct {
	Name  string
	Image *hdr.Image
}

// Options controls the layout of the sheet.  The zero value selects the
// defaults.
type Options struct {
	// Columns is the number of images per row.  If this is zero, the
	// images are arranged in a square grid.
	Columns int

	// PixelSize is the side length of one pixel, in PDF points.
	PixelSize float64

	// Gap is the space between images and around the border, in PDF
	// points.
	Gap float64
}

const (
	defaultPixelSize = 4
	defaultGap       = 8
)

// ErrNoCases is returned by [Write] when there is nothing to draw.
var ErrNoCases = errors.New("no images for the contact sheet")

// Write writes a single page PDF file to w, which shows the images in cases
// on a grid.  Images are placed left to right, top to bottom.
func Write(w io.Writer, cases []Case, opt Options) error {
	if len(cases) == 0 {
		return ErrNoCases
	}

	var cellW, cellH int
	for _, c := range cases {
		if c.Image.IsEmpty() {
			return fmt.Errorf("%s: %w", c.Name, hdr.ErrEmptyImage)
		}
		cellW = max(cellW, c.Image.Width())
		cellH = max(cellH, c.Image.Height())
	}

	cols := opt.Columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(len(cases)))))
	}
	cols = min(cols, len(cases))
	rows := (len(cases) + cols - 1) / cols

	px := opt.PixelSize
	if px <= 0 {
		px = defaultPixelSize
	}
	gap := opt.Gap
	if gap <= 0 {
		gap = defaultGap
	}

	pageW := float64(cols)*(float64(cellW)*px+gap) + gap
	pageH := float64(rows)*(float64(cellH)*px+gap) + gap
	paper := &pdf.Rectangle{URx: pageW, URy: pageH}

	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; images have their origin top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageH})

	for i, c := range cases {
		x0 := gap + float64(i%cols)*(float64(cellW)*px+gap)
		y0 := gap + float64(i/cols)*(float64(cellH)*px+gap)

		img := c.Image
		for _, rgb := range palette(img) {
			page.SetFillColor(color.DeviceRGB{rgb.R, rgb.G, rgb.B})
			for y := range img.Height() {
				for x := range img.Width() {
					if img.Pixel(x, y) == rgb {
						page.Rectangle(x0+float64(x)*px, y0+float64(y)*px, px, px)
					}
				}
			}
			page.Fill()
		}
	}

	return page.Close()
}

// palette returns the distinct colors of img, in order of first appearance.
func palette(img *hdr.Image) []hdr.RGB {
	seen := make(map[hdr.RGB]bool)
	var res []hdr.RGB
	for y := range img.Height() {
		for x := range img.Width() {
			c := img.Pixel(x, y)
			if !seen[c] {
				seen[c] = true
				res = append(res, c)
			}
		}
	}
	return res
}
