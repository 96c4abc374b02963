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

// Package hdr implements raster images with floating point color channels,
// together with reading and writing them in common image file formats.
package hdr

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Image is a mutable two-dimensional grid of colors, stored in row-major
// order. The zero value is an empty image.
//
// Methods which take pixel coordinates panic if the coordinates are
// outside the image.
type Image struct {
	width  int
	height int
	pix    []RGB
}

// New returns a width×height image with every pixel set to c.
// If either dimension is zero, the image is empty.
func New(width, height int, c RGB) *Image {
	img := &Image{}
	img.Resize(width, height, c)
	return img
}

// NewSameSize returns an image with the dimensions of o, filled with c.
func NewSameSize(o *Image, c RGB) *Image {
	return New(o.width, o.height, c)
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		pix:    slices.Clone(img.pix),
	}
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return img.height
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img.width == 0 || img.height == 0
}

// IsX reports whether x is a valid column index.
func (img *Image) IsX(x int) bool {
	return x >= 0 && x < img.width
}

// IsY reports whether y is a valid row index.
func (img *Image) IsY(y int) bool {
	return y >= 0 && y < img.height
}

// IsXY reports whether (x, y) is inside the image.
func (img *Image) IsXY(x, y int) bool {
	return img.IsX(x) && img.IsY(y)
}

// IsSameSize reports whether img and o have the same dimensions.
func (img *Image) IsSameSize(o *Image) bool {
	return img.width == o.width && img.height == o.height
}

// IsEveryPixel reports whether every pixel equals c.
// This is false for an empty image.
func (img *Image) IsEveryPixel(c RGB) bool {
	if img.IsEmpty() {
		return false
	}
	for _, p := range img.pix {
		if p != c {
			return false
		}
	}
	return true
}

// Equal reports whether img and o have the same size and identical pixels.
func (img *Image) Equal(o *Image) bool {
	return img.IsSameSize(o) && slices.Equal(img.pix, o.pix)
}

// ApproxEqual reports whether img and o have the same size and every pair
// of corresponding pixels is approximately equal.
func (img *Image) ApproxEqual(o *Image, delta float64) bool {
	if !img.IsSameSize(o) {
		return false
	}
	for i, p := range img.pix {
		if !p.ApproxEqual(o.pix[i], delta) {
			return false
		}
	}
	return true
}

// Pixel returns the color at (x, y).
func (img *Image) Pixel(x, y int) RGB {
	return img.pix[img.offset(x, y)]
}

// SetPixel sets the color at (x, y).
func (img *Image) SetPixel(x, y int, c RGB) {
	img.pix[img.offset(x, y)] = c
}

func (img *Image) offset(x, y int) int {
	if !img.IsXY(x, y) {
		panic(fmt.Sprintf("hdr: pixel (%d, %d) outside %dx%d image",
			x, y, img.width, img.height))
	}
	return y*img.width + x
}

// Fill sets every pixel to c.
func (img *Image) Fill(c RGB) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// Clear makes the image empty.
func (img *Image) Clear() {
	img.width = 0
	img.height = 0
	img.pix = nil
}

// Resize changes the dimensions of the image. Pixels in the region shared
// by the old and new size keep their color, new pixels are set to c.
func (img *Image) Resize(width, height int, c RGB) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("hdr: invalid image size %dx%d", width, height))
	}
	if width == 0 || height == 0 {
		img.Clear()
		return
	}

	pix := make([]RGB, width*height)
	for y := range height {
		row := pix[y*width : (y+1)*width]
		n := 0
		if y < img.height {
			n = copy(row, img.pix[y*img.width:y*img.width+min(width, img.width)])
		}
		for x := n; x < width; x++ {
			row[x] = c
		}
	}

	img.width = width
	img.height = height
	img.pix = pix
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return RGBModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements the [image.Image] interface.
// Unlike Pixel, At returns black for points outside the image.
func (img *Image) At(x, y int) color.Color {
	if !img.IsXY(x, y) {
		return Black
	}
	return img.pix[y*img.width+x]
}

// Set implements the [draw.Image] interface.
// Points outside the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if !img.IsXY(x, y) {
		return
	}
	img.pix[y*img.width+x] = FromColor(c)
}

// FromImage converts an arbitrary image to an Image.
// The result has its origin at the minimum point of src's bounds.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy(), Black)
	for y := range img.height {
		for x := range img.width {
			img.pix[y*img.width+x] = FromColor(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img
}

// NRGBA converts the image to 8-bit channels.
func (img *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	for y := range img.height {
		for x := range img.width {
			dst.SetNRGBA(x, y, img.pix[y*img.width+x].NRGBA())
		}
	}
	return dst
}
