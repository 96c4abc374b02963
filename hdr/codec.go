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

package hdr

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrEmptyImage is returned when trying to encode an image without pixels.
	ErrEmptyImage = errors.New("empty image")

	// ErrUnknownFormat is returned for file names with an unsupported
	// extension.
	ErrUnknownFormat = errors.New("unknown image format")
)

// Format identifies an image file format.
type Format int

// These are the supported file formats.
const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the canonical file name extension, without the leading dot.
func (f Format) Ext() string {
	return f.String()
}

// ParseFormat converts a format name or file name extension to a Format.
// A leading dot is ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromExt determines the file format from the extension of a file name.
func FormatFromExt(fname string) (Format, error) {
	return ParseFormat(filepath.Ext(fname))
}

// Encode writes img to w in the given format. The output only depends on
// the pixel values, so encoding the same image twice gives identical bytes.
func Encode(w io.Writer, img *Image, f Format) error {
	if img.IsEmpty() {
		return ErrEmptyImage
	}
	m := img.NRGBA()

	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Decode reads an image in any of the supported formats.
func Decode(r io.Reader) (*Image, Format, error) {
	m, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, err
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, 0, err
	}
	return FromImage(m), f, nil
}

// ReadFile reads an image from a file.
func ReadFile(fname string) (*Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := Decode(bufio.NewReader(fd))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// WriteFile writes img to a file. The format is determined by the file name
// extension.
func WriteFile(fname string, img *Image) (err error) {
	f, err := FormatFromExt(fname)
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(fd)
	if err := Encode(w, img, f); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return w.Flush()
}
