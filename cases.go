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
	"log/slog"

	"seehuhn.de/go/lines/hdr"
)

// Geometry and colors of the line segment cases.
const (
	CaseSize    = 11
	CaseCenterX = 5
	CaseCenterY = 5
)

var (
	CaseBackground = hdr.Silver
	CaseForeground = hdr.Red
)

// LineSegmentCase renders a CaseSize×CaseSize image, filled with
// CaseBackground, containing a line in CaseForeground from the center
// (CaseCenterX, CaseCenterY) to (endX, endY).
func LineSegmentCase(endX, endY int) *hdr.Image {
	img := hdr.New(CaseSize, CaseSize, CaseBackground)
	RasterizeLineSegment(img, CaseCenterX, CaseCenterY, endX, endY, CaseForeground)
	return img
}

// LineSegmentCaseName returns the file name used by WriteLineSegmentCases
// for the case ending at (endX, endY).
func LineSegmentCaseName(prefix string, endX, endY int, f hdr.Format) string {
	return fmt.Sprintf("%s-%d-%d.%s", prefix, endX, endY, f.Ext())
}

// WriteLineSegmentCases writes one image file for every end point in the
// CaseSize×CaseSize grid, as rendered by LineSegmentCase. The files are
// named "{prefix}-{endX}-{endY}.{ext}". The output is deterministic.
//
// The function stops at the first error.
func WriteLineSegmentCases(prefix string, f hdr.Format) error {
	log := Logger()
	for endX := range CaseSize {
		for endY := range CaseSize {
			img := LineSegmentCase(endX, endY)
			fname := LineSegmentCaseName(prefix, endX, endY, f)
			if err := hdr.WriteFile(fname, img); err != nil {
				return err
			}
			log.Debug("wrote line segment case",
				slog.String("file", fname),
				slog.Int("x", endX),
				slog.Int("y", endY))
		}
	}
	return nil
}
