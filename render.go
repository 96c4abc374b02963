// Package lines draws one pixel wide straight lines into raster images.
//
// The central function is [RasterizeLineSegment], an exact integer
// implementation of the classic incremental line drawing algorithm.
// [Hairliner] uses it to draw polygonal paths, and [WriteLineSegmentCases]
// writes a fixed set of rendered test images to disk.
package lines

//go:generate go run ./testcases/export
//go:generate python3 tools/generate_references.py

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lines/hdr"
	"seehuhn.de/go/lines/testcases"
)

// RenderCase renders a test case into a new image.
func RenderCase(tc testcases.TestCase) (*hdr.Image, error) {
	img := hdr.New(tc.Width, tc.Height, tc.Background)

	var h *Hairliner
	for i, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Segment:
			RasterizeLineSegment(img, op.X0, op.Y0, op.X1, op.Y1, op.Color)
		case testcases.Polyline:
			if h == nil {
				h = NewHairliner()
			}
			// zero-value means identity
			h.CTM = op.CTM
			if h.CTM == (matrix.Matrix{}) {
				h.CTM = matrix.Identity
			}
			if err := h.Draw(img, op.Path, op.Color); err != nil {
				return nil, fmt.Errorf("%s: operation %d: %w", tc.Name, i, err)
			}
		default:
			return nil, fmt.Errorf("%s: unsupported operation %T", tc.Name, op)
		}
	}
	return img, nil
}
