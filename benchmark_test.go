package lines

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines/hdr"
)

const starRays = 64

// starEnds returns the outer end points of the rays of a star which
// covers most of a size x size image.
func starEnds(size int) []pixel {
	c := float64(size-1) / 2
	r := c * 0.95
	ends := make([]pixel, starRays)
	for i := range ends {
		phi := 2 * math.Pi * float64(i) / starRays
		ends[i] = pixel{
			x: int(math.Round(c + r*math.Cos(phi))),
			y: int(math.Round(c + r*math.Sin(phi))),
		}
	}
	return ends
}

// BenchmarkRasterizeStar draws the rays of a star one segment at a time.
func BenchmarkRasterizeStar(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := hdr.New(size, size, hdr.White)
			ends := starEnds(size)
			c := (size - 1) / 2

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for _, e := range ends {
					RasterizeLineSegment(img, c, c, e.x, e.y, hdr.Black)
				}
			}
		})
	}
}

// BenchmarkHairlinerStar draws the same star as a single path.
func BenchmarkHairlinerStar(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := hdr.New(size, size, hdr.White)
			p := makeStarPath(size)
			h := NewHairliner()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := h.Draw(img, p, hdr.Black); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorStar benchmarks x/image/vector drawing the star, with
// every ray filled as a one pixel wide quadrilateral.
func BenchmarkVectorStar(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			ends := starEnds(size)
			c := float32(size-1)/2 + 0.5

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				for _, e := range ends {
					addThinLineToVector(r, c, c, float32(e.x)+0.5, float32(e.y)+0.5)
				}

				// Rasterize and composite
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeStarPath creates a path which consists of one subpath per ray.
func makeStarPath(size int) path.Path {
	ends := starEnds(size)
	c := float64((size - 1) / 2)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2 // reused for each yield
		for _, e := range ends {
			buf[0] = vec.Vec2{X: c, Y: c}
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = vec.Vec2{X: float64(e.x), Y: float64(e.y)}
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}

// addThinLineToVector adds a line of width 1 from (x0, y0) to (x1, y1).
func addThinLineToVector(r *vector.Rasterizer, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l/2, dx/l/2

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
