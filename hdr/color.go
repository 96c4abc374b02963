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
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with three normalized channel intensities.
// Valid intensities lie in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// The sixteen basic HTML colors.
var (
	White   = RGB{1, 1, 1}
	Silver  = RGB{0.75, 0.75, 0.75}
	Gray    = RGB{0.5, 0.5, 0.5}
	Black   = RGB{0, 0, 0}
	Red     = RGB{1, 0, 0}
	Maroon  = RGB{0.5, 0, 0}
	Yellow  = RGB{1, 1, 0}
	Olive   = RGB{0.5, 0.5, 0}
	Lime    = RGB{0, 1, 0}
	Green   = RGB{0, 0.5, 0}
	Aqua    = RGB{0, 1, 1}
	Teal    = RGB{0, 0.5, 0.5}
	Blue    = RGB{0, 0, 1}
	Navy    = RGB{0, 0, 0.5}
	Fuchsia = RGB{1, 0, 1}
	Purple  = RGB{0.5, 0, 0.5}
)

var namedColors = map[string]RGB{
	"white":   White,
	"silver":  Silver,
	"gray":    Gray,
	"grey":    Gray,
	"black":   Black,
	"red":     Red,
	"maroon":  Maroon,
	"yellow":  Yellow,
	"olive":   Olive,
	"lime":    Lime,
	"green":   Green,
	"aqua":    Aqua,
	"teal":    Teal,
	"blue":    Blue,
	"navy":    Navy,
	"fuchsia": Fuchsia,
	"purple":  Purple,
}

// IsIntensityValid reports whether v is a finite number in [0, 1].
func IsIntensityValid(v float64) bool {
	return v >= 0 && v <= 1
}

// ByteToIntensity converts an 8-bit channel value to an intensity.
func ByteToIntensity(b uint8) float64 {
	return float64(b) / 255
}

// IntensityToByte converts an intensity to the nearest 8-bit channel value.
// Values outside [0, 1] are clamped, NaN maps to 0.
func IntensityToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(v*255 + 0.5))
}

// ApproxEqual reports whether a and b differ by at most delta.
// The result is false if either argument is NaN or infinite.
func ApproxEqual(a, b, delta float64) bool {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= delta
}

// IntensityApproxEqual is like ApproxEqual, but additionally requires both
// arguments to be valid intensities.
func IntensityApproxEqual(a, b, delta float64) bool {
	return IsIntensityValid(a) && IsIntensityValid(b) && ApproxEqual(a, b, delta)
}

// IsValid reports whether all three channels are valid intensities.
func (c RGB) IsValid() bool {
	return IsIntensityValid(c.R) && IsIntensityValid(c.G) && IsIntensityValid(c.B)
}

// ApproxEqual reports whether every channel of c is within delta of the
// corresponding channel of o.
func (c RGB) ApproxEqual(o RGB, delta float64) bool {
	return ApproxEqual(c.R, o.R, delta) &&
		ApproxEqual(c.G, o.G, delta) &&
		ApproxEqual(c.B, o.B, delta)
}

// RGBA implements the [color.Color] interface.
// The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

func to16(v float64) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(math.Floor(v*0xffff + 0.5))
}

// NRGBA returns the 8-bit representation of c.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: IntensityToByte(c.R),
		G: IntensityToByte(c.G),
		B: IntensityToByte(c.B),
		A: 255,
	}
}

// String returns the color in #rrggbb notation.
func (c RGB) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// RGBModel converts arbitrary colors to RGB.
// Alpha is dropped after un-premultiplying.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	return FromColor(c)
}

// FromColor converts a standard library color to RGB.
func FromColor(c color.Color) RGB {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGB{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
}

// ParseColor parses one of the sixteen basic color names (case-insensitive)
// or a hex color in #rgb or #rrggbb notation.
func ParseColor(s string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(key, "#")
	if !ok {
		return RGB{}, fmt.Errorf("unknown color %q", s)
	}

	var digits [3]string
	switch len(hex) {
	case 3:
		for i := range 3 {
			digits[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := range 3 {
			digits[i] = hex[2*i : 2*i+2]
		}
	default:
		return RGB{}, fmt.Errorf("malformed hex color %q", s)
	}

	var ch [3]float64
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("malformed hex color %q", s)
		}
		ch[i] = ByteToIntensity(uint8(v))
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}
