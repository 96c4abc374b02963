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
	"image/color"
	"math"
	"testing"
)

func TestApproxEqualIntegers(t *testing.T) {
	if !ApproxEqual(0, 0, .01) || !ApproxEqual(3, 3, .01) || !ApproxEqual(-3, -3, .01) {
		t.Error("equal small integers not approximately equal")
	}
	if !ApproxEqual(1e9, 1e9, .01) || !ApproxEqual(-1e9, -1e9, .01) {
		t.Error("equal large integers not approximately equal")
	}
	if ApproxEqual(0, 3, .01) || ApproxEqual(-3, 3, .01) {
		t.Error("different integers approximately equal")
	}
	for a := -100; a <= 100; a++ {
		for b := -100; b <= 100; b++ {
			if got := ApproxEqual(float64(a), float64(b), .001); got != (a == b) {
				t.Errorf("ApproxEqual(%d, %d) = %t", a, b, got)
			}
		}
	}
}

func TestApproxEqualFractions(t *testing.T) {
	if !ApproxEqual(0.5, 0.5, .01) {
		t.Error("0.5 != 0.5")
	}
	if !ApproxEqual(0.5, 0.50001, .01) {
		t.Error("0.5 !~ 0.50001")
	}
	if ApproxEqual(0.5, 0.4, .01) {
		t.Error("0.5 ~ 0.4")
	}
}

func TestApproxEqualNonFinite(t *testing.T) {
	inf := math.Inf(1)
	cases := [][2]float64{
		{inf, inf},
		{1, inf},
		{inf, 1},
		{-inf, -inf},
		{math.NaN(), math.NaN()},
	}
	for _, c := range cases {
		if ApproxEqual(c[0], c[1], .01) {
			t.Errorf("ApproxEqual(%g, %g) = true", c[0], c[1])
		}
	}
}

func TestIntensity(t *testing.T) {
	valid := []float64{0, 0.5, 1}
	for _, v := range valid {
		if !IsIntensityValid(v) {
			t.Errorf("%g should be valid", v)
		}
	}
	invalid := []float64{-1, 1.1, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range invalid {
		if IsIntensityValid(v) {
			t.Errorf("%g should be invalid", v)
		}
	}

	if ByteToIntensity(0) != 0 || ByteToIntensity(255) != 1 {
		t.Error("ByteToIntensity endpoints")
	}
	if !ApproxEqual(0.5, ByteToIntensity(128), 0.1) {
		t.Error("ByteToIntensity(128)")
	}

	if IntensityToByte(0) != 0 || IntensityToByte(1) != 255 {
		t.Error("IntensityToByte endpoints")
	}
	if got := IntensityToByte(0.5); got != 128 {
		t.Errorf("IntensityToByte(0.5) = %d", got)
	}
	if IntensityToByte(-2) != 0 || IntensityToByte(7) != 255 || IntensityToByte(math.NaN()) != 0 {
		t.Error("IntensityToByte does not clamp")
	}
	for b := range 256 {
		if got := IntensityToByte(ByteToIntensity(uint8(b))); got != uint8(b) {
			t.Errorf("byte %d round trips to %d", b, got)
		}
	}

	if !IntensityApproxEqual(0, 0, .01) || !IntensityApproxEqual(1, 1, .01) ||
		!IntensityApproxEqual(0.5, 0.4999, .01) {
		t.Error("IntensityApproxEqual false negative")
	}
	if IntensityApproxEqual(0, 1, .01) || IntensityApproxEqual(1.001, 1.001, .01) {
		t.Error("IntensityApproxEqual false positive")
	}
}

func TestRGB(t *testing.T) {
	var black RGB
	if black != Black {
		t.Error("zero value is not black")
	}

	c := RGB{0, 0.5, 1}
	if c.R != 0 || c.G != 0.5 || c.B != 1 {
		t.Errorf("unexpected channels %v", c)
	}
	if !c.IsValid() || (RGB{0, 2, 0}).IsValid() {
		t.Error("IsValid")
	}

	if Black == White || White == Black || Maroon == Black {
		t.Error("distinct colors compare equal")
	}

	if !Black.ApproxEqual(Black, .01) || !Maroon.ApproxEqual(Maroon, .01) {
		t.Error("color not approximately equal to itself")
	}
	if Black.ApproxEqual(White, .01) || White.ApproxEqual(Black, .01) {
		t.Error("black ~ white")
	}
	a, b := RGB{0, 0, 0.005}, RGB{0, 0, 0.006}
	if !a.ApproxEqual(b, .01) || !b.ApproxEqual(a, .01) {
		t.Error("close colors not approximately equal")
	}
	if a.ApproxEqual(b, .0001) || b.ApproxEqual(a, .0001) {
		t.Error("tolerance ignored")
	}
}

func TestRGBColorInterface(t *testing.T) {
	var _ color.Color = Red

	r, g, b, a := Teal.RGBA()
	if r != 0 || g != 0x8000 || b != 0x8000 || a != 0xffff {
		t.Errorf("Teal.RGBA() = %x %x %x %x", r, g, b, a)
	}

	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if got != Fuchsia {
		t.Errorf("FromColor = %v", got)
	}
	if RGBModel.Convert(Olive) != Olive {
		t.Error("RGBModel changes RGB values")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"red", Red},
		{"Silver", Silver},
		{" NAVY ", Navy},
		{"grey", Gray},
		{"#f0f", Fuchsia},
		{"#00ff00", Lime},
		{"#000", Black},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "mauve", "#12", "#gggggg", "ff0000"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded", in)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := Purple.String(); s != "#800080" {
		t.Errorf("Purple.String() = %q", s)
	}
}
