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

// Command linecases writes and inspects line rasterization test images.
//
// Usage:
//
//	linecases write --prefix got --format png
//	linecases compare expected.png got.png
//	linecases show 10 3
//	linecases draw scene.yaml -o out.png --scale 8
//	linecases sheet -o cases.pdf
package main

func main() {
	Execute()
}
