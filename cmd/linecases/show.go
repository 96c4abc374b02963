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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
)

var showCmd = &cobra.Command{
	Use:   "show X Y",
	Short: "Print one line segment test image",
	Long: `Prints the test image with a line from (5, 5) to (X, Y).  On a
terminal every pixel is shown as a colored block; otherwise pixels on the
line are shown as '#' and background pixels as '.'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var end [2]int
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid coordinate %q", arg)
			}
			if v < 0 || v >= lines.CaseSize {
				return fmt.Errorf("coordinate %d not in range 0-%d", v, lines.CaseSize-1)
			}
			end[i] = v
		}

		img := lines.LineSegmentCase(end[0], end[1])
		out := cmd.OutOrStdout()
		if isTerminal(out) {
			return showBlocks(out, img, termenv.ColorProfile())
		}
		return showText(out, img)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// showText prints the image using '#' for the foreground color and '.' for
// everything else.
func showText(w io.Writer, img *hdr.Image) error {
	b := &strings.Builder{}
	for y := range img.Height() {
		for x := range img.Width() {
			if img.Pixel(x, y) == lines.CaseForeground {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// showBlocks prints every pixel as two spaces with the pixel color as the
// background.
func showBlocks(w io.Writer, img *hdr.Image, p termenv.Profile) error {
	b := &strings.Builder{}
	for y := range img.Height() {
		for x := range img.Width() {
			c := img.Pixel(x, y)
			b.WriteString(termenv.String("  ").Background(p.Color(c.String())).String())
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
