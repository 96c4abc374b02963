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

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
	"seehuhn.de/go/lines/internal/scene"
)

var (
	drawOutput string
	drawScale  int
)

var drawCmd = &cobra.Command{
	Use:   "draw SCENE",
	Short: "Render a YAML scene file",
	Long: `Renders the segments and polylines described in a YAML scene file and
writes the result as an image.  The output format is determined by the file
name extension.  With --scale N every pixel becomes an NxN block.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if drawScale < 1 {
			return fmt.Errorf("invalid scale %d", drawScale)
		}

		s, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		img, err := s.Render()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		img = upscale(img, drawScale)

		if err := hdr.WriteFile(drawOutput, img); err != nil {
			return err
		}
		lines.Logger().Info("wrote scene",
			"file", drawOutput,
			"width", img.Width(),
			"height", img.Height())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&drawOutput, "output", "o", "out.png", "output file")
	drawCmd.Flags().IntVar(&drawScale, "scale", 1, "size of the output pixels")
}

// upscale enlarges img by an integer factor, without interpolation.
func upscale(img *hdr.Image, scale int) *hdr.Image {
	if scale == 1 {
		return img
	}
	dst := hdr.New(img.Width()*scale, img.Height()*scale, hdr.Black)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
