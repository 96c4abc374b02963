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
	"github.com/spf13/cobra"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/hdr"
)

var (
	writePrefix string
	writeFormat string
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the 121 line segment test images",
	Long: `Writes one image for every end point (X, Y) with 0 <= X, Y <= 10.
Each image is 11x11 pixels and shows a red line from (5, 5) to (X, Y) on a
silver background.  The file names are PREFIX-X-Y.EXT.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := hdr.ParseFormat(writeFormat)
		if err != nil {
			return err
		}
		if err := lines.WriteLineSegmentCases(writePrefix, f); err != nil {
			return err
		}
		lines.Logger().Info("wrote line segment cases",
			"prefix", writePrefix,
			"format", f,
			"count", lines.CaseSize*lines.CaseSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVar(&writePrefix, "prefix", "got", "file name prefix, may include a directory")
	writeCmd.Flags().StringVar(&writeFormat, "format", "png", "image format (png, bmp or tiff)")
}
