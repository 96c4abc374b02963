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
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/internal/sheet"
)

var sheetOutput string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Write all line segment test images to a PDF file",
	Long: `Writes a single page PDF file which shows the 121 line segment test
images on an 11x11 grid.  The image in column X and row Y has its line end
at (X, Y).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cases []sheet.Case
		for endY := range lines.CaseSize {
			for endX := range lines.CaseSize {
				cases = append(cases, sheet.Case{
					Name:  fmt.Sprintf("%d-%d", endX, endY),
					Image: lines.LineSegmentCase(endX, endY),
				})
			}
		}

		if err := writeSheet(sheetOutput, cases); err != nil {
			return err
		}
		lines.Logger().Info("wrote contact sheet", "file", sheetOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetCmd)

	sheetCmd.Flags().StringVarP(&sheetOutput, "output", "o", "cases.pdf", "output file")
}

func writeSheet(fname string, cases []sheet.Case) (err error) {
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
	if err := sheet.Write(w, cases, sheet.Options{Columns: lines.CaseSize}); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return w.Flush()
}
