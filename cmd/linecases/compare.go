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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lines/hdr"
)

// errImagesDiffer is returned by the compare command so that the process
// exits with a non-zero status.
var errImagesDiffer = errors.New("images differ")

var compareDelta float64

var compareCmd = &cobra.Command{
	Use:   "compare EXPECTED GOT",
	Short: "Check whether two images are approximately equal",
	Long: `Decodes two images and compares them pixel by pixel.  The images are
equal if they have the same size and no color channel differs by more than
the given delta.  The exit status is non-zero if the images differ.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := hdr.ReadFile(args[0])
		if err != nil {
			return err
		}
		got, err := hdr.ReadFile(args[1])
		if err != nil {
			return err
		}

		if !expected.IsSameSize(got) {
			return fmt.Errorf("%w: size %dx%d != %dx%d", errImagesDiffer,
				expected.Width(), expected.Height(), got.Width(), got.Height())
		}
		if !expected.ApproxEqual(got, compareDelta) {
			return fmt.Errorf("%w: %s %s", errImagesDiffer, args[0], args[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "images are equal")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Float64Var(&compareDelta, "delta", 0.01, "maximum difference per color channel")
}
