// Command export writes test case definitions to JSON for the Python reference generator.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/lines/hdr"
	"seehuhn.de/go/lines/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string          `json:"name"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Background [3]float64      `json:"background"`
	Ops        []jsonOperation `json:"ops"`
}

type jsonOperation struct {
	Op    string        `json:"op"`
	From  []int         `json:"from,omitempty"`
	To    []int         `json:"to,omitempty"`
	CTM   []float64     `json:"ctm,omitempty"`
	Path  []jsonSegment `json:"path,omitempty"`
	Color [3]float64    `json:"color"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Background: rgbToJSON(tc.Background),
	}

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Segment:
			jtc.Ops = append(jtc.Ops, jsonOperation{
				Op:    "segment",
				From:  []int{op.X0, op.Y0},
				To:    []int{op.X1, op.Y1},
				Color: rgbToJSON(op.Color),
			})
		case testcases.Polyline:
			ctm := op.CTM
			if ctm == (matrix.Matrix{}) {
				ctm = matrix.Identity
			}
			jtc.Ops = append(jtc.Ops, jsonOperation{
				Op:    "polyline",
				CTM:   ctm[:],
				Path:  pathToJSON(op.Path),
				Color: rgbToJSON(op.Color),
			})
		}
	}
	return jtc
}

func rgbToJSON(c hdr.RGB) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
