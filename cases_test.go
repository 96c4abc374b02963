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

package lines

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/lines/hdr"
)

func TestLineSegmentCaseName(t *testing.T) {
	got := LineSegmentCaseName("out/got", 3, 10, hdr.PNG)
	if want := "out/got-3-10.png"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got = LineSegmentCaseName("x", 0, 0, hdr.TIFF)
	if want := "x-0-0.tiff"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteLineSegmentCases(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "got")
	if err := WriteLineSegmentCases(prefix, hdr.PNG); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != CaseSize*CaseSize {
		t.Fatalf("got %d files, want %d", len(entries), CaseSize*CaseSize)
	}

	for endX := range CaseSize {
		for endY := range CaseSize {
			fname := LineSegmentCaseName(prefix, endX, endY, hdr.PNG)
			img, err := hdr.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !img.ApproxEqual(LineSegmentCase(endX, endY), 0.01) {
				t.Errorf("%s: wrong contents", filepath.Base(fname))
			}
		}
	}
}

func TestWriteLineSegmentCasesDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	for _, prefix := range []string{a, b} {
		if err := WriteLineSegmentCases(prefix, hdr.BMP); err != nil {
			t.Fatal(err)
		}
	}

	for endX := range CaseSize {
		for endY := range CaseSize {
			da, err := os.ReadFile(LineSegmentCaseName(a, endX, endY, hdr.BMP))
			if err != nil {
				t.Fatal(err)
			}
			db, err := os.ReadFile(LineSegmentCaseName(b, endX, endY, hdr.BMP))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(da, db) {
				t.Errorf("case %d-%d: output differs between runs", endX, endY)
			}
		}
	}
}

func TestWriteLineSegmentCasesMissingDir(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "no", "such", "dir", "got")
	if err := WriteLineSegmentCases(prefix, hdr.PNG); err == nil {
		t.Error("expected an error")
	}
}

func TestWriteLineSegmentCasesLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	prefix := filepath.Join(t.TempDir(), "got")
	if err := WriteLineSegmentCases(prefix, hdr.PNG); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != CaseSize*CaseSize {
		t.Fatalf("got %d log lines, want %d", len(lines), CaseSize*CaseSize)
	}
	if !strings.Contains(lines[0], "wrote line segment case") || !strings.Contains(lines[0], "got-0-0.png") {
		t.Errorf("unexpected log line %q", lines[0])
	}
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("nil logger")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}
