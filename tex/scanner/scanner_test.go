// scanner_test.go -
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readAll(scan *Scanner) string {
	var res []rune
	for scan.Next() {
		c, ok := scan.Rune()
		if !ok {
			break
		}
		res = append(res, c)
	}
	return string(res)
}

func TestScannerSimple(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte("ing"), "end")
	scan.Prepend([]byte("test"), "beginning")

	got := readAll(scan)
	if got != "testing" {
		t.Fatalf("expected %q, got %q", "testing", got)
	}
	if scan.Next() {
		t.Fatal("unexpected data")
	}
}

func TestScannerLines(t *testing.T) {
	testCases := []struct {
		in       string
		endLine  int
		expected string
	}{
		{"abc", 13, "abc"},
		{"abc\n", 13, "abc\r"},
		{"abc   \ndef", 13, "abc\rdef"},
		{"abc\r\n\ndef\n", 13, "abc\r\rdef\r"},
		{"abc\ndef\n", -1, "abcdef"},
		{"abc\ndef\n", 'X', "abcXdefX"},
	}
	for i, testCase := range testCases {
		endLine := testCase.endLine
		scan := &Scanner{EndLine: func() int { return endLine }}
		scan.Prepend([]byte(testCase.in), "test")
		got := readAll(scan)
		if got != testCase.expected {
			t.Errorf("%d: expected %q, got %q", i, testCase.expected, got)
		}
	}
}

func TestScannerState(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte("ab\ncd\n"), "test")
	scan.Next()
	scan.Rune()
	scan.SetState(2)
	if scan.State() != 2 {
		t.Error("state not stored")
	}
	scan.SkipLine()
	scan.Next()
	if scan.State() != 0 {
		t.Error("state not reset for new line")
	}
	if loc := scan.Location(); loc.Line != 2 || loc.Col != 1 {
		t.Errorf("wrong location %v", loc)
	}
}

func TestScannerBack(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte("xyz"), "test")
	scan.Next()
	scan.Rune()
	scan.Rune()
	scan.Back(1)
	c, _ := scan.Rune()
	if c != 'y' {
		t.Errorf("expected 'y', got %q", c)
	}
	if c, ok := scan.Peek(0); !ok || c != 'z' {
		t.Errorf("wrong peek result %q", c)
	}
	if _, ok := scan.Peek(1); ok {
		t.Error("peek beyond end of line")
	}
}

func TestScannerEndInput(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte("after"), "outer")
	scan.Prepend([]byte("one\ntwo\n"), "inner")
	scan.Next()
	scan.EndInput()
	got := readAll(scan)
	if got != "oneafter" {
		t.Errorf("expected %q, got %q", "oneafter", got)
	}
}

func TestScannerInclude(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "inc.tex"), []byte("inner\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	scan := &Scanner{BaseDir: dir}
	defer scan.Close()
	scan.Prepend([]byte("outer"), "main")
	err = scan.Include("inc.tex")
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(scan)
	if got != "innerouter" {
		t.Errorf("expected %q, got %q", "innerouter", got)
	}

	err = scan.Include("missing.tex")
	if err == nil {
		t.Error("missing file not reported")
	}
}

func TestScannerError(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte("line 1\nline 2\n"), "level1")
	scan.Next()
	scan.SkipLine()
	scan.Next()
	scan.Skip(2)
	scan.Prepend([]byte("included stuff\n"), "level2")
	scan.Next()

	err := scan.MakeError("something bad happened")
	if err.stack[0].Name != "level2" || err.stack[1].Line != 2 {
		t.Fatalf("wrong error location in %q", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "included from") ||
		!strings.Contains(msg, `before "ne 2"`) {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExcerpt(t *testing.T) {
	scan := &Scanner{}
	scan.Prepend([]byte(`\foo\bar`), "test")
	scan.Next()
	scan.Skip(4)
	expected := "l.1 \\foo\n        \\bar"
	if got := scan.Excerpt(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
