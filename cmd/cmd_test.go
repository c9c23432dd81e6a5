// cmd_test.go -
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

package cmd

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/marnanel/yex-sub000/tex"
	"github.com/marnanel/yex-sub000/tex/mode"
)

func TestBaseName(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"story.tex", "story"},
		{"dir/story.tex", "story"},
		{"story", "story"},
		{"story.txt", "story.txt"},
	}
	for _, test := range testCases {
		if out := baseName(test.in); out != test.out {
			t.Errorf("%q: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestExpandLine(t *testing.T) {
	d := tex.NewDocument(&tex.Options{Logger: log.New(io.Discard, "", 0)})
	out := &strings.Builder{}
	m := &mode.Text{W: out}

	lines := []string{`\def\x#1{<#1>}{`, `\x a}`, `\x b`}
	for _, line := range lines {
		if err := expandLine(d.OpenString(line, "<stdin>"), m); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if out.String() != "<a><b>" {
		t.Errorf("expected %q, got %q", "<a><b>", out.String())
	}
	if d.GroupDepth() != 0 {
		t.Errorf("unexpected group depth %d", d.GroupDepth())
	}
}
