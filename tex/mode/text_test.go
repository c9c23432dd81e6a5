// text_test.go -
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

package mode

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/marnanel/yex-sub000/tex"
)

func TestText(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"hello world", "hello world"},
		{"  one\n\ntwo", "one \n\ntwo"},
		{`a\par\par b`, "a\n\nb"},
		{`\def\x{X}\x y`, "Xy"},
		{`\everypar{[}a\par b`, "[a\n\n[b"},
		{`\noindent\ifhmode h\fi`, "h"},
		{`\ifvmode v\fi\ifhmode h\fi`, "vh"},
		{`{a}{b}`, "ab"},
	}
	for _, test := range testCases {
		d := tex.NewDocument(&tex.Options{Logger: log.New(io.Discard, "", 0)})
		out := &strings.Builder{}
		err := tex.Run(d.OpenString(test.in, "test.tex"), &Text{W: out})
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if out.String() != test.out {
			t.Errorf("%q: expected %q, got %q", test.in, test.out, out.String())
		}
	}
}
