// level_test.go -
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

package tex

import (
	"strings"
	"testing"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

func tokString(toks []*tokenizer.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		if tok.Cat == tokenizer.Control {
			b.WriteString(tok.String())
		} else {
			b.WriteRune(tok.Ch)
		}
	}
	return b.String()
}

func TestSingle(t *testing.T) {
	testCases := []struct {
		in, first, rest string
	}{
		{`x{ab}`, "x", "{ab}"},
		{`{a{b}c}d`, "a{b}c", "d"},
		{`{}x`, "", "x"},
		{`\foo{x}`, `\foo`, "{x}"},
	}
	for _, level := range []Level{LevelReading, LevelGating} {
		for _, test := range testCases {
			d := newTestDocument(nil)
			d.OpenString(test.in, "test.tex")

			first, err := d.NewExpander(AtLevel(level), Single()).All()
			if err != nil {
				t.Errorf("%q: %v", test.in, err)
				continue
			}
			rest, err := d.NewExpander(AtLevel(LevelReading)).All()
			if err != nil {
				t.Errorf("%q: %v", test.in, err)
				continue
			}
			if got := tokString(first); got != test.first {
				t.Errorf("%q/%d: expected %q, got %q", test.in, level, test.first, got)
			}
			if got := tokString(rest); got != test.rest {
				t.Errorf("%q/%d: expected remainder %q, got %q", test.in, level, test.rest, got)
			}
		}
	}
}

func TestGating(t *testing.T) {
	d := newTestDocument(nil)
	if _, err := runString(t, d, `\def\m{M}`, false); err != nil {
		t.Fatal(err)
	}
	d.OpenString(`\m\iffalse x\fi\iftrue a\else b\fi\the`, "test.tex")
	toks, err := d.NewExpander(AtLevel(LevelGating)).All()
	if err != nil {
		t.Fatal(err)
	}
	if got := tokString(toks); got != `\ma\the` {
		t.Errorf("expected %q, got %q", `\ma\the`, got)
	}
	if n := d.IfDepth(); n != 0 {
		t.Errorf("%d conditionals left open", n)
	}
}

func TestLongLoop(t *testing.T) {
	d := newTestDocument(nil)
	in := `\count1=0
\def\loop{\advance\count1 by 1 \ifnum\count1<100000 \expandafter\loop\fi}
\loop\the\count1`
	out, err := runString(t, d, in, true)
	if err != nil {
		t.Fatal(err)
	}
	if out != "100000" {
		t.Errorf("expected 100000, got %q", out)
	}
	if n := d.pushback.Len(); n != 0 {
		t.Errorf("%d tokens left in the pushback buffer", n)
	}
	if n := d.IfDepth(); n != 0 {
		t.Errorf("%d conditionals left open", n)
	}
}
