// tokenizer_test.go -
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

package tokenizer

import (
	"strings"
	"testing"

	"github.com/marnanel/yex-sub000/tex/scanner"
)

type testTable map[rune]Category

func (tt testTable) Catcode(c rune) Category {
	if cat, ok := tt[c]; ok {
		return cat
	}
	return PlainCatcode(c)
}

func tokenize(t *testing.T, table Table, text string) []*Token {
	t.Helper()
	p := NewTokenizer(table)
	p.EndLine = func() int { return '\r' }
	p.Prepend([]byte(text), "test data")
	var res []*Token
	for {
		tok, err := p.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
		res = append(res, tok)
	}
	return res
}

func show(toks []*Token) string {
	var parts []string
	for _, tok := range toks {
		switch tok.Cat {
		case Control:
			parts = append(parts, "\\"+tok.Name)
		case Space:
			parts = append(parts, "_")
		default:
			parts = append(parts, string(tok.Ch))
		}
	}
	return strings.Join(parts, "|")
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"ab c", "a|b|_|c"},
		{"a   b", "a|_|b"},
		{"   a", "a"},
		{"a\n", "a|_"},
		{"a\n\nb", "a|_|\\par|b"},
		{"a %comment\nb", "a|_|b"},
		{"a%\nb", "a|b"},
		{"\\test o'clock", "\\test|o|'|c|l|o|c|k"},
		{"\\test4testing", "\\test|4|t|e|s|t|i|n|g"},
		{"\\t2", "\\t|2"},
		{"\\2t", "\\2|t"},
		{"\\{}", "\\{|}"},
		{"\\...", "\\.|.|."},
		{"\\, x", "\\,|_|x"},
		{"\\  x", "\\ |x"},
		{"\\foo   \n  bar", "\\foo|b|a|r"},
		{"^^41^^5a", "A|Z"},
		{"^^7a", "z"},
		{"\\^^41BC", "\\ABC"},
		{"^^5e^41", "A"},
		{"^^5e^5e41", "^|4|1"},
		{"^x", "^|x"},
		{"^^", "^|^"},
		{"x^", "x|^"},
		{"\\", "\\"},
	}
	for i, testCase := range testCases {
		toks := tokenize(t, testTable{}, testCase.in)
		got := show(toks)
		if got != testCase.out {
			t.Errorf("%d: %q: expected %q, got %q",
				i, testCase.in, testCase.out, got)
		}
	}
}

func TestCategories(t *testing.T) {
	toks := tokenize(t, testTable{}, "{$&#^_~1a}")
	expected := []Category{BeginGroup, MathShift, AlignmentTab, Parameter,
		Superscript, Subscript, Active, Other, Letter, EndGroup}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, tok := range toks {
		if tok.Cat != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], tok.Cat)
		}
	}
}

func TestChangedCatcode(t *testing.T) {
	table := testTable{'@': Letter, '!': Escape}
	toks := tokenize(t, table, "\\a@b !c@ d")
	got := show(toks)
	if got != "\\a@b|\\c@|d" {
		t.Errorf("wrong tokens %q", got)
	}
}

func TestInvalidChar(t *testing.T) {
	p := NewTokenizer(testTable{})
	var reported []error
	p.Report = func(err error) { reported = append(reported, err) }
	p.Prepend([]byte("a\x7fb"), "test")
	var toks []*Token
	for {
		tok, err := p.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok == nil {
			break
		}
		toks = append(toks, tok)
	}
	if show(toks) != "a|b" {
		t.Errorf("wrong tokens %q", show(toks))
	}
	if len(reported) != 1 {
		t.Fatalf("expected one error, got %d", len(reported))
	}
	if _, ok := reported[0].(*InvalidCharError); !ok {
		t.Errorf("wrong error type %T", reported[0])
	}
}

func TestLocation(t *testing.T) {
	toks := tokenize(t, testTable{}, "a\n  \\b")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	loc := toks[2].Loc
	if loc.File != "test data" || loc.Line != 2 || loc.Col != 3 {
		t.Errorf("wrong location %v", loc)
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []string{
		"hello world",
		"one two three four",
		"a b c",
	}
	for _, text := range testCases {
		toks := tokenize(t, testTable{}, text)
		got := Format(toks, '\\')
		if got != text {
			t.Errorf("expected %q, got %q", text, got)
		}
	}
}

func TestFormat(t *testing.T) {
	toks := []*Token{
		NewControl("foo"),
		NewChar('x', Letter),
		NewControl("%"),
		NewChar('#', Parameter),
		NewChar('1', Other),
	}
	if got := Format(toks, '\\'); got != "\\foo x\\%#1" {
		t.Errorf("wrong format %q", got)
	}
	if got := Format(toks, -1); got != "foo x%#1" {
		t.Errorf("wrong format %q", got)
	}
}

func TestEqual(t *testing.T) {
	a := &Token{Cat: Letter, Ch: 'a', Loc: scanner.Location{Line: 1}}
	b := &Token{Cat: Letter, Ch: 'a', Loc: scanner.Location{Line: 7}}
	c := &Token{Cat: Other, Ch: 'a'}
	if !a.Equal(b) {
		t.Error("location must not matter")
	}
	if a.Equal(c) {
		t.Error("category must matter")
	}
	if !NewControl("x").Equal(NewControl("x")) {
		t.Error("control sequences differ")
	}
	if NewControl("x").Equal(NewControl("y")) {
		t.Error("control sequences are the same")
	}
}
