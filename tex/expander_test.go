// expander_test.go -
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
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// collector records the tokens which reach the Mode, writing control
// sequences with a backslash.
type collector struct {
	out        strings.Builder
	dropSpaces bool
}

func (c *collector) Handle(tok *tokenizer.Token, e *Expander) error {
	switch {
	case tok.Cat == tokenizer.Control:
		c.out.WriteString(tok.String())
	case tok.Cat == tokenizer.Space && c.dropSpaces:
		// pass
	default:
		c.out.WriteRune(tok.Ch)
	}
	return nil
}

func newTestDocument(logOut io.Writer) *Document {
	if logOut == nil {
		logOut = io.Discard
	}
	return NewDocument(&Options{Logger: log.New(logOut, "", 0)})
}

func runString(t *testing.T, d *Document, input string, dropSpaces bool) (string, error) {
	t.Helper()
	c := &collector{dropSpaces: dropSpaces}
	err := Run(d.OpenString(input, "test.tex"), c)
	return c.out.String(), err
}

func expand(t *testing.T, input string) string {
	t.Helper()
	out, err := runString(t, newTestDocument(nil), input, false)
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	return out
}

func TestExamples(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{`a\iftrue b\fi z`, "abz"},
		{`a\iffalse b\fi z`, "az"},
		{`\def\row#1{(#1_1,...,#1_n)}\row x`, "(x_1,...,x_n)"},
		{`\count10=100\advance\count10 by 5\the\count10`, "105"},
		{`\def\a{\b}\def\b{A\def\a{B\def\a{C\def\a{\b}}}}\def\puzzle{\a\a\a\a\a}\puzzle`, "ABCAB"},
		{"{\\catcode`\\A=12 }\\the\\catcode`\\A", "{}11"},
		{"{\\global\\catcode`\\A=12 }\\the\\catcode`\\A", "{}12"},
	}
	for _, test := range testCases {
		out, err := runString(t, newTestDocument(nil), test.in, true)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if out != test.out {
			t.Errorf("%q: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestMacroIdentity(t *testing.T) {
	bodies := []string{"abc", "a b", "(x,y)", "1{2}3"}
	for _, body := range bodies {
		plain := expand(t, body)
		viaMacro := expand(t, `\def\m{`+body+`}\m`)
		if plain != viaMacro {
			t.Errorf("%q: expected %q, got %q", body, plain, viaMacro)
		}
	}
}

func TestExpansion(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{`\def\a#1#2{#2#1}\a xy`, "yx"},
		{`\def\a#1.{[#1]}\a abc.`, "[abc]"},
		{`\def\a#1.{[#1]}\a {abc}.`, "[abc]"},
		{`\def\a#1#{[#1]}\a x{y}`, "[x]{y}"},
		{`\def\a#1{#1#1}\a{\count1=3 }\the\count1`, "3"},
		{`\edef\a{\noexpand\b x}\def\b{B}\a`, "Bx"},
		{`\def\b{B}\edef\a{\b\b}\def\b{C}\a`, "BB"},
		{`\count1=7 \edef\a{\the\count1}\count1=8 \a`, "7"},
		{`\expandafter\def\csname foo\endcsname{F}\foo`, "F"},
		{`\let\x=a\x`, "a"},
		{`\def\a{A}\let\b=\a\def\a{C}\b\a`, "AC"},
		{`\def\y{Y}\futurelet\x\y a\ifx\x a!\fi`, "Ya!"},
		{`\chardef\c=65 \c`, "A"},
		{`\countdef\c=5 \c=12 \the\count5`, "12"},
		{`\toks3={ab}\the\toks3`, "ab"},
		{`\uppercase{abc}`, "ABC"},
		{`\lowercase{ABC}`, "abc"},
		{`\romannumeral 1984`, "mcmlxxxiv"},
		{`\number 0042`, "42"},
		{`\number"1F`, "31"},
		{"\\number`\\a", "97"},
		{`\string\foo`, `\foo`},
		{`\def\a{x}\meaning\a`, "macro:->x"},
		{`\long\def\a#1{#1}\meaning\a`, `\long macro:#1->#1`},
		{`\meaning a`, "the letter a"},
		{`\jobname`, "texput"},
		{`\def\x{X}{\aftergroup\x a}b`, "{a}Xb"},
		{`\afterassignment\x\def\x{X}`, "X"},
		{`\count1=7 {\count1=8 }\the\count1`, "{}7"},
		{`\begingroup\count1=7 \endgroup\the\count1`, "0"},
		{`{\global\count1=7 }\the\count1`, "{}7"},
		{`\count1=2 \multiply\count1 by 21 \the\count1`, "42"},
		{`\count1=43 \divide\count1 by 2 \the\count1`, "21"},
		{`\dimen0=105pt\the\dimen0`, "105.0pt"},
		{`\dimen0=-.5pt\the\dimen0`, "-0.5pt"},
		{`\skip0=3pt plus 1fil minus 2pt\the\skip0`, "3.0pt plus 1.0fil minus 2.0pt"},
		{`\skip0=1pt\advance\skip0 by 2pt plus 3pt\the\skip0`, "3.0pt plus 3.0pt"},
		{`\muskip0=3mu plus 2fill\the\muskip0`, "3.0mu plus 2.0fill"},
		{`\skip0=1pt\the\skip0`, "1.0pt"},
		{`\def\m{M}\skip0=2pt plus 1fil\m\the\skip0`, "M2.0pt plus 1.0fil"},
		{`\the\tolerance`, "10000"},
		{`\the\inputlineno`, "1"},
		{`\ignorespaces   a`, "a"},
		{`\char65`, "A"},
		{`a\end b`, "a"},
		{`\aftergroup xy`, "y"},
	}
	for _, test := range testCases {
		out := expand(t, test.in)
		if out != test.out {
			t.Errorf("%q: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestConditionals(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{`\ifnum 3<5 yes\else no\fi`, "yes"},
		{`\ifnum 5<3 yes\else no\fi`, "no"},
		{`\ifnum 5=5 yes\fi`, "yes"},
		{`\ifdim 1pt<2pt yes\fi`, "yes"},
		{`\ifodd 3 yes\else no\fi`, "yes"},
		{`\ifodd 4 yes\else no\fi`, "no"},
		{`\ifcase 2 a\or b\or c\else d\fi`, "c"},
		{`\ifcase 5 a\or b\else d\fi`, "d"},
		{`\ifcase 0 a\or b\fi`, "a"},
		{`\ifx\a\b y\else n\fi`, "y"},
		{`\def\a{x}\def\b{x}\ifx\a\b y\else n\fi`, "y"},
		{`\def\a{x}\def\b{y}\ifx\a\b y\else n\fi`, "n"},
		{`\if aay\fi`, "y"},
		{`\if ab y\else n\fi`, "n"},
		{`\ifcat aby\fi`, "y"},
		{`\ifcat a1y\else n\fi`, "n"},
		{`\ifvmode v\fi`, "v"},
		{`\ifhmode h\else x\fi`, "x"},
		{`\iffalse\iftrue a\else b\fi\else c\fi`, "c"},
		{`\iftrue\iffalse a\else b\fi\else c\fi`, "b"},
		{`\iffalse \string\fi\fi x`, "x"},
		{`\def\t{\iftrue}\t a\fi`, "a"},
	}
	for _, test := range testCases {
		out := expand(t, test.in)
		if out != test.out {
			t.Errorf("%q: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestTracing(t *testing.T) {
	testCases := []struct {
		in, log string
	}{
		{`\count1=42 \showthe\count1`, "> 42.\n"},
		{`\message{hello \jobname}`, "hello texput\n"},
		{`\def\a#1{x#1}\show\a`, "> \\a=macro:#1->x#1.\n"},
		{`\tracingmacros=1 \def\a#1{x}\a y`, "\\a #1->x\n#1<-y\n"},
	}
	for _, test := range testCases {
		buf := &bytes.Buffer{}
		d := newTestDocument(buf)
		_, err := runString(t, d, test.in, false)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if buf.String() != test.log {
			t.Errorf("%q: expected log %q, got %q", test.in, test.log, buf.String())
		}
	}
}
