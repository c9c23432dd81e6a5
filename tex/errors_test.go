// errors_test.go -
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
	"errors"
	"strings"
	"testing"
)

func TestErrors(t *testing.T) {
	testCases := []struct {
		in      string
		kind    error
		message string
	}{
		{`\fi`, ErrGrouping, "Extra \\fi"},
		{`\else`, ErrGrouping, "Extra \\else"},
		{`\iftrue\else\else\fi`, ErrGrouping, "Extra \\else"},
		{`\iftrue\or\fi`, ErrGrouping, "Extra \\or"},
		{`\iftrue a`, ErrGrouping, "incomplete"},
		{`{a`, ErrGrouping, "inside a group at level 1"},
		{`a}`, ErrGrouping, "Too many }'s"},
		{`\begingroup a}`, ErrGrouping, "forgotten \\endgroup"},
		{`{\endgroup`, ErrGrouping, "Extra \\endgroup"},
		{`\undefined`, ErrUndefined, "Undefined control sequence"},
		{`\count300=1`, ErrUndefined, "Bad register code"},
		{`\input nonexistent-file`, ErrUndefined, "I can't find file"},
		{`\def\a#2{}`, ErrDefinition, "numbered consecutively"},
		{`\def\a#1{#2}`, ErrDefinition, "Illegal parameter number"},
		{`\def a{}`, ErrDefinition, "Missing control sequence"},
		{`\def\a.{}\a x`, ErrUsage, "doesn't match its definition"},
		{`\def\a#1{}\a{x\par}`, ErrUsage, "Paragraph ended"},
		{`\outer\def\a{}\def\b{\a}`, ErrUsage, "Forbidden control sequence"},
		{`\outer\def\o{}\edef\a{\o}`, ErrUsage, "Forbidden control sequence found while scanning definition of \\a"},
		{`\outer\def\o{}\toks0={\o}`, ErrUsage, "Forbidden control sequence"},
		{`\outer\def\o{}\message{\o}`, ErrUsage, "Forbidden control sequence found while scanning text of \\message"},
		{`\outer\def\a{}\iffalse\a\fi`, ErrUsage, "Incomplete \\if"},
		{`\long\count1=1`, ErrUsage, "with \\count"},
		{`\global a`, ErrUsage, "You can't use a prefix"},
		{`\catcode1=16`, ErrUsage, "Invalid code (16)"},
		{`\divide\count1 by 0`, ErrUsage, "Arithmetic overflow"},
		{`\dimen0=3xy`, ErrUsage, "Illegal unit of measure"},
		{`\ifnum 1 2 \fi`, ErrUsage, "Missing = inserted"},
		{`\def\a{`, ErrUsage, "File ended while scanning definition of \\a"},
		{`\errmessage{oops}`, ErrUsage, "oops"},
		{`\endcsname`, ErrUsage, "Extra \\endcsname"},
		{`\inputlineno`, ErrUsage, "You can't use `\\inputlineno' in vertical mode"},
	}
	for _, test := range testCases {
		_, err := runString(t, newTestDocument(nil), test.in, false)
		if err == nil {
			t.Errorf("%q: missing error", test.in)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("%q: wrong error kind: %v", test.in, err)
		}
		if !strings.Contains(err.Error(), test.message) {
			t.Errorf("%q: expected %q in %q", test.in, test.message, err.Error())
		}
	}
}

func TestErrorIs(t *testing.T) {
	d := newTestDocument(nil)
	err := d.errorf(KindUndefined, nil, "test")
	if !errors.Is(err, ErrUndefined) {
		t.Error("error does not match its sentinel")
	}
	if errors.Is(err, ErrGrouping) {
		t.Error("error matches the wrong sentinel")
	}
	if errors.Is(err, &Error{Kind: KindUndefined, Message: "other"}) {
		t.Error("error matches a non-sentinel error")
	}
}

func TestErrorToken(t *testing.T) {
	testCases := []struct {
		in, name string
	}{
		{`\count300=1`, "count"},
		{`\catcode999=12`, "catcode"},
		{`\advance\dimen-1 by 1pt`, "dimen"},
	}
	for _, test := range testCases {
		_, err := runString(t, newTestDocument(nil), test.in, false)
		var texErr *Error
		if !errors.As(err, &texErr) {
			t.Errorf("%q: expected *Error, got %v", test.in, err)
			continue
		}
		if texErr.Token == nil || texErr.Token.Name != test.name {
			t.Errorf("%q: error not attributed to \\%s: %v", test.in, test.name, texErr.Token)
		}
	}
}
