// group_test.go -
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
	"testing"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

func TestGroupRestoresState(t *testing.T) {
	testCases := []string{
		`{\count1=5 }`,
		`{\def\y{z}}`,
		"{\\catcode`\\A=12 }",
		`\begingroup\dimen3=2pt \skip1=1pt plus 1fil\endgroup`,
		`{\let\relax=\def {\toks0={abc}}}`,
		`{\chardef\c=1 \font\f=cmr10 \f}`,
		`{\count1=1 {\count1=2 {\count1=3 }}}`,
		`{\expandafter\def\csname new\endcsname{}}`,
	}
	for _, in := range testCases {
		d := newTestDocument(nil)
		before := d.Fingerprint()
		_, err := runString(t, d, in, false)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if after := d.Fingerprint(); after != before {
			t.Errorf("%q: state changed by group", in)
		}
		if d.GroupDepth() != 0 {
			t.Errorf("%q: %d groups left open", in, d.GroupDepth())
		}
	}
}

func TestGlobalAssignments(t *testing.T) {
	d := newTestDocument(nil)
	before := d.Fingerprint()
	_, err := runString(t, d, `{\global\count1=5 {\count1=6 }}`, false)
	if err != nil {
		t.Fatal(err)
	}
	if d.Fingerprint() == before {
		t.Error("global assignment was undone")
	}
	if n := d.Int(RegisterKey(TableCount, 1)); n != 5 {
		t.Errorf("expected 5, got %d", n)
	}

	d = newTestDocument(nil)
	_, err = runString(t, d, `\globaldefs=1 {\count2=7 }`, false)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.Int(RegisterKey(TableCount, 2)); n != 7 {
		t.Errorf("expected 7 with \\globaldefs, got %d", n)
	}
}

func TestFingerprintOrder(t *testing.T) {
	a := newTestDocument(nil)
	if _, err := runString(t, a, `\count1=1 \count2=2 \def\x{y}`, false); err != nil {
		t.Fatal(err)
	}
	b := newTestDocument(nil)
	if _, err := runString(t, b, `\def\x{y}\count2=2 \count1=1 `, false); err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprint depends on assignment order")
	}
	if _, err := runString(t, b, `\count1=3 `, false); err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("fingerprint ignores a changed register")
	}
}

func TestEndGroup(t *testing.T) {
	d := newTestDocument(nil)
	d.BeginGroup(GroupSimple)
	d.BeginGroup(GroupSemiSimple)
	if _, err := d.EndGroup(GroupSimple); err == nil {
		t.Error("closed a semi-simple group with }")
	}
	if _, err := d.EndGroup(GroupSemiSimple); err != nil {
		t.Error(err)
	}
	if _, err := d.EndGroup(GroupSimple); err != nil {
		t.Error(err)
	}
	if _, err := d.EndGroup(GroupSimple); err == nil {
		t.Error("closed a group at level 0")
	}
}

func TestPushback(t *testing.T) {
	pb := &Pushback{}
	a := tokenizer.NewChar('a', tokenizer.Letter)
	open := tokenizer.NewChar('{', tokenizer.BeginGroup)
	closing := tokenizer.NewChar('}', tokenizer.EndGroup)

	pb.Push(open, a, closing)
	if pb.Len() != 3 || pb.Depth() != 0 {
		t.Fatalf("wrong state %d/%d", pb.Len(), pb.Depth())
	}
	var got []*tokenizer.Token
	for pb.Len() > 0 {
		tok := pb.pop()
		pb.track(tok)
		got = append(got, tok)
		if tok == a && pb.Depth() != 1 {
			t.Errorf("wrong depth %d inside group", pb.Depth())
		}
	}
	if len(got) != 3 || got[0] != open || got[1] != a || got[2] != closing {
		t.Errorf("wrong order %v", got)
	}
	if pb.Depth() != 0 {
		t.Errorf("wrong final depth %d", pb.Depth())
	}
}

func TestJobID(t *testing.T) {
	a := NewDocument(&Options{JobName: "story"})
	b := NewDocument(&Options{JobName: "story"})
	c := NewDocument(&Options{JobName: "other"})
	if a.JobID() != b.JobID() {
		t.Error("job IDs differ for the same name")
	}
	if a.JobID() == c.JobID() {
		t.Error("job IDs agree for different names")
	}
}
