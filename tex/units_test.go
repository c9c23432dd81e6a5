// units_test.go -
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

import "testing"

func TestFormatScaled(t *testing.T) {
	testCases := []struct {
		in  int
		out string
	}{
		{0, "0.0"},
		{unity, "1.0"},
		{-3 * unity / 2, "-1.5"},
		{1, "0.00002"},
		{unity / 3, "0.33333"},
		{105 * unity, "105.0"},
	}
	for _, test := range testCases {
		if out := formatScaled(test.in); out != test.out {
			t.Errorf("%d: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestGlueString(t *testing.T) {
	testCases := []struct {
		g   Glue
		out string
	}{
		{Glue{Width: 3 * unity}, "3.0pt"},
		{Glue{Width: unity, Stretch: 2 * unity, StretchOrder: orderFil}, "1.0pt plus 2.0fil"},
		{Glue{Shrink: unity, ShrinkOrder: orderFilll}, "0.0pt minus 1.0filll"},
	}
	for _, test := range testCases {
		if out := test.g.String(); out != test.out {
			t.Errorf("expected %q, got %q", test.out, out)
		}
	}
}

func TestAddGlue(t *testing.T) {
	a := Glue{Width: unity, Stretch: unity, StretchOrder: orderFil}
	b := Glue{Width: unity, Stretch: 5 * unity, Shrink: unity}
	sum := addGlue(a, b)
	want := Glue{Width: 2 * unity, Stretch: unity, StretchOrder: orderFil, Shrink: unity}
	if sum != want {
		t.Errorf("expected %s, got %s", want, sum)
	}
	if zero := addGlue(a, negateGlue(a)); zero != (Glue{}) {
		t.Errorf("expected zero glue, got %s", zero)
	}
}

func TestRomanNumeral(t *testing.T) {
	testCases := []struct {
		in  int
		out string
	}{
		{1984, "mcmlxxxiv"},
		{4, "iv"},
		{3999, "mmmcmxcix"},
		{0, ""},
		{-5, ""},
	}
	for _, test := range testCases {
		if out := romanNumeral(test.in); out != test.out {
			t.Errorf("%d: expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestXnOverD(t *testing.T) {
	q, r := xnOverD(10, 3, 4)
	if q != 7 || r != 2 {
		t.Errorf("expected 7 rem 2, got %d rem %d", q, r)
	}
	q, r = xnOverD(-10, 3, 4)
	if q != -7 || r != -2 {
		t.Errorf("expected -7 rem -2, got %d rem %d", q, r)
	}
}
