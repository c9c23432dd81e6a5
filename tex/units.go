// units.go -
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
	"strconv"
	"strings"
)

const (
	unity    = 1 << 16 // 1pt in scaled points
	maxDimen = 1<<30 - 1
	maxInt   = 1<<31 - 1
)

// Dimen is a length, measured in scaled points (2^-16 pt).
type Dimen int

func (x Dimen) String() string {
	return formatScaled(int(x)) + "pt"
}

// The orders of infinity used for stretch and shrink components.
const (
	orderNormal = iota
	orderFil
	orderFill
	orderFilll
)

// Glue is a length with stretch and shrink components.
type Glue struct {
	Width, Stretch, Shrink    Dimen
	StretchOrder, ShrinkOrder int
}

func (g Glue) String() string {
	return g.format("pt")
}

func (g Glue) format(unit string) string {
	res := formatScaled(int(g.Width)) + unit
	if g.Stretch != 0 {
		res += " plus " + formatScaled(int(g.Stretch)) + orderUnit(g.StretchOrder, unit)
	}
	if g.Shrink != 0 {
		res += " minus " + formatScaled(int(g.Shrink)) + orderUnit(g.ShrinkOrder, unit)
	}
	return res
}

func orderUnit(order int, unit string) string {
	if order == orderNormal {
		return unit
	}
	return "fi" + strings.Repeat("l", order)
}

// formatScaled prints a scaled value with the fewest decimal digits
// which are needed to read back the same value.
func formatScaled(s int) string {
	var b strings.Builder
	if s < 0 {
		b.WriteByte('-')
		s = -s
	}
	b.WriteString(strconv.Itoa(s / unity))
	b.WriteByte('.')
	s = 10*(s%unity) + 5
	delta := 10
	for {
		if delta > unity {
			s += 0x8000 - 50000 // round the last digit
		}
		b.WriteByte(byte('0' + s/unity))
		s = 10 * (s % unity)
		delta *= 10
		if s <= delta {
			break
		}
	}
	return b.String()
}

// roundDecimals converts a list of decimal digits after the decimal
// point into a fraction of unity.
func roundDecimals(digits []int) int {
	a := 0
	for k := len(digits) - 1; k >= 0; k-- {
		a = (a + digits[k]*2*unity) / 10
	}
	return (a + 1) / 2
}

// xnOverD computes x*n/d and the remainder, for non-negative n and
// positive d.
func xnOverD(x, n, d int) (int, int) {
	neg := x < 0
	if neg {
		x = -x
	}
	t := int64(x) * int64(n)
	q := int(t / int64(d))
	r := int(t % int64(d))
	if neg {
		return -q, -r
	}
	return q, r
}

type unitFactor struct {
	num, denom int
}

// Conversion factors from physical units to printer's points.
var physicalUnits = map[string]unitFactor{
	"in": {7227, 100},
	"pc": {12, 1},
	"cm": {7227, 254},
	"mm": {7227, 2540},
	"bp": {7227, 7200},
	"dd": {1238, 1157},
	"cc": {14856, 1157},
}

// physicalUnitNames lists the keywords tried by the scanner after "pt".
var physicalUnitNames = []string{"in", "pc", "cm", "mm", "bp", "dd", "cc"}

func addGlue(a, b Glue) Glue {
	res := Glue{Width: a.Width + b.Width}
	res.Stretch, res.StretchOrder = addOrdered(a.Stretch, a.StretchOrder, b.Stretch, b.StretchOrder)
	res.Shrink, res.ShrinkOrder = addOrdered(a.Shrink, a.ShrinkOrder, b.Shrink, b.ShrinkOrder)
	return res
}

func addOrdered(x Dimen, xo int, y Dimen, yo int) (Dimen, int) {
	switch {
	case x == 0:
		return y, yo
	case y == 0, xo > yo:
		return x, xo
	case yo > xo:
		return y, yo
	}
	sum := x + y
	if sum == 0 {
		return 0, orderNormal
	}
	return sum, xo
}

func negateGlue(g Glue) Glue {
	g.Width = -g.Width
	g.Stretch = -g.Stretch
	g.Shrink = -g.Shrink
	return g
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
