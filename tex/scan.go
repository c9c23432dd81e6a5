// scan.go -
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
	"unicode"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// expanding returns a child expander which expands macros.
func (e *Expander) expanding() *Expander {
	return e.Child(AtLevel(LevelExpanding))
}

// gating returns a child expander which only runs conditionals.  It
// is used to look at the token after a number, so that a following
// \the or macro call is not expanded too early.
func (e *Expander) gating() *Expander {
	return e.Child(AtLevel(LevelGating))
}

// nextNonBlank returns the next expanded token which is not a space.
func (e *Expander) nextNonBlank() (*tokenizer.Token, error) {
	x := e.expanding()
	for {
		tok, err := x.Next()
		if err != nil || tok == nil {
			return nil, err
		}
		if tok.Cat != tokenizer.Space {
			return tok, nil
		}
	}
}

// nextNonBlankNonRelax skips spaces and \relax.
func (e *Expander) nextNonBlankNonRelax() (*tokenizer.Token, error) {
	for {
		tok, err := e.nextNonBlank()
		if err != nil || tok == nil {
			return nil, err
		}
		if p, ok := e.doc.Lookup(tok).(*Primitive); ok && p.Name == "relax" && !tok.NoExpand {
			continue
		}
		return tok, nil
	}
}

// scanOptionalEquals skips spaces and an optional "=".
func (e *Expander) scanOptionalEquals() error {
	tok, err := e.nextNonBlank()
	if err != nil || tok == nil {
		return err
	}
	if tok.Cat != tokenizer.Other || tok.Ch != '=' {
		e.Push(tok)
	}
	return nil
}

// scanKeyword checks whether the next tokens spell the given keyword,
// ignoring case.  Leading spaces are skipped.  If the keyword is not
// found, the tokens read are put back, except for the leading spaces.
func (e *Expander) scanKeyword(word string) (bool, error) {
	return e.matchKeyword(e.expanding(), word)
}

// scanTrailingKeyword is like scanKeyword, but does not expand macros.
// It is used for optional keywords after a complete quantity, like
// "plus" after the width of a glue, so that a following \the or macro
// call is left alone.
func (e *Expander) scanTrailingKeyword(word string) (bool, error) {
	return e.matchKeyword(e.gating(), word)
}

func (e *Expander) matchKeyword(x *Expander, word string) (bool, error) {
	var seen []*tokenizer.Token
	for _, want := range word {
		for {
			tok, err := x.Next()
			if err != nil {
				return false, err
			}
			if tok == nil {
				e.Push(seen...)
				return false, nil
			}
			if tok.Cat != tokenizer.Control && tok.Cat != tokenizer.Active &&
				unicode.ToLower(tok.Ch) == want {
				seen = append(seen, tok)
				break
			}
			if tok.Cat == tokenizer.Space && len(seen) == 0 {
				continue
			}
			e.Push(append(seen, tok)...)
			return false, nil
		}
	}
	return true, nil
}

// scanSigns skips spaces and signs.  It returns whether the result
// needs to be negated, together with the first token after the signs.
func (e *Expander) scanSigns() (bool, *tokenizer.Token, error) {
	neg := false
	for {
		tok, err := e.nextNonBlank()
		if err != nil {
			return false, nil, err
		}
		if tok == nil {
			return false, nil, e.doc.errorf(KindUsage, nil, "Missing number, treated as zero")
		}
		if tok.Cat == tokenizer.Other && (tok.Ch == '+' || tok.Ch == '-') {
			if tok.Ch == '-' {
				neg = !neg
			}
			continue
		}
		return neg, tok, nil
	}
}

func digitValue(tok *tokenizer.Token, radix int) (int, bool) {
	if tok.Cat == tokenizer.Control || tok.Cat == tokenizer.Active {
		return 0, false
	}
	c := tok.Ch
	var v int
	switch {
	case c >= '0' && c <= '9' && tok.Cat == tokenizer.Other:
		v = int(c - '0')
	case c >= 'A' && c <= 'F' && radix == 16 &&
		(tok.Cat == tokenizer.Other || tok.Cat == tokenizer.Letter):
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

// scanInt reads an integer.
func (e *Expander) scanInt() (int, error) {
	neg, tok, err := e.scanSigns()
	if err != nil {
		return 0, err
	}
	n, err := e.scanUnsigned(tok)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

func (e *Expander) scanUnsigned(tok *tokenizer.Token) (int, error) {
	d := e.doc
	if tok.Cat == tokenizer.Other {
		switch tok.Ch {
		case '\'':
			return e.scanDigits(nil, 8)
		case '"':
			return e.scanDigits(nil, 16)
		case '`':
			return e.scanCharConstant()
		}
	}
	if _, ok := digitValue(tok, 10); ok {
		return e.scanDigits(tok, 10)
	}

	v, err := e.readInternal(tok)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case int:
		return v, nil
	case Dimen:
		return int(v), nil
	case Glue:
		return int(v.Width), nil
	}
	return 0, d.errorf(KindUsage, tok, "Missing number, treated as zero")
}

// scanDigits reads a sequence of digits in the given radix.  If first
// is not nil, it is the first digit.  The digits after the first are
// read without expanding macros.
func (e *Expander) scanDigits(first *tokenizer.Token, radix int) (int, error) {
	d := e.doc
	var n int64
	count := 0
	add := func(v int) error {
		n = n*int64(radix) + int64(v)
		count++
		if n > maxInt {
			return d.errorf(KindUsage, nil, "Number too big")
		}
		return nil
	}
	if first != nil {
		v, _ := digitValue(first, radix)
		if err := add(v); err != nil {
			return 0, err
		}
	}

	g := e.gating()
	if first == nil {
		g = e.expanding()
	}
	for {
		tok, err := g.Next()
		if err != nil {
			return 0, err
		}
		if tok == nil {
			break
		}
		if v, ok := digitValue(tok, radix); ok {
			if err := add(v); err != nil {
				return 0, err
			}
			g = e.gating()
			continue
		}
		if tok.Cat != tokenizer.Space {
			e.Push(tok)
		}
		break
	}
	if count == 0 {
		return 0, d.errorf(KindUsage, nil, "Missing number, treated as zero")
	}
	return int(n), nil
}

func (e *Expander) scanCharConstant() (int, error) {
	d := e.doc
	tok, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil {
		return 0, err
	}
	if tok == nil {
		return 0, d.errorf(KindUsage, nil, "Missing number, treated as zero")
	}
	var c rune
	if tok.Cat == tokenizer.Control {
		r := []rune(tok.Name)
		if len(r) != 1 {
			return 0, d.errorf(KindUsage, tok, "Improper alphabetic constant")
		}
		c = r[0]
	} else {
		c = tok.Ch
	}
	if err := e.skipOptionalSpace(); err != nil {
		return 0, err
	}
	return int(c), nil
}

// skipOptionalSpace removes one space token from the input, if
// present.
func (e *Expander) skipOptionalSpace() error {
	tok, err := e.gating().Next()
	if err != nil || tok == nil {
		return err
	}
	if tok.Cat != tokenizer.Space {
		e.Push(tok)
	}
	return nil
}

// readInternal returns the value of an internal quantity, like
// \count0 or \hsize.
func (e *Expander) readInternal(tok *tokenizer.Token) (interface{}, error) {
	d := e.doc
	switch m := d.Lookup(tok).(type) {
	case *Register:
		return d.Get(m.Key), nil
	case *Primitive:
		if tok.NoExpand {
			break
		}
		if m.Target != nil {
			k, err := m.Target(e, tok)
			if err != nil {
				return nil, err
			}
			return d.Get(k), nil
		}
		if m.Value != nil {
			return m.Value(e)
		}
	case *CharDef:
		return m.Code, nil
	case *FontRef:
		return m.Font, nil
	}
	e.Push(tok)
	return nil, d.errorf(KindUsage, tok, "Missing number, treated as zero")
}

// isInternal checks whether tok refers to an internal quantity.
func (d *Document) isInternal(tok *tokenizer.Token) bool {
	if tok.NoExpand {
		return false
	}
	switch m := d.Lookup(tok).(type) {
	case *Register, *CharDef, *FontRef:
		return true
	case *Primitive:
		return m.Target != nil || m.Value != nil
	}
	return false
}

// scanDimen reads a dimension.
func (e *Expander) scanDimen() (Dimen, error) {
	neg, tok, err := e.scanSigns()
	if err != nil {
		return 0, err
	}
	x, _, err := e.scanDimension(neg, tok, false, false)
	return x, err
}

// scanDimension reads the unsigned part of a dimension, starting with
// tok.  If fil is set, the units fil, fill and filll are allowed and
// the order of infinity is returned.  If mu is set, the unit must be
// mu.
func (e *Expander) scanDimension(neg bool, tok *tokenizer.Token, fil, mu bool) (Dimen, int, error) {
	d := e.doc

	var integer, frac int
	if d.isInternal(tok) {
		v, err := e.readInternal(tok)
		if err != nil {
			return 0, 0, err
		}
		switch v := v.(type) {
		case Dimen:
			if mu {
				return 0, 0, d.errorf(KindUsage, tok, "Incompatible glue units")
			}
			return sign(neg, v), orderNormal, nil
		case Glue:
			return sign(neg, v.Width), orderNormal, nil
		case int:
			integer = v
		default:
			return 0, 0, d.errorf(KindUsage, tok, "Missing number, treated as zero")
		}
	} else {
		var err error
		integer, frac, err = e.scanDecimal(tok)
		if err != nil {
			return 0, 0, err
		}
	}
	if integer < 0 {
		neg = !neg
		integer = -integer
	}

	x, order, err := e.scanUnits(integer, frac, fil, mu)
	if err != nil {
		return 0, 0, err
	}
	if x > maxDimen {
		return 0, 0, d.errorf(KindUsage, tok, "Dimension too large")
	}
	return sign(neg, Dimen(x)), order, nil
}

func sign(neg bool, x Dimen) Dimen {
	if neg {
		return -x
	}
	return x
}

// scanDecimal reads a decimal number with an optional fractional
// part.  The fraction is returned in units of 2^-16.
func (e *Expander) scanDecimal(tok *tokenizer.Token) (int, int, error) {
	isPoint := func(tok *tokenizer.Token) bool {
		return tok.Cat == tokenizer.Other && (tok.Ch == '.' || tok.Ch == ',')
	}
	if !isPoint(tok) {
		if _, ok := digitValue(tok, 10); !ok {
			n, err := e.scanUnsigned(tok)
			return n, 0, err
		}
	}

	var integer int64
	var digits []int
	inFrac := false
	g := e.gating()
	for {
		if isPoint(tok) && !inFrac {
			inFrac = true
		} else if v, ok := digitValue(tok, 10); ok {
			if inFrac {
				if len(digits) < 17 {
					digits = append(digits, v)
				}
			} else {
				integer = 10*integer + int64(v)
				if integer > maxInt {
					return 0, 0, e.doc.errorf(KindUsage, tok, "Number too big")
				}
			}
		} else {
			if tok.Cat != tokenizer.Space {
				e.Push(tok)
			}
			break
		}

		var err error
		tok, err = g.Next()
		if err != nil {
			return 0, 0, err
		}
		if tok == nil {
			break
		}
	}
	return int(integer), roundDecimals(digits), nil
}

// scanUnits reads the unit of a dimension and returns the value in
// scaled points.
func (e *Expander) scanUnits(integer, frac int, fil, mu bool) (int, int, error) {
	d := e.doc

	if fil {
		ok, err := e.scanKeyword("fil")
		if err != nil {
			return 0, 0, err
		}
		if ok {
			order := orderFil
			for {
				more, err := e.scanTrailingKeyword("l")
				if err != nil {
					return 0, 0, err
				}
				if !more {
					break
				}
				if order == orderFilll {
					return 0, 0, d.errorf(KindUsage, nil, "Illegal unit of measure (replaced by filll)")
				}
				order++
			}
			x, err := e.attachFraction(integer, frac)
			if err == nil {
				err = e.skipOptionalSpace()
			}
			return x, order, err
		}
	}

	if mu {
		ok, err := e.scanKeyword("mu")
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, d.errorf(KindUsage, nil, "Illegal unit of measure (mu inserted)")
		}
		x, err := e.attachFraction(integer, frac)
		if err == nil {
			err = e.skipOptionalSpace()
		}
		return x, orderNormal, err
	}

	// units defined by the current font, or by internal dimensions
	var base int
	haveBase := false
	if ok, err := e.scanKeyword("em"); err != nil {
		return 0, 0, err
	} else if ok {
		base, haveBase = int(d.Font().Quad), true
	} else if ok, err := e.scanKeyword("ex"); err != nil {
		return 0, 0, err
	} else if ok {
		base, haveBase = int(d.Font().XHeight), true
	} else {
		tok, err := e.nextNonBlank()
		if err != nil {
			return 0, 0, err
		}
		if tok != nil && d.isInternal(tok) {
			v, err := e.readInternal(tok)
			if err != nil {
				return 0, 0, err
			}
			switch v := v.(type) {
			case Dimen:
				base, haveBase = int(v), true
			case Glue:
				base, haveBase = int(v.Width), true
			default:
				return 0, 0, d.errorf(KindUsage, tok, "Illegal unit of measure (pt inserted)")
			}
			x, err := nxPlusY(integer, base, frac)
			return x, orderNormal, err
		}
		if tok != nil {
			e.Push(tok)
		}
	}
	if haveBase {
		x, err := nxPlusY(integer, base, frac)
		if err != nil {
			return 0, 0, err
		}
		return x, orderNormal, e.skipOptionalSpace()
	}

	ok, err := e.scanKeyword("true")
	if err != nil {
		return 0, 0, err
	}
	if ok {
		mag := d.Int(ParamKey(TableInteger, "mag"))
		if mag <= 0 || mag > 32768 {
			return 0, 0, d.errorf(KindUsage, nil, "Illegal magnification has been changed to 1000")
		}
		if mag != 1000 {
			var rem int
			integer, rem = xnOverD(integer, 1000, mag)
			frac = (1000*frac + unity*rem) / mag
			integer += frac / unity
			frac %= unity
		}
	}

	ok, err = e.scanKeyword("pt")
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		found := false
		for _, name := range physicalUnitNames {
			ok, err := e.scanKeyword(name)
			if err != nil {
				return 0, 0, err
			}
			if ok {
				f := physicalUnits[name]
				var rem int
				integer, rem = xnOverD(integer, f.num, f.denom)
				frac = (f.num*frac + unity*rem) / f.denom
				integer += frac / unity
				frac %= unity
				found = true
				break
			}
		}
		if !found {
			ok, err := e.scanKeyword("sp")
			if err != nil {
				return 0, 0, err
			}
			if !ok {
				return 0, 0, d.errorf(KindUsage, nil, "Illegal unit of measure (pt inserted)")
			}
			if integer > maxDimen {
				return 0, 0, d.errorf(KindUsage, nil, "Dimension too large")
			}
			return integer, orderNormal, e.skipOptionalSpace()
		}
	}

	x, err := e.attachFraction(integer, frac)
	if err != nil {
		return 0, 0, err
	}
	return x, orderNormal, e.skipOptionalSpace()
}

func (e *Expander) attachFraction(integer, frac int) (int, error) {
	if integer >= 1<<14 {
		return 0, e.doc.errorf(KindUsage, nil, "Dimension too large")
	}
	return integer*unity + frac, nil
}

// nxPlusY computes n*x + x*frac/unity, the value of a dimension given
// in multiples of x.
func nxPlusY(n, x, frac int) (int, error) {
	y, _ := xnOverD(x, frac, unity)
	v := int64(n)*int64(x) + int64(y)
	if v > maxDimen || v < -maxDimen {
		return 0, &Error{Kind: KindUsage, Message: "Dimension too large"}
	}
	return int(v), nil
}

// scanGlue reads a glue specification.
func (e *Expander) scanGlue(mu bool) (Glue, error) {
	d := e.doc
	neg, tok, err := e.scanSigns()
	if err != nil {
		return Glue{}, err
	}
	if d.isInternal(tok) {
		v, err := e.readInternal(tok)
		if err != nil {
			return Glue{}, err
		}
		switch v := v.(type) {
		case Glue:
			if neg {
				v = negateGlue(v)
			}
			return v, nil
		case Dimen:
			return e.scanStretchShrink(Glue{Width: sign(neg, v)}, mu)
		case int:
			// an integer, used as the numeric part of the width
			x, _, err := e.scanUnitsAfterInt(neg, v, mu)
			if err != nil {
				return Glue{}, err
			}
			return e.scanStretchShrink(Glue{Width: x}, mu)
		}
		return Glue{}, d.errorf(KindUsage, tok, "Missing number, treated as zero")
	}

	width, _, err := e.scanDimension(neg, tok, false, mu)
	if err != nil {
		return Glue{}, err
	}
	return e.scanStretchShrink(Glue{Width: width}, mu)
}

func (e *Expander) scanUnitsAfterInt(neg bool, n int, mu bool) (Dimen, int, error) {
	if n < 0 {
		neg = !neg
		n = -n
	}
	x, order, err := e.scanUnits(n, 0, false, mu)
	if err != nil {
		return 0, 0, err
	}
	if x > maxDimen {
		return 0, 0, e.doc.errorf(KindUsage, nil, "Dimension too large")
	}
	return sign(neg, Dimen(x)), order, nil
}

func (e *Expander) scanStretchShrink(g Glue, mu bool) (Glue, error) {
	ok, err := e.scanTrailingKeyword("plus")
	if err != nil {
		return g, err
	}
	if ok {
		neg, tok, err := e.scanSigns()
		if err != nil {
			return g, err
		}
		g.Stretch, g.StretchOrder, err = e.scanDimension(neg, tok, true, mu)
		if err != nil {
			return g, err
		}
	}
	ok, err = e.scanTrailingKeyword("minus")
	if err != nil {
		return g, err
	}
	if ok {
		neg, tok, err := e.scanSigns()
		if err != nil {
			return g, err
		}
		g.Shrink, g.ShrinkOrder, err = e.scanDimension(neg, tok, true, mu)
		if err != nil {
			return g, err
		}
	}
	return g, nil
}

// scanToks reads a balanced text for a token list assignment.  If
// expand is set, the text is expanded as in \edef.
func (e *Expander) scanToks(expand bool) ([]*tokenizer.Token, error) {
	d := e.doc
	tok, err := e.nextNonBlankNonRelax()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, d.errorf(KindUsage, nil, "Missing { inserted")
	}
	if tok.Cat != tokenizer.BeginGroup {
		if m, ok := d.Lookup(tok).(*Register); ok && m.Key.valueType() == typeToks {
			return d.Toks(m.Key), nil
		}
		if m, ok := d.Lookup(tok).(*Primitive); ok && m.Name == "toks" {
			k, err := m.Target(e, tok)
			if err != nil {
				return nil, err
			}
			return d.Toks(k), nil
		}
		e.Push(tok)
		return nil, d.errorf(KindUsage, tok, "Missing { inserted")
	}
	e.Push(tok)
	what := Runaway("text")
	var x *Expander
	if expand {
		x = e.Child(AtLevel(LevelExpanding), Single(), NoOuter(), Edef(), what)
	} else {
		x = e.Child(AtLevel(LevelReading), Single(), NoOuter(), what)
	}
	res, err := x.All()
	if err != nil {
		return nil, err
	}
	if expand {
		res = clearNoExpand(res)
	}
	return res, nil
}

func clearNoExpand(toks []*tokenizer.Token) []*tokenizer.Token {
	for i, tok := range toks {
		if tok.NoExpand {
			cp := *tok
			cp.NoExpand = false
			toks[i] = &cp
		}
	}
	return toks
}

// scanFileName reads a file name for \input or \font.  The name ends
// at the first space or non-character token.
func (e *Expander) scanFileName() (string, error) {
	var name []rune
	x := e.expanding()
	for {
		tok, err := x.Next()
		if err != nil {
			return "", err
		}
		if tok == nil {
			break
		}
		if tok.Cat == tokenizer.Space {
			if len(name) == 0 {
				continue
			}
			break
		}
		if tok.Cat == tokenizer.Control || tok.Cat == tokenizer.Active {
			e.Push(tok)
			break
		}
		name = append(name, tok.Ch)
	}
	return string(name), nil
}

// readControlName reads the token which is being defined by \let,
// \chardef and friends.
func (e *Expander) readControlName() (*tokenizer.Token, error) {
	d := e.doc
	raw := e.Child(AtLevel(LevelReading), NoOuter())
	for {
		tok, err := raw.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, d.errorf(KindDefinition, nil, "Missing control sequence inserted")
		}
		switch {
		case tok.Cat == tokenizer.Space:
			continue
		case tok.Frozen:
			return nil, d.errorf(KindDefinition, tok, "You can't redefine %s", tok)
		case tok.Cat == tokenizer.Control, tok.Cat == tokenizer.Active:
			return tok, nil
		}
		e.Push(tok)
		return nil, d.errorf(KindDefinition, tok, "Missing control sequence inserted")
	}
}
