// prim_register.go -
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
	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

const numRegisters = 256

// registerTarget reads a register number for \count, \dimen, ...
func registerTarget(table Table) func(e *Expander, tok *tokenizer.Token) (Key, error) {
	return func(e *Expander, tok *tokenizer.Token) (Key, error) {
		n, err := e.scanInt()
		if err != nil {
			return Key{}, err
		}
		if n < 0 || n >= numRegisters {
			return Key{}, e.doc.errorf(KindUndefined, tok, "Bad register code (%d)", n)
		}
		return RegisterKey(table, n), nil
	}
}

// codeTarget reads a character code for \catcode, \lccode, ...
func codeTarget(table Table) func(e *Expander, tok *tokenizer.Token) (Key, error) {
	return func(e *Expander, tok *tokenizer.Token) (Key, error) {
		n, err := e.scanInt()
		if err != nil {
			return Key{}, err
		}
		if n < 0 || n > 255 {
			return Key{}, e.doc.errorf(KindUndefined, tok, "Bad character code (%d)", n)
		}
		return RegisterKey(table, n), nil
	}
}

// assignCell reads the value for an assignment to k and stores it.
func (e *Expander) assignCell(k Key) error {
	d := e.doc
	if err := e.scanOptionalEquals(); err != nil {
		return err
	}
	v, err := e.scanValue(k.valueType())
	if err != nil {
		return err
	}
	if n, ok := v.(int); ok && k.Table >= TableCatcode && k.Table <= TableDelcode {
		lo := 0
		if k.Table == TableDelcode {
			lo = -1
		}
		if hi := codeLimit(k.Table); n < lo || n > hi {
			return d.errorf(KindUsage, nil, "Invalid code (%d), should be in the range %d..%d", n, lo, hi)
		}
	}
	if d.Int(ParamKey(TableInteger, "tracingassigns")) > 0 {
		d.logger.Printf("{changing %s=%s}", k, d.describeValue(d.Get(k)))
		d.logger.Printf("{into %s=%s}", k, d.describeValue(v))
	}
	d.Set(k, v)
	return nil
}

func (e *Expander) scanValue(t valueType) (interface{}, error) {
	switch t {
	case typeInt:
		return e.scanInt()
	case typeDimen:
		return e.scanDimen()
	case typeGlue:
		return e.scanGlue(false)
	case typeMuGlue:
		return e.scanGlue(true)
	case typeToks:
		return e.scanToks(false)
	}
	return nil, e.doc.errorf(KindUsage, nil, "You can't assign to this quantity")
}

// arithTarget reads the register for \advance, \multiply and
// \divide.
func (e *Expander) arithTarget(cmd *tokenizer.Token) (Key, error) {
	d := e.doc
	tok, err := e.nextNonBlank()
	if err != nil {
		return Key{}, err
	}
	if tok != nil {
		switch m := d.Lookup(tok).(type) {
		case *Register:
			if m.Key.valueType() != typeToks {
				return m.Key, nil
			}
		case *Primitive:
			if m.Target != nil && !tok.NoExpand {
				k, err := m.Target(e, tok)
				if err != nil {
					return Key{}, err
				}
				if k.valueType() != typeToks {
					return k, nil
				}
			}
		}
	}
	return Key{}, d.errorf(KindUsage, tok, "You can't use `%s' after %s",
		d.describeMeaning(d.meaningOfOrNil(tok)), d.csName(cmd))
}

func (d *Document) meaningOfOrNil(tok *tokenizer.Token) Meaning {
	if tok == nil {
		return nil
	}
	return d.meaningOf(tok)
}

func doAdvance(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	k, err := e.arithTarget(tok)
	if err != nil {
		return err
	}
	if _, err := e.scanKeyword("by"); err != nil {
		return err
	}

	var res interface{}
	switch t := k.valueType(); t {
	case typeInt:
		n, err := e.scanInt()
		if err != nil {
			return err
		}
		sum := int64(d.Int(k)) + int64(n)
		if sum > maxInt || sum < -maxInt {
			return d.errorf(KindUsage, tok, "Arithmetic overflow")
		}
		res = int(sum)
	case typeDimen:
		x, err := e.scanDimen()
		if err != nil {
			return err
		}
		sum := d.Dimen(k) + x
		if abs(int(sum)) > maxDimen {
			return d.errorf(KindUsage, tok, "Arithmetic overflow")
		}
		res = sum
	case typeGlue, typeMuGlue:
		g, err := e.scanGlue(t == typeMuGlue)
		if err != nil {
			return err
		}
		res = addGlue(d.Glue(k), g)
	}
	d.Set(k, res)
	return nil
}

// scaleCell implements \multiply (divide false) and \divide (divide
// true).
func scaleCell(divide bool) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		d := e.doc
		k, err := e.arithTarget(tok)
		if err != nil {
			return err
		}
		if _, err := e.scanKeyword("by"); err != nil {
			return err
		}
		n, err := e.scanInt()
		if err != nil {
			return err
		}
		if divide && n == 0 {
			return d.errorf(KindUsage, tok, "Arithmetic overflow")
		}

		limit := int64(maxInt)
		if k.valueType() != typeInt {
			limit = maxDimen
		}
		overflow := false
		scale := func(x int) int {
			if divide {
				return x / n
			}
			p := int64(x) * int64(n)
			if p > limit || p < -limit {
				overflow = true
			}
			return int(p)
		}

		var res interface{}
		switch k.valueType() {
		case typeInt:
			res = scale(d.Int(k))
		case typeDimen:
			res = Dimen(scale(int(d.Dimen(k))))
		case typeGlue, typeMuGlue:
			g := d.Glue(k)
			g.Width = Dimen(scale(int(g.Width)))
			g.Stretch = Dimen(scale(int(g.Stretch)))
			g.Shrink = Dimen(scale(int(g.Shrink)))
			res = g
		}
		if overflow {
			return d.errorf(KindUsage, tok, "Arithmetic overflow")
		}
		d.Set(k, res)
		return nil
	}
}
