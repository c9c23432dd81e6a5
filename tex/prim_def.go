// prim_def.go -
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

func definition(expanded, global bool) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		return e.readDefinition(expanded, global)
	}
}

// readDefinition implements \def, \gdef, \edef and \xdef.
func (e *Expander) readDefinition(expanded, global bool) error {
	d := e.doc
	long, outer := d.long, d.outer
	global = global || d.global
	d.long, d.outer, d.global = false, false, false

	name, err := e.readControlName()
	if err != nil {
		return err
	}
	what := "definition of " + d.csName(name)
	raw := e.Child(AtLevel(LevelReading), NoOuter(), Runaway(what))
	params, err := e.readParams(raw)
	if err != nil {
		return err
	}

	var body []*tokenizer.Token
	if expanded {
		body, err = e.Child(AtLevel(LevelExpanding), Single(), NoOuter(), Edef(), Runaway(what)).All()
		body = clearNoExpand(body)
	} else {
		body, err = raw.Child(Single()).All()
	}
	if err != nil {
		return err
	}
	if n := len(params); n > 0 {
		delim := params[n-1].Delim
		if k := len(delim); k > 0 && delim[k-1].Cat == tokenizer.BeginGroup {
			body = append(body, delim[k-1])
		}
	}
	if err := d.checkBody(body, params, name); err != nil {
		return err
	}

	m := &Macro{
		Name:     name.Name,
		Params:   params,
		Body:     body,
		Long:     long,
		Outer:    outer,
		Expanded: expanded,
	}
	d.global = global
	return d.define(name, m)
}

// prefix implements \global, \long and \outer.  The flag is only set
// after checking that the next command can take the prefix.
func prefix(flag func(d *Document) *bool) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		d := e.doc
		next, err := e.nextNonBlankNonRelax()
		if err != nil {
			return err
		}
		if next == nil {
			return d.errorf(KindUsage, tok, "You can't use a prefix with the end of the file")
		}
		m := d.Lookup(next)
		if next.Cat != tokenizer.Control && next.Cat != tokenizer.Active || !isAssignment(m) {
			e.Push(next)
			return d.errorf(KindUsage, next, "You can't use a prefix with `%s'", d.describeMeaning(m))
		}
		if tok.Name != "global" {
			if p, ok := m.(*Primitive); !ok || p.kind != kindPrefix && !isDef(p) {
				e.Push(next)
				return d.errorf(KindUsage, next,
					"You can't use `%s' or `%s' with %s", d.csName(tokenizer.NewControl("long")),
					d.csName(tokenizer.NewControl("outer")), d.csName(next))
			}
		}
		*flag(d) = true
		e.Push(next)
		return nil
	}
}

func isDef(p *Primitive) bool {
	switch p.Name {
	case "def", "gdef", "edef", "xdef":
		return true
	}
	return false
}

// readLetTarget reads the "=" and the token after the name in \let.
func (e *Expander) readLetTarget() (*tokenizer.Token, error) {
	raw := e.Child(AtLevel(LevelReading))
	var tok *tokenizer.Token
	var err error
	for {
		tok, err = raw.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil || tok.Cat != tokenizer.Space {
			break
		}
	}
	if tok != nil && tok.Cat == tokenizer.Other && tok.Ch == '=' {
		tok, err = raw.Next()
		if err != nil {
			return nil, err
		}
		if tok != nil && tok.Cat == tokenizer.Space {
			tok, err = raw.Next()
			if err != nil {
				return nil, err
			}
		}
	}
	if tok == nil {
		return nil, e.doc.errorf(KindUsage, nil, "File ended while scanning \\let")
	}
	return tok, nil
}

func doLet(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	name, err := e.readControlName()
	if err != nil {
		return err
	}
	target, err := e.readLetTarget()
	if err != nil {
		return err
	}
	return d.define(name, d.meaningOf(target))
}

func doFuturelet(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	name, err := e.readControlName()
	if err != nil {
		return err
	}
	raw := e.Child(AtLevel(LevelReading))
	first, err := raw.Next()
	if err != nil {
		return err
	}
	second, err := raw.Next()
	if err != nil {
		return err
	}
	if first == nil || second == nil {
		return d.errorf(KindUsage, tok, "File ended while scanning \\futurelet")
	}
	err = d.define(name, d.meaningOf(second))
	e.Push(first, second)
	return err
}

// shorthand implements \chardef, \countdef and friends.  The function
// meaning converts the number read into the new meaning.
func shorthand(limit int, meaning func(n int) Meaning) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		d := e.doc
		name, err := e.readControlName()
		if err != nil {
			return err
		}
		// protect against \chardef\x=\x
		d.assign(keyOf(name), frozenRelax, false)
		if err := e.scanOptionalEquals(); err != nil {
			return err
		}
		n, err := e.scanInt()
		if err != nil {
			return err
		}
		if n < 0 || n > limit {
			return d.errorf(KindUndefined, tok, "Bad register code (%d)", n)
		}
		return d.define(name, meaning(n))
	}
}

func keyOf(tok *tokenizer.Token) Key {
	if tok.Cat == tokenizer.Active {
		return ActiveKey(tok.Ch)
	}
	return ControlKey(tok.Name)
}

func doFont(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	name, err := e.readControlName()
	if err != nil {
		return err
	}
	d.assign(keyOf(name), frozenRelax, false)
	if err := e.scanOptionalEquals(); err != nil {
		return err
	}
	fileName, err := e.scanFileName()
	if err != nil {
		return err
	}
	if fileName == "" {
		return d.errorf(KindUsage, tok, "Missing font file name")
	}

	var size Dimen
	if ok, err := e.scanKeyword("at"); err != nil {
		return err
	} else if ok {
		size, err = e.scanDimen()
		if err != nil {
			return err
		}
		if size <= 0 || size >= 2048*unity {
			return d.errorf(KindUsage, tok, "Improper `at' size (%s), replaced by 10pt", size)
		}
	} else if ok, err := e.scanKeyword("scaled"); err != nil {
		return err
	} else if ok {
		scale, err := e.scanInt()
		if err != nil {
			return err
		}
		if scale <= 0 || scale > 32768 {
			return d.errorf(KindUsage, tok, "Illegal magnification has been changed to 1000")
		}
		size = Dimen(int64(designSize) * int64(scale) / 1000)
	}

	font, err := d.fonts.Load(fileName, size)
	if err != nil {
		return d.errorf(KindUndefined, tok, "Font %s=%s not loadable: %v", d.csName(name), fileName, err)
	}
	font.Ident = name.Name
	return d.define(name, &FontRef{Font: font})
}

func currentFont(e *Expander) (interface{}, error) {
	return e.doc.Font(), nil
}
