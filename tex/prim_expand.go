// prim_expand.go -
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

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// stringTokens converts a string into character tokens, the way TeX
// does for the output of \string, \the, ...
func stringTokens(s string) []*tokenizer.Token {
	res := make([]*tokenizer.Token, 0, len(s))
	for _, c := range s {
		cat := tokenizer.Other
		if c == ' ' {
			cat = tokenizer.Space
		}
		res = append(res, tokenizer.NewChar(c, cat))
	}
	return res
}

func doExpandafter(e *Expander, tok *tokenizer.Token) error {
	raw := e.Child(AtLevel(LevelReading))
	first, err := raw.Next()
	if err != nil {
		return err
	}
	second, err := raw.Next()
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}
	if second != nil {
		if err := e.expandOnce(second); err != nil {
			return err
		}
	}
	e.Push(first)
	return nil
}

func doNoexpand(e *Expander, tok *tokenizer.Token) error {
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	if (next.Cat == tokenizer.Control || next.Cat == tokenizer.Active) &&
		isExpandable(e.doc.Lookup(next)) {
		cp := *next
		cp.NoExpand = true
		next = &cp
	}
	e.Push(next)
	return nil
}

func doCsname(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	x := e.expanding()
	var name []rune
	for {
		next, err := x.Next()
		if err != nil {
			return err
		}
		if next == nil {
			return d.errorf(KindUsage, tok, "Missing %s inserted", d.csName(tokenizer.NewControl("endcsname")))
		}
		if next.Cat == tokenizer.Control || next.Cat == tokenizer.Active {
			if p, ok := d.Lookup(next).(*Primitive); ok && p.Name == "endcsname" {
				break
			}
			e.Push(next)
			return d.errorf(KindUsage, next, "Missing %s inserted", d.csName(tokenizer.NewControl("endcsname")))
		}
		name = append(name, next.Ch)
	}

	res := &tokenizer.Token{Cat: tokenizer.Control, Name: string(name), Loc: tok.Loc}
	k := ControlKey(res.Name)
	if d.Get(k) == nil {
		d.assign(k, frozenRelax, false)
	}
	e.Push(res)
	return nil
}

func doString(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	if d.skipping() {
		return nil
	}
	if next.Cat == tokenizer.Control {
		e.Push(stringTokens(d.csName(next))...)
	} else {
		e.Push(stringTokens(string(next.Ch))...)
	}
	return nil
}

func doNumber(e *Expander, tok *tokenizer.Token) error {
	n, err := e.scanInt()
	if err != nil {
		return err
	}
	e.Push(stringTokens(strconv.Itoa(n))...)
	return nil
}

var romanDigits = []struct {
	value  int
	digits string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func romanNumeral(n int) string {
	var res strings.Builder
	for _, rd := range romanDigits {
		for n >= rd.value {
			res.WriteString(rd.digits)
			n -= rd.value
		}
	}
	return res.String()
}

func doRomannumeral(e *Expander, tok *tokenizer.Token) error {
	n, err := e.scanInt()
	if err != nil {
		return err
	}
	e.Push(stringTokens(romanNumeral(n))...)
	return nil
}

// theTokens returns the tokens produced by \the for the next internal
// quantity.
func (e *Expander) theTokens(tok *tokenizer.Token) ([]*tokenizer.Token, error) {
	d := e.doc
	next, err := e.nextNonBlank()
	if err != nil {
		return nil, err
	}
	if next == nil || !d.isInternal(next) {
		if next != nil {
			e.Push(next)
		}
		return nil, d.errorf(KindUsage, next, "You can't use `%s' after %s",
			d.describeMeaning(d.meaningOfOrNil(next)), d.csName(tok))
	}

	if m, ok := d.Lookup(next).(*FontRef); ok {
		return []*tokenizer.Token{tokenizer.NewControl(m.Font.Ident)}, nil
	}
	v, err := e.readInternal(next)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case int:
		return stringTokens(strconv.Itoa(v)), nil
	case Dimen:
		return stringTokens(v.String()), nil
	case Glue:
		unit := "pt"
		if r, ok := d.Lookup(next).(*Register); ok && isMuglue(r.Key) {
			unit = "mu"
		} else if p, ok := d.Lookup(next).(*Primitive); ok && p.Name == "muskip" {
			unit = "mu"
		}
		return stringTokens(v.format(unit)), nil
	case []*tokenizer.Token:
		res := make([]*tokenizer.Token, len(v))
		copy(res, v)
		return res, nil
	case *Font:
		return []*tokenizer.Token{tokenizer.NewControl(v.Ident)}, nil
	}
	return nil, d.errorf(KindUsage, next, "You can't use `%s' after %s",
		d.describeMeaning(d.meaningOf(next)), d.csName(tok))
}

func isMuglue(k Key) bool {
	if k.Table == TableMuskip {
		return true
	}
	if k.Table == TableGlueParam {
		for _, name := range muglueParams {
			if k.Name == name {
				return true
			}
		}
	}
	return false
}

func doThe(e *Expander, tok *tokenizer.Token) error {
	res, err := e.theTokens(tok)
	if err != nil {
		return err
	}
	if e.edef {
		for i, t := range res {
			cp := *t
			cp.NoExpand = true
			res[i] = &cp
		}
	}
	e.Push(res...)
	return nil
}

func doShowthe(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	res, err := e.theTokens(tok)
	if err != nil {
		return err
	}
	d.logger.Printf("> %s.", d.format(res))
	return nil
}

func doMeaning(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	e.Push(stringTokens(d.describeMeaning(d.meaningOf(next)))...)
	return nil
}

func doJobname(e *Expander, tok *tokenizer.Token) error {
	e.Push(stringTokens(e.doc.JobName)...)
	return nil
}

func doFontname(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	next, err := e.nextNonBlank()
	if err != nil {
		return err
	}
	var font *Font
	if next != nil {
		switch m := d.Lookup(next).(type) {
		case *FontRef:
			font = m.Font
		case *Primitive:
			if m.Name == "font" {
				font = d.Font()
			}
		}
	}
	if font == nil {
		if next != nil {
			e.Push(next)
		}
		return d.errorf(KindUsage, next, "Missing font identifier")
	}
	e.Push(stringTokens(font.String())...)
	return nil
}

func doInput(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	name, err := e.scanFileName()
	if err != nil {
		return err
	}
	err = d.openInput(name)
	if err != nil {
		return d.errorf(KindUndefined, tok, "I can't find file `%s'", name)
	}
	return nil
}

func doEndinput(e *Expander, tok *tokenizer.Token) error {
	e.doc.tok.EndInput()
	return nil
}

func inputLineNo(e *Expander) (interface{}, error) {
	return e.doc.tok.LineNumber(), nil
}
