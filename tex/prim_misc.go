// prim_misc.go -
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

func doBegingroup(e *Expander, tok *tokenizer.Token) error {
	e.doc.BeginGroup(GroupSemiSimple)
	return nil
}

func doEndgroup(e *Expander, tok *tokenizer.Token) error {
	g, err := e.doc.EndGroup(GroupSemiSimple)
	if err != nil {
		err.(*Error).Token = tok
		return err
	}
	e.Push(g.AfterGroup...)
	return nil
}

func doAftergroup(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	// outside of any group the token is dropped
	if n := len(d.groups); n > 0 {
		g := d.groups[n-1]
		g.AfterGroup = append(g.AfterGroup, next)
	}
	return nil
}

func doAfterassignment(e *Expander, tok *tokenizer.Token) error {
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	e.doc.afterAssignment = next
	return nil
}

// changeCase implements \uppercase and \lowercase.
func changeCase(table Table) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		d := e.doc
		start, err := e.nextNonBlankNonRelax()
		if err != nil {
			return err
		}
		if start == nil || start.Cat != tokenizer.BeginGroup {
			if start != nil {
				e.Push(start)
			}
			return d.errorf(KindUsage, start, "Missing { inserted")
		}
		e.Push(start)
		toks, err := e.Child(AtLevel(LevelReading), Single(), Runaway("text of "+d.csName(tok))).All()
		if err != nil {
			return err
		}
		res := make([]*tokenizer.Token, len(toks))
		for i, t := range toks {
			res[i] = t
			if t.Cat == tokenizer.Control || t.Cat == tokenizer.Active || t.Ch > 255 {
				continue
			}
			if c := d.Int(RegisterKey(table, int(t.Ch))); c != 0 {
				cp := *t
				cp.Ch = rune(c)
				res[i] = &cp
			}
		}
		e.Push(res...)
		return nil
	}
}

// readExpandedText reads a balanced text with full expansion, as for
// \message.
func (e *Expander) readExpandedText(tok *tokenizer.Token) ([]*tokenizer.Token, error) {
	d := e.doc
	start, err := e.nextNonBlankNonRelax()
	if err != nil {
		return nil, err
	}
	if start == nil || start.Cat != tokenizer.BeginGroup {
		if start != nil {
			e.Push(start)
		}
		return nil, d.errorf(KindUsage, start, "Missing { inserted")
	}
	e.Push(start)
	x := e.Child(AtLevel(LevelExpanding), Single(), NoOuter(), Edef(), Runaway("text of "+d.csName(tok)))
	res, err := x.All()
	if err != nil {
		return nil, err
	}
	return clearNoExpand(res), nil
}

func doMessage(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	toks, err := e.readExpandedText(tok)
	if err != nil {
		return err
	}
	d.logger.Print(d.format(toks))
	return nil
}

func doErrmessage(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	toks, err := e.readExpandedText(tok)
	if err != nil {
		return err
	}
	return d.errorf(KindUsage, tok, "%s", d.format(toks))
}

func doShow(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	next, err := e.Child(AtLevel(LevelReading)).Next()
	if err != nil || next == nil {
		return err
	}
	d.logger.Printf("> %s=%s.", d.csName(next), d.describeMeaning(d.meaningOf(next)))
	return nil
}

func doIgnorespaces(e *Expander, tok *tokenizer.Token) error {
	next, err := e.nextNonBlank()
	if err != nil || next == nil {
		return err
	}
	e.Push(next)
	return nil
}

func doChar(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	n, err := e.scanInt()
	if err != nil {
		return err
	}
	if n < 0 || n > 255 {
		return d.errorf(KindUndefined, tok, "Bad character code (%d)", n)
	}
	e.Push(&tokenizer.Token{Cat: tokenizer.Other, Ch: rune(n), Loc: tok.Loc})
	return nil
}

func doEnd(e *Expander, tok *tokenizer.Token) error {
	e.doc.ended = true
	return nil
}

func doEndcsname(e *Expander, tok *tokenizer.Token) error {
	return e.doc.errorf(KindUsage, tok, "Extra %s", e.doc.csName(tok))
}

func cantUse(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	return d.errorf(KindUsage, tok, "You can't use `%s' in %s mode", d.csName(tok), d.ListMode())
}
