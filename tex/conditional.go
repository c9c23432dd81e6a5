// conditional.go -
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

// ifFrame is one entry of the conditional stack.
type ifFrame struct {
	active     bool // tokens in the current branch are processed
	dead       bool // the conditional started in a skipped branch
	evaluating bool // the condition is still being read
	taken      bool // one of the branches has been active
	elseSeen   bool

	isCase       bool
	target, seen int

	line int
}

// skipping checks whether the current conditional branch is skipped.
func (d *Document) skipping() bool {
	return !d.ifs[len(d.ifs)-1].active
}

// IfDepth returns the number of frames on the conditional stack.  The
// outermost frame is always present.
func (d *Document) IfDepth() int {
	return len(d.ifs)
}

// conditional creates the expansion function for an \if... primitive
// with the given condition.
func conditional(cond func(e *Expander) (bool, error)) func(*Expander, *tokenizer.Token) error {
	return func(e *Expander, tok *tokenizer.Token) error {
		d := e.doc
		if d.skipping() {
			d.ifs = append(d.ifs, &ifFrame{dead: true, taken: true, line: tok.Loc.Line})
			return nil
		}

		f := &ifFrame{active: true, evaluating: true, line: tok.Loc.Line}
		d.ifs = append(d.ifs, f)
		ok, err := cond(e.Child(AtLevel(LevelExpanding)))
		f.evaluating = false
		if err != nil {
			return err
		}
		f.active = ok
		f.taken = ok
		return nil
	}
}

func doIfcase(e *Expander, tok *tokenizer.Token) error {
	d := e.doc
	if d.skipping() {
		d.ifs = append(d.ifs, &ifFrame{dead: true, taken: true, isCase: true, line: tok.Loc.Line})
		return nil
	}

	f := &ifFrame{active: true, evaluating: true, isCase: true, line: tok.Loc.Line}
	d.ifs = append(d.ifs, f)
	n, err := e.Child(AtLevel(LevelExpanding)).scanInt()
	f.evaluating = false
	if err != nil {
		return err
	}
	f.target = n
	f.active = n == 0
	f.taken = f.active
	return nil
}

// endOfCondition checks the frame ended by \else, \or or \fi.  If the
// condition is still being evaluated, a \relax is inserted first and
// the frame is not returned.
func (e *Expander) endOfCondition(tok *tokenizer.Token) (*ifFrame, error) {
	d := e.doc
	if len(d.ifs) < 2 {
		return nil, d.errorf(KindGrouping, tok, "Extra %s", tok)
	}
	f := d.ifs[len(d.ifs)-1]
	if f.evaluating {
		e.Push(frozenRelaxToken(), tok)
		return nil, nil
	}
	return f, nil
}

func doElse(e *Expander, tok *tokenizer.Token) error {
	f, err := e.endOfCondition(tok)
	if f == nil {
		return err
	}
	if f.elseSeen {
		return e.doc.errorf(KindGrouping, tok, "Extra %s", tok)
	}
	f.elseSeen = true
	if f.dead {
		return nil
	}
	f.active = !f.taken
	f.taken = true
	return nil
}

func doOr(e *Expander, tok *tokenizer.Token) error {
	f, err := e.endOfCondition(tok)
	if f == nil {
		return err
	}
	if !f.isCase || f.elseSeen {
		return e.doc.errorf(KindGrouping, tok, "Extra %s", tok)
	}
	if f.dead {
		return nil
	}
	f.seen++
	f.active = !f.taken && f.seen == f.target
	f.taken = f.taken || f.active
	return nil
}

func doFi(e *Expander, tok *tokenizer.Token) error {
	f, err := e.endOfCondition(tok)
	if f == nil {
		return err
	}
	d := e.doc
	d.ifs = d.ifs[:len(d.ifs)-1]
	return nil
}

func ifNum(e *Expander) (bool, error) {
	a, err := e.scanInt()
	if err != nil {
		return false, err
	}
	rel, err := e.scanRelation()
	if err != nil {
		return false, err
	}
	b, err := e.scanInt()
	if err != nil {
		return false, err
	}
	return compare(a, rel, b), nil
}

func ifDim(e *Expander) (bool, error) {
	a, err := e.scanDimen()
	if err != nil {
		return false, err
	}
	rel, err := e.scanRelation()
	if err != nil {
		return false, err
	}
	b, err := e.scanDimen()
	if err != nil {
		return false, err
	}
	return compare(int(a), rel, int(b)), nil
}

func compare(a int, rel rune, b int) bool {
	switch rel {
	case '<':
		return a < b
	case '>':
		return a > b
	}
	return a == b
}

func (e *Expander) scanRelation() (rune, error) {
	tok, err := e.nextNonBlank()
	if err != nil {
		return 0, err
	}
	if tok != nil && tok.Cat == tokenizer.Other {
		switch tok.Ch {
		case '<', '=', '>':
			return tok.Ch, nil
		}
	}
	if tok != nil {
		e.Push(tok)
	}
	return '=', e.doc.errorf(KindUsage, tok, "Missing = inserted for \\ifnum")
}

func ifOdd(e *Expander) (bool, error) {
	n, err := e.scanInt()
	if err != nil {
		return false, err
	}
	return n%2 != 0, nil
}

func ifX(e *Expander) (bool, error) {
	raw := e.Child(AtLevel(LevelReading))
	a, err := raw.Next()
	if err != nil {
		return false, err
	}
	b, err := raw.Next()
	if err != nil {
		return false, err
	}
	if a == nil || b == nil {
		return false, e.runawayError()
	}
	d := e.doc
	return sameMeaning(d.meaningOf(a), d.meaningOf(b)), nil
}

// charCode returns the character code and category used by \if and
// \ifcat.  Control sequences which are not \let equal to a character
// have code 256 and category code 16.
func (d *Document) charCode(tok *tokenizer.Token) (rune, tokenizer.Category) {
	if tok.Cat != tokenizer.Control && tok.Cat != tokenizer.Active {
		return tok.Ch, tok.Cat
	}
	if !tok.NoExpand {
		if alias, ok := d.Lookup(tok).(*CharAlias); ok {
			return alias.Token.Ch, alias.Token.Cat
		}
	}
	if tok.Cat == tokenizer.Active {
		return tok.Ch, tokenizer.Active
	}
	return 256, tokenizer.Control
}

func ifChar(useCategory bool) func(e *Expander) (bool, error) {
	return func(e *Expander) (bool, error) {
		var codes [2]rune
		var cats [2]tokenizer.Category
		for i := range codes {
			tok, err := e.Next()
			if err != nil {
				return false, err
			}
			if tok == nil {
				return false, e.runawayError()
			}
			codes[i], cats[i] = e.doc.charCode(tok)
		}
		if useCategory {
			return cats[0] == cats[1], nil
		}
		return codes[0] == codes[1], nil
	}
}

func ifMode(modes ...ListMode) func(e *Expander) (bool, error) {
	return func(e *Expander) (bool, error) {
		cur := e.doc.ListMode()
		for _, m := range modes {
			if cur == m {
				return true, nil
			}
		}
		return false, nil
	}
}
