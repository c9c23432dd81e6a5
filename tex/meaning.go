// meaning.go -
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
	"fmt"
	"strings"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// Meaning is the current meaning of a control sequence or active
// character.  The possible meanings are *Primitive, *Macro, *Register,
// *CharDef, *CharAlias and *FontRef.
type Meaning interface {
	isMeaning()
}

type primitiveKind int

const (
	kindExpandable primitiveKind = iota
	kindVerbatim                 // expandable, but also runs in skipped branches
	kindConditional
	kindCommand
	kindAssignment
	kindPrefix
	kindTypeset  // passed on to the Mode
	kindInternal // read-only internal quantity
)

// Primitive is a built-in control sequence.
type Primitive struct {
	Name string
	kind primitiveKind

	// Fn executes or expands the primitive.  The argument tok is the
	// token which invoked the primitive.
	Fn func(e *Expander, tok *tokenizer.Token) error

	// Target, if set, reads the arguments of a primitive which names
	// an assignable cell, like \count or \catcode.  The argument tok
	// is the token which invoked the primitive.
	Target func(e *Expander, tok *tokenizer.Token) (Key, error)

	// Value, if set, returns the value of a read-only internal
	// quantity.
	Value func(e *Expander) (interface{}, error)
}

// Register is a control sequence which stands for a register or a
// parameter, e.g. \tolerance or a name defined by \countdef.
type Register struct {
	Key Key
}

// CharDef is a control sequence defined by \chardef or \mathchardef.
type CharDef struct {
	Code int
	Math bool
}

// CharAlias is a control sequence which was \let equal to a character
// token.
type CharAlias struct {
	Token *tokenizer.Token
}

// FontRef is a font identifier defined by \font.
type FontRef struct {
	Font *Font
}

func (*Primitive) isMeaning() {}
func (*Macro) isMeaning()     {}
func (*Register) isMeaning()  {}
func (*CharDef) isMeaning()   {}
func (*CharAlias) isMeaning() {}
func (*FontRef) isMeaning()   {}

// frozenRelax is the meaning of the \relax tokens inserted by TeX
// itself.  It cannot be redefined.
var frozenRelax = &Primitive{
	Name: "relax",
	kind: kindCommand,
	Fn:   func(*Expander, *tokenizer.Token) error { return nil },
}

func frozenRelaxToken() *tokenizer.Token {
	return &tokenizer.Token{Cat: tokenizer.Control, Name: "relax", Frozen: true}
}

// isExpandable checks whether a meaning is expanded by the Expander.
// Undefined control sequences count as expandable.
func isExpandable(m Meaning) bool {
	switch m := m.(type) {
	case nil:
		return true
	case *Macro:
		return true
	case *Primitive:
		switch m.kind {
		case kindExpandable, kindVerbatim, kindConditional:
			return true
		}
	}
	return false
}

// isAssignment checks whether a meaning starts an assignment, and can
// thus follow a prefix like \global.
func isAssignment(m Meaning) bool {
	switch m := m.(type) {
	case *Register, *FontRef:
		return true
	case *Primitive:
		return m.kind == kindAssignment || m.kind == kindPrefix || m.Target != nil
	}
	return false
}

// meaningOf returns the meaning of an arbitrary token, representing
// character tokens as *CharAlias.
func (d *Document) meaningOf(tok *tokenizer.Token) Meaning {
	if tok.Cat == tokenizer.Control || tok.Cat == tokenizer.Active || tok.Frozen {
		m := d.Lookup(tok)
		if tok.NoExpand && isExpandable(m) {
			return frozenRelax
		}
		return m
	}
	return &CharAlias{Token: tokenizer.NewChar(tok.Ch, tok.Cat)}
}

// sameMeaning implements the comparison used by \ifx.
func sameMeaning(a, b Meaning) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Primitive:
		b, ok := b.(*Primitive)
		return ok && a == b
	case *Macro:
		b, ok := b.(*Macro)
		return ok && a.equal(b)
	case *Register:
		b, ok := b.(*Register)
		return ok && a.Key == b.Key
	case *CharDef:
		b, ok := b.(*CharDef)
		return ok && *a == *b
	case *CharAlias:
		b, ok := b.(*CharAlias)
		return ok && a.Token.Equal(b.Token)
	case *FontRef:
		b, ok := b.(*FontRef)
		return ok && a.Font == b.Font
	}
	return false
}

// describeMeaning gives the text printed by \meaning.
func (d *Document) describeMeaning(m Meaning) string {
	esc := ""
	if c := d.escapeChar(); c >= 0 {
		esc = string(c)
	}
	switch m := m.(type) {
	case nil:
		return "undefined"
	case *Primitive:
		return esc + m.Name
	case *Macro:
		var prefix string
		if m.Long {
			prefix += esc + "long"
		}
		if m.Outer {
			prefix += esc + "outer"
		}
		if prefix != "" {
			prefix += " "
		}
		return prefix + "macro:" + d.paramText(m) + "->" + d.format(m.Body)
	case *Register:
		return strings.Replace(m.Key.String(), "\\", esc, 1)
	case *CharDef:
		if m.Math {
			return fmt.Sprintf("%smathchar\"%X", esc, m.Code)
		}
		return fmt.Sprintf("%schar\"%X", esc, m.Code)
	case *CharAlias:
		return m.Token.Describe()
	case *FontRef:
		return "select font " + m.Font.String()
	}
	return "unknown"
}

// describeValue formats the value of a cell for tracing output.
func (d *Document) describeValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "undefined"
	case Meaning:
		return d.describeMeaning(v)
	case []*tokenizer.Token:
		return d.format(v)
	case *Font:
		return v.String()
	}
	return fmt.Sprint(v)
}
