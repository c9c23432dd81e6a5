// tokenizer.go -
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

package tokenizer

import (
	"fmt"
	"log"

	"github.com/marnanel/yex-sub000/tex/scanner"
)

// Table gives the current category code of a character.
type Table interface {
	Catcode(c rune) Category
}

// The line states of TeX's input processor.
const (
	stateNewLine = iota
	stateMidLine
	stateSkipBlanks
)

// A Tokenizer splits the input of a scanner into tokens.
type Tokenizer struct {
	scanner.Scanner

	// Table supplies the category codes.  It is consulted for every
	// character, so changes take effect immediately.
	Table Table

	// Report is called for lexical errors which do not stop
	// tokenization.  If Report is nil, the errors are logged.
	Report func(err error)

	lastWidth int
}

// InvalidCharError reports a character of category Invalid in the
// input.
type InvalidCharError struct {
	Ch  rune
	Loc scanner.Location
}

func (err *InvalidCharError) Error() string {
	return fmt.Sprintf("%s: text line contains an invalid character %q",
		err.Loc, err.Ch)
}

// NewTokenizer creates and initialises a new Tokenizer.
func NewTokenizer(table Table) *Tokenizer {
	return &Tokenizer{Table: table}
}

// Next returns the next token of the input, or nil at the end of
// input.
func (t *Tokenizer) Next() (*Token, error) {
	for t.Scanner.Next() {
		loc := t.Location()
		c, ok := t.readChar()
		if !ok {
			continue
		}

		cat := t.Table.Catcode(c)
		switch cat {
		case Escape:
			return t.readControl(loc), nil

		case Space:
			if t.State() == stateMidLine {
				t.SetState(stateSkipBlanks)
				return &Token{Cat: Space, Ch: ' ', Loc: loc}, nil
			}

		case EndOfLine:
			state := t.State()
			t.SkipLine()
			t.SetState(stateNewLine)
			switch state {
			case stateNewLine:
				return &Token{Cat: Control, Name: "par", Loc: loc}, nil
			case stateMidLine:
				return &Token{Cat: Space, Ch: ' ', Loc: loc}, nil
			}

		case Comment:
			t.SkipLine()

		case Ignored:
			// pass

		case Invalid:
			err := &InvalidCharError{Ch: c, Loc: loc}
			if t.Report != nil {
				t.Report(err)
			} else {
				log.Println(err)
			}

		default:
			t.SetState(stateMidLine)
			return &Token{Cat: cat, Ch: c, Loc: loc}, nil
		}
	}
	return nil, t.Err()
}

// readChar reads one character from the current line, reducing ^^
// notation.  The number of input characters used is stored in
// t.lastWidth.
func (t *Tokenizer) readChar() (rune, bool) {
	c, ok := t.Rune()
	if !ok {
		return 0, false
	}
	width := 1
	for t.Table.Catcode(c) == Superscript {
		c2, ok := t.Peek(0)
		if !ok || c2 != c {
			break
		}
		c3, ok := t.Peek(1)
		if !ok {
			break
		}
		if c4, ok := t.Peek(2); ok && isHex(c3) && isHex(c4) {
			t.Skip(3)
			width += 3
			c = hexValue(c3)<<4 | hexValue(c4)
		} else if c3 < 128 {
			t.Skip(2)
			width += 2
			if c3 < 64 {
				c = c3 + 64
			} else {
				c = c3 - 64
			}
		} else {
			break
		}
	}
	t.lastWidth = width
	return c, true
}

func (t *Tokenizer) readControl(loc scanner.Location) *Token {
	tok := &Token{Cat: Control, Loc: loc}

	c, ok := t.readChar()
	if !ok {
		t.SetState(stateMidLine)
		return tok
	}

	cat := t.Table.Catcode(c)
	if cat != Letter {
		tok.Name = string(c)
		if cat == Space {
			t.SetState(stateSkipBlanks)
		} else {
			t.SetState(stateMidLine)
		}
		return tok
	}

	name := []rune{c}
	for {
		c, ok := t.readChar()
		if !ok {
			break
		}
		if t.Table.Catcode(c) != Letter {
			t.Back(t.lastWidth)
			break
		}
		name = append(name, c)
	}
	tok.Name = string(name)
	t.SetState(stateSkipBlanks)
	return tok
}

func isHex(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
}

func hexValue(c rune) rune {
	if c <= '9' {
		return c - '0'
	}
	return c - 'a' + 10
}
