// token.go -
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
	"strings"
	"unicode"

	"github.com/marnanel/yex-sub000/tex/scanner"
)

// Token contains information about a single syntactic unit in the TeX
// input.
type Token struct {
	// Cat describes which kind of token this is.
	Cat Category

	// For character tokens, this is the character code.
	Ch rune

	// For tokens of category Control, this is the name of the control
	// sequence, without the escape character.
	Name string

	// Loc gives the input position where the token was read.
	Loc scanner.Location

	// NoExpand is set on tokens which must not be expanded when they
	// are read next, e.g. after \noexpand.
	NoExpand bool

	// Frozen marks the inserted \relax which cannot be redefined.
	Frozen bool
}

// NewChar returns a character token.
func NewChar(c rune, cat Category) *Token {
	return &Token{Cat: cat, Ch: c}
}

// NewControl returns a token for the control sequence with the given
// name.
func NewControl(name string) *Token {
	return &Token{Cat: Control, Name: name}
}

// IsControl checks whether tok names a control sequence.
func (tok *Token) IsControl() bool {
	return tok.Cat == Control
}

// Equal checks whether two tokens have the same category and payload.
// Locations and expansion flags are ignored.
func (tok *Token) Equal(other *Token) bool {
	if tok == nil || other == nil {
		return tok == other
	}
	if tok.Cat != other.Cat {
		return false
	}
	if tok.Cat == Control {
		return tok.Name == other.Name
	}
	return tok.Ch == other.Ch
}

// IsWord checks whether a control sequence name needs to be followed
// by a space when printed.
func IsWord(name string) bool {
	if name == "" {
		return true
	}
	for _, c := range name {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

func (tok *Token) String() string {
	if tok.Cat == Control {
		return "\\" + tok.Name
	}
	return string(tok.Ch)
}

// Describe gives the description TeX uses for a character token,
// e.g. "the letter A" or "begin-group character {".
func (tok *Token) Describe() string {
	if tok.Cat == Control {
		return tok.String()
	}
	return tok.Cat.String() + " " + string(tok.Ch)
}

// Format converts a list of tokens back into TeX source text.  Control
// sequences are prefixed with the given escape character (none if
// escape is negative), and control words are followed by a space.
func Format(toks []*Token, escape rune) string {
	var res strings.Builder
	for _, tok := range toks {
		if tok.Cat != Control {
			res.WriteRune(tok.Ch)
			continue
		}
		if escape >= 0 {
			res.WriteRune(escape)
		}
		res.WriteString(tok.Name)
		if IsWord(tok.Name) {
			res.WriteByte(' ')
		}
	}
	return res.String()
}
