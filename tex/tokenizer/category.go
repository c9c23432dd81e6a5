// category.go -
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

import "unicode"

// Category is one of TeX's sixteen character categories.  Control
// tokens use the additional category Control.
type Category uint8

// The TeX category codes, in the order of their numeric values.
const (
	Escape Category = iota
	BeginGroup
	EndGroup
	MathShift
	AlignmentTab
	EndOfLine
	Parameter
	Superscript
	Subscript
	Ignored
	Space
	Letter
	Other
	Active
	Comment
	Invalid

	// Control marks tokens which name a control sequence.
	Control
)

var categoryNames = [...]string{
	Escape:       "escape character",
	BeginGroup:   "begin-group character",
	EndGroup:     "end-group character",
	MathShift:    "math shift character",
	AlignmentTab: "alignment tab character",
	EndOfLine:    "end-of-line character",
	Parameter:    "macro parameter character",
	Superscript:  "superscript character",
	Subscript:    "subscript character",
	Ignored:      "ignored character",
	Space:        "blank space",
	Letter:       "the letter",
	Other:        "the character",
	Active:       "active character",
	Comment:      "comment character",
	Invalid:      "invalid character",
	Control:      "control sequence",
}

func (cat Category) String() string {
	if int(cat) < len(categoryNames) {
		return categoryNames[cat]
	}
	return "unknown category"
}

// DefaultCatcode returns the category code INITEX assigns to the
// character c.
func DefaultCatcode(c rune) Category {
	switch {
	case c == '\\':
		return Escape
	case c == '%':
		return Comment
	case c == ' ':
		return Space
	case c == '\r':
		return EndOfLine
	case c == 0:
		return Ignored
	case c == 127:
		return Invalid
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return Letter
	case c > 255 && unicode.IsLetter(c):
		return Letter
	}
	return Other
}

// PlainCatcode returns the category code which plain TeX assigns to
// the character c.
func PlainCatcode(c rune) Category {
	switch c {
	case '{':
		return BeginGroup
	case '}':
		return EndGroup
	case '$':
		return MathShift
	case '&':
		return AlignmentTab
	case '#':
		return Parameter
	case '^':
		return Superscript
	case '_':
		return Subscript
	case '~':
		return Active
	case '\t':
		return Space
	}
	return DefaultCatcode(c)
}
