// errors.go -
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

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// ErrorKind classifies the errors reported by the expansion engine.
type ErrorKind int

// These are the possible error kinds.
const (
	KindLexical ErrorKind = iota + 1
	KindUsage
	KindUndefined
	KindGrouping
	KindDefinition
)

func (kind ErrorKind) String() string {
	switch kind {
	case KindLexical:
		return "lexical error"
	case KindUsage:
		return "usage error"
	case KindUndefined:
		return "undefined"
	case KindGrouping:
		return "grouping error"
	case KindDefinition:
		return "definition error"
	}
	return "error"
}

// Error describes a problem found while processing TeX input.
type Error struct {
	Kind    ErrorKind
	Message string

	// Token is the token which triggered the error, if known.
	Token *tokenizer.Token

	// Context shows the input line, split at the current position.
	Context string
}

func (err *Error) Error() string {
	msg := "! " + err.Message
	if err.Token != nil {
		if loc := err.Token.Loc.String(); loc != "" {
			msg = loc + ": " + msg
		}
	}
	if err.Context != "" {
		msg += "\n" + err.Context
	}
	return msg
}

// Is allows to use the sentinel errors ErrLexical, ErrUsage, ... with
// errors.Is().  A sentinel matches every error of the same kind.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other.Message != "" {
		return false
	}
	return other.Kind == err.Kind
}

// Sentinel values for use with errors.Is().
var (
	ErrLexical    = &Error{Kind: KindLexical}
	ErrUsage      = &Error{Kind: KindUsage}
	ErrUndefined  = &Error{Kind: KindUndefined}
	ErrGrouping   = &Error{Kind: KindGrouping}
	ErrDefinition = &Error{Kind: KindDefinition}
)

// errorf creates a new error, including an excerpt of the current
// input line.
func (d *Document) errorf(kind ErrorKind, tok *tokenizer.Token, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Token:   tok,
		Context: d.tok.Excerpt(),
	}
}

func (d *Document) warn(err error) {
	d.Warnings = append(d.Warnings, err)
	d.logger.Println(err)
}
