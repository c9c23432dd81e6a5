// macro.go -
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

// Macro is a user-defined control sequence.
type Macro struct {
	Name string

	// Params is the parameter text, split into segments.
	Params []Segment

	// Body is the replacement text.  Parameters appear as a
	// Parameter token followed by a digit, "##" stands for a single
	// Parameter token.
	Body []*tokenizer.Token

	Long, Outer bool

	// Expanded is set for macros defined by \edef or \xdef.
	Expanded bool
}

// Segment is one part of a parameter text: a parameter together with
// the delimiter following it.  The optional first segment has Param
// 0 and gives the tokens which must directly follow the macro name.
type Segment struct {
	Param int
	Delim []*tokenizer.Token
}

func (m *Macro) equal(other *Macro) bool {
	if m == other {
		return true
	}
	if m.Long != other.Long || m.Outer != other.Outer ||
		len(m.Params) != len(other.Params) {
		return false
	}
	for i, seg := range m.Params {
		o := other.Params[i]
		if seg.Param != o.Param || !equalTokens(seg.Delim, o.Delim) {
			return false
		}
	}
	return equalTokens(m.Body, other.Body)
}

func equalTokens(a, b []*tokenizer.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i, tok := range a {
		if !tok.Equal(b[i]) {
			return false
		}
	}
	return true
}

func hasSuffix(toks, suffix []*tokenizer.Token) bool {
	if len(toks) < len(suffix) {
		return false
	}
	return equalTokens(toks[len(toks)-len(suffix):], suffix)
}

func isPar(tok *tokenizer.Token) bool {
	return tok.Cat == tokenizer.Control && tok.Name == "par"
}

// expandMacro reads the arguments of a macro invocation and pushes
// the body, with the parameters replaced, back into the input.
func (e *Expander) expandMacro(m *Macro, tok *tokenizer.Token) error {
	d := e.doc
	what := "use of " + d.csName(tok)
	raw := e.Child(AtLevel(LevelReading), NoOuter(), Runaway(what))

	var args [][]*tokenizer.Token
	for _, seg := range m.Params {
		if seg.Param == 0 {
			for _, want := range seg.Delim {
				got, err := raw.Next()
				if err != nil {
					return err
				}
				if got == nil {
					return raw.runawayError()
				}
				if !got.Equal(want) {
					return d.errorf(KindUsage, got,
						"Use of %s doesn't match its definition", d.csName(tok))
				}
			}
			continue
		}

		var arg []*tokenizer.Token
		var err error
		if len(seg.Delim) == 0 {
			arg, err = e.readUndelimited(raw, m, tok)
		} else {
			arg, err = e.readDelimited(raw, m, tok, seg.Delim)
		}
		if err != nil {
			return err
		}
		args = append(args, arg)
	}

	if d.Int(ParamKey(TableInteger, "tracingmacros")) > 0 {
		d.logger.Printf("%s%s->%s", d.format([]*tokenizer.Token{tok}),
			d.paramText(m), d.format(m.Body))
		for i, arg := range args {
			d.logger.Printf("#%d<-%s", i+1, d.format(arg))
		}
	}

	e.Push(m.interpolate(args)...)
	return nil
}

func (e *Expander) readUndelimited(raw *Expander, m *Macro, name *tokenizer.Token) ([]*tokenizer.Token, error) {
	d := e.doc
	for {
		tok, err := raw.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, raw.runawayError()
		}
		switch {
		case tok.Cat == tokenizer.Space:
			continue
		case tok.Cat == tokenizer.EndGroup:
			return nil, d.errorf(KindUsage, tok,
				"Argument of %s has an extra }", d.csName(name))
		case tok.Cat == tokenizer.BeginGroup:
			raw.Push(tok)
			arg, err := raw.Child(Single()).All()
			if err != nil {
				return nil, err
			}
			if !m.Long {
				for _, t := range arg {
					if isPar(t) {
						return nil, e.parError(t, name)
					}
				}
			}
			return arg, nil
		case isPar(tok) && !m.Long:
			return nil, e.parError(tok, name)
		}
		return []*tokenizer.Token{tok}, nil
	}
}

func (e *Expander) readDelimited(raw *Expander, m *Macro, name *tokenizer.Token, delim []*tokenizer.Token) ([]*tokenizer.Token, error) {
	d := e.doc
	var arg []*tokenizer.Token
	depth := 0
	for {
		tok, err := raw.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, raw.runawayError()
		}
		if isPar(tok) && !m.Long {
			return nil, e.parError(tok, name)
		}
		arg = append(arg, tok)

		if depth > 0 {
			switch tok.Cat {
			case tokenizer.BeginGroup:
				depth++
			case tokenizer.EndGroup:
				depth--
			}
			continue
		}

		if hasSuffix(arg, delim) {
			arg = arg[:len(arg)-len(delim)]
			break
		}
		switch tok.Cat {
		case tokenizer.BeginGroup:
			depth++
		case tokenizer.EndGroup:
			return nil, d.errorf(KindUsage, tok,
				"Argument of %s has an extra }", d.csName(name))
		}
	}
	return stripBraces(arg), nil
}

// stripBraces removes one pair of braces, if these enclose the
// complete argument.
func stripBraces(arg []*tokenizer.Token) []*tokenizer.Token {
	n := len(arg)
	if n < 2 || arg[0].Cat != tokenizer.BeginGroup || arg[n-1].Cat != tokenizer.EndGroup {
		return arg
	}
	depth := 0
	for _, tok := range arg[:n-1] {
		switch tok.Cat {
		case tokenizer.BeginGroup:
			depth++
		case tokenizer.EndGroup:
			depth--
		}
		if depth == 0 {
			return arg
		}
	}
	return arg[1 : n-1]
}

func (e *Expander) parError(tok, name *tokenizer.Token) error {
	return e.doc.errorf(KindUsage, tok,
		"Paragraph ended before %s was complete", e.doc.csName(name))
}

// interpolate returns the macro body with the parameters replaced by
// the given arguments.
func (m *Macro) interpolate(args [][]*tokenizer.Token) []*tokenizer.Token {
	res := make([]*tokenizer.Token, 0, len(m.Body))
	body := m.Body
	for i := 0; i < len(body); i++ {
		tok := body[i]
		if tok.Cat == tokenizer.Parameter && i+1 < len(body) {
			next := body[i+1]
			if next.Cat == tokenizer.Parameter {
				res = append(res, next)
				i++
				continue
			}
			if n, ok := paramNumber(next); ok {
				if n <= len(args) {
					res = append(res, args[n-1]...)
				}
				i++
				continue
			}
		}
		res = append(res, tok)
	}
	return res
}

func paramNumber(tok *tokenizer.Token) (int, bool) {
	if tok.Cat != tokenizer.Other || tok.Ch < '1' || tok.Ch > '9' {
		return 0, false
	}
	return int(tok.Ch - '0'), true
}

// readParams reads the parameter text of a definition, up to but not
// including the "{" which starts the body.
func (e *Expander) readParams(raw *Expander) ([]Segment, error) {
	d := e.doc
	var segs []Segment
	cur := Segment{}
	n := 0
	finish := func() []Segment {
		if cur.Param > 0 || len(cur.Delim) > 0 {
			segs = append(segs, cur)
		}
		return segs
	}
	for {
		tok, err := raw.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, raw.runawayError()
		}
		switch tok.Cat {
		case tokenizer.BeginGroup:
			raw.Push(tok)
			return finish(), nil
		case tokenizer.EndGroup:
			return nil, d.errorf(KindDefinition, tok, "Missing { inserted")
		case tokenizer.Parameter:
			next, err := raw.Next()
			if err != nil {
				return nil, err
			}
			if next == nil {
				return nil, raw.runawayError()
			}
			if next.Cat == tokenizer.BeginGroup {
				// #{ : the brace delimits the last parameter and is
				// also appended to the body
				cur.Delim = append(cur.Delim, next)
				raw.Push(next)
				return finish(), nil
			}
			k, ok := paramNumber(next)
			if !ok || k != n+1 {
				return nil, d.errorf(KindDefinition, next,
					"Parameters must be numbered consecutively")
			}
			n = k
			finish()
			cur = Segment{Param: n}
		default:
			cur.Delim = append(cur.Delim, tok)
		}
	}
}

// checkBody verifies that all parameter references in a macro body
// are valid.
func (d *Document) checkBody(body []*tokenizer.Token, params []Segment, name *tokenizer.Token) error {
	n := 0
	for _, seg := range params {
		if seg.Param > n {
			n = seg.Param
		}
	}
	for i := 0; i < len(body); i++ {
		if body[i].Cat != tokenizer.Parameter {
			continue
		}
		if i+1 < len(body) {
			next := body[i+1]
			if next.Cat == tokenizer.Parameter {
				i++
				continue
			}
			if k, ok := paramNumber(next); ok && k <= n {
				i++
				continue
			}
		}
		return d.errorf(KindDefinition, body[i],
			"Illegal parameter number in definition of %s", d.csName(name))
	}
	return nil
}

// paramText formats the parameter text of a macro the way \meaning
// shows it.
func (d *Document) paramText(m *Macro) string {
	var res strings.Builder
	for _, seg := range m.Params {
		if seg.Param > 0 {
			fmt.Fprintf(&res, "#%d", seg.Param)
		}
		res.WriteString(d.format(seg.Delim))
	}
	return res.String()
}
