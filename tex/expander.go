// expander.go -
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

// Level selects how much work the Expander does on the tokens it
// reads.
type Level int

// These are the expansion levels, from least to most processing.
const (
	// LevelReading returns the tokens as they come from the input.
	LevelReading Level = iota

	// LevelGating only runs conditionals; tokens in skipped branches
	// are dropped.
	LevelGating

	// LevelExpanding also expands macros and expandable primitives.
	LevelExpanding

	// LevelExecuting also executes assignments and other commands.
	// Only characters, braces and typesetting commands are returned.
	LevelExecuting
)

// Expander reads tokens from a Document's input and expands, executes
// or skips them according to its level.
type Expander struct {
	doc *Document

	level   Level
	noOuter bool
	edef    bool
	runaway string

	single  bool
	started bool
	done    bool
	depth   int
}

// Option configures an Expander.
type Option func(e *Expander)

// AtLevel sets the expansion level.
func AtLevel(level Level) Option {
	return func(e *Expander) { e.level = level }
}

// Single restricts the Expander to a single token, or to the contents
// of a single balanced group.  The braces around the group are not
// returned.
func Single() Option {
	return func(e *Expander) { e.single = true }
}

// NoOuter makes \outer macros an error.  This is used while reading
// macro arguments and parameter texts.
func NoOuter() Option {
	return func(e *Expander) { e.noOuter = true }
}

// Edef marks the tokens inserted by \the as not to be expanded again.
func Edef() Option {
	return func(e *Expander) { e.edef = true }
}

// Runaway sets the description used in the error message when the
// input ends inside a group, e.g. "definition of \foo".
func Runaway(what string) Option {
	return func(e *Expander) { e.runaway = what }
}

// NewExpander returns an Expander which executes the document input.
func (d *Document) NewExpander(opts ...Option) *Expander {
	e := &Expander{doc: d, level: LevelExecuting}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Child returns a new Expander on the same input.  The child inherits
// the level and the outer/edef handling, modified by opts.
func (e *Expander) Child(opts ...Option) *Expander {
	child := &Expander{
		doc:     e.doc,
		level:   e.level,
		noOuter: e.noOuter,
		edef:    e.edef,
		runaway: e.runaway,
	}
	for _, opt := range opts {
		opt(child)
	}
	return child
}

// Document returns the document the Expander works on.
func (e *Expander) Document() *Document {
	return e.doc
}

// Level returns the expansion level of e.
func (e *Expander) Level() Level {
	return e.level
}

// Push inserts tokens at the front of the input.  toks[0] is read
// first.
func (e *Expander) Push(toks ...*tokenizer.Token) {
	e.doc.pushback.Push(toks...)
}

// Next returns the next token which needs to be handled by the
// caller.  At the end of input, or at the end of the group in single
// mode, nil is returned.
func (e *Expander) Next() (*tokenizer.Token, error) {
	d := e.doc
	for !e.done && !d.ended {
		tok, err := d.read()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			if e.single && e.started {
				return nil, e.runawayError()
			}
			return nil, nil
		}

		if e.single {
			if !e.started {
				e.started = true
				if tok.Cat != tokenizer.BeginGroup {
					e.done = true
					return tok, nil
				}
				e.depth = d.pushback.Depth()
				continue
			}
			if tok.Cat == tokenizer.EndGroup && d.pushback.Depth() < e.depth {
				e.done = true
				return nil, nil
			}
		}

		res, err := e.process(tok)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// All reads tokens until the end of input, or the end of the group in
// single mode.
func (e *Expander) All() ([]*tokenizer.Token, error) {
	var res []*tokenizer.Token
	for {
		tok, err := e.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return res, nil
		}
		res = append(res, tok)
	}
}

func (e *Expander) runawayError() error {
	what := e.runaway
	if what == "" {
		what = "text"
	}
	return e.doc.errorf(KindUsage, nil, "File ended while scanning %s", what)
}

// process handles one token.  The result is nil if the token has been
// consumed.
func (e *Expander) process(tok *tokenizer.Token) (*tokenizer.Token, error) {
	d := e.doc

	if e.level == LevelReading {
		if e.noOuter {
			if err := e.checkOuter(tok); err != nil {
				return nil, err
			}
		}
		return tok, nil
	}

	skipping := d.skipping()
	if tok.Cat != tokenizer.Control && tok.Cat != tokenizer.Active && !tok.Frozen {
		if skipping {
			return nil, nil
		}
		if e.level == LevelExecuting {
			if err := e.groupChar(tok); err != nil {
				return nil, err
			}
		}
		return tok, nil
	}

	m := d.Lookup(tok)
	if tok.NoExpand && isExpandable(m) {
		if skipping || e.level == LevelExecuting {
			// acts like \relax
			return nil, nil
		}
		return tok, nil
	}

	if skipping {
		switch m := m.(type) {
		case *Primitive:
			if m.kind == kindConditional || m.kind == kindVerbatim {
				return nil, m.Fn(e, tok)
			}
		case *Macro:
			if m.Outer {
				return nil, d.errorf(KindUsage, tok,
					"Incomplete \\if; all text was ignored after line %d",
					d.ifs[len(d.ifs)-1].line)
			}
		}
		return nil, nil
	}

	if m == nil {
		if e.level < LevelExpanding {
			return tok, nil
		}
		return nil, d.errorf(KindUndefined, tok, "Undefined control sequence %s", tok)
	}
	if e.noOuter {
		if err := e.checkOuter(tok); err != nil {
			return nil, err
		}
	}

	switch m := m.(type) {
	case *Macro:
		if e.level < LevelExpanding {
			return tok, nil
		}
		return nil, e.expandMacro(m, tok)
	case *Primitive:
		switch m.kind {
		case kindExpandable, kindVerbatim:
			if e.level < LevelExpanding {
				return tok, nil
			}
			return nil, m.Fn(e, tok)
		case kindConditional:
			return nil, m.Fn(e, tok)
		case kindTypeset:
			return tok, nil
		}
	case *CharAlias:
		if e.level < LevelExecuting {
			return tok, nil
		}
		res := *m.Token
		res.Loc = tok.Loc
		if err := e.groupChar(&res); err != nil {
			return nil, err
		}
		return &res, nil
	}

	if e.level < LevelExecuting {
		return tok, nil
	}
	return nil, e.execute(m, tok)
}

// groupChar opens or closes a simple group for brace tokens.
func (e *Expander) groupChar(tok *tokenizer.Token) error {
	d := e.doc
	switch tok.Cat {
	case tokenizer.BeginGroup:
		d.BeginGroup(GroupSimple)
	case tokenizer.EndGroup:
		g, err := d.EndGroup(GroupSimple)
		if err != nil {
			err.(*Error).Token = tok
			return err
		}
		e.Push(g.AfterGroup...)
	}
	return nil
}

func (e *Expander) checkOuter(tok *tokenizer.Token) error {
	if tok.Cat != tokenizer.Control && tok.Cat != tokenizer.Active {
		return nil
	}
	if m, ok := e.doc.Lookup(tok).(*Macro); ok && m.Outer {
		what := e.runaway
		if what == "" {
			what = "text"
		}
		return e.doc.errorf(KindUsage, tok,
			"Forbidden control sequence found while scanning %s", what)
	}
	return nil
}

// execute runs an unexpandable command.
func (e *Expander) execute(m Meaning, tok *tokenizer.Token) error {
	d := e.doc

	var err error
	assignment := false
	switch m := m.(type) {
	case *Primitive:
		switch {
		case m.Target != nil:
			var k Key
			k, err = m.Target(e, tok)
			if err == nil {
				err = e.assignCell(k)
			}
			assignment = true
		case m.kind == kindPrefix:
			return m.Fn(e, tok)
		default:
			err = m.Fn(e, tok)
			assignment = m.kind == kindAssignment
		}
	case *Register:
		err = e.assignCell(m.Key)
		assignment = true
	case *CharDef:
		if !m.Math {
			e.Push(&tokenizer.Token{Cat: tokenizer.Other, Ch: rune(m.Code), Loc: tok.Loc})
		}
	case *FontRef:
		d.Set(StateKey("font"), m.Font)
		assignment = true
	}
	if err != nil {
		return err
	}

	d.global, d.long, d.outer = false, false, false
	if assignment && d.afterAssignment != nil {
		e.Push(d.afterAssignment)
		d.afterAssignment = nil
	}
	return nil
}

// expandOnce expands tok by one step.  Unexpandable tokens are put
// back unchanged.
func (e *Expander) expandOnce(tok *tokenizer.Token) error {
	d := e.doc
	if tok.Cat != tokenizer.Control && tok.Cat != tokenizer.Active || tok.NoExpand {
		e.Push(tok)
		return nil
	}
	switch m := d.Lookup(tok).(type) {
	case nil:
		if tok.Frozen {
			e.Push(tok)
			return nil
		}
		return d.errorf(KindUndefined, tok, "Undefined control sequence %s", tok)
	case *Macro:
		return e.expandMacro(m, tok)
	case *Primitive:
		switch m.kind {
		case kindExpandable, kindVerbatim, kindConditional:
			return m.Fn(e.Child(AtLevel(LevelExpanding)), tok)
		}
	}
	e.Push(tok)
	return nil
}
