// primitives.go -
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

type primitiveFn = func(*Expander, *tokenizer.Token) error

// definePrimitives installs the built-in control sequences.
func (d *Document) definePrimitives() {
	add := func(name string, kind primitiveKind, fn primitiveFn) *Primitive {
		p := &Primitive{Name: name, kind: kind, Fn: fn}
		d.store(ControlKey(name), p)
		return p
	}
	cell := func(name string, target func(*Expander, *tokenizer.Token) (Key, error)) {
		p := add(name, kindAssignment, nil)
		p.Target = target
	}

	d.store(ControlKey("relax"), frozenRelax)
	d.defineParams()

	// definitions
	add("def", kindAssignment, definition(false, false))
	add("gdef", kindAssignment, definition(false, true))
	add("edef", kindAssignment, definition(true, false))
	add("xdef", kindAssignment, definition(true, true))
	add("let", kindAssignment, doLet)
	add("futurelet", kindAssignment, doFuturelet)
	add("global", kindPrefix, prefix(func(d *Document) *bool { return &d.global }))
	add("long", kindPrefix, prefix(func(d *Document) *bool { return &d.long }))
	add("outer", kindPrefix, prefix(func(d *Document) *bool { return &d.outer }))

	add("chardef", kindAssignment, shorthand(255, func(n int) Meaning {
		return &CharDef{Code: n}
	}))
	add("mathchardef", kindAssignment, shorthand(0x8000, func(n int) Meaning {
		return &CharDef{Code: n, Math: true}
	}))
	registerDefs := []struct {
		name  string
		table Table
	}{
		{"countdef", TableCount},
		{"dimendef", TableDimen},
		{"skipdef", TableSkip},
		{"muskipdef", TableMuskip},
		{"toksdef", TableToks},
	}
	for _, rd := range registerDefs {
		table := rd.table
		add(rd.name, kindAssignment, shorthand(numRegisters-1, func(n int) Meaning {
			return &Register{Key: RegisterKey(table, n)}
		}))
	}

	p := add("font", kindAssignment, doFont)
	p.Value = currentFont
	d.store(ControlKey("nullfont"), &FontRef{Font: nullFont})

	// registers and code tables
	for table, name := range tablePrefix {
		if table >= TableCatcode {
			cell(name, codeTarget(table))
		} else {
			cell(name, registerTarget(table))
		}
	}
	add("advance", kindAssignment, doAdvance)
	add("multiply", kindAssignment, scaleCell(false))
	add("divide", kindAssignment, scaleCell(true))

	// expansion
	add("expandafter", kindExpandable, doExpandafter)
	add("noexpand", kindExpandable, doNoexpand)
	add("csname", kindExpandable, doCsname)
	add("string", kindVerbatim, doString)
	add("number", kindExpandable, doNumber)
	add("romannumeral", kindExpandable, doRomannumeral)
	add("the", kindExpandable, doThe)
	add("meaning", kindExpandable, doMeaning)
	add("jobname", kindExpandable, doJobname)
	add("fontname", kindExpandable, doFontname)
	add("input", kindExpandable, doInput)
	add("endinput", kindExpandable, doEndinput)
	p = add("inputlineno", kindInternal, cantUse)
	p.Value = inputLineNo

	// conditionals
	conditionals := []struct {
		name string
		cond func(e *Expander) (bool, error)
	}{
		{"iftrue", func(*Expander) (bool, error) { return true, nil }},
		{"iffalse", func(*Expander) (bool, error) { return false, nil }},
		{"ifnum", ifNum},
		{"ifdim", ifDim},
		{"ifodd", ifOdd},
		{"ifx", ifX},
		{"if", ifChar(false)},
		{"ifcat", ifChar(true)},
		{"ifvmode", ifMode(Vertical, InternalVertical)},
		{"ifhmode", ifMode(Horizontal, RestrictedHorizontal)},
		{"ifmmode", ifMode(Math, DisplayMath)},
		{"ifinner", ifMode(InternalVertical, RestrictedHorizontal, Math)},
	}
	for _, c := range conditionals {
		add(c.name, kindConditional, conditional(c.cond))
	}
	add("ifcase", kindConditional, doIfcase)
	add("else", kindConditional, doElse)
	add("or", kindConditional, doOr)
	add("fi", kindConditional, doFi)

	// typesetting commands, handled by the Mode
	for _, name := range []string{"par", "indent", "noindent"} {
		add(name, kindTypeset, nil)
	}

	// other commands
	add("begingroup", kindCommand, doBegingroup)
	add("endgroup", kindCommand, doEndgroup)
	add("aftergroup", kindCommand, doAftergroup)
	add("afterassignment", kindCommand, doAfterassignment)
	add("uppercase", kindCommand, changeCase(TableUccode))
	add("lowercase", kindCommand, changeCase(TableLccode))
	add("message", kindCommand, doMessage)
	add("errmessage", kindCommand, doErrmessage)
	add("show", kindCommand, doShow)
	add("showthe", kindCommand, doShowthe)
	add("ignorespaces", kindCommand, doIgnorespaces)
	add("char", kindCommand, doChar)
	add("end", kindCommand, doEnd)
	add("endcsname", kindCommand, doEndcsname)
}
