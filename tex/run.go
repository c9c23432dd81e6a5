// run.go -
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

// Mode receives the tokens which are left over after expansion and
// execution: characters, braces and typesetting commands.
type Mode interface {
	Handle(tok *tokenizer.Token, e *Expander) error
}

// Run reads the input of e until it is exhausted or \end is executed,
// passing all resulting tokens to m.  At the end, Run checks that all
// groups and conditionals have been closed.
func Run(e *Expander, m Mode) error {
	d := e.doc
	for {
		tok, err := e.Next()
		if err != nil {
			return err
		}
		if tok == nil {
			break
		}
		err = m.Handle(tok, e)
		if err != nil {
			return err
		}
	}
	return d.checkBalance()
}

// checkBalance reports groups and conditionals which are still open
// at the end of the job.
func (d *Document) checkBalance() error {
	if n := d.pushback.Len(); n > 0 && !d.ended {
		return d.errorf(KindGrouping, nil, "%d unread tokens left at the end of input", n)
	}
	if n := len(d.groups); n > 0 {
		return d.errorf(KindGrouping, nil, "(\\end occurred inside a group at level %d)", n)
	}
	if n := len(d.ifs); n > 1 {
		return d.errorf(KindGrouping, nil,
			"(\\end occurred when \\if on line %d was incomplete)", d.ifs[n-1].line)
	}
	return nil
}

// Ended reports whether \end has been executed.
func (d *Document) Ended() bool {
	return d.ended
}
