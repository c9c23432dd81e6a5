// text.go -
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

// Package mode implements the consumers of the token stream which
// remains after expansion.
package mode

import (
	"io"

	"github.com/marnanel/yex-sub000/tex"
	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// Text is a tex.Mode which writes the characters of the document as
// plain text.  Paragraphs are separated by blank lines.
type Text struct {
	W io.Writer
}

// Handle implements the tex.Mode interface.
func (m *Text) Handle(tok *tokenizer.Token, e *tex.Expander) error {
	d := e.Document()
	switch tok.Cat {
	case tokenizer.Control, tokenizer.Active:
		p, ok := d.Lookup(tok).(*tex.Primitive)
		if !ok {
			return nil
		}
		switch p.Name {
		case "par":
			if isHorizontal(d.ListMode()) {
				d.SetListMode(tex.Vertical)
				return m.write("\n\n")
			}
		case "indent", "noindent":
			if !isHorizontal(d.ListMode()) {
				m.startParagraph(e, nil)
			}
		}
		return nil
	case tokenizer.BeginGroup, tokenizer.EndGroup:
		return nil
	case tokenizer.Space:
		if !isHorizontal(d.ListMode()) {
			return nil
		}
		return m.write(" ")
	}

	if !isHorizontal(d.ListMode()) {
		if m.startParagraph(e, tok) {
			return nil
		}
	}
	return m.write(string(tok.Ch))
}

// startParagraph switches to horizontal mode and inserts \everypar.
// The result tells whether tok has been pushed back behind the
// \everypar tokens.
func (m *Text) startParagraph(e *tex.Expander, tok *tokenizer.Token) bool {
	d := e.Document()
	d.SetListMode(tex.Horizontal)
	every := d.Toks(tex.ParamKey(tex.TableTokensParam, "everypar"))
	if len(every) == 0 {
		return false
	}
	toks := append([]*tokenizer.Token{}, every...)
	if tok != nil {
		toks = append(toks, tok)
	}
	e.Push(toks...)
	return tok != nil
}

func (m *Text) write(s string) error {
	_, err := io.WriteString(m.W, s)
	return err
}

func isHorizontal(mode tex.ListMode) bool {
	return mode == tex.Horizontal || mode == tex.RestrictedHorizontal
}
