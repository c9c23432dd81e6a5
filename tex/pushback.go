// pushback.go -
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

import "github.com/marnanel/yex-sub000/tex/tokenizer"

// Pushback holds tokens which have been "unread", so that they are
// seen before the remaining input.  The buffer also tracks the brace
// nesting of all tokens read so far.
type Pushback struct {
	items []*tokenizer.Token
	depth int
}

// Push puts tokens back into the buffer.  toks[0] is read first.
func (pb *Pushback) Push(toks ...*tokenizer.Token) {
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		switch tok.Cat {
		case tokenizer.BeginGroup:
			pb.depth--
		case tokenizer.EndGroup:
			pb.depth++
		}
		pb.items = append(pb.items, tok)
	}
}

func (pb *Pushback) pop() *tokenizer.Token {
	n := len(pb.items)
	if n == 0 {
		return nil
	}
	tok := pb.items[n-1]
	pb.items = pb.items[:n-1]
	return tok
}

// track updates the brace depth for a token which has been read.
func (pb *Pushback) track(tok *tokenizer.Token) {
	switch tok.Cat {
	case tokenizer.BeginGroup:
		pb.depth++
	case tokenizer.EndGroup:
		pb.depth--
	}
}

// Len returns the number of tokens in the buffer.
func (pb *Pushback) Len() int {
	return len(pb.items)
}

// Depth returns the brace nesting level of the input read so far.
func (pb *Pushback) Depth() int {
	return pb.depth
}
