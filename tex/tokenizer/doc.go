// doc.go -
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

// Package tokenizer converts TeX input characters into a stream of
// category-coded tokens.
//
// The tokenizer follows the state machine of TeX's input processor:
// every source line is read in one of the states "new line", "mid line"
// or "skipping blanks", and the category code table supplied by the
// caller decides how each character is treated.  Control sequences
// are recognised here, but their meaning is looked up elsewhere.
package tokenizer
