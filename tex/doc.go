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

// Package tex implements the expansion engine of a TeX workalike.
//
// A Document holds the scoped state: meanings of control sequences,
// registers, parameters and code tables, together with the stack of
// groups which records how to undo local assignments.  An Expander
// reads tokens from the Document's input and expands macros, evaluates
// conditionals and executes assignments, depending on its Level.  The
// tokens which remain at the end are passed to a Mode by Run.
package tex
