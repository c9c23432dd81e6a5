// keys.go -
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
	"strconv"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// Table selects one of the families of named state in a Document.
type Table uint8

// The tables of the Document state.
const (
	TableControl Table = iota
	TableActive
	TableCount
	TableDimen
	TableSkip
	TableMuskip
	TableToks
	TableCatcode
	TableLccode
	TableUccode
	TableSfcode
	TableMathcode
	TableDelcode
	TableInteger
	TableDimenParam
	TableGlueParam
	TableTokensParam
	TableState
)

var tablePrefix = map[Table]string{
	TableCount:    "count",
	TableDimen:    "dimen",
	TableSkip:     "skip",
	TableMuskip:   "muskip",
	TableToks:     "toks",
	TableCatcode:  "catcode",
	TableLccode:   "lccode",
	TableUccode:   "uccode",
	TableSfcode:   "sfcode",
	TableMathcode: "mathcode",
	TableDelcode:  "delcode",
}

// Key names one assignable cell of the Document state.  Named
// entries (control sequences, parameters) use Name, numbered entries
// (registers, code tables, active characters) use Index.
type Key struct {
	Table Table
	Name  string
	Index int
}

// ControlKey returns the key which stores the meaning of a control
// sequence.
func ControlKey(name string) Key {
	return Key{Table: TableControl, Name: name}
}

// ActiveKey returns the key which stores the meaning of an active
// character.
func ActiveKey(c rune) Key {
	return Key{Table: TableActive, Index: int(c)}
}

// RegisterKey returns the key of a numbered register or code table
// entry.
func RegisterKey(table Table, index int) Key {
	return Key{Table: table, Index: index}
}

// ParamKey returns the key of a named parameter, e.g.
// ParamKey(TableInteger, "tolerance").
func ParamKey(table Table, name string) Key {
	return Key{Table: table, Name: name}
}

// StateKey returns the key of an internal state variable, like the
// current font.
func StateKey(name string) Key {
	return Key{Table: TableState, Name: name}
}

func (k Key) String() string {
	switch k.Table {
	case TableControl:
		return "\\" + k.Name
	case TableActive:
		return string(rune(k.Index))
	case TableInteger, TableDimenParam, TableGlueParam, TableTokensParam:
		return "\\" + k.Name
	case TableState:
		return k.Name
	}
	return "\\" + tablePrefix[k.Table] + strconv.Itoa(k.Index)
}

func (k Key) less(other Key) bool {
	if k.Table != other.Table {
		return k.Table < other.Table
	}
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Index < other.Index
}

// valueType describes the kind of value stored in a cell.
type valueType int

const (
	typeMeaning valueType = iota
	typeInt
	typeDimen
	typeGlue
	typeMuGlue
	typeToks
	typeFont
)

func (k Key) valueType() valueType {
	switch k.Table {
	case TableCount, TableCatcode, TableLccode, TableUccode, TableSfcode,
		TableMathcode, TableDelcode, TableInteger:
		return typeInt
	case TableDimen, TableDimenParam:
		return typeDimen
	case TableSkip, TableGlueParam:
		return typeGlue
	case TableMuskip:
		return typeMuGlue
	case TableToks, TableTokensParam:
		return typeToks
	case TableState:
		if k.Name == "font" {
			return typeFont
		}
		return typeInt
	}
	return typeMeaning
}

// codeLimit gives the largest value which can be stored in a code
// table.
func codeLimit(table Table) int {
	switch table {
	case TableCatcode:
		return 15
	case TableLccode, TableUccode:
		return 255
	case TableSfcode:
		return 32767
	case TableMathcode:
		return 0x8000
	case TableDelcode:
		return 0xFFFFFF
	}
	return maxInt
}

func defaultValue(k Key) interface{} {
	c := rune(k.Index)
	switch k.Table {
	case TableControl, TableActive:
		return nil
	case TableCount:
		return 0
	case TableDimen, TableDimenParam:
		return Dimen(0)
	case TableSkip, TableMuskip, TableGlueParam:
		return Glue{}
	case TableToks, TableTokensParam:
		return []*tokenizer.Token(nil)
	case TableCatcode:
		return int(tokenizer.PlainCatcode(c))
	case TableLccode:
		switch {
		case c >= 'a' && c <= 'z':
			return int(c)
		case c >= 'A' && c <= 'Z':
			return int(c + 'a' - 'A')
		}
		return 0
	case TableUccode:
		switch {
		case c >= 'a' && c <= 'z':
			return int(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z':
			return int(c)
		}
		return 0
	case TableSfcode:
		if c >= 'A' && c <= 'Z' {
			return 999
		}
		return 1000
	case TableMathcode:
		switch {
		case c >= '0' && c <= '9':
			return 0x7000 + int(c)
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			return 0x7100 + int(c)
		}
		return int(c)
	case TableDelcode:
		if c == '.' {
			return 0
		}
		return -1
	case TableInteger:
		return integerDefaults[k.Name]
	case TableState:
		switch k.Name {
		case "font":
			return nullFont
		case "mode":
			return int(Vertical)
		}
	}
	return nil
}
