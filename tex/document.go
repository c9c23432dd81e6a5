// document.go -
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
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

const baseNameSpaceURL = "http://yex.marnanel.org/job/"

// ListMode is the current typesetting mode.
type ListMode int

// These are the modes of TeX.
const (
	Vertical ListMode = iota
	InternalVertical
	Horizontal
	RestrictedHorizontal
	Math
	DisplayMath
)

var modeNames = []string{
	"vertical", "internal vertical", "horizontal",
	"restricted horizontal", "math", "display math",
}

func (m ListMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Options control the creation of a new Document.
type Options struct {
	// JobName is the value of \jobname.  The default is "texput".
	JobName string

	// BaseDir is the directory used to resolve \input file names.
	BaseDir string

	// Logger receives \message output, \show results and tracing
	// information.  The default is log.Default().
	Logger *log.Logger

	// Fonts is used to load fonts for \font.
	Fonts FontLoader
}

// Document holds the complete state of a TeX job: the meanings of
// all control sequences, registers, parameters and code tables, the
// group and conditional stacks, and the input.
type Document struct {
	JobName string

	// Warnings collects the non-fatal problems found in the input.
	Warnings []error

	logger *log.Logger
	fonts  FontLoader

	cells  map[Key]interface{}
	groups []*Group
	ifs    []*ifFrame

	pushback *Pushback
	tok      *tokenizer.Tokenizer

	// pending prefixes
	global, long, outer bool
	afterAssignment     *tokenizer.Token

	ended bool
}

// NewDocument creates a new document with the INITEX primitives and
// the plain TeX category codes.
func NewDocument(opts *Options) *Document {
	if opts == nil {
		opts = &Options{}
	}
	d := &Document{
		JobName:  opts.JobName,
		logger:   opts.Logger,
		fonts:    opts.Fonts,
		cells:    make(map[Key]interface{}),
		ifs:      []*ifFrame{{active: true}},
		pushback: &Pushback{},
	}
	if d.JobName == "" {
		d.JobName = "texput"
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	if d.fonts == nil {
		d.fonts = defaultFonts{}
	}

	d.tok = tokenizer.NewTokenizer(d)
	d.tok.BaseDir = opts.BaseDir
	d.tok.EndLine = func() int {
		return d.Int(ParamKey(TableInteger, "endlinechar"))
	}
	d.tok.Report = func(err error) {
		d.warn(&Error{Kind: KindLexical, Message: err.Error(), Context: d.tok.Excerpt()})
	}

	now := time.Now()
	d.store(ParamKey(TableInteger, "time"), now.Hour()*60+now.Minute())
	d.store(ParamKey(TableInteger, "day"), now.Day())
	d.store(ParamKey(TableInteger, "month"), int(now.Month()))
	d.store(ParamKey(TableInteger, "year"), now.Year())

	d.definePrimitives()
	return d
}

// JobID returns a name-based UUID for the job, derived from the job
// name.
func (d *Document) JobID() uuid.UUID {
	nameSpace := uuid.NewSHA1(uuid.NameSpaceURL, []byte(baseNameSpaceURL))
	return uuid.NewSHA1(nameSpace, []byte(d.JobName))
}

// OpenString arranges for the given text to be read next.  The
// returned Expander fully executes its input.
func (d *Document) OpenString(text, name string) *Expander {
	d.tok.Prepend([]byte(text), name)
	return d.NewExpander()
}

// OpenFile arranges for the contents of the given file to be read
// next.
func (d *Document) OpenFile(fileName string) (*Expander, error) {
	err := d.tok.Include(fileName)
	if err != nil {
		return nil, err
	}
	return d.NewExpander(), nil
}

// Close releases all input files.
func (d *Document) Close() error {
	return d.tok.Close()
}

// Catcode implements the tokenizer.Table interface.
func (d *Document) Catcode(c rune) tokenizer.Category {
	if c > 255 {
		return tokenizer.DefaultCatcode(c)
	}
	return tokenizer.Category(d.Int(RegisterKey(TableCatcode, int(c))))
}

// Get returns the current value of a cell.
func (d *Document) Get(k Key) interface{} {
	if v, ok := d.cells[k]; ok {
		return v
	}
	return defaultValue(k)
}

// Int returns the value of an integer cell.
func (d *Document) Int(k Key) int {
	v, _ := d.Get(k).(int)
	return v
}

// Dimen returns the value of a dimension cell.
func (d *Document) Dimen(k Key) Dimen {
	v, _ := d.Get(k).(Dimen)
	return v
}

// Glue returns the value of a glue cell.
func (d *Document) Glue(k Key) Glue {
	v, _ := d.Get(k).(Glue)
	return v
}

// Toks returns the value of a token list cell.
func (d *Document) Toks(k Key) []*tokenizer.Token {
	v, _ := d.Get(k).([]*tokenizer.Token)
	return v
}

// Font returns the current font.
func (d *Document) Font() *Font {
	v, _ := d.Get(StateKey("font")).(*Font)
	if v == nil {
		return nullFont
	}
	return v
}

// Set assigns a new value to a cell.  The assignment is global if
// \global was used or \globaldefs is positive, and local otherwise.
// A nil value makes a control sequence undefined.
func (d *Document) Set(k Key, v interface{}) {
	global := d.global
	d.global = false
	switch gd := d.Int(ParamKey(TableInteger, "globaldefs")); {
	case gd > 0:
		global = true
	case gd < 0:
		global = false
	}
	d.assign(k, v, global)
}

func (d *Document) assign(k Key, v interface{}, global bool) {
	if global {
		for _, g := range d.groups {
			delete(g.saved, k)
		}
		if d.Int(ParamKey(TableInteger, "tracingassigns")) > 0 {
			d.logger.Printf("{globally changing %s}", k)
		}
	} else if n := len(d.groups); n > 0 && !volatile[k] {
		d.groups[n-1].remember(k, d.cells)
	}
	d.store(k, v)
}

// store writes a cell without recording the old value.
func (d *Document) store(k Key, v interface{}) {
	if v == nil {
		delete(d.cells, k)
		return
	}
	d.cells[k] = v
}

// volatile lists the cells which are never restored at the end of a
// group.
var volatile = map[Key]bool{
	StateKey("mode"): true,
}

// ListMode returns the current typesetting mode.
func (d *Document) ListMode() ListMode {
	return ListMode(d.Int(StateKey("mode")))
}

// SetListMode changes the current typesetting mode.
func (d *Document) SetListMode(m ListMode) {
	d.store(StateKey("mode"), int(m))
}

// Lookup returns the current meaning of a control sequence or active
// character token.  The result is nil for undefined control sequences
// and for character tokens.
func (d *Document) Lookup(tok *tokenizer.Token) Meaning {
	if tok.Frozen {
		return frozenRelax
	}
	var v interface{}
	switch tok.Cat {
	case tokenizer.Control:
		v = d.Get(ControlKey(tok.Name))
	case tokenizer.Active:
		v = d.Get(ActiveKey(tok.Ch))
	default:
		return nil
	}
	m, _ := v.(Meaning)
	return m
}

// define changes the meaning of the control sequence or active
// character tok.
func (d *Document) define(tok *tokenizer.Token, m Meaning) error {
	var k Key
	switch tok.Cat {
	case tokenizer.Control:
		k = ControlKey(tok.Name)
	case tokenizer.Active:
		k = ActiveKey(tok.Ch)
	default:
		return d.errorf(KindDefinition, tok, "Missing control sequence inserted")
	}
	d.Set(k, m)
	return nil
}

// read returns the next token from the pushback buffer or, if this is
// empty, from the tokenizer.  The result is nil at the end of input.
func (d *Document) read() (*tokenizer.Token, error) {
	tok := d.pushback.pop()
	if tok == nil {
		var err error
		tok, err = d.tok.Next()
		if err != nil || tok == nil {
			return nil, err
		}
	}
	d.pushback.track(tok)
	return tok, nil
}

// escapeChar returns the current value of \escapechar, or -1 if no
// escape character should be printed.
func (d *Document) escapeChar() rune {
	c := d.Int(ParamKey(TableInteger, "escapechar"))
	if c < 0 || c > 255 {
		return -1
	}
	return rune(c)
}

func (d *Document) csName(tok *tokenizer.Token) string {
	if tok.Cat != tokenizer.Control {
		return string(tok.Ch)
	}
	res := tok.Name
	if c := d.escapeChar(); c >= 0 {
		res = string(c) + res
	}
	return res
}

func (d *Document) format(toks []*tokenizer.Token) string {
	return tokenizer.Format(toks, d.escapeChar())
}

func (d *Document) openInput(name string) error {
	err := d.tok.Include(name)
	if os.IsNotExist(err) {
		err = d.tok.Include(name + ".tex")
	}
	return err
}
