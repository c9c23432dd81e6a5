// scanner.go -
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

package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Location identifies a character position in the input.
type Location struct {
	File string
	Line int
	Col  int
}

func (loc Location) String() string {
	if loc.File == "" {
		return ""
	}
	return loc.File + ":" + strconv.Itoa(loc.Line) + ":" + strconv.Itoa(loc.Col)
}

// Scanner implements methods to recursively walk through a set of
// input files and buffers, one line at a time.
type Scanner struct {
	// BaseDir is the base directory for include files.  Filenames
	// passed to the .Include() method are interpreted as being
	// relative to this directory.
	BaseDir string

	// EndLine, if set, returns the character which is appended to
	// every input line terminated by a newline.  Values outside the
	// range 0-255 suppress the end-of-line character.
	EndLine func() int

	sources []*source
	err     error
}

type source struct {
	Name string
	Fd   io.ReadCloser
	rd   *bufio.Reader

	line  []rune
	pos   int
	Line  int
	State int
	ended bool
	done  bool
}

// Close closes all input files and discards all buffers used by the
// scanner.
func (scan *Scanner) Close() (err error) {
	for _, src := range scan.sources {
		if src.Fd == nil {
			continue
		}
		e2 := src.Fd.Close()
		if err == nil {
			err = e2
		}
	}
	scan.sources = nil
	return
}

// Prepend adds the given buffer to the list of input sources.  The
// buffer contents are read next, followed by all previous inputs.
// The argument `name` is used to identify the buffer in error
// messages and should be a short, human-readable string.
func (scan *Scanner) Prepend(data []byte, name string) {
	src := &source{
		Name: name,
		rd:   bufio.NewReader(bytes.NewReader(data)),
	}
	scan.sources = append(scan.sources, src)
}

// Include adds the contents of the given file to the list of input
// sources.  The file contents are read next, followed by all
// remaining, previously registered inputs.
func (scan *Scanner) Include(fileName string) error {
	if scan.BaseDir != "" && !filepath.IsAbs(fileName) {
		fileName = filepath.Join(scan.BaseDir, fileName)
	}

	fd, err := os.Open(fileName)
	if err != nil {
		return err
	}

	src := &source{
		Name: filepath.Base(fileName),
		Fd:   fd,
		rd:   bufio.NewReader(fd),
	}
	scan.sources = append(scan.sources, src)

	if scan.BaseDir == "" {
		tmp, err := filepath.Abs(fileName)
		if err != nil {
			return err
		}
		scan.BaseDir = filepath.Dir(tmp)
	}

	return nil
}

// Next checks whether more input is available.  If the current line
// is used up, the next line is loaded, and finished sources are
// removed from the input stack.  This method must be called before
// every call to the .Rune() method.
func (scan *Scanner) Next() bool {
	for len(scan.sources) > 0 {
		src := scan.sources[len(scan.sources)-1]
		if src.pos < len(src.line) {
			return true
		}
		if !src.done && scan.loadLine(src) {
			continue
		}
		if src.Fd != nil {
			err := src.Fd.Close()
			if scan.err == nil && err != nil {
				scan.err = err
			}
		}
		scan.sources = scan.sources[:len(scan.sources)-1]
	}
	return false
}

// Err returns the first read error encountered by the scanner.
func (scan *Scanner) Err() error {
	return scan.err
}

func (scan *Scanner) loadLine(src *source) bool {
	if src.ended {
		src.done = true
		return false
	}
	text, err := src.rd.ReadString('\n')
	if err != nil && err != io.EOF {
		if scan.err == nil {
			scan.err = scan.MakeError(err.Error())
		}
		src.done = true
		return false
	}
	if err == io.EOF && text == "" {
		src.done = true
		return false
	}

	terminated := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	text = strings.TrimRight(text, " ")

	src.line = []rune(text)
	if terminated && scan.EndLine != nil {
		if c := scan.EndLine(); c >= 0 && c <= 255 {
			src.line = append(src.line, rune(c))
		}
	}
	src.pos = 0
	src.Line++
	src.State = 0
	return true
}

// Rune returns the next character of the current line.  The second
// return value is false if the current line is used up.
func (scan *Scanner) Rune() (rune, bool) {
	src := scan.top()
	if src == nil || src.pos >= len(src.line) {
		return 0, false
	}
	c := src.line[src.pos]
	src.pos++
	return c, true
}

// Peek returns the character k positions after the current position,
// without leaving the current line.
func (scan *Scanner) Peek(k int) (rune, bool) {
	src := scan.top()
	if src == nil || src.pos+k >= len(src.line) {
		return 0, false
	}
	return src.line[src.pos+k], true
}

// Skip advances the current position by n characters.
func (scan *Scanner) Skip(n int) {
	if n < 0 {
		panic("invalid skip amount")
	}
	src := scan.top()
	src.pos += n
	if src.pos > len(src.line) {
		src.pos = len(src.line)
	}
}

// Back moves the current position n characters backwards.  It is only
// valid for characters read from the current line.
func (scan *Scanner) Back(n int) {
	src := scan.top()
	if src == nil || n > src.pos {
		panic("invalid back amount")
	}
	src.pos -= n
}

// SkipLine discards the remainder of the current line.
func (scan *Scanner) SkipLine() {
	if src := scan.top(); src != nil {
		src.pos = len(src.line)
	}
}

// EndInput arranges for the current source to finish at the end of
// the current line.
func (scan *Scanner) EndInput() {
	if src := scan.top(); src != nil {
		src.ended = true
	}
}

// State returns the line state stored for the current source.  A
// newly loaded line always starts in state 0.
func (scan *Scanner) State() int {
	if src := scan.top(); src != nil {
		return src.State
	}
	return 0
}

// SetState changes the line state of the current source.
func (scan *Scanner) SetState(state int) {
	if src := scan.top(); src != nil {
		src.State = state
	}
}

// Location returns the position of the next character.
func (scan *Scanner) Location() Location {
	src := scan.top()
	if src == nil {
		return Location{}
	}
	return Location{File: src.Name, Line: src.Line, Col: src.pos + 1}
}

// LineNumber returns the line number of the innermost source.
func (scan *Scanner) LineNumber() int {
	if src := scan.top(); src != nil {
		return src.Line
	}
	return 0
}

// Excerpt shows the current line, broken at the current position, in
// the style of TeX's error context.
func (scan *Scanner) Excerpt() string {
	src := scan.top()
	if src == nil {
		return ""
	}
	before := printable(src.line[:src.pos])
	after := printable(src.line[src.pos:])
	prefix := "l." + strconv.Itoa(src.Line) + " "
	indent := strings.Repeat(" ", len(prefix)+len([]rune(before)))
	return prefix + before + "\n" + indent + after
}

func printable(line []rune) string {
	var res []rune
	for _, c := range line {
		if c < 32 || c == 127 {
			continue
		}
		res = append(res, c)
	}
	return string(res)
}

func (scan *Scanner) top() *source {
	if len(scan.sources) == 0 {
		return nil
	}
	return scan.sources[len(scan.sources)-1]
}

// MakeError returns an error object which includes the given message
// together with human-readable information about the current input
// position.
func (scan *Scanner) MakeError(message string) *ParseError {
	err := &ParseError{
		Message: message,
	}
	for idx := len(scan.sources) - 1; idx >= 0; idx-- {
		src := scan.sources[idx]
		var context string
		rest := string(src.line[min(src.pos, len(src.line)):])
		if len(rest) > 20 {
			context = rest[:17] + "..."
		} else {
			context = rest
		}
		err.stack = append(err.stack, stackFrame{
			Name:    src.Name,
			Line:    src.Line,
			Context: context,
		})
	}
	return err
}

type stackFrame struct {
	Name    string
	Line    int
	Context string
}

// ParseError describes a problem with the scanner input, together
// with the stack of input sources active at the time.
type ParseError struct {
	Message string
	stack   []stackFrame
}

func (err *ParseError) Error() string {
	res := []string{err.Message}
	for i, frame := range err.stack {
		if i > 0 {
			res = append(res, ", included from")
		}
		res = append(res, "\n    ",
			frame.Name, ", line ", strconv.Itoa(frame.Line))
		if frame.Context != "" {
			res = append(res, fmt.Sprintf(", before %q", frame.Context))
		}
	}
	return strings.Join(res, "")
}
