// repl.go -
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

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/marnanel/yex-sub000/tex"
	"github.com/marnanel/yex-sub000/tex/mode"
)

const historyFile = ".yex_history"

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Expand TeX input interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

const replHelp = `REPL commands:
  :state   print the fingerprint and nesting depths of the state
  :quit    exit the REPL
`

func runRepl(_ *cobra.Command, _ []string) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	d := newDocument("")
	defer d.Close()
	out := &mode.Text{W: os.Stdout}

	for !d.Ended() {
		line, err := ln.Prompt("*")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":state":
			fmt.Printf("fingerprint %s, group depth %d, if depth %d\n",
				d.Fingerprint(), d.GroupDepth(), d.IfDepth())
			continue
		case ":help":
			fmt.Print(replHelp)
			continue
		}
		ln.AppendHistory(line)

		err = expandLine(d.OpenString(line+"\n", "<stdin>"), out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Println()
	}
	return nil
}

// expandLine runs the input until it is exhausted.  Unlike tex.Run,
// groups and conditionals may stay open across lines.
func expandLine(e *tex.Expander, m tex.Mode) error {
	for {
		tok, err := e.Next()
		if err != nil || tok == nil {
			return err
		}
		err = m.Handle(tok, e)
		if err != nil {
			return err
		}
	}
}
