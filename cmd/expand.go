// expand.go -
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
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marnanel/yex-sub000/tex"
	"github.com/marnanel/yex-sub000/tex/mode"
)

// expandCmd represents the expand command
var expandCmd = &cobra.Command{
	Use:   "expand <input.tex>",
	Short: "Expand a TeX file and print the resulting text",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExpand,
}

var (
	expandOutput      string
	expandTrace       bool
	expandFingerprint bool
	expandString      string
)

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().StringVarP(&expandOutput, "output", "o", "",
		"the output file name (default: standard output)")
	expandCmd.Flags().BoolVarP(&expandTrace, "trace", "t", false,
		"set \\tracingmacros, \\tracingassigns and \\tracingrestores")
	expandCmd.Flags().BoolVar(&expandFingerprint, "fingerprint", false,
		"print a fingerprint of the final state")
	expandCmd.Flags().StringVarP(&expandString, "eval", "e", "",
		"expand the given text instead of a file")
}

var traceParams = []string{"tracingmacros", "tracingassigns", "tracingrestores"}

func runExpand(_ *cobra.Command, args []string) error {
	if len(args) == 0 && expandString == "" {
		return errNoInput
	}
	var fileName string
	if len(args) > 0 {
		fileName = args[0]
	}

	d := newDocument(fileName)
	defer d.Close()
	if expandTrace {
		for _, name := range traceParams {
			d.Set(tex.ParamKey(tex.TableInteger, name), 1)
		}
	}

	var e *tex.Expander
	if fileName != "" {
		var err error
		e, err = d.OpenFile(fileName)
		if err != nil {
			return err
		}
	} else {
		e = d.OpenString(expandString, "<command line>")
	}

	out := os.Stdout
	if expandOutput != "" {
		f, err := os.Create(expandOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	err := tex.Run(e, &mode.Text{W: w})
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if n := len(d.Warnings); n > 0 {
		log.Printf("%d warning(s)", n)
	}
	if expandFingerprint {
		fmt.Println("fingerprint:", d.Fingerprint())
	}
	return nil
}

func baseName(fileName string) string {
	return strings.TrimSuffix(filepath.Base(fileName), ".tex")
}
