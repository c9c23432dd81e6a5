// tokens.go -
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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens <input.tex>",
	Short: "Print the tokens of a file, using the plain TeX category codes",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

type plainTable struct{}

func (plainTable) Catcode(c rune) tokenizer.Category {
	return tokenizer.PlainCatcode(c)
}

func runTokens(_ *cobra.Command, args []string) error {
	tok := tokenizer.NewTokenizer(plainTable{})
	tok.BaseDir = inputDir
	tok.EndLine = func() int { return '\r' }
	err := tok.Include(args[0])
	if err != nil {
		return err
	}
	defer tok.Close()

	for {
		t, err := tok.Next()
		if err != nil {
			return err
		}
		if t == nil {
			return nil
		}
		fmt.Printf("%s\t%s\n", t.Loc, t.Describe())
	}
}
