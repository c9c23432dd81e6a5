// root.go -
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
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/marnanel/yex-sub000/tex"
)

// rootCmd represents the base command when called without any
// subcommands
var rootCmd = &cobra.Command{
	Use:   "yex",
	Short: "A TeX macro expander",
	Long: `yex reads TeX input, expands macros, evaluates conditionals
and executes assignments the way TeX's mouth and stomach do, and
writes the remaining characters as plain text.`,
	SilenceUsage: true,
}

var (
	jobName  string
	inputDir string
)

var errNoInput = errors.New("no input file given")

// Execute runs the command given on the command line.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&jobName, "jobname", "",
		"the value of \\jobname (default: the input file name)")
	rootCmd.PersistentFlags().StringVar(&inputDir, "inputs", os.Getenv("YEX_INPUTS"),
		"directory used to resolve \\input file names (env YEX_INPUTS)")
}

// newDocument creates a Document for the given input file name.
func newDocument(fileName string) *tex.Document {
	name := jobName
	if name == "" && fileName != "" {
		name = baseName(fileName)
	}
	d := tex.NewDocument(&tex.Options{
		JobName: name,
		BaseDir: inputDir,
		Logger:  log.Default(),
	})
	log.Printf("job %s (%s)", d.JobName, d.JobID())
	return d
}
