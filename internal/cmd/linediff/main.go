// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// linediff compares two files line by line and shows the differences side by side, either in the
// terminal or as an HTML page.
//
// Usage:
//
//	linediff [flags] ORIGINAL MODIFIED
//
// Either file can be "-" to read it from stdin. The exit status is 0 if the inputs are identical, 1
// if they differ, and 2 if an error occurred.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	errDiffer   = errors.New("inputs differ")
	errNoInput  = errors.New("nothing to compare, both inputs are empty")
	errTooLarge = errors.New("input too large")
)

func main() {
	err := newCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
	os.Exit(exitCode(err, os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiffer):
		return 1
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper

	cfgFile string
	watch   bool
	sample  bool
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
	}

	cmd := &cobra.Command{
		Use:   "linediff [flags] ORIGINAL MODIFIED",
		Short: "Compare two files line by line and show the differences side by side",
		Long: `linediff compares two files line by line and shows them side by side. Lines only present
in the original are marked with "-", lines only present in the modified file with "+", and lines
that were replaced with "~".

Either file can be "-" to read it from stdin. The exit status is 0 if the inputs are identical, 1
if they differ, and 2 if an error occurred.

All flags except --config, --watch, and --sample can also be set in a YAML config file or with
environment variables, e.g. LINEDIFF_IGNORE_CASE=true.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if a.sample {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.BoolP("ignore-whitespace", "w", false, "collapse runs of whitespace and ignore leading and trailing whitespace")
	f.BoolP("ignore-case", "i", false, "ignore differences in case")
	f.String("format", "term", "output format (term, html)")
	f.String("lang", "", "language for syntax highlighting (default: guessed from the file name)")
	f.Int("context", 3, "number of unchanged lines to show around changes, -1 shows all lines")
	f.Int("width", 0, "width of the terminal output (default: terminal width or 120)")
	f.Int("max-lines", 20000, "maximum number of lines per input")
	f.String("color", "auto", "when to use colors (auto, always, never)")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")
	f.StringVar(&a.cfgFile, "config", "", "config file (default: linediff.yaml in the user config dir or the working dir)")
	f.BoolVar(&a.watch, "watch", false, "compare again whenever one of the files changes")
	f.BoolVar(&a.sample, "sample", false, "compare two built-in sample documents")

	for key, flag := range flagKeys {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(a.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logConfig(logger, a.v)

	if a.sample {
		if a.watch {
			return errors.New("--watch can't be used with --sample")
		}
		x, y := sample()
		differ, err := a.compare(cfg, logger, x, y)
		if err != nil {
			return err
		}
		return differs(differ)
	}

	original, modified := args[0], args[1]
	if original == "-" && modified == "-" {
		return errors.New("only one input can be read from stdin")
	}
	if a.watch {
		if original == "-" || modified == "-" {
			return errors.New("--watch can't be used with stdin")
		}
		return a.watchFiles(cmd.Context(), cfg, logger, original, modified)
	}

	x, y, err := a.readInputs(original, modified)
	if err != nil {
		return err
	}
	differ, err := a.compare(cfg, logger, x, y)
	if err != nil {
		return err
	}
	return differs(differ)
}

func differs(differ bool) error {
	if differ {
		return errDiffer
	}
	return nil
}
