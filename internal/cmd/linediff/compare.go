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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/internal/lines"
	"znkr.io/linediff/internal/render"
	"znkr.io/linediff/sidebyside"
)

type input struct {
	name string // file name, "-" for stdin
	text string
}

func (in input) displayName() string {
	if in.name == "-" {
		return "stdin"
	}
	return in.name
}

func (a *app) readInputs(original, modified string) (x, y input, err error) {
	x, err = a.read(original)
	if err != nil {
		return input{}, input{}, err
	}
	y, err = a.read(modified)
	if err != nil {
		return input{}, input{}, err
	}
	return x, y, nil
}

func (a *app) read(name string) (input, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(a.stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return input{}, fmt.Errorf("reading %s: %v", name, err)
	}
	return input{name: name, text: string(b)}, nil
}

// compare writes the differences between x and y to stdout and reports whether there are any.
func (a *app) compare(cfg Config, logger *zap.Logger, x, y input) (bool, error) {
	if x.text == "" && y.text == "" {
		return false, errNoInput
	}
	for _, in := range []input{x, y} {
		if n := lines.Count(in.text); n > cfg.MaxLines {
			return false, fmt.Errorf("%w: %s has %d lines, the limit is %d", errTooLarge, in.displayName(), n, cfg.MaxLines)
		}
	}

	start := time.Now()
	res := linediff.Compare(x.text, y.text, cfg.options()...)
	logger.Debug("compared inputs",
		zap.String("original", x.displayName()),
		zap.String("modified", y.displayName()),
		zap.Int("original_lines", lines.Count(x.text)),
		zap.Int("modified_lines", lines.Count(y.text)),
		zap.Int("blocks", len(res.Blocks)),
		zap.Duration("elapsed", time.Since(start)))

	l := sidebyside.New(res)
	opts := a.renderOptions(cfg, x, y)
	var err error
	switch cfg.Format {
	case "html":
		err = render.HTML(a.stdout, l, opts...)
	default:
		err = render.Terminal(a.stdout, l, opts...)
	}
	if err != nil {
		return false, fmt.Errorf("rendering: %v", err)
	}
	return !res.Identical(), nil
}

func (a *app) renderOptions(cfg Config, x, y input) []render.Option {
	hl := highlight.New(
		highlight.Lang(cfg.Lang),
		highlight.LangFromFilename(x.name),
		highlight.LangFromFilename(y.name),
	)
	opts := []render.Option{
		render.Context(cfg.Context),
		render.Highlighter(hl),
		render.Title(fmt.Sprintf("%s → %s", x.displayName(), y.displayName())),
	}
	if cfg.Format == "html" {
		return opts
	}

	if w := cfg.Width; w > 0 {
		opts = append(opts, render.Width(w))
	} else if w, ok := terminalWidth(a.stdout); ok {
		opts = append(opts, render.Width(w))
	}
	switch cfg.Color {
	case "always":
		p := termenv.EnvColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI
		}
		opts = append(opts, render.Colors(p))
	case "never":
		opts = append(opts, render.Colors(termenv.Ascii))
	}
	return opts
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
