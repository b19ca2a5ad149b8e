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

// Package render writes side-by-side diffs for terminals and browsers.
package render

import (
	"github.com/muesli/termenv"
	"znkr.io/linediff/internal/highlight"
)

const (
	defaultWidth   = 120
	defaultContext = 3
	minWidth       = 20
)

type options struct {
	width   int
	context int
	hl      *highlight.Highlighter
	title   string
	profile termenv.Profile
	detect  bool // detect the color profile from the writer
}

// Option configures rendering.
type Option func(*options)

// Width sets the total width of the terminal output in columns. Values below 20 are raised to 20.
func Width(n int) Option {
	return func(o *options) {
		o.width = max(n, minWidth)
	}
}

// Context sets the number of unchanged lines shown around changes. Longer runs of unchanged lines
// are folded. A negative value disables folding.
func Context(n int) Option {
	return func(o *options) {
		o.context = n
	}
}

// Highlighter enables syntax highlighting.
func Highlighter(hl *highlight.Highlighter) Option {
	return func(o *options) {
		o.hl = hl
	}
}

// Title sets a title that's printed above the diff.
func Title(s string) Option {
	return func(o *options) {
		o.title = s
	}
}

// Colors sets the color profile for terminal output. Without this option, the profile is detected
// from the writer and the environment.
func Colors(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = p
		o.detect = false
	}
}

func newOptions(opts []Option) options {
	o := options{
		width:   defaultWidth,
		context: defaultContext,
		detect:  true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}

// tokens returns the highlighted tokens of line, or a single unclassified token if there's no
// highlighter.
func (o *options) tokens(line string) ([]highlight.Token, error) {
	if line == "" {
		return nil, nil
	}
	if o.hl == nil {
		return []highlight.Token{{Text: line}}, nil
	}
	return o.hl.Line(line)
}
