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

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/sidebyside"
)

// Ambiguous characters are narrow, like in most terminals outside of CJK locales.
var cells = &runewidth.Condition{StrictEmojiNeutral: true}

const (
	ellipsis  = "…"
	separator = " │ "
)

// Display only, lines are never modified otherwise.
var sanitize = strings.NewReplacer("\t", "    ", "\r", "")

var kindColors = map[linediff.Kind]string{
	linediff.Added:   "2",
	linediff.Removed: "1",
	linediff.Changed: "3",
}

var classColors = map[string]string{
	highlight.Keyword:  "5",
	highlight.String:   "6",
	highlight.Comment:  "8",
	highlight.Number:   "4",
	highlight.Builtin:  "4",
	highlight.Function: "4",
}

// Terminal writes l to w as two columns, the original document on the left and the modified
// document on the right. Every line is prefixed with its line number and a marker: "+" for added,
// "-" for removed, and "~" for changed lines. Lines that don't fit into a column are cut. Folded
// runs of unchanged lines are replaced by a single line. The last line summarizes the counts.
func Terminal(w io.Writer, l sidebyside.Layout, opts ...Option) error {
	o := newOptions(opts)
	var out *termenv.Output
	if o.detect {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(o.profile))
	}

	maxLine := 0
	for _, r := range l.Rows {
		maxLine = max(maxLine, r.Original.LineNo, r.Modified.LineNo)
	}
	numWidth := len(strconv.Itoa(maxLine))
	sideWidth := (o.width - cells.StringWidth(separator)) / 2
	t := &terminal{
		out:       out,
		bw:        bufio.NewWriter(w),
		opts:      o,
		numWidth:  numWidth,
		textWidth: max(sideWidth-numWidth-3, 1),
	}

	if o.title != "" {
		fmt.Fprintln(t.bw, out.String(o.title).Bold())
	}
	for _, s := range l.Fold(o.context) {
		if s.Hidden {
			t.fold(s.Len())
			continue
		}
		for _, r := range l.Rows[s.Start:s.End] {
			if err := t.row(r); err != nil {
				return err
			}
		}
	}
	t.footer(l.Counts)
	return t.bw.Flush()
}

type terminal struct {
	out       *termenv.Output
	bw        *bufio.Writer
	opts      options
	numWidth  int
	textWidth int
}

func (t *terminal) style(s, color string) string {
	if s == "" || color == "" {
		return s
	}
	return t.out.String(s).Foreground(t.out.Color(color)).String()
}

func (t *terminal) row(r sidebyside.Row) error {
	left, err := t.cell(r.Original, r.Kind, true)
	if err != nil {
		return err
	}
	right, err := t.cell(r.Modified, r.Kind, false)
	if err != nil {
		return err
	}
	line := strings.TrimRight(left+separator+right, " ")
	_, err = fmt.Fprintln(t.bw, line)
	return err
}

func (t *terminal) cell(c sidebyside.Cell, kind linediff.Kind, original bool) (string, error) {
	if !c.Present {
		return strings.Repeat(" ", t.numWidth+3+t.textWidth), nil
	}
	tokens, err := t.opts.tokens(sanitize.Replace(c.Text))
	if err != nil {
		return "", fmt.Errorf("highlighting line %d: %v", c.LineNo, err)
	}
	tokens, width := fit(tokens, t.textWidth)

	var sb strings.Builder
	prefix := fmt.Sprintf("%*d %c ", t.numWidth, c.LineNo, marker(kind, original))
	sb.WriteString(t.style(prefix, kindColors[kind]))
	for _, tok := range tokens {
		sb.WriteString(t.style(tok.Text, classColors[tok.Class]))
	}
	sb.WriteString(strings.Repeat(" ", t.textWidth-width))
	return sb.String(), nil
}

func (t *terminal) fold(n int) {
	text := fmt.Sprintf("%s⋯ %d unchanged %s", strings.Repeat(" ", t.numWidth+1), n, plural(n, "line", "lines"))
	fmt.Fprintln(t.bw, t.out.String(text).Faint())
}

func (t *terminal) footer(c linediff.Counts) {
	fmt.Fprintf(t.bw, "%s %s %s %s\n",
		t.style("+"+strconv.Itoa(c.Added), kindColors[linediff.Added]),
		t.style("-"+strconv.Itoa(c.Removed), kindColors[linediff.Removed]),
		t.style("~"+strconv.Itoa(c.Changed), kindColors[linediff.Changed]),
		"="+strconv.Itoa(c.Unchanged),
	)
}

func marker(kind linediff.Kind, original bool) byte {
	switch {
	case kind == linediff.Changed:
		return '~'
	case kind == linediff.Removed && original:
		return '-'
	case kind == linediff.Added && !original:
		return '+'
	}
	return ' '
}

// fit cuts tokens to at most width cells, a cut line ends with an ellipsis. It returns the
// resulting tokens and their width.
func fit(tokens []highlight.Token, width int) ([]highlight.Token, int) {
	total := 0
	for _, tok := range tokens {
		total += cells.StringWidth(tok.Text)
	}
	if total <= width {
		return tokens, total
	}

	limit := max(width-cells.StringWidth(ellipsis), 0)
	var out []highlight.Token
	used := 0
	for _, tok := range tokens {
		w := cells.StringWidth(tok.Text)
		if used+w > limit {
			if text := cells.Truncate(tok.Text, limit-used, ""); text != "" {
				out = append(out, highlight.Token{Class: tok.Class, Text: text})
				used += cells.StringWidth(text)
			}
			break
		}
		out = append(out, tok)
		used += w
	}
	out = append(out, highlight.Token{Text: ellipsis})
	return out, used + cells.StringWidth(ellipsis)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
