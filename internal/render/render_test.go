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
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/sidebyside"
)

const (
	function         = "function f(a,b){\nreturn a+b;\n}"
	functionWithNull = "function f(a,b){\nif(!a) throw e;\nreturn a+b;\n}"
	numbers          = "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"
	numbersChanged   = "1\n2\n3\n4\nfive\n6\n7\n8\n9\n10"
)

func layout(x, y string) sidebyside.Layout {
	return sidebyside.New(linediff.Compare(x, y))
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		opts []Option
		want []string
	}{
		{
			name: "empty",
			want: []string{"+0 -0 ~0 =0"},
		},
		{
			name: "insertion",
			x:    function,
			y:    functionWithNull,
			opts: []Option{Width(60)},
			want: []string{
				"1   function f(a,b){         │ 1   function f(a,b){",
				"                             │ 2 + if(!a) throw e;",
				"2   return a+b;              │ 3   return a+b;",
				"3   }                        │ 4   }",
				"+1 -0 ~0 =3",
			},
		},
		{
			name: "insertion-highlighted",
			x:    function,
			y:    functionWithNull,
			opts: []Option{Width(60), Highlighter(highlight.New(highlight.Lang("javascript")))},
			want: []string{
				"1   function f(a,b){         │ 1   function f(a,b){",
				"                             │ 2 + if(!a) throw e;",
				"2   return a+b;              │ 3   return a+b;",
				"3   }                        │ 4   }",
				"+1 -0 ~0 =3",
			},
		},
		{
			name: "folded",
			x:    numbers,
			y:    numbersChanged,
			opts: []Option{Width(40), Context(0), Title("numbers")},
			want: []string{
				"numbers",
				"   ⋯ 4 unchanged lines",
				" 5 ~ 5             │  5 ~ five",
				"   ⋯ 5 unchanged lines",
				"+0 -0 ~1 =9",
			},
		},
		{
			name: "identical",
			x:    "a",
			y:    "a",
			opts: []Option{Context(0)},
			want: []string{
				"  ⋯ 1 unchanged line",
				"+0 -0 ~0 =1",
			},
		},
		{
			name: "truncated",
			x:    "abcdefg",
			y:    "表表表表",
			opts: []Option{Width(20)},
			want: []string{
				"1 ~ abc… │ 1 ~ 表…",
				"+0 -0 ~1 =0",
			},
		},
		{
			name: "tabs",
			x:    "\tx",
			y:    "\tx\nnew",
			opts: []Option{Width(30)},
			want: []string{
				"1       x     │ 1       x",
				"              │ 2 + new",
				"+1 -0 ~0 =1",
			},
		},
		{
			name: "removed",
			x:    "a\nb",
			y:    "a",
			opts: []Option{Width(30)},
			want: []string{
				"1   a         │ 1   a",
				"2 - b         │",
				"+0 -1 ~0 =1",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := append([]Option{Colors(termenv.Ascii)}, tt.opts...)
			if err := Terminal(&buf, layout(tt.x, tt.y), opts...); err != nil {
				t.Fatalf("Terminal(...) failed: %v", err)
			}
			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Terminal(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestTerminalColors(t *testing.T) {
	var buf bytes.Buffer
	if err := Terminal(&buf, layout(function, functionWithNull), Colors(termenv.ANSI)); err != nil {
		t.Fatalf("Terminal(...) failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"\x1b[32m2 + \x1b[0m",
		"\x1b[32m+1\x1b[0m",
		"\x1b[31m-0\x1b[0m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Terminal(...) = %q, want it to contain %q", out, want)
		}
	}
}

func TestFit(t *testing.T) {
	tok := func(class, text string) highlight.Token { return highlight.Token{Class: class, Text: text} }
	tests := []struct {
		name      string
		tokens    []highlight.Token
		width     int
		want      []highlight.Token
		wantWidth int
	}{
		{
			name:      "fits",
			tokens:    []highlight.Token{tok("kw", "func"), tok("", " f")},
			width:     6,
			want:      []highlight.Token{tok("kw", "func"), tok("", " f")},
			wantWidth: 6,
		},
		{
			name:      "cut-in-token",
			tokens:    []highlight.Token{tok("kw", "func"), tok("", " f()")},
			width:     6,
			want:      []highlight.Token{tok("kw", "func"), tok("", " "), tok("", "…")},
			wantWidth: 6,
		},
		{
			name:      "cut-at-token-boundary",
			tokens:    []highlight.Token{tok("kw", "func"), tok("fn", "main")},
			width:     5,
			want:      []highlight.Token{tok("kw", "func"), tok("", "…")},
			wantWidth: 5,
		},
		{
			name:      "wide",
			tokens:    []highlight.Token{tok("", "表表表表")},
			width:     4,
			want:      []highlight.Token{tok("", "表"), tok("", "…")},
			wantWidth: 3,
		},
		{
			name:      "width-one",
			tokens:    []highlight.Token{tok("", "abc")},
			width:     1,
			want:      []highlight.Token{tok("", "…")},
			wantWidth: 1,
		},
		{
			name:      "empty",
			width:     3,
			wantWidth: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, width := fit(tt.tokens, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("fit(...) result is different [-want,+got]:\n%s", diff)
			}
			if width != tt.wantWidth {
				t.Errorf("fit(...) width = %d, want %d", width, tt.wantWidth)
			}
		})
	}
}

func TestMarker(t *testing.T) {
	for _, tt := range []struct {
		kind     linediff.Kind
		original bool
		want     byte
	}{
		{linediff.Equal, true, ' '},
		{linediff.Equal, false, ' '},
		{linediff.Added, false, '+'},
		{linediff.Removed, true, '-'},
		{linediff.Changed, true, '~'},
		{linediff.Changed, false, '~'},
	} {
		if got := marker(tt.kind, tt.original); got != tt.want {
			t.Errorf("marker(%v, %v) = %q, want %q", tt.kind, tt.original, got, tt.want)
		}
	}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		opts []Option
		want []string // regular expressions
	}{
		{
			name: "insertion",
			x:    function,
			y:    functionWithNull,
			want: []string{
				`<title>Diff</title>`,
				`<pre>if\(!a\) throw e;</pre>`,
				`class="?added"?`,
				`\+1</span>`,
				`=3</span>`,
			},
		},
		{
			name: "title",
			x:    "a",
			y:    "b",
			opts: []Option{Title("a vs. b")},
			want: []string{
				`<title>a vs. b</title>`,
				`<h1>a vs. b</h1>`,
				`class="?changed"?`,
			},
		},
		{
			name: "folded",
			x:    numbers,
			y:    numbersChanged,
			opts: []Option{Context(0)},
			want: []string{
				`4 unchanged lines`,
				`<pre>five</pre>`,
				`5 unchanged lines`,
			},
		},
		{
			name: "highlighted",
			x:    "package main",
			y:    "package main\n\nfunc main() {}",
			opts: []Option{Highlighter(highlight.New(highlight.Lang("go")))},
			want: []string{
				`<span class="?kw"?>func</span>`,
			},
		},
		{
			name: "whitespace",
			x:    "a",
			y:    "a\n    indented",
			want: []string{
				`<pre>    indented</pre>`,
			},
		},
		{
			name: "css",
			want: []string{
				`border-collapse:collapse`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := HTML(&buf, layout(tt.x, tt.y), tt.opts...); err != nil {
				t.Fatalf("HTML(...) failed: %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !regexp.MustCompile(want).MatchString(out) {
					t.Errorf("HTML(...) = %q, want match for %q", out, want)
				}
			}
		})
	}
}

func TestOptions(t *testing.T) {
	o := newOptions([]Option{Width(5), nil, Context(-1)})
	if o.width != minWidth {
		t.Errorf("Width(5): got width %d, want %d", o.width, minWidth)
	}
	if o.context != -1 {
		t.Errorf("Context(-1): got context %d, want -1", o.context)
	}
	if !o.detect {
		t.Errorf("detect = false, want true without Colors option")
	}
	o = newOptions([]Option{Colors(termenv.Ascii)})
	if o.detect || o.profile != termenv.Ascii {
		t.Errorf("Colors(Ascii): got detect=%v profile=%v", o.detect, o.profile)
	}
}
