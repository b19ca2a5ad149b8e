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

// Package highlight splits lines of source code into classified tokens for syntax highlighting.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token classes. The empty class is used for text that isn't highlighted.
const (
	Keyword  = "kw"
	String   = "str"
	Comment  = "com"
	Number   = "num"
	Name     = "name"
	Builtin  = "bi"
	Function = "fn"
	Operator = "op"
)

var style = map[chroma.TokenType]string{
	chroma.Keyword:           Keyword,
	chroma.KeywordType:       Keyword,
	chroma.NameBuiltin:       Builtin,
	chroma.NameFunction:      Function,
	chroma.NameClass:         Name,
	chroma.NameTag:           Name,
	chroma.NameAttribute:     Name,
	chroma.NameDecorator:     Name,
	chroma.NameException:     Name,
	chroma.LiteralString:     String,
	chroma.LiteralNumber:     Number,
	chroma.Operator:          Operator,
	chroma.OperatorWord:      Keyword,
	chroma.Comment:           Comment,
	chroma.CommentPreproc:    Keyword,
	chroma.GenericHeading:    Keyword,
	chroma.GenericInserted:   String,
	chroma.GenericDeleted:    Comment,
	chroma.GenericEmph:       "",
	chroma.GenericStrong:     Keyword,
	chroma.GenericSubheading: Keyword,
}

// Token is a piece of a line with its class.
type Token struct {
	Class string
	Text  string
}

// Option configures the lexer selection of a [Highlighter].
type Option func(*Highlighter)

// Lang selects the lexer by language name or alias, e.g. "go" or "javascript". It takes precedence
// over [LangFromFilename].
func Lang(lang string) Option {
	return func(hl *Highlighter) {
		if lang != "" {
			hl.lang = lang
		}
	}
}

// LangFromFilename selects the lexer by matching filename against the known file patterns. If used
// multiple times, the first filename with a known lexer wins.
func LangFromFilename(filename string) Option {
	return func(hl *Highlighter) {
		if filename != "" {
			hl.filenames = append(hl.filenames, filename)
		}
	}
}

// Highlighter tokenizes lines. The zero value is not usable, use [New].
type Highlighter struct {
	lang      string
	filenames []string
	lexer     chroma.Lexer
}

// New returns a highlighter. If no lexer is selected by the options or the selected language is
// unknown, lines are returned as a single unclassified token.
func New(opts ...Option) *Highlighter {
	hl := &Highlighter{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(hl)
	}
	if hl.lang != "" {
		hl.lexer = lexers.Get(hl.lang)
	}
	for _, f := range hl.filenames {
		if hl.lexer != nil {
			break
		}
		hl.lexer = lexers.Match(f)
	}
	if hl.lexer == nil {
		hl.lexer = lexers.Fallback
	}
	hl.lexer = chroma.Coalesce(hl.lexer)
	return hl
}

// Language returns the name of the selected lexer.
func (hl *Highlighter) Language() string {
	return hl.lexer.Config().Name
}

// Line splits line into tokens. The concatenation of the token texts is line.
//
// Lines are highlighted in isolation; constructs that span multiple lines (e.g. block comments)
// are only recognized on the line they start on.
func (hl *Highlighter) Line(line string) ([]Token, error) {
	if line == "" {
		return nil, nil
	}
	it, err := hl.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, fmt.Errorf("creating iterator: %v", err)
	}

	var tokens []Token
	rest := line
	for _, t := range it.Tokens() {
		text := t.Value
		// Lexers may append a newline to the input, make sure not to return more than we got.
		if len(text) > len(rest) || !strings.HasPrefix(rest, text) {
			text = rest[:commonPrefix(rest, text)]
		}
		if text == "" {
			continue
		}
		rest = rest[len(text):]
		cls := class(t.Type)
		if n := len(tokens); n > 0 && tokens[n-1].Class == cls {
			tokens[n-1].Text += text
			continue
		}
		tokens = append(tokens, Token{cls, text})
	}
	if rest != "" {
		tokens = append(tokens, Token{"", rest})
	}
	return tokens, nil
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func class(t chroma.TokenType) string {
	s, ok := style[t]
	if ok {
		return s
	}
	s, ok = style[t.SubCategory()]
	if ok {
		return s
	}
	s, ok = style[t.Category()]
	if ok {
		return s
	}
	return ""
}
