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

// Package normalize computes the comparison keys for lines. Two lines are considered equal by the
// diff algorithm iff their keys are identical; the lines themselves are never modified.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"znkr.io/linediff/internal/config"
)

// Key returns the comparison key for line.
//
// If collapseWhitespace is set, every maximal run of whitespace is replaced by a single space and
// leading and trailing whitespace is removed. If foldCase is set, the result is lowercased using the
// full, language independent Unicode mappings (including final sigma). Whitespace collapsing is
// always applied first. Bytes that aren't valid UTF-8 are kept as they are.
func Key(line string, collapseWhitespace, foldCase bool) string {
	var lc *cases.Caser
	if foldCase {
		c := cases.Lower(language.Und)
		lc = &c
	}
	return key(line, collapseWhitespace, lc)
}

// Keys returns the comparison keys for all lines. If no normalization is configured, lines is
// returned as is.
func Keys(lines []string, cfg config.Config) []string {
	if !cfg.Normalizing() {
		return lines
	}
	// A Caser is stateful, every call gets its own.
	var lc *cases.Caser
	if cfg.FoldCase {
		c := cases.Lower(language.Und)
		lc = &c
	}
	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = key(line, cfg.CollapseWhitespace, lc)
	}
	return keys
}

func key(line string, collapseWhitespace bool, lc *cases.Caser) string {
	if collapseWhitespace {
		line = collapse(line)
	}
	if lc != nil {
		line = lower(line, lc)
	}
	return line
}

// lower lowercases the valid UTF-8 runs of s and copies invalid bytes verbatim.
func lower(s string, lc *cases.Caser) string {
	if utf8.ValidString(s) {
		return lc.String(s)
	}
	var sb strings.Builder
	sb.Grow(len(s))
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(lc.String(s[start:i]))
			sb.WriteByte(s[i])
			i++
			start = i
			continue
		}
		i += size
	}
	sb.WriteString(lc.String(s[start:]))
	return sb.String()
}

func collapse(s string) string {
	// Fast path: nothing to do if there's no whitespace other than single inner spaces.
	if !needsCollapse(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	pending := false // whitespace seen since the last non-whitespace rune
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isSpace(r) {
			pending = true
			i += size
			continue
		}
		if pending && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pending = false
		sb.WriteString(s[i : i+size]) // invalid bytes are copied verbatim
		i += size
	}
	return sb.String()
}

func needsCollapse(s string) bool {
	prev := true // treat start of string like whitespace, so that leading spaces are detected
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == ' ':
			if prev {
				return true
			}
			prev = true
		case isSpace(r):
			return true
		default:
			prev = false
		}
	}
	return prev && len(s) > 0
}

// isSpace matches the whitespace class used by browsers for regular expressions: Unicode white
// space without U+0085, plus the byte order mark.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}
