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

package linediff

import (
	"iter"

	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/lcs"
	"znkr.io/linediff/internal/lines"
	"znkr.io/linediff/internal/normalize"
)

// Kind classifies edits and blocks.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Equal   Kind = iota // The line is present in both documents
	Added               // The line is only present in the modified document
	Removed             // The line is only present in the original document
	Changed             // A line of the original document was replaced by a line of the modified one
)

// Edit describes a single line of a diff.
//
//   - For Equal, both sides are set. The texts may differ if lines were normalized for comparison.
//   - For Added, only Modified and ModifiedLine are set.
//   - For Removed, only Original and OriginalLine are set.
//   - For Changed, both sides are set and the lines are different.
//
// Line numbers are 1-based, a line number of 0 means that the line is not present on that side.
// Texts are always the unnormalized lines without the newline character.
type Edit struct {
	Kind         Kind
	Original     string
	Modified     string
	OriginalLine int
	ModifiedLine int
}

// Block is a run of consecutive edits of the same kind. The edits in a block always have the same
// kind as the block.
type Block struct {
	Kind  Kind
	Edits []Edit
}

// Counts are the number of edits of each kind in a diff.
type Counts struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Add increments the counter for k by n.
func (c *Counts) Add(k Kind, n int) {
	switch k {
	case Equal:
		c.Unchanged += n
	case Added:
		c.Added += n
	case Removed:
		c.Removed += n
	case Changed:
		c.Changed += n
	default:
		panic("never reached")
	}
}

// Result is the outcome of a comparison.
type Result struct {
	Blocks []Block
	Counts Counts
}

// Identical reports whether the compared documents are equal, taking the comparison options into
// account.
func (r Result) Identical() bool {
	return r.Counts.Added == 0 && r.Counts.Removed == 0 && r.Counts.Changed == 0
}

// Edits returns an iterator over all edits of all blocks, in order.
func (r Result) Edits() iter.Seq[Edit] {
	return func(yield func(Edit) bool) {
		for _, b := range r.Blocks {
			for _, e := range b.Edits {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Compare compares original and modified line by line.
//
// Both documents are split on '\n'. An empty document has no lines and a trailing newline results
// in a trailing empty line that is compared like any other line.
//
// The returned blocks contain one edit for every line of both documents. Consecutive edits of the
// same kind are grouped into blocks, and a block of removed lines that is immediately followed by
// a block of the same number of added lines is reported as a single [Changed] block.
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase]
//
// Performance: The comparison requires O(NM) time and memory where N and M are the number of lines
// of original and modified. Callers should limit the size of untrusted inputs.
func Compare(original, modified string, opts ...Option) Result {
	return CompareLines(lines.Split(original), lines.Split(modified), opts...)
}

// CompareBytes is like [Compare] but for byte slices.
func CompareBytes(original, modified []byte, opts ...Option) Result {
	return CompareLines(lines.Split(original), lines.Split(modified), opts...)
}

// CompareLines is like [Compare] but for documents that are already split into lines. The lines
// must not contain newline characters.
func CompareLines(original, modified []string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.CollapseWhitespace|config.FoldCase)

	x := normalize.Keys(original, cfg)
	y := normalize.Keys(modified, cfg)
	steps := lcs.Walk(x, y, lcs.Build(x, y))

	edits := make([]Edit, len(steps))
	for i, st := range steps {
		switch st.Op {
		case lcs.Match:
			edits[i] = Edit{
				Kind:         Equal,
				Original:     original[st.S],
				Modified:     modified[st.T],
				OriginalLine: st.S + 1,
				ModifiedLine: st.T + 1,
			}
		case lcs.Insert:
			edits[i] = Edit{
				Kind:         Added,
				Modified:     modified[st.T],
				ModifiedLine: st.T + 1,
			}
		case lcs.Delete:
			edits[i] = Edit{
				Kind:         Removed,
				Original:     original[st.S],
				OriginalLine: st.S + 1,
			}
		default:
			panic("never reached")
		}
	}

	blocks := pair(group(edits))
	var counts Counts
	for _, b := range blocks {
		counts.Add(b.Kind, len(b.Edits))
	}
	return Result{Blocks: blocks, Counts: counts}
}
