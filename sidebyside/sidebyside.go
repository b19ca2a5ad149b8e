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

// Package sidebyside arranges the result of a line diff as two parallel columns of lines, the way
// it's displayed by side-by-side diff viewers.
//
// Every edit of a [linediff.Result] becomes one row. A row has a cell for the original and for the
// modified document; a cell is absent if the line only exists on the other side, in which case
// viewers display a blank placeholder line.
package sidebyside

import (
	"iter"

	"znkr.io/linediff"
)

// Cell is one side of a row.
type Cell struct {
	Present bool   // false for the placeholder of an added or removed line
	LineNo  int    // 1-based line number, 0 if not present
	Text    string // the line without newline, empty if not present
}

// Row is a line of the side-by-side view.
type Row struct {
	Kind     linediff.Kind
	Original Cell
	Modified Cell
}

// Layout is a side-by-side view of a diff.
type Layout struct {
	Rows   []Row
	Counts linediff.Counts
}

// New arranges res for side-by-side display.
func New(res linediff.Result) Layout {
	var n int
	for _, b := range res.Blocks {
		n += len(b.Edits)
	}

	l := Layout{Rows: make([]Row, 0, n)}
	for _, b := range res.Blocks {
		for _, e := range b.Edits {
			row := Row{Kind: b.Kind}
			if b.Kind != linediff.Added {
				row.Original = Cell{Present: true, LineNo: e.OriginalLine, Text: e.Original}
			}
			if b.Kind != linediff.Removed {
				row.Modified = Cell{Present: true, LineNo: e.ModifiedLine, Text: e.Modified}
			}
			l.Rows = append(l.Rows, row)
			l.Counts.Add(b.Kind, 1)
		}
	}
	return l
}

// Cells returns an iterator over the cells of one side of the layout, in order. Placeholders are
// included.
func (l Layout) Cells(original bool) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, r := range l.Rows {
			c := r.Modified
			if original {
				c = r.Original
			}
			if !yield(c) {
				return
			}
		}
	}
}
