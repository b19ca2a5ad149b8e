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

package sidebyside

import "znkr.io/linediff"

// Section is a range of rows [Start, End) of a layout.
type Section struct {
	Start, End int
	Hidden     bool // only equal rows that are far away from any change
}

// Len returns the number of rows in the section.
func (s Section) Len() int { return s.End - s.Start }

// Fold splits the rows into sections so that runs of equal rows can be collapsed. An equal row is
// hidden if there's no other row within context rows that's not equal. The returned sections cover
// all rows in order and alternate between hidden and visible.
//
// If context is negative, nothing is hidden. If there are no changes at all, all rows are hidden.
func (l Layout) Fold(context int) []Section {
	n := len(l.Rows)
	if n == 0 {
		return nil
	}
	if context < 0 {
		return []Section{{0, n, false}}
	}

	// Distance to the closest change before and after every row, or n+1 if there's none.
	before := make([]int, n)
	after := make([]int, n)
	dist := n + 1
	for i, r := range l.Rows {
		if r.Kind != linediff.Equal {
			dist = 0
		} else if dist <= n {
			dist++
		}
		before[i] = dist
	}
	dist = n + 1
	for i := n - 1; i >= 0; i-- {
		if l.Rows[i].Kind != linediff.Equal {
			dist = 0
		} else if dist <= n {
			dist++
		}
		after[i] = dist
	}

	var sections []Section
	for i := range n {
		hidden := before[i] > context && after[i] > context
		if len(sections) > 0 && sections[len(sections)-1].Hidden == hidden {
			sections[len(sections)-1].End = i + 1
			continue
		}
		sections = append(sections, Section{i, i + 1, hidden})
	}
	return sections
}
