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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name  string
		edits []Edit
		want  []Block
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name:  "single",
			edits: []Edit{{Kind: Equal, Original: "a", Modified: "a", OriginalLine: 1, ModifiedLine: 1}},
			want: []Block{
				{Equal, []Edit{{Kind: Equal, Original: "a", Modified: "a", OriginalLine: 1, ModifiedLine: 1}}},
			},
		},
		{
			name: "runs",
			edits: []Edit{
				{Kind: Removed, Original: "a", OriginalLine: 1},
				{Kind: Removed, Original: "b", OriginalLine: 2},
				{Kind: Added, Modified: "x", ModifiedLine: 1},
				{Kind: Equal, Original: "c", Modified: "c", OriginalLine: 3, ModifiedLine: 2},
				{Kind: Equal, Original: "d", Modified: "d", OriginalLine: 4, ModifiedLine: 3},
				{Kind: Added, Modified: "y", ModifiedLine: 4},
			},
			want: []Block{
				{Removed, []Edit{
					{Kind: Removed, Original: "a", OriginalLine: 1},
					{Kind: Removed, Original: "b", OriginalLine: 2},
				}},
				{Added, []Edit{
					{Kind: Added, Modified: "x", ModifiedLine: 1},
				}},
				{Equal, []Edit{
					{Kind: Equal, Original: "c", Modified: "c", OriginalLine: 3, ModifiedLine: 2},
					{Kind: Equal, Original: "d", Modified: "d", OriginalLine: 4, ModifiedLine: 3},
				}},
				{Added, []Edit{
					{Kind: Added, Modified: "y", ModifiedLine: 4},
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := group(tt.edits)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("group(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestPair(t *testing.T) {
	removed := func(lines ...int) Block {
		b := Block{Kind: Removed}
		for _, l := range lines {
			b.Edits = append(b.Edits, Edit{Kind: Removed, Original: string(rune('a' + l - 1)), OriginalLine: l})
		}
		return b
	}
	added := func(lines ...int) Block {
		b := Block{Kind: Added}
		for _, l := range lines {
			b.Edits = append(b.Edits, Edit{Kind: Added, Modified: string(rune('A' + l - 1)), ModifiedLine: l})
		}
		return b
	}
	equal := func(x, y int) Block {
		return Block{Kind: Equal, Edits: []Edit{{Kind: Equal, Original: "=", Modified: "=", OriginalLine: x, ModifiedLine: y}}}
	}

	tests := []struct {
		name   string
		blocks []Block
		want   []Block
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name:   "same-size",
			blocks: []Block{removed(1, 2), added(1, 2)},
			want: []Block{
				{Changed, []Edit{
					{Kind: Changed, Original: "a", Modified: "A", OriginalLine: 1, ModifiedLine: 1},
					{Kind: Changed, Original: "b", Modified: "B", OriginalLine: 2, ModifiedLine: 2},
				}},
			},
		},
		{
			name:   "different-size",
			blocks: []Block{removed(1, 2), added(1, 2, 3)},
			want:   []Block{removed(1, 2), added(1, 2, 3)},
		},
		{
			name:   "added-before-removed",
			blocks: []Block{added(1), removed(1)},
			want:   []Block{added(1), removed(1)},
		},
		{
			name:   "trailing-removed",
			blocks: []Block{equal(1, 1), removed(2)},
			want:   []Block{equal(1, 1), removed(2)},
		},
		{
			// The added block following a pair is not considered for another pairing.
			name:   "no-remerge",
			blocks: []Block{removed(1), added(1), added(2)},
			want: []Block{
				{Changed, []Edit{
					{Kind: Changed, Original: "a", Modified: "A", OriginalLine: 1, ModifiedLine: 1},
				}},
				added(2),
			},
		},
		{
			name:   "multiple",
			blocks: []Block{removed(1), added(1), equal(2, 2), removed(3), added(3)},
			want: []Block{
				{Changed, []Edit{
					{Kind: Changed, Original: "a", Modified: "A", OriginalLine: 1, ModifiedLine: 1},
				}},
				equal(2, 2),
				{Changed, []Edit{
					{Kind: Changed, Original: "c", Modified: "C", OriginalLine: 3, ModifiedLine: 3},
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pair(tt.blocks)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pair(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}
