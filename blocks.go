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

import "slices"

// group merges consecutive edits of the same kind into blocks. The blocks share the backing array
// of edits.
func group(edits []Edit) []Block {
	var blocks []Block
	for start, end := 0, 0; start < len(edits); start = end {
		kind := edits[start].Kind
		end = start + 1
		for end < len(edits) && edits[end].Kind == kind {
			end++
		}
		blocks = append(blocks, Block{Kind: kind, Edits: slices.Clip(edits[start:end])})
	}
	return blocks
}

// pair turns a block of removed lines that is immediately followed by a block with the same number
// of added lines into a single changed block. The k-th removed line is paired with the k-th added
// line. Blocks of different sizes are left alone; there is no attempt to find a partial alignment.
//
// pair modifies blocks in place.
func pair(blocks []Block) []Block {
	out := blocks[:0]
	for i := 0; i < len(blocks); i++ {
		cur := blocks[i]
		if cur.Kind == Removed && i+1 < len(blocks) {
			next := blocks[i+1]
			if next.Kind == Added && len(next.Edits) == len(cur.Edits) {
				cur.Kind = Changed
				for k := range cur.Edits {
					cur.Edits[k].Kind = Changed
					cur.Edits[k].Modified = next.Edits[k].Modified
					cur.Edits[k].ModifiedLine = next.Edits[k].ModifiedLine
				}
				i++ // skip the added block, it's part of cur now
			}
		}
		out = append(out, cur)
	}
	return out
}
