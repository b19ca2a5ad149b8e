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

package lcs

import (
	"fmt"
	"slices"
)

// Op describes a step in the edit script.
type Op uint8

const (
	Match  Op = iota // x[S] and y[T] have the same key
	Insert           // y[T] is missing in x
	Delete           // x[S] is missing in y
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Step is a single step of an edit script. S and T are indices into x and y; an index is -1 if the
// step doesn't consume an element from that side.
type Step struct {
	Op   Op
	S, T int
}

// Walk reconstructs the edit script from tbl by walking backwards from (len(x), len(y)) to (0, 0).
//
// If both an insertion and a deletion preserve the LCS length, the insertion is chosen when
// walking backwards. Changing this changes the output for many inputs.
func Walk(x, y []string, tbl Table) []Step {
	if n, m := tbl.Size(); n != len(x) || m != len(y) {
		panic(fmt.Sprintf("table of size %dx%d doesn't match inputs of size %dx%d", n, m, len(x), len(y)))
	}

	i, j := len(x), len(y)
	steps := make([]Step, 0, i+j-tbl.Len())
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1]:
			steps = append(steps, Step{Match, i - 1, j - 1})
			i--
			j--
		case j > 0 && (i == 0 || tbl.At(i, j-1) >= tbl.At(i-1, j)):
			steps = append(steps, Step{Insert, -1, j - 1})
			j--
		default:
			steps = append(steps, Step{Delete, i - 1, -1})
			i--
		}
	}
	slices.Reverse(steps)
	return steps
}

// Diff builds the table for x and y and returns the edit script.
func Diff(x, y []string) []Step {
	return Walk(x, y, Build(x, y))
}
