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

// Package lcs implements the longest common subsequence table and the edit script reconstruction
// that's used by the line diff.
//
// The table is the classic dynamic programming solution: T[i][j] is the length of the longest
// common subsequence of x[:i] and y[:j]. It requires O(NM) time and space where N = len(x) and
// M = len(y). Callers are responsible for limiting the input size.
package lcs

import "fmt"

// Table is a (N+1)x(M+1) LCS length table stored in a flat slice.
type Table struct {
	n, m int
	v    []int
}

// Build computes the LCS length table for x and y.
func Build(x, y []string) Table {
	n, m := len(x), len(y)
	if n > 0 && m > 0 && (n+1) > maxCells/(m+1) {
		panic(fmt.Sprintf("inputs too large: %d x %d", n, m))
	}
	tbl := Table{n: n, m: m, v: make([]int, (n+1)*(m+1))}
	w := m + 1
	for i := 1; i <= n; i++ {
		row, prev := tbl.v[i*w:(i+1)*w], tbl.v[(i-1)*w:i*w]
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return tbl
}

// maxCells bounds the size of the table so that the index computation can't overflow.
const maxCells = 1 << 40

// At returns the LCS length of x[:i] and y[:j].
func (t Table) At(i, j int) int {
	if i < 0 || i > t.n || j < 0 || j > t.m {
		panic(fmt.Sprintf("index out of range: (%d, %d) not in [0, %d]x[0, %d]", i, j, t.n, t.m))
	}
	return t.v[i*(t.m+1)+j]
}

// Len returns the length of the longest common subsequence of x and y.
func (t Table) Len() int { return t.v[len(t.v)-1] }

// Size returns the dimensions N and M of the inputs the table was built for.
func (t Table) Size() (n, m int) { return t.n, t.m }
