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

// Package linediff compares two text documents line by line for side-by-side display.
//
// The main function is [Compare], which returns every line of both documents classified as
// equal, added, removed, or changed and grouped into blocks of consecutive lines of the same kind.
// Lines can be compared ignoring whitespace ([IgnoreWhitespace]) or case ([IgnoreCase]).
//
// The diff is computed from a longest common subsequence table. The result is always minimal and
// deterministic: if there are multiple minimal diffs, removed lines are placed before added lines.
//
// Performance: Time and space complexity is O(NM) where N and M are the number of lines in the
// two documents. This is fine for documents that are edited by humans, but callers need to limit
// the input size for untrusted inputs.
//
// Note: For presenting a result as two columns of lines, please see
// [znkr.io/linediff/sidebyside].
package linediff
