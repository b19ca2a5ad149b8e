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

// Package lines splits documents into lines for the line diff.
package lines

import (
	"strings"
	"unsafe"
)

// Split splits in on '\n'. The newline characters are not part of the lines.
//
// An empty input has no lines. Otherwise, a document with k newline characters has k+1 lines; in
// particular, a trailing newline yields a trailing empty line.
func Split[T string | []byte](in T) []string {
	s := view(in)
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, "\n")
}

// Count returns the number of lines Split would return for in without splitting.
func Count[T string | []byte](in T) int {
	s := view(in)
	if len(s) == 0 {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// view returns in as a string without copying. The []byte case is only safe because the lines
// returned by Split are never modified and the callers never modify in while they are in use.
func view[T string | []byte](in T) string {
	switch in := any(in).(type) {
	case string:
		return in
	case []byte:
		return unsafe.String(unsafe.SliceData(in), len(in))
	}
	panic("never reached")
}
