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

import "znkr.io/linediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// IgnoreWhitespace compares lines after collapsing every run of whitespace into a single space and
// removing leading and trailing whitespace. Lines that only differ in whitespace are reported as
// equal; the edits still contain the original lines.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CollapseWhitespace = true
		return config.CollapseWhitespace
	}
}

// IgnoreCase compares lines after converting them to lower case. Lines that only differ in case
// are reported as equal; the edits still contain the original lines.
//
// IgnoreCase can be combined with [IgnoreWhitespace], whitespace is collapsed first.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.FoldCase = true
		return config.FoldCase
	}
}
