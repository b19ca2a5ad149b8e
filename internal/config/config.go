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

// Package config provides shared configuration mechanisms for packages of this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, every run of whitespace in a line is collapsed into a single space and leading and
	// trailing whitespace is removed before lines are compared.
	CollapseWhitespace bool

	// If set, lines are lowercased before they are compared.
	FoldCase bool
}

// Default is the default configuration: lines are compared exactly.
var Default = Config{
	CollapseWhitespace: false,
	FoldCase:           false,
}

// Normalizing reports whether any normalization transform is enabled.
func (cfg Config) Normalizing() bool {
	return cfg.CollapseWhitespace || cfg.FoldCase
}

// Flag describes a single config entry. It's used to detect options that are used with functions
// that don't support them.
type Flag int

const (
	CollapseWhitespace Flag = 1 << iota
	FoldCase
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options. It panics if an option is used that
// isn't part of allowed.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case CollapseWhitespace:
		return "linediff.IgnoreWhitespace"
	case FoldCase:
		return "linediff.IgnoreCase"
	default:
		panic("never reached")
	}
}
