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

package main

// sample returns two versions of a small JavaScript file. The modified version adds an argument
// check, adds a function, and keeps the rest.
func sample() (original, modified input) {
	original = input{name: "calc.js", text: sampleOriginal}
	modified = input{name: "calc.js", text: sampleModified}
	return original, modified
}

const sampleOriginal = `function calculateSum(a, b) {
    return a + b;
}

function calculateProduct(a, b) {
    return a * b;
}`

const sampleModified = `function calculateSum(a, b) {
    if (typeof a !== 'number' || typeof b !== 'number') {
        throw new Error('arguments must be numbers');
    }
    return a + b;
}

function calculateDifference(a, b) {
    return a - b;
}

function calculateProduct(a, b) {
    return a * b;
}`
