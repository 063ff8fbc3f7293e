// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package deepcompare deep-compares nested heterogeneous values and reports
// mismatches with a breadcrumb path to the divergent leaf.
//
// Each operand is classified into one of five shapes (tabular *frame.Frame,
// object-like with named fields, mapping, ordered sequence, or scalar) and
// compared under that shape's policy:
//
//   - tabular frames are normalized (column order, row order, index) per the
//     tabular options and then compared cell by cell, including column
//     element types;
//   - object-like values are compared attribute by attribute using the first
//     operand's field list, recursively;
//   - mappings are compared key by key under a key policy, and every
//     diverging key is collected into one aggregated report; mappings never
//     stop at the first mismatch;
//   - sequences must have equal lengths and are compared pairwise, stopping
//     at the first mismatch;
//   - scalars are compared by equality.
//
// In strict mode (the default) a mismatch is returned as a typed error
// (ShapeMismatchError, ValueMismatchError or AggregatedMismatchError); with
// NonStrict, mismatches just yield a false report. Strict mode is an
// assertion: requesting it while assertions are inactive (outside a test
// binary, unless SetAssertionsActive was called) is a ConfigurationError, so
// a caller that believes it is asserting can never silently verify nothing.
//
// Comparison is pure: operands are never mutated, and calls are safe from
// concurrent goroutines.
package deepcompare
