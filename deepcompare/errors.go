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

package deepcompare

import (
	"fmt"
	"strings"
)

// ShapeMismatchError reports that the operands' declared structure disagrees:
// incompatible shapes, differing sequence lengths, a missing attribute or
// mapping key, differing column sets, or differing index shapes.
type ShapeMismatchError struct {
	Label  string
	Path   []string
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	return prefix(e.Label, e.Path) + e.Reason
}

// ValueMismatchError reports that two same-shaped leaves hold different
// values. A and B are the diverging values; Detail optionally carries a
// rendered diff or a container-level description.
type ValueMismatchError struct {
	Label  string
	Path   []string
	A, B   any
	Detail string
}

func (e *ValueMismatchError) Error() string {
	msg := prefix(e.Label, e.Path)
	if e.A == nil && e.B == nil && e.Detail != "" {
		return msg + e.Detail
	}
	msg += fmt.Sprintf("values differ: %#v != %#v", e.A, e.B)
	if e.Detail != "" {
		msg += "\ndiff (-first +second):\n" + e.Detail
	}
	return msg
}

// ConfigurationError reports a caller mistake: mutually exclusive options, an
// unclassifiable operand, or a strict comparison requested while assertions
// are inactive. It is always surfaced to the caller, never demoted to
// a false return.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "deepcompare: " + e.Reason
}

// KeyMismatch is one entry of an AggregatedMismatchError: a mapping key whose
// values differ between the operands, together with both values.
type KeyMismatch struct {
	Key  any
	A, B any
}

// AggregatedMismatchError carries every per-key mismatch found while
// comparing two mappings. Unlike the other shapes, mapping comparison checks
// all keys before failing.
type AggregatedMismatchError struct {
	Label      string
	Path       []string
	Mismatches []KeyMismatch
}

func (e *AggregatedMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d mapping key(s) differ:", prefix(e.Label, e.Path), len(e.Mismatches))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&b, "\n  [%#v]: %#v != %#v", m.Key, m.A, m.B)
	}
	return b.String()
}

// prefix renders the breadcrumb leading to a failure: the caller's label,
// then the " >> "-joined path segments.
func prefix(label string, path []string) string {
	var parts []string
	if label != "" {
		parts = append(parts, label)
	}
	if len(path) > 0 {
		parts = append(parts, strings.Join(path, " >> "))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " :: ") + ": "
}
