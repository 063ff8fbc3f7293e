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

// Package deepassert adapts the deepcompare package to test assertions.
//
// Example:
//
//	deepassert.That(t, got, want, deepcompare.Label("decoded response"))
//
// Every helper runs a strict comparison and fails the test with the
// comparator's breadcrumbed message on mismatch.
package deepassert

import (
	"testing"

	"github.com/ledona/go-misc/data/frame"
	"github.com/ledona/go-misc/deepcompare"
)

// That asserts that a and b are deeply equal per deepcompare.Compare and
// fails the test immediately if not.
func That(t testing.TB, a, b any, opts ...deepcompare.Option) {
	t.Helper()
	ok, err := deepcompare.Compare(a, b, opts...)
	report(t, "deepassert.That", ok, err)
}

// Mappings asserts mapping equality per deepcompare.CompareMappings.
func Mappings(t testing.TB, a, b any, opts ...deepcompare.Option) {
	t.Helper()
	ok, err := deepcompare.CompareMappings(a, b, opts...)
	report(t, "deepassert.Mappings", ok, err)
}

// Sequences asserts ordered-collection equality per
// deepcompare.CompareSequences.
func Sequences(t testing.TB, a, b any, opts ...deepcompare.Option) {
	t.Helper()
	ok, err := deepcompare.CompareSequences(a, b, opts...)
	report(t, "deepassert.Sequences", ok, err)
}

// Frames asserts tabular equality per deepcompare.CompareFrames.
func Frames(t testing.TB, a, b *frame.Frame, opts ...deepcompare.Option) {
	t.Helper()
	ok, err := deepcompare.CompareFrames(a, b, opts...)
	report(t, "deepassert.Frames", ok, err)
}

// NoErr asserts that err is nil.
func NoErr(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("deepassert.NoErr FAILED\nerror: %s", err)
	}
}

func report(t testing.TB, name string, ok bool, err error) {
	t.Helper()
	switch {
	case err != nil:
		t.Fatalf("%s FAILED\n%s", name, err)
	case !ok:
		t.Fatalf("%s FAILED (no detail available)", name)
	}
}
