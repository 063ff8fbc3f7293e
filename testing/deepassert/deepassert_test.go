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

package deepassert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ledona/go-misc/data/frame"
	"github.com/ledona/go-misc/deepcompare"
	"github.com/ledona/go-misc/testing/deepassert"
)

// recorderTB captures Fatalf output instead of failing the test, so failure
// messages can be inspected.
type recorderTB struct {
	testing.TB
	failed  bool
	message string
}

func (r *recorderTB) Helper() {}

func (r *recorderTB) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestThat(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		deepassert.That(t, map[string]int{"a": 1}, map[string]int{"a": 1})
	})

	t.Run("failure carries the breadcrumb", func(t *testing.T) {
		rec := &recorderTB{TB: t}
		deepassert.That(rec,
			map[string]any{"outer": []int{1, 2}},
			map[string]any{"outer": []int{1, 3}},
			deepcompare.Label("payload"))
		if !rec.failed {
			t.Fatal("expected the assertion to fail")
		}
		for _, want := range []string{"deepassert.That FAILED", "payload", "outer"} {
			if !strings.Contains(rec.message, want) {
				t.Fatalf("failure message %q missing %q", rec.message, want)
			}
		}
	})
}

func TestShapedHelpers(t *testing.T) {
	t.Parallel()

	deepassert.Mappings(t,
		map[string]int{"x": 1},
		map[string]int{"x": 1, "y": 2},
		deepcompare.Subset())

	deepassert.Sequences(t, []string{"a"}, []string{"a"})

	deepassert.Frames(t,
		frame.MustNew(frame.Column{Name: "v", Values: []any{2, 1}}),
		frame.MustNew(frame.Column{Name: "v", Values: []any{1, 2}}))
}

func TestNoErr(t *testing.T) {
	t.Parallel()

	deepassert.NoErr(t, nil)

	rec := &recorderTB{TB: t}
	deepassert.NoErr(rec, fmt.Errorf("boom"))
	if !rec.failed || !strings.Contains(rec.message, "boom") {
		t.Fatalf("NoErr should fail with the error text, got %q", rec.message)
	}
}
