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

package hashutil

import (
	"testing"
	"time"
)

func TestConstantHash(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string
		When time.Time
		Tags []string
	}
	v := payload{
		Name: "run",
		When: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Tags: []string{"a", "b"},
	}

	h1, err := ConstantHash(v)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := ConstantHash(v)
	if err != nil {
		t.Fatal(err)
	}
	if h1.Cmp(h2) != 0 {
		t.Fatalf("equal values hashed differently: %s vs %s", h1, h2)
	}

	v.Tags = []string{"a", "c"}
	h3, err := ConstantHash(v)
	if err != nil {
		t.Fatal(err)
	}
	if h1.Cmp(h3) == 0 {
		t.Fatal("different values hashed alike")
	}
}

func TestConstantHashMapKeyOrder(t *testing.T) {
	t.Parallel()

	// Go map iteration order is random; the canonical encoding must hide it.
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"z": 3, "y": 2, "x": 1}
	ha, err := ConstantHashHex(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := ConstantHashHex(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Fatalf("map key order leaked into hash: %s vs %s", ha, hb)
	}
	if len(ha) != 32 {
		t.Fatalf("hex digest length %d", len(ha))
	}
}

func TestConstantHashUnhashable(t *testing.T) {
	t.Parallel()
	if _, err := ConstantHash(func() {}); err == nil {
		t.Fatal("function should be rejected")
	}
}
