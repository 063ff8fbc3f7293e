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
	"sync/atomic"
	"testing"
)

// assertionsActive gates strict-mode comparison. It defaults to
// testing.Testing(): strict comparison is an assertion, and a strict request
// from a binary that is not running assertions must fail loudly instead of
// silently verifying nothing.
var assertionsActive atomic.Bool

func init() {
	assertionsActive.Store(testing.Testing())
}

// SetAssertionsActive overrides the assertions-active signal. Call it once at
// process start if strict comparison is wanted outside a test binary (e.g.
// ad hoc diagnostic tools).
func SetAssertionsActive(active bool) {
	assertionsActive.Store(active)
}

// AssertionsActive reports whether strict-mode comparison is permitted.
func AssertionsActive() bool {
	return assertionsActive.Load()
}

func checkStrictAllowed(o *options) error {
	if o.strict && !AssertionsActive() {
		return &ConfigurationError{
			Reason: "strict comparison requested but assertions are not active; " +
				"use NonStrict or SetAssertionsActive(true)",
		}
	}
	return nil
}
