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

// Package testclock implements a manually advanced clock.Clock for tests.
package testclock

import (
	"context"
	"sync"
	"time"

	"github.com/ledona/go-misc/clock"
)

// TestClock is a clock.Clock whose time only moves when told to.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ clock.Clock = (*TestClock)(nil)

// New returns a TestClock frozen at start.
func New(start time.Time) *TestClock {
	return &TestClock{now: start}
}

// Use installs a fresh TestClock frozen at start into the context and
// returns both.
func Use(ctx context.Context, start time.Time) (context.Context, *TestClock) {
	tc := New(start)
	return clock.Set(ctx, tc), tc
}

// Now implements clock.Clock.
func (t *TestClock) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}

// Add advances the clock by d.
func (t *TestClock) Add(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
}
