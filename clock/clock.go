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

// Package clock exposes time through a context-carried Clock interface so
// code that measures elapsed time stays testable. The default clock is the
// system clock; tests install a testclock.
package clock

import (
	"context"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type ctxKeyType int

var ctxKey ctxKeyType

// Set returns a context carrying the given clock.
func Set(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, ctxKey, c)
}

// Get returns the context's clock, defaulting to the system clock.
func Get(ctx context.Context) Clock {
	if c, ok := ctx.Value(ctxKey).(Clock); ok {
		return c
	}
	return systemClock{}
}

// Now returns the context clock's current time.
func Now(ctx context.Context) time.Time {
	return Get(ctx).Now()
}

// Since returns the time elapsed on the context clock since t.
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
