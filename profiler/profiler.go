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

// Package profiler holds small timing and profiling helpers for wrapping a
// single call: elapsed-time logging and CPU-profile capture to a file.
package profiler

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/ledona/go-misc/clock"
	"github.com/ledona/go-misc/logging"
)

// Timed runs fn and logs its elapsed time at info level under the given
// label. fn's error is returned unchanged; the elapsed time is logged either
// way.
func Timed(ctx context.Context, label string, fn func(context.Context) error) error {
	defer StartTimer(ctx, label)()
	return fn(ctx)
}

// StartTimer starts measuring now and returns a stop function that logs the
// elapsed time under label. Intended for defer:
//
//	defer profiler.StartTimer(ctx, "rebuild cache")()
func StartTimer(ctx context.Context, label string) (stop func()) {
	start := clock.Now(ctx)
	return func() {
		logging.Infof(ctx, "%s took %s", label, clock.Since(ctx, start))
	}
}

// CPUProfile runs fn with CPU profiling enabled and writes the profile to
// path, in the format expected by `go tool pprof`.
func CPUProfile(ctx context.Context, path string, fn func(context.Context) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating profile output: %w", err)
	}
	defer f.Close()

	logging.Infof(ctx, "capturing CPU profile to %q", path)
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("starting CPU profile: %w", err)
	}
	defer pprof.StopCPUProfile()

	return fn(ctx)
}
