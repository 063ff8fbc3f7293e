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

package profiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledona/go-misc/clock/testclock"
	"github.com/ledona/go-misc/logging"
	"github.com/ledona/go-misc/logging/memlogger"
)

func TestTimed(t *testing.T) {
	t.Parallel()

	ctx, ml := memlogger.Use(context.Background())
	ctx, tc := testclock.Use(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	boom := errors.New("boom")
	err := Timed(ctx, "slow step", func(context.Context) error {
		tc.Add(1500 * time.Millisecond)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("fn error should pass through, got %v", err)
	}
	if !ml.Has(logging.Info, "slow step took 1.5s") {
		t.Fatalf("elapsed time not logged: %+v", ml.Entries())
	}
}

func TestCPUProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "work.profile")
	err := CPUProfile(context.Background(), path, func(context.Context) error {
		total := 0
		for i := 0; i < 1000; i++ {
			total += i
		}
		_ = total
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("profile file is empty")
	}
}
