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

// Package memlogger implements an in-memory logging.Logger for tests.
package memlogger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ledona/go-misc/logging"
)

// Entry is one captured log call.
type Entry struct {
	Level   logging.Level
	Message string
}

// MemLogger collects log entries in memory.
type MemLogger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ logging.Logger = (*MemLogger)(nil)

// Use returns a context logging into a fresh MemLogger, plus the logger for
// inspection.
func Use(ctx context.Context) (context.Context, *MemLogger) {
	m := &MemLogger{}
	return logging.SetLogger(ctx, m), m
}

// Logf implements logging.Logger.
func (m *MemLogger) Logf(level logging.Level, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns a snapshot of the captured entries.
func (m *MemLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}

// Has reports whether some captured entry at the given level contains substr.
func (m *MemLogger) Has(level logging.Level, substr string) bool {
	for _, e := range m.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Reset drops all captured entries.
func (m *MemLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
