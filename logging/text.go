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

package logging

import (
	"fmt"
	"io"
	"sync"
)

// NewText returns a Logger writing one "[level] message" line per call to w,
// dropping entries below min. Writes are serialized, so a single text logger
// may be shared between goroutines.
func NewText(w io.Writer, min Level) Logger {
	return &textLogger{w: w, min: min}
}

type textLogger struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

func (t *textLogger) Logf(level Level, format string, args ...any) {
	if level < t.min {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
