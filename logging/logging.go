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

// Package logging defines a small leveled logging interface carried through
// context.Context. Library code logs via the package-level helpers
// (logging.Infof(ctx, ...)); callers decide the sink by installing a Logger
// into the context. The default sink discards everything.
package logging

import "context"

// Level is a logging severity.
type Level int

// Supported levels, in increasing severity.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Logger is a minimal leveled log sink.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

type ctxKeyType int

var ctxKey ctxKeyType

// SetLogger returns a context carrying the given logger.
func SetLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey, l)
}

// Get returns the context's logger, or the null logger if none was set.
func Get(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey).(Logger); ok {
		return l
	}
	return Null
}

// Debugf logs at debug level via the context's logger.
func Debugf(ctx context.Context, format string, args ...any) {
	Get(ctx).Logf(Debug, format, args...)
}

// Infof logs at info level via the context's logger.
func Infof(ctx context.Context, format string, args ...any) {
	Get(ctx).Logf(Info, format, args...)
}

// Warningf logs at warning level via the context's logger.
func Warningf(ctx context.Context, format string, args ...any) {
	Get(ctx).Logf(Warning, format, args...)
}

// Errorf logs at error level via the context's logger.
func Errorf(ctx context.Context, format string, args ...any) {
	Get(ctx).Logf(Error, format, args...)
}

type nullLogger struct{}

func (nullLogger) Logf(Level, string, ...any) {}

// Null is a Logger that discards everything.
var Null Logger = nullLogger{}
