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

package slack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledona/go-misc/clock"
	"github.com/ledona/go-misc/logging"
)

// NotifyOptions controls what Notify announces around a call. The zero value
// announces both entry and exit, with host name and elapsed time included.
type NotifyOptions struct {
	// Name identifies the wrapped call in messages. Required.
	Name string

	// AdditionalMsg is prepended to every message, e.g. a job or run id.
	AdditionalMsg string

	// SkipEntrance suppresses the message sent before the call runs.
	SkipEntrance bool

	// SkipExit suppresses the message sent after the call returns.
	SkipExit bool

	// OmitHost drops the host name from messages.
	OmitHost bool

	// OmitTiming drops the elapsed time from the exit message.
	OmitTiming bool

	// RaiseOnPostFailure returns webhook post failures to the caller instead
	// of logging them as warnings. The wrapped call's own error always wins;
	// a post failure is only returned when the call itself succeeded.
	RaiseOnPostFailure bool
}

// Notify posts to the webhook before and after running fn, reporting where it
// ran, how long it took and whether it failed. fn's error is returned
// unchanged. A panic in fn is announced as an exit failure and re-raised.
func (c *Client) Notify(ctx context.Context, o NotifyOptions, fn func(context.Context) error) error {
	if o.Name == "" {
		return errors.New("slack: notify requires a name")
	}
	if o.SkipEntrance && o.SkipExit {
		return errors.New("slack: notify with both entrance and exit skipped does nothing")
	}

	prefix := c.notifyPrefix(o)
	start := clock.Now(ctx)
	if !o.SkipEntrance {
		msg := fmt.Sprintf("%sstarted `%s` at _%s_",
			prefix, o.Name, start.Format("2006-01-02 15:04:05"))
		if err := c.postNotification(ctx, o, msg); err != nil {
			return err
		}
	}

	var fnErr error
	panicked := true
	defer func() {
		if o.SkipExit {
			return
		}
		var b strings.Builder
		b.WriteString(prefix)
		switch {
		case panicked:
			fmt.Fprintf(&b, "`%s` exited with a panic", o.Name)
		case fnErr != nil:
			fmt.Fprintf(&b, "`%s` exited with an error: %v", o.Name, fnErr)
		default:
			fmt.Fprintf(&b, "`%s` exited successfully", o.Name)
		}
		if !o.OmitTiming {
			fmt.Fprintf(&b, ". Elapsed time %s", clock.Since(ctx, start))
		}
		if err := c.postNotification(ctx, o, b.String()); err != nil && fnErr == nil && !panicked {
			fnErr = err
		}
	}()

	fnErr = fn(ctx)
	panicked = false
	return fnErr
}

func (c *Client) notifyPrefix(o NotifyOptions) string {
	var b strings.Builder
	if o.AdditionalMsg != "" {
		b.WriteString(o.AdditionalMsg)
		b.WriteString(" ")
	}
	if !o.OmitHost {
		host, err := os.Hostname()
		if err != nil {
			host = "(unknown host)"
		}
		fmt.Fprintf(&b, "host _%s_ ", host)
	}
	return b.String()
}

// postNotification sends one notify message, honoring RaiseOnPostFailure.
func (c *Client) postNotification(ctx context.Context, o NotifyOptions, text string) error {
	err := c.Post(ctx, &Message{Text: text})
	if err == nil {
		return nil
	}
	if o.RaiseOnPostFailure {
		return fmt.Errorf("slack: notification failed: %w", err)
	}
	logging.Warningf(ctx, "slack: notification failed: %s", err)
	return nil
}
