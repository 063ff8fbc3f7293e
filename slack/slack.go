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

// Package slack posts messages to a Slack incoming webhook, and can wrap a
// call so that entry, exit and elapsed time are announced in a channel.
//
// Notifications can be switched off process-wide with Disable, which turns
// every Post into a logged no-op; long-running jobs use this to silence
// notifications in development runs.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/ledona/go-misc/logging"
)

var disabled atomic.Bool

// Enable turns notifications back on. They are on by default; this is only
// useful after Disable.
func Enable() { disabled.Store(false) }

// Disable turns all notifications off process-wide.
func Disable() { disabled.Store(true) }

// Enabled reports whether notifications are currently on.
func Enabled() bool { return !disabled.Load() }

// Message is the payload of one webhook post. At least one of Text or
// Attachments must be set.
type Message struct {
	Text        string `json:"text,omitempty"`
	Attachments []any  `json:"attachments,omitempty"`
}

// StatusError reports a non-200 response from the webhook endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slack: webhook returned status %d: %s", e.Code, e.Body)
}

// Client posts to one webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// ClientOption adjusts Client construction.
type ClientOption func(*Client)

// WithHTTPClient substitutes the http.Client used for posting.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = h }
}

// New returns a Client posting to the given webhook URL.
func New(webhookURL string, opts ...ClientOption) (*Client, error) {
	if webhookURL == "" {
		return nil, errors.New("slack: webhook URL is required")
	}
	c := &Client{url: webhookURL, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FromEnv builds a Client from the webhook URL in the named environment
// variable. If the variable is unset, notifications are disabled
// process-wide with a logged warning and the returned client's posts become
// no-ops, so a missing deployment variable degrades to silence rather than
// failure.
func FromEnv(ctx context.Context, envVar string, opts ...ClientOption) (*Client, error) {
	url, ok := os.LookupEnv(envVar)
	if !ok {
		logging.Warningf(ctx,
			"slack: webhook url environment variable %q is not set, notifications disabled", envVar)
		Disable()
		c := &Client{httpClient: http.DefaultClient}
		for _, opt := range opts {
			opt(c)
		}
		return c, nil
	}
	return New(url, opts...)
}

// Post sends one message. When notifications are disabled it logs at debug
// and reports success without sending anything.
func (c *Client) Post(ctx context.Context, msg *Message) error {
	if !Enabled() {
		logging.Debugf(ctx, "slack: notifications disabled, dropping message")
		return nil
	}
	if msg == nil || (msg.Text == "" && len(msg.Attachments) == 0) {
		return errors.New("slack: nothing to send")
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: encoding message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack: posting webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &StatusError{Code: resp.StatusCode, Body: string(snippet)}
	}
	return nil
}
